// Copyright 2017 The go-daq Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package goi2cbus exposes a github.com/d2r2/go-i2c connection as a bme280.Bus.
package goi2cbus

import (
	i2c "github.com/d2r2/go-i2c"
	"github.com/pkg/errors"
)

// Conn is the subset of *i2c.I2C used by Dev.
type Conn interface {
	ReadRegU8(reg byte) (byte, error)
	ReadRegU16LE(reg byte) (uint16, error)
	WriteRegU8(reg byte, value byte) error
	Close() error
}

var _ Conn = (*i2c.I2C)(nil)

// Dev is a device reached through a go-i2c connection.
type Dev struct {
	conn Conn
}

// New wraps an already opened connection.
func New(conn Conn) *Dev {
	return &Dev{conn: conn}
}

// Open opens the device at addr on the i2c bus number.
func Open(bus int, addr uint8) (*Dev, error) {
	conn, err := i2c.NewI2C(addr, bus)
	if err != nil {
		return nil, errors.Wrapf(err, "goi2cbus: could not open bus=%d addr=0x%02X", bus, addr)
	}
	return New(conn), nil
}

// ReadReg reads a single byte from a designated register.
func (d *Dev) ReadReg(reg uint8) (uint8, error) {
	return d.conn.ReadRegU8(reg)
}

// ReadWord reads a little-endian 2-bytes word from a designated register.
func (d *Dev) ReadWord(reg uint8) (uint16, error) {
	return d.conn.ReadRegU16LE(reg)
}

// WriteReg writes a single byte v to a designated register.
func (d *Dev) WriteReg(reg, v uint8) error {
	return d.conn.WriteRegU8(reg, v)
}

// Close closes the connection.
func (d *Dev) Close() error {
	return d.conn.Close()
}
