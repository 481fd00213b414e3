// Copyright 2017 The go-daq Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package periphbus exposes a periph.io I²C device as a bme280.Bus.
package periphbus

import (
	"encoding/binary"

	"github.com/pkg/errors"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"
)

// Dev is a device on a periph.io I²C bus.
type Dev struct {
	dev i2c.Dev
	bus i2c.BusCloser // nil if the bus is not owned
}

// New returns a handle to the device at addr on b.
// Closing the handle leaves b open.
func New(b i2c.Bus, addr uint16) *Dev {
	return &Dev{dev: i2c.Dev{Bus: b, Addr: addr}}
}

// Open initializes the host drivers and opens the I²C bus registered as
// name. The empty name selects the first available bus.
func Open(name string, addr uint16) (*Dev, error) {
	if _, err := host.Init(); err != nil {
		return nil, errors.Wrap(err, "periphbus: could not initialize host")
	}
	b, err := i2creg.Open(name)
	if err != nil {
		return nil, errors.Wrapf(err, "periphbus: could not open bus %q", name)
	}
	d := New(b, addr)
	d.bus = b
	return d, nil
}

// ReadReg reads a single byte from a designated register.
func (d *Dev) ReadReg(reg uint8) (uint8, error) {
	var r [1]byte
	if err := d.dev.Tx([]byte{reg}, r[:]); err != nil {
		return 0, err
	}
	return r[0], nil
}

// ReadWord reads a little-endian 2-bytes word from a designated register.
func (d *Dev) ReadWord(reg uint8) (uint16, error) {
	var r [2]byte
	if err := d.dev.Tx([]byte{reg}, r[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(r[:]), nil
}

// WriteReg writes a single byte v to a designated register.
func (d *Dev) WriteReg(reg, v uint8) error {
	return d.dev.Tx([]byte{reg, v}, nil)
}

// Close closes the bus if it was opened by Open.
func (d *Dev) Close() error {
	if d.bus == nil {
		return nil
	}
	return d.bus.Close()
}

func (d *Dev) String() string {
	return d.dev.String()
}
