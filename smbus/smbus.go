// Copyright 2017 The go-daq Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package smbus provides access to the System Management bus, over the
// Linux i2c-dev interface.
//
// http://www.smbus.org/.
package smbus

import (
	"fmt"
	"os"
	"unsafe"

	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

const (
	i2cSlave = 0x0703
	i2cSMBus = 0x0720

	i2cSMBusWrite uint8 = 0
	i2cSMBusRead  uint8 = 1

	// size identifiers
	i2cSMBusByteData uint32 = 2
	i2cSMBusWordData uint32 = 3
)

// Conn is connection to a i2c bus.
type Conn struct {
	f    *os.File
	addr int // currently selected slave address, -1 if none
}

// Open opens a connection to the i2c bus number.
func Open(bus int) (*Conn, error) {
	return OpenFile(fmt.Sprintf("/dev/i2c-%d", bus))
}

// OpenFile opens a connection to the i2c-dev character device at path.
func OpenFile(path string) (*Conn, error) {
	f, err := os.OpenFile(path, os.O_RDWR, 0600)
	if err != nil {
		return nil, errors.Wrap(err, "smbus: could not open bus")
	}
	return &Conn{f: f, addr: -1}, nil
}

// Close closes the connection to the i2c bus.
func (c *Conn) Close() error {
	return c.f.Close()
}

// Dev returns a handle to the device at the 7-bit address addr.
func (c *Conn) Dev(addr uint8) *Dev {
	return &Dev{c: c, addr: addr}
}

// ReadReg reads a single byte from a designated register.
func (c *Conn) ReadReg(addr, reg uint8) (uint8, error) {
	var v uint8
	err := c.smbus(addr, i2cSMBusRead, reg, i2cSMBusByteData, unsafe.Pointer(&v))
	return v, err
}

// WriteReg writes a single byte v to a designated register.
func (c *Conn) WriteReg(addr, reg, v uint8) error {
	return c.smbus(addr, i2cSMBusWrite, reg, i2cSMBusByteData, unsafe.Pointer(&v))
}

// ReadWord reads a 2-bytes word from a designated register.
// The first byte on the wire is the least significant one.
func (c *Conn) ReadWord(addr, reg uint8) (uint16, error) {
	var v uint16
	err := c.smbus(addr, i2cSMBusRead, reg, i2cSMBusWordData, unsafe.Pointer(&v))
	return v, err
}

func (c *Conn) smbus(addr, rw, reg uint8, size uint32, ptr unsafe.Pointer) error {
	if err := c.setAddr(addr); err != nil {
		return err
	}

	cmd := i2cCmd{
		rw:  rw,
		cmd: reg,
		len: size,
		ptr: ptr,
	}
	err := ioctl(c.f.Fd(), i2cSMBus, uintptr(unsafe.Pointer(&cmd)))
	if err != nil {
		return errors.Wrapf(err, "smbus: addr=0x%02X reg=0x%02X", addr, reg)
	}
	return nil
}

func (c *Conn) setAddr(addr uint8) error {
	if c.addr == int(addr) {
		return nil
	}
	err := ioctl(c.f.Fd(), i2cSlave, uintptr(addr))
	if err != nil {
		return errors.Wrapf(err, "smbus: could not select addr=0x%02X", addr)
	}
	c.addr = int(addr)
	return nil
}

func ioctl(fd, cmd, arg uintptr) error {
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, fd, cmd, arg)
	if errno != 0 {
		return errno
	}
	return nil
}

type i2cCmd struct {
	rw  uint8
	cmd uint8
	len uint32
	ptr unsafe.Pointer
}

// Dev is a device on a SMBus, at a fixed address.
// It satisfies bme280.Bus.
type Dev struct {
	c    *Conn
	addr uint8
}

// Addr returns the 7-bit address of the device.
func (d *Dev) Addr() uint8 { return d.addr }

// ReadReg reads a single byte from a designated register.
func (d *Dev) ReadReg(reg uint8) (uint8, error) {
	return d.c.ReadReg(d.addr, reg)
}

// ReadWord reads a little-endian 2-bytes word from a designated register.
func (d *Dev) ReadWord(reg uint8) (uint16, error) {
	return d.c.ReadWord(d.addr, reg)
}

// WriteReg writes a single byte v to a designated register.
func (d *Dev) WriteReg(reg, v uint8) error {
	return d.c.WriteReg(d.addr, reg, v)
}

// Close closes the underlying bus connection.
func (d *Dev) Close() error {
	return d.c.Close()
}
