// Copyright 2017 The go-daq Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bme280

// Bus is register level access to a single device on a SMBus/I²C bus.
//
// The address of the device is bound by the implementation.
// smbus.Dev, periphbus.Dev and goi2cbus.Dev all satisfy Bus.
type Bus interface {
	// ReadReg reads a single byte from a designated register.
	ReadReg(reg uint8) (uint8, error)
	// ReadWord reads a little-endian 2-bytes word from a designated register,
	// following the SMBus "read word" convention.
	ReadWord(reg uint8) (uint16, error)
	// WriteReg writes a single byte v to a designated register.
	WriteReg(reg, v uint8) error
}

// readReg, readWord and writeReg tag transport failures as *BusError.

func readReg(bus Bus, reg uint8) (uint8, error) {
	v, err := bus.ReadReg(reg)
	if err != nil {
		return 0, &BusError{Op: "read-byte", Reg: reg, Err: err}
	}
	return v, nil
}

func readWord(bus Bus, reg uint8) (uint16, error) {
	v, err := bus.ReadWord(reg)
	if err != nil {
		return 0, &BusError{Op: "read-word", Reg: reg, Err: err}
	}
	return v, nil
}

func writeReg(bus Bus, reg, v uint8) error {
	err := bus.WriteReg(reg, v)
	if err != nil {
		return &BusError{Op: "write-byte", Reg: reg, Err: err}
	}
	return nil
}
