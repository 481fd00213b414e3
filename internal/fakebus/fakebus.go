// Copyright 2017 The go-daq Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fakebus provides an in-memory register bus for tests.
package fakebus

import (
	"github.com/pkg/errors"
)

// ErrNoReg is returned when accessing a register without canned value.
var ErrNoReg = errors.New("fakebus: no such register")

// Write records a register write.
type Write struct {
	Reg uint8
	V   uint8
}

// Bus maps register addresses to fixed values.
//
// Bytes serves ReadReg, Words serves ReadWord. A register listed in Fail
// returns its error for any access. All writes succeed unless failed and
// are recorded in Writes, in order.
type Bus struct {
	Bytes map[uint8]uint8
	Words map[uint8]uint16
	Fail  map[uint8]error

	Writes []Write
	Reads  []uint8 // registers read, in order
	Closed bool
}

// New returns an empty bus.
func New() *Bus {
	return &Bus{
		Bytes: make(map[uint8]uint8),
		Words: make(map[uint8]uint16),
		Fail:  make(map[uint8]error),
	}
}

func (b *Bus) ReadReg(reg uint8) (uint8, error) {
	b.Reads = append(b.Reads, reg)
	if err := b.Fail[reg]; err != nil {
		return 0, err
	}
	v, ok := b.Bytes[reg]
	if !ok {
		return 0, errors.Wrapf(ErrNoReg, "read-byte 0x%02X", reg)
	}
	return v, nil
}

func (b *Bus) ReadWord(reg uint8) (uint16, error) {
	b.Reads = append(b.Reads, reg)
	if err := b.Fail[reg]; err != nil {
		return 0, err
	}
	v, ok := b.Words[reg]
	if !ok {
		return 0, errors.Wrapf(ErrNoReg, "read-word 0x%02X", reg)
	}
	return v, nil
}

func (b *Bus) WriteReg(reg, v uint8) error {
	if err := b.Fail[reg]; err != nil {
		return err
	}
	b.Writes = append(b.Writes, Write{Reg: reg, V: v})
	return nil
}

func (b *Bus) Close() error {
	if b.Closed {
		return errors.New("fakebus: already closed")
	}
	b.Closed = true
	return nil
}

// Reference returns a bus loaded with a known calibration and raw readings:
//
//	temperature  22.725 °C (72.905 °F)
//	pressure     102281.47 Pa (30.204 inHg)
//	humidity     75.0006 %
func Reference() *Bus {
	b := New()
	for reg, v := range map[uint8]uint16{
		0x88: 28960, // T1
		0x8A: 26619, // T2
		0x8C: 26619, // T3
		0x8E: 34988, // P1
		0x90: 54823, // P2 = -10713
		0x92: 3024,  // P3
		0x94: 5831,  // P4
		0x96: 96,    // P5
		0x98: 65529, // P6 = -7
		0x9A: 9900,  // P7
		0x9C: 55306, // P8 = -10230
		0x9E: 4285,  // P9
		0xE1: 364,   // H2
	} {
		b.Words[reg] = v
	}
	for reg, v := range map[uint8]uint8{
		0xA1: 75,   // H1
		0xE3: 0,    // H3
		0xE4: 0x0E, // H4 = 235
		0xE5: 0x2B,
		0xE6: 0x03, // H5 = 50
		0xE7: 30,   // H6

		0xD0: 0x60,
		0xD1: 0x00,

		0xF7: 92, 0xF8: 215, 0xF9: 112,
		0xFA: 129, 0xFB: 142, 0xFC: 0,
		0xFD: 111, 0xFE: 159,
	} {
		b.Bytes[reg] = v
	}
	return b
}
