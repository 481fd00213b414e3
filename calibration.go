// Copyright 2017 The go-daq Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bme280

import (
	"fmt"
)

// Calibration holds the factory trimming parameters of a device.
type Calibration struct {
	T CalibT
	P CalibP
	H CalibH
}

// CalibT holds registers values for the temperature
type CalibT struct {
	T1 uint16
	T2 int16
	T3 int16
}

// CalibP holds registers values for the pressure
type CalibP struct {
	P1 uint16
	P2 int16
	P3 int16
	P4 int16
	P5 int16
	P6 int16
	P7 int16
	P8 int16
	P9 int16
}

// CalibH holds registers values for the humidity.
// H4 and H5 are 12-bit signed values.
type CalibH struct {
	H1 uint8
	H2 int16
	H3 uint8
	H4 int16
	H5 int16
	H6 int8
}

func (c Calibration) String() string {
	return fmt.Sprintf(
		"t1=%d t2=%d t3=%d p1=%d p2=%d p3=%d p4=%d p5=%d p6=%d p7=%d p8=%d p9=%d h1=%d h2=%d h3=%d h4=%d h5=%d h6=%d",
		c.T.T1, c.T.T2, c.T.T3,
		c.P.P1, c.P.P2, c.P.P3, c.P.P4, c.P.P5, c.P.P6, c.P.P7, c.P.P8, c.P.P9,
		c.H.H1, c.H.H2, c.H.H3, c.H.H4, c.H.H5, c.H.H6,
	)
}

// LoadCalibration reads the trimming parameters off the device.
// It stops at the first failing register access.
func LoadCalibration(bus Bus) (Calibration, error) {
	var c Calibration

	words := []struct {
		reg uint8
		set func(v uint16)
	}{
		{regDigT1, func(v uint16) { c.T.T1 = v }},
		{regDigT2, func(v uint16) { c.T.T2 = int16(v) }},
		{regDigT3, func(v uint16) { c.T.T3 = int16(v) }},
		{regDigP1, func(v uint16) { c.P.P1 = v }},
		{regDigP2, func(v uint16) { c.P.P2 = int16(v) }},
		{regDigP3, func(v uint16) { c.P.P3 = int16(v) }},
		{regDigP4, func(v uint16) { c.P.P4 = int16(v) }},
		{regDigP5, func(v uint16) { c.P.P5 = int16(v) }},
		{regDigP6, func(v uint16) { c.P.P6 = int16(v) }},
		{regDigP7, func(v uint16) { c.P.P7 = int16(v) }},
		{regDigP8, func(v uint16) { c.P.P8 = int16(v) }},
		{regDigP9, func(v uint16) { c.P.P9 = int16(v) }},
		{regDigH2, func(v uint16) { c.H.H2 = int16(v) }},
	}
	for _, w := range words {
		v, err := readWord(bus, w.reg)
		if err != nil {
			return Calibration{}, err
		}
		w.set(v)
	}

	h1, err := readReg(bus, regDigH1)
	if err != nil {
		return Calibration{}, err
	}
	h3, err := readReg(bus, regDigH3)
	if err != nil {
		return Calibration{}, err
	}

	// H4 and H5 share the nibbles of regDigH5: it is read once for each.
	e4, err := readReg(bus, regDigH4)
	if err != nil {
		return Calibration{}, err
	}
	e5, err := readReg(bus, regDigH5)
	if err != nil {
		return Calibration{}, err
	}
	h4 := unpackH4(e4, e5)

	e6, err := readReg(bus, regDigH6)
	if err != nil {
		return Calibration{}, err
	}
	e5, err = readReg(bus, regDigH5)
	if err != nil {
		return Calibration{}, err
	}
	h5 := unpackH5(e6, e5)

	e7, err := readReg(bus, regDigH7)
	if err != nil {
		return Calibration{}, err
	}

	c.H.H1 = h1
	c.H.H3 = h3
	c.H.H4 = int16(h4)
	c.H.H5 = int16(h5)
	c.H.H6 = int8(e7)

	return c, nil
}

// unpackH4 rebuilds the 12-bit signed H4 from regDigH4 (bits 11..4)
// and the low nibble of regDigH5 (bits 3..0).
func unpackH4(msb, shared uint8) int32 {
	return signExtend12(msb) | int32(shared&0x0F)
}

// unpackH5 rebuilds the 12-bit signed H5 from regDigH6 (bits 11..4)
// and the high nibble of regDigH5 (bits 3..0).
func unpackH5(msb, shared uint8) int32 {
	return signExtend12(msb) | int32((shared>>4)&0x0F)
}

// signExtend12 places msb in bits 11..4 of a sign-extended int32.
func signExtend12(msb uint8) int32 {
	return int32(uint32(msb)<<24) >> 20
}
