// Copyright 2017 The go-daq Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bme280

import (
	"time"
)

// OpMode describes the oversampling setting of a BME280 device.
type OpMode uint8

// Operating modes
const (
	OpInvalid OpMode = iota
	OpSample1
	OpSample2
	OpSample4
	OpSample8
	OpSample16
)

func (m OpMode) valid() bool {
	return OpSample1 <= m && m <= OpSample16
}

// Conversion timings, in microseconds.
const (
	convBaseUs   = 1250 // start-up
	convStageUs  = 2300 // per sample, for each of humidity, pressure and temperature
	convSettleUs = 575  // between two stages
)

// ConversionDelay returns how long a forced conversion takes for mode m,
// rounded up to the millisecond:
//
//	1.25ms + 3 × 2.3ms × 2^m + 2 × 0.575ms
func ConversionDelay(m OpMode) time.Duration {
	us := convBaseUs + 3*convStageUs*(1<<uint(m)) + 2*convSettleUs
	ms := (us + 999) / 1000
	return time.Duration(ms) * time.Millisecond
}

// measCtrl returns the ctrl_meas value for a forced conversion,
// with m as both the pressure and temperature oversampling.
func measCtrl(m OpMode) uint8 {
	meas := uint8(m)
	return meas<<5 | meas<<2 | 1
}

// sleep blocks for the conversion delay.
var sleep = time.Sleep

// convert triggers a forced conversion and waits for its completion.
func (dev *Device) convert() error {
	err := writeReg(dev.bus, regControlHum, uint8(dev.mode))
	if err != nil {
		return err
	}

	err = writeReg(dev.bus, regControl, measCtrl(dev.mode))
	if err != nil {
		return err
	}

	delay := ConversionDelay(dev.mode)
	lg.Debugf("conversion: mode=%d meas=0x%02X sleep=%v", dev.mode, measCtrl(dev.mode), delay)
	sleep(delay)
	return nil
}

// rawT runs a conversion and returns the raw temperature.
func (dev *Device) rawT() (int32, error) {
	err := dev.convert()
	if err != nil {
		return 0, err
	}
	t, err := dev.read20(regTempData)
	if err != nil {
		return 0, err
	}
	lg.Debugf("raw temperature: %d", t)
	return t, nil
}

// rawP returns the raw pressure of the last conversion.
func (dev *Device) rawP() (int32, error) {
	p, err := dev.read20(regPressureData)
	if err != nil {
		return 0, err
	}
	lg.Debugf("raw pressure: %d", p)
	return p, nil
}

// rawH returns the raw humidity of the last conversion.
func (dev *Device) rawH() (int32, error) {
	msb, err := readReg(dev.bus, regHumidityData)
	if err != nil {
		return 0, err
	}
	lsb, err := readReg(dev.bus, regHumidityData+1)
	if err != nil {
		return 0, err
	}
	h := int32(msb)<<8 | int32(lsb)
	lg.Debugf("raw humidity: %d", h)
	return h, nil
}

// read20 assembles the 20-bit value held by the 3 registers at reg.
func (dev *Device) read20(reg uint8) (int32, error) {
	msb, err := readReg(dev.bus, reg)
	if err != nil {
		return 0, err
	}
	lsb, err := readReg(dev.bus, reg+1)
	if err != nil {
		return 0, err
	}
	xlsb, err := readReg(dev.bus, reg+2)
	if err != nil {
		return 0, err
	}
	return (int32(msb)<<16 | int32(lsb)<<8 | int32(xlsb)) >> 4, nil
}
