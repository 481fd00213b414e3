// Copyright 2017 The go-daq Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bme280 provides access to Bosch BME280 temperature, pressure and
// humidity sensors over a SMBus/I²C bus.
//
// Readings are compensated with the factory calibration stored on the
// device, using the floating point formulas of the datasheet:
//
//	https://www.bosch-sensortec.com/media/boschsensortec/downloads/datasheets/bst-bme280-ds002.pdf
//
// Temperatures are reported in degrees Celsius, pressures in Pascal and
// humidities in percent. Fahrenheit, InHg and HPa convert for display.
//
// A Device is not safe for concurrent use.
package bme280

import (
	"io"

	"github.com/d2r2/go-logger"
	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
	"periph.io/x/conn/v3/physic"
)

var lg = logger.NewPackageLogger("bme280", logger.InfoLevel)

// Device is a handle to a BME280 device
type Device struct {
	bus   Bus
	mode  OpMode
	calib Calibration
}

// Open loads the calibration of the BME280 device reachable through bus
// and switches it to normal mode.
// Readings use mode as the oversampling of all three channels.
func Open(bus Bus, mode OpMode) (*Device, error) {
	if !mode.valid() {
		return nil, errors.Wrapf(ErrInvalidMode, "mode=%d", mode)
	}

	calib, err := LoadCalibration(bus)
	if err != nil {
		return nil, errors.Wrap(err, "bme280: could not load calibration")
	}
	lg.Debugf("calibration: %s", spew.Sdump(calib))

	err = writeReg(bus, regControl, ctrlNormalMaxOversampling)
	if err != nil {
		return nil, errors.Wrap(err, "bme280: could not set operating mode")
	}

	return &Device{
		bus:   bus,
		mode:  mode,
		calib: calib,
	}, nil
}

// Close closes the underlying bus, if it is an io.Closer.
func (dev *Device) Close() error {
	if c, ok := dev.bus.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// Mode returns the oversampling mode chosen at Open.
func (dev *Device) Mode() OpMode { return dev.mode }

// Calibration returns a copy of the device calibration.
func (dev *Device) Calibration() Calibration { return dev.calib }

// ChipID returns the chip identifier and version registers.
// A BME280 reports ChipID.
func (dev *Device) ChipID() (id, version uint8, err error) {
	id, err = readReg(dev.bus, regChipID)
	if err != nil {
		return 0, 0, err
	}
	version, err = readReg(dev.bus, regVersion)
	if err != nil {
		return 0, 0, err
	}
	return id, version, nil
}

// ReadTemperature runs a conversion and returns the temperature in degrees Celsius.
func (dev *Device) ReadTemperature() (float64, error) {
	tfine, err := dev.tfine()
	if err != nil {
		return 0, err
	}
	return Temperature(tfine), nil
}

// ReadPressure runs a conversion and returns the pressure in Pascal.
func (dev *Device) ReadPressure() (float64, error) {
	tfine, err := dev.tfine()
	if err != nil {
		return 0, err
	}
	raw, err := dev.rawP()
	if err != nil {
		return 0, err
	}
	return Pressure(raw, tfine, dev.calib.P), nil
}

// ReadHumidity runs a conversion and returns the relative humidity in percent.
func (dev *Device) ReadHumidity() (float64, error) {
	tfine, err := dev.tfine()
	if err != nil {
		return 0, err
	}
	raw, err := dev.rawH()
	if err != nil {
		return 0, err
	}
	return Humidity(raw, tfine, dev.calib.H), nil
}

// Sample returns the (compensated) Humidity, Pressure and Temperature data
// off the device, all taken from a single conversion.
func (dev *Device) Sample() (h, p, t float64, err error) {
	rt, err := dev.rawT()
	if err != nil {
		return 0, 0, 0, err
	}
	rp, err := dev.rawP()
	if err != nil {
		return 0, 0, 0, err
	}
	rh, err := dev.rawH()
	if err != nil {
		return 0, 0, 0, err
	}

	tfine := TFine(rt, dev.calib.T)
	h = Humidity(rh, tfine, dev.calib.H)
	p = Pressure(rp, tfine, dev.calib.P)
	t = Temperature(tfine)
	return h, p, t, nil
}

// Sense fills e with a Sample.
func (dev *Device) Sense(e *physic.Env) error {
	h, p, t, err := dev.Sample()
	if err != nil {
		return err
	}
	toEnv(e, t, p, h)
	return nil
}

func (dev *Device) tfine() (float64, error) {
	raw, err := dev.rawT()
	if err != nil {
		return 0, err
	}
	tfine := TFine(raw, dev.calib.T)
	lg.Debugf("t_fine: %v", tfine)
	return tfine, nil
}
