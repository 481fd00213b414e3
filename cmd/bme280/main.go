// Copyright 2017 The go-daq Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command bme280 prints one set of readings off a BME280 device.
//
// Usage:
//
//	bme280 [-bus 1] [-addr 0x77] [-driver smbus|periph|goi2c] [-mode 1] [-unit metric|imperial] [-cal] [-v]
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/d2r2/go-logger"
	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"

	"github.com/go-daq/bme280"
	"github.com/go-daq/bme280/goi2cbus"
	"github.com/go-daq/bme280/periphbus"
	"github.com/go-daq/bme280/smbus"
)

var lg = logger.NewPackageLogger("main", logger.InfoLevel)

func main() {
	os.Exit(run())
}

func run() int {
	defer logger.FinalizeLogger()

	var (
		busID   = flag.String("bus", "1", "i2c bus number (periph: bus name, empty for the first one)")
		addr    = flag.String("addr", "0x77", "7-bit address of the device")
		driver  = flag.String("driver", "smbus", "bus driver: smbus, periph or goi2c")
		mode    = flag.Uint("mode", uint(bme280.OpSample1), "oversampling mode (1..5)")
		unit    = flag.String("unit", "metric", "display units: metric or imperial")
		cal     = flag.Bool("cal", false, "dump the factory calibration")
		verbose = flag.Bool("v", false, "enable debug output")
	)
	flag.Parse()

	if !*verbose {
		_ = logger.ChangePackageLogLevel("i2c", logger.InfoLevel)
	} else {
		_ = logger.ChangePackageLogLevel("bme280", logger.DebugLevel)
		_ = logger.ChangePackageLogLevel("main", logger.DebugLevel)
	}

	a, err := strconv.ParseUint(*addr, 0, 7)
	if err != nil {
		lg.Errorf("invalid address %q: %v", *addr, err)
		return 2
	}

	bus, err := openBus(*driver, *busID, uint8(a))
	if err != nil {
		lg.Errorf("%v", err)
		return 1
	}

	dev, err := bme280.Open(bus, bme280.OpMode(*mode))
	if err != nil {
		lg.Errorf("%v", err)
		_ = closeBus(bus)
		return 1
	}
	defer dev.Close()

	if id, version, err := dev.ChipID(); err == nil {
		lg.Debugf("chip-id=0x%02X version=0x%02X", id, version)
		if id != bme280.ChipID {
			lg.Infof("unexpected chip-id 0x%02X (want 0x%02X)", id, bme280.ChipID)
		}
	}

	if *cal {
		fmt.Println(dev.Calibration())
		lg.Debugf("%s", spew.Sdump(dev.Calibration()))
	}

	t, err := dev.ReadTemperature()
	if err != nil {
		lg.Errorf("could not read temperature: %v", err)
		return 1
	}
	p, err := dev.ReadPressure()
	if err != nil {
		lg.Errorf("could not read pressure: %v", err)
		return 1
	}
	h, err := dev.ReadHumidity()
	if err != nil {
		lg.Errorf("could not read humidity: %v", err)
		return 1
	}

	switch *unit {
	case "imperial":
		fmt.Printf("Temperature = %.2f °F\n", bme280.Fahrenheit(t))
		fmt.Printf("Pressure    = %.2f inHg\n", bme280.InHg(p))
	default:
		fmt.Printf("Temperature = %.2f °C\n", t)
		fmt.Printf("Pressure    = %.2f hPa\n", bme280.HPa(p))
	}
	fmt.Printf("Humidity    = %.2f %%\n", h)
	return 0
}

func openBus(driver, id string, addr uint8) (bme280.Bus, error) {
	switch driver {
	case "smbus":
		n, err := strconv.Atoi(id)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid bus number %q", id)
		}
		conn, err := smbus.Open(n)
		if err != nil {
			return nil, err
		}
		return conn.Dev(addr), nil
	case "periph":
		dev, err := periphbus.Open(id, uint16(addr))
		if err != nil {
			return nil, err
		}
		return dev, nil
	case "goi2c":
		n, err := strconv.Atoi(id)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid bus number %q", id)
		}
		dev, err := goi2cbus.Open(n, addr)
		if err != nil {
			return nil, err
		}
		return dev, nil
	default:
		return nil, errors.Errorf("unknown driver %q", driver)
	}
}

func closeBus(bus bme280.Bus) error {
	if c, ok := bus.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}
