// Copyright 2017 The go-daq Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bme280

import (
	"math"

	"periph.io/x/conn/v3/physic"
)

// Device readings are in degrees Celsius, Pascal and percent of relative
// humidity. The helpers below convert them for display.

const pascalToInHg = 0.000295299830714

// Fahrenheit converts a temperature from degrees Celsius.
func Fahrenheit(celsius float64) float64 {
	return celsius*1.8 + 32
}

// InHg converts a pressure from Pascal to inches of mercury.
func InHg(pa float64) float64 {
	return pa * pascalToInHg
}

// HPa converts a pressure from Pascal to hectopascal.
func HPa(pa float64) float64 {
	return pa / 100
}

// toEnv converts readings to periph's fixed point units.
func toEnv(e *physic.Env, celsius, pa, rh float64) {
	e.Temperature = physic.Temperature(math.Round(celsius*1000))*physic.MilliKelvin + physic.ZeroCelsius
	e.Pressure = physic.Pressure(math.Round(pa * 1000)) * physic.MilliPascal
	e.Humidity = physic.RelativeHumidity(math.Round(rh * float64(physic.PercentRH)))
}
