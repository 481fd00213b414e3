// Copyright 2017 The go-daq Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bme280

// Compensation formulas, in double precision, from section 8.1 of the
// BME280 datasheet (BST-BME280-DS002).

// TFine returns the fine temperature shared by all three compensations.
func TFine(raw int32, c CalibT) float64 {
	t1 := float64(c.T1)
	t2 := float64(c.T2)
	t3 := float64(c.T3)
	adc := float64(raw)
	v1 := (adc/16384.0 - t1/1024.0) * t2
	v2 := ((adc/131072.0 - t1/8192.0) * (adc/131072.0 - t1/8192.0)) * t3
	return v1 + v2
}

// Temperature returns the temperature in degrees Celsius.
func Temperature(tfine float64) float64 {
	return tfine / 5120.0
}

// Pressure returns the pressure in Pascal.
//
// A degenerate calibration that zeroes the divisor yields 0.
func Pressure(raw int32, tfine float64, c CalibP) float64 {
	p1 := float64(c.P1)
	p2 := float64(c.P2)
	p3 := float64(c.P3)
	p4 := float64(c.P4)
	p5 := float64(c.P5)
	p6 := float64(c.P6)
	p7 := float64(c.P7)
	p8 := float64(c.P8)
	p9 := float64(c.P9)

	v1 := tfine/2.0 - 64000.0
	v2 := v1 * v1 * p6 / 32768.0
	v2 = v2 + v1*p5*2.0
	v2 = v2/4.0 + p4*65536.0
	v1 = (p3*v1*v1/524288.0 + p2*v1) / 524288.0
	v1 = (1.0 + v1/32768.0) * p1
	if v1 == 0 {
		return 0
	}

	p := 1048576.0 - float64(raw)
	p = ((p - v2/4096.0) * 6250.0) / v1
	v1 = p9 * p * p / 2147483648.0
	v2 = p * p8 / 32768.0
	return p + (v1+v2+p7)/16.0
}

// Humidity returns the relative humidity in percent, within [0, 100].
func Humidity(raw int32, tfine float64, c CalibH) float64 {
	h1 := float64(c.H1)
	h2 := float64(c.H2)
	h3 := float64(c.H3)
	h4 := float64(c.H4)
	h5 := float64(c.H5)
	h6 := float64(c.H6)

	h := tfine - 76800.0
	v := (float64(raw) - (h4*64.0 + h5/16384.0*h)) *
		(h2 / 65536.0 * (1.0 + h6/67108864.0*h*(1.0+h3/67108864.0*h)))
	v = v * (1.0 - h1*v/524288.0)
	switch {
	case v > 100:
		v = 100
	case v < 0:
		v = 0
	}
	return v
}
