// Copyright 2017 The go-daq Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bme280

import (
	"math"
	"testing"
)

const (
	refRawT int32 = 530656 // bytes 129, 142, 0
	refRawP int32 = 380279 // bytes 92, 215, 112
	refRawH int32 = 28575  // bytes 111, 159
)

func TestTFineDeterministic(t *testing.T) {
	v1 := TFine(refRawT, refCalib.T)
	for i := 0; i < 10; i++ {
		v2 := TFine(refRawT, refCalib.T)
		if math.Float64bits(v1) != math.Float64bits(v2) {
			t.Fatalf("t_fine not deterministic: %v != %v", v1, v2)
		}
		if math.Float64bits(Temperature(v1)) != math.Float64bits(Temperature(v2)) {
			t.Fatalf("temperature not deterministic")
		}
	}
	if math.Abs(v1-116352.445) > 1e-3 {
		t.Fatalf("invalid t_fine: %v", v1)
	}
}

func TestCompensation(t *testing.T) {
	tfine := TFine(refRawT, refCalib.T)
	for _, tc := range []struct {
		name string
		got  float64
		want float64
		tol  float64
	}{
		{"celsius", Temperature(tfine), 22.725, 0.001},
		{"fahrenheit", Fahrenheit(Temperature(tfine)), 72.91, 0.01},
		{"pascal", Pressure(refRawP, tfine, refCalib.P), 102281.47, 0.01},
		{"inhg", InHg(Pressure(refRawP, tfine, refCalib.P)), 30.20, 0.01},
		{"hpa", HPa(Pressure(refRawP, tfine, refCalib.P)), 1022.81, 0.01},
		{"humidity", Humidity(refRawH, tfine, refCalib.H), 75.0, 0.01},
	} {
		t.Run(tc.name, func(t *testing.T) {
			if math.Abs(tc.got-tc.want) > tc.tol {
				t.Fatalf("got %v, want %v±%v", tc.got, tc.want, tc.tol)
			}
		})
	}
}

func TestPressureZeroDivisor(t *testing.T) {
	for _, c := range []CalibP{
		{},
		{P1: 0, P2: -10713, P3: 3024, P4: 5831, P5: 96, P6: -7, P7: 9900, P8: -10230, P9: 4285},
		{P1: 0, P2: 32767, P3: -32768, P4: 1, P5: -1, P6: 100, P7: -100, P8: 32767, P9: -32768},
	} {
		for _, raw := range []int32{0, refRawP, 1<<20 - 1} {
			got := Pressure(raw, TFine(refRawT, refCalib.T), c)
			if got != 0 {
				t.Fatalf("calib=%+v raw=%d: got %v, want 0", c, raw, got)
			}
		}
	}
}

func TestHumidityClamp(t *testing.T) {
	tfine := TFine(refRawT, refCalib.T)

	high := refCalib.H
	high.H4 = 0
	if got := Humidity(refRawH, tfine, high); got != 100 {
		t.Fatalf("got %v, want 100", got)
	}
	if got := Humidity(0, tfine, refCalib.H); got != 0 {
		t.Fatalf("got %v, want 0", got)
	}

	calibs := []CalibH{
		refCalib.H,
		{H1: 255, H2: 32767, H3: 255, H4: 2047, H5: 2047, H6: 127},
		{H1: 1, H2: -32768, H3: 0, H4: -2048, H5: -2048, H6: -128},
		{H1: 0, H2: 1, H3: 0, H4: 0, H5: 0, H6: 0},
	}
	for _, c := range calibs {
		for _, tf := range []float64{-50000, 0, tfine, 250000} {
			for raw := int32(0); raw <= 0xFFFF; raw += 257 {
				h := Humidity(raw, tf, c)
				if h < 0 || h > 100 || math.IsNaN(h) {
					t.Fatalf("calib=%+v t_fine=%v raw=%d: humidity %v out of range", c, tf, raw, h)
				}
			}
		}
	}
}
