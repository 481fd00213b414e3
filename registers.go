// Copyright 2017 The go-daq Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bme280

const (
	I2CAddr    uint8 = 0x77 // BME280 address with SDO pulled high
	I2CAddrAlt uint8 = 0x76 // BME280 address with SDO tied to ground

	ChipID uint8 = 0x60 // value of regChipID on a BME280
)

// Calibration ("trimming") registers.
const (
	regDigT1 uint8 = 0x88
	regDigT2 uint8 = 0x8A
	regDigT3 uint8 = 0x8C

	regDigP1 uint8 = 0x8E
	regDigP2 uint8 = 0x90
	regDigP3 uint8 = 0x92
	regDigP4 uint8 = 0x94
	regDigP5 uint8 = 0x96
	regDigP6 uint8 = 0x98
	regDigP7 uint8 = 0x9A
	regDigP8 uint8 = 0x9C
	regDigP9 uint8 = 0x9E

	regDigH1 uint8 = 0xA1
	regDigH2 uint8 = 0xE1
	regDigH3 uint8 = 0xE3
	regDigH4 uint8 = 0xE4 // H4[11:4]
	regDigH5 uint8 = 0xE5 // H5[3:0] in bits 7..4, H4[3:0] in bits 3..0
	regDigH6 uint8 = 0xE6 // H5[11:4]
	regDigH7 uint8 = 0xE7 // signed H6
)

// Identification and control registers.
const (
	regChipID    uint8 = 0xD0
	regVersion   uint8 = 0xD1
	regSoftReset uint8 = 0xE0

	regControlHum uint8 = 0xF2
	regControl    uint8 = 0xF4
	regConfig     uint8 = 0xF5
)

// Data registers. Each is the base of a big-endian run:
// 3 bytes for pressure and temperature, 2 bytes for humidity.
const (
	regPressureData uint8 = 0xF7
	regTempData     uint8 = 0xFA
	regHumidityData uint8 = 0xFD
)

// ctrlNormalMaxOversampling enables normal mode with x16 oversampling on
// pressure and temperature. Written once to regControl by Open.
const ctrlNormalMaxOversampling uint8 = 0x3F
