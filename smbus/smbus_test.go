// Copyright 2017 The go-daq Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package smbus_test

import (
	"os/user"
	"path/filepath"
	"testing"

	"github.com/go-daq/bme280"
	"github.com/go-daq/bme280/smbus"
)

var _ bme280.Bus = (*smbus.Dev)(nil)

func TestOpenFileMissing(t *testing.T) {
	_, err := smbus.OpenFile(filepath.Join(t.TempDir(), "i2c-42"))
	if err == nil {
		t.Fatalf("expected an error")
	}
}

func TestOpen(t *testing.T) {
	usr, err := user.Current()
	if err != nil {
		t.Fatalf("os/user: %v", err)
	}

	if usr.Username != "root" {
		t.Skip("need root access")
	}

	c, err := smbus.Open(1)
	if err != nil {
		t.Skipf("no i2c bus: %v", err)
	}
	defer c.Close()

	dev := c.Dev(bme280.I2CAddr)
	id, err := dev.ReadReg(0xD0)
	if err != nil {
		t.Skipf("no device at 0x%02X: %v", dev.Addr(), err)
	}
	t.Logf("chip-id=0x%02X", id)
}
