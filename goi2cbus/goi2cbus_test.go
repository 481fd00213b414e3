// Copyright 2017 The go-daq Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package goi2cbus

import (
	"testing"

	"github.com/pkg/errors"

	"github.com/go-daq/bme280"
)

var _ bme280.Bus = (*Dev)(nil)

type regs struct {
	mem    [256]byte
	fail   error
	closed bool
}

func (r *regs) ReadRegU8(reg byte) (byte, error) {
	if r.fail != nil {
		return 0, r.fail
	}
	return r.mem[reg], nil
}

func (r *regs) ReadRegU16LE(reg byte) (uint16, error) {
	if r.fail != nil {
		return 0, r.fail
	}
	return uint16(r.mem[reg]) | uint16(r.mem[reg+1])<<8, nil
}

func (r *regs) WriteRegU8(reg byte, value byte) error {
	if r.fail != nil {
		return r.fail
	}
	r.mem[reg] = value
	return nil
}

func (r *regs) Close() error {
	r.closed = true
	return nil
}

func TestDev(t *testing.T) {
	r := &regs{}
	r.mem[0x88] = 0x20
	r.mem[0x89] = 0x71
	dev := New(r)

	w, err := dev.ReadWord(0x88)
	if err != nil {
		t.Fatalf("read-word error: %v", err)
	}
	if w != 28960 {
		t.Fatalf("got word=%d, want 28960", w)
	}

	err = dev.WriteReg(0xF4, 0x3F)
	if err != nil {
		t.Fatalf("write-reg error: %v", err)
	}
	v, err := dev.ReadReg(0xF4)
	if err != nil {
		t.Fatalf("read-reg error: %v", err)
	}
	if v != 0x3F {
		t.Fatalf("got 0x%02X, want 0x3F", v)
	}

	if err := dev.Close(); err != nil || !r.closed {
		t.Fatalf("close error: %v", err)
	}
}

func TestBusError(t *testing.T) {
	cause := errors.New("remote I/O error")
	_, err := bme280.Open(New(&regs{fail: cause}), bme280.OpSample1)
	if !bme280.IsBusError(err) || errors.Cause(err) != cause {
		t.Fatalf("invalid error: %v", err)
	}
}
