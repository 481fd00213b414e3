// Copyright 2017 The go-daq Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bme280

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrInvalidMode is returned by Open for an oversampling mode outside OpSample1..OpSample16.
	ErrInvalidMode = errors.New("bme280: invalid oversampling mode")
)

// BusError reports a failed register access on the underlying bus.
type BusError struct {
	Op  string // "read-byte", "read-word" or "write-byte"
	Reg uint8
	Err error
}

func (e *BusError) Error() string {
	return fmt.Sprintf("bme280: %s reg=0x%02X: %v", e.Op, e.Reg, e.Err)
}

func (e *BusError) Unwrap() error { return e.Err }

// Cause returns the transport error.
func (e *BusError) Cause() error { return e.Err }

// IsBusError reports whether err, or any error it wraps, is a *BusError.
func IsBusError(err error) bool {
	var be *BusError
	return errors.As(err, &be)
}
