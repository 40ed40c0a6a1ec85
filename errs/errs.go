// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package errs holds the error classes shared by the flow and extraction models
package errs

import (
	"errors"
	"fmt"
)

// error classes; use errors.Is to test against them
var (
	ErrInvalidParameter = errors.New("invalid parameter")   // non-physical input
	ErrIntegration      = errors.New("integration failure") // ODE solver could not deliver a solution
	ErrTargetNotReached = errors.New("target not reached")  // target height never attained within tmax
	ErrDegenerate       = errors.New("degenerate state")    // quantity undefined while h ≈ 0
)

// Invalid returns an ErrInvalidParameter with a formatted message
func Invalid(msg string, prm ...interface{}) error {
	return wrap(ErrInvalidParameter, msg, prm...)
}

// Integration returns an ErrIntegration with a formatted message
func Integration(msg string, prm ...interface{}) error {
	return wrap(ErrIntegration, msg, prm...)
}

// NotReached returns an ErrTargetNotReached with a formatted message
func NotReached(msg string, prm ...interface{}) error {
	return wrap(ErrTargetNotReached, msg, prm...)
}

// Degenerate returns an ErrDegenerate with a formatted message
func Degenerate(msg string, prm ...interface{}) error {
	return wrap(ErrDegenerate, msg, prm...)
}

func wrap(class error, msg string, prm ...interface{}) error {
	return fmt.Errorf("%w: %s", class, fmt.Sprintf(msg, prm...))
}
