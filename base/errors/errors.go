// Copyright 2025 The Spright Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package errors provides a set of error handling helpers,
// extending the standard library errors package.
package errors

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime"
)

// As is [errors.As].
func As(err error, target any) bool {
	return errors.As(err, target)
}

// Is is [errors.Is].
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// Join is [errors.Join].
func Join(errs ...error) error {
	return errors.Join(errs...)
}

// New is [errors.New].
func New(text string) error {
	return errors.New(text)
}

// Unwrap is [errors.Unwrap].
func Unwrap(err error) error {
	return errors.Unwrap(err)
}

// CallerInfo returns string information about the caller
// of the function that called CallerInfo.
func CallerInfo() string {
	pc, file, line, _ := runtime.Caller(2)
	return fmt.Sprintf("%s (%s:%d)", runtime.FuncForPC(pc).Name(), file, line)
}

// Log takes the given error and logs it if it is non-nil,
// adding information about the caller. It returns the error
// unmodified, so that it can be used in line with a return.
func Log(err error) error {
	if err != nil {
		slog.Error(err.Error() + " | " + CallerInfo())
	}
	return err
}

// Log1 can be used when a function returns a value and an error:
// it logs the error if it is non-nil, and returns the value.
func Log1[T any](v T, err error) T {
	if err != nil {
		slog.Error(err.Error() + " | " + CallerInfo())
	}
	return v
}

// Must panics if the given error is non-nil.
func Must(err error) {
	if err != nil {
		panic(err)
	}
}

// Must1 can be used when a function returns a value and an error:
// it panics if the error is non-nil, and returns the value.
func Must1[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// Ignore1 ignores an error return value for a function
// returning a value and an error.
func Ignore1[T any](v T, err error) T {
	return v
}
