// Copyright 2025 The Spright Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tomlx provides the TOML instantiation of the [iox] file
// saving and loading functions.
package tomlx

import (
	"io"
	"io/fs"

	"github.com/pelletier/go-toml/v2"
	"github.com/sprightkit/spright/base/iox"
)

// Open reads the given value from the given TOML file.
func Open(v any, filename string) error {
	return iox.Open(v, filename, iox.NewDecoderFunc(toml.NewDecoder))
}

// OpenFS reads the given value from the given TOML file in the filesystem fsys.
func OpenFS(v any, fsys fs.FS, filename string) error {
	return iox.OpenFS(v, fsys, filename, iox.NewDecoderFunc(toml.NewDecoder))
}

// Read reads the given value from the given reader as TOML.
func Read(v any, reader io.Reader) error {
	return iox.Read(v, reader, iox.NewDecoderFunc(toml.NewDecoder))
}

// ReadBytes reads the given value from the given TOML bytes.
func ReadBytes(v any, data []byte) error {
	return iox.ReadBytes(v, data, iox.NewDecoderFunc(toml.NewDecoder))
}

// Save writes the given value to the given TOML file.
func Save(v any, filename string) error {
	return iox.Save(v, filename, iox.NewEncoderFunc(toml.NewEncoder))
}

// Write writes the given value to the given writer as TOML.
func Write(v any, writer io.Writer) error {
	return iox.Write(v, writer, iox.NewEncoderFunc(toml.NewEncoder))
}

// WriteBytes writes the given value as TOML bytes.
func WriteBytes(v any) ([]byte, error) {
	return iox.WriteBytes(v, iox.NewEncoderFunc(toml.NewEncoder))
}
