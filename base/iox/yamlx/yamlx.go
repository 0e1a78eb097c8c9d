// Copyright 2025 The Spright Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package yamlx provides the YAML instantiation of the [iox] file
// saving and loading functions.
package yamlx

import (
	"io"
	"io/fs"

	"github.com/sprightkit/spright/base/iox"
	"gopkg.in/yaml.v3"
)

// Open reads the given value from the given YAML file.
func Open(v any, filename string) error {
	return iox.Open(v, filename, iox.NewDecoderFunc(yaml.NewDecoder))
}

// OpenFS reads the given value from the given YAML file in the filesystem fsys.
func OpenFS(v any, fsys fs.FS, filename string) error {
	return iox.OpenFS(v, fsys, filename, iox.NewDecoderFunc(yaml.NewDecoder))
}

// Read reads the given value from the given reader as YAML.
func Read(v any, reader io.Reader) error {
	return iox.Read(v, reader, iox.NewDecoderFunc(yaml.NewDecoder))
}

// ReadBytes reads the given value from the given YAML bytes.
func ReadBytes(v any, data []byte) error {
	return iox.ReadBytes(v, data, iox.NewDecoderFunc(yaml.NewDecoder))
}

// Save writes the given value to the given YAML file.
func Save(v any, filename string) error {
	return iox.Save(v, filename, iox.NewEncoderFunc(yaml.NewEncoder))
}

// Write writes the given value to the given writer as YAML.
func Write(v any, writer io.Writer) error {
	return iox.Write(v, writer, iox.NewEncoderFunc(yaml.NewEncoder))
}

// WriteBytes writes the given value as YAML bytes.
func WriteBytes(v any) ([]byte, error) {
	return iox.WriteBytes(v, iox.NewEncoderFunc(yaml.NewEncoder))
}
