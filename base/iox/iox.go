// Copyright 2025 The Spright Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package iox provides boilerplate wrapper functions for the io file
// saving and loading cycle, parameterized by the encoder and decoder
// used for a specific format. The jsonx, tomlx, and yamlx subpackages
// provide the instantiations for the formats used in this module.
package iox

import (
	"bufio"
	"bytes"
	"io"
	"io/fs"
	"os"
)

// Decoder is an interface for standard decoder types.
type Decoder interface {
	// Decode decodes from its input into the given value.
	Decode(v any) error
}

// DecoderFunc is a function that creates a new [Decoder] for the given reader.
type DecoderFunc func(r io.Reader) Decoder

// NewDecoderFunc returns a [DecoderFunc] for a specific decoder type.
func NewDecoderFunc[T Decoder](f func(r io.Reader) T) DecoderFunc {
	return func(r io.Reader) Decoder {
		return f(r)
	}
}

// Open reads the given value from the given filename, using the given [DecoderFunc].
func Open(v any, filename string, f DecoderFunc) error {
	fp, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer fp.Close()
	return Read(v, bufio.NewReader(fp), f)
}

// OpenFS reads the given value from the given filename, using the given
// [DecoderFunc], in the filesystem fsys.
func OpenFS(v any, fsys fs.FS, filename string, f DecoderFunc) error {
	fp, err := fsys.Open(filename)
	if err != nil {
		return err
	}
	defer fp.Close()
	return Read(v, bufio.NewReader(fp), f)
}

// Read reads the given value from the given reader, using the given [DecoderFunc].
func Read(v any, reader io.Reader, f DecoderFunc) error {
	d := f(reader)
	return d.Decode(v)
}

// ReadBytes reads the given value from the given bytes, using the given [DecoderFunc].
func ReadBytes(v any, data []byte, f DecoderFunc) error {
	return Read(v, bytes.NewBuffer(data), f)
}

// Encoder is an interface for standard encoder types.
type Encoder interface {
	// Encode encodes the given value to its output.
	Encode(v any) error
}

// EncoderFunc is a function that creates a new [Encoder] for the given writer.
type EncoderFunc func(w io.Writer) Encoder

// NewEncoderFunc returns an [EncoderFunc] for a specific encoder type.
func NewEncoderFunc[T Encoder](f func(w io.Writer) T) EncoderFunc {
	return func(w io.Writer) Encoder {
		return f(w)
	}
}

// Save writes the given value to the given filename, using the given [EncoderFunc].
func Save(v any, filename string, f EncoderFunc) error {
	fp, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer fp.Close()
	bw := bufio.NewWriter(fp)
	err = Write(v, bw, f)
	if err != nil {
		return err
	}
	return bw.Flush()
}

// Write writes the given value to the given writer, using the given [EncoderFunc].
func Write(v any, writer io.Writer, f EncoderFunc) error {
	e := f(writer)
	return e.Encode(v)
}

// WriteBytes writes the given value to bytes, using the given [EncoderFunc].
func WriteBytes(v any, f EncoderFunc) ([]byte, error) {
	var b bytes.Buffer
	e := f(&b)
	err := e.Encode(v)
	if err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}
