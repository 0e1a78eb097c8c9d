// Copyright 2025 The Spright Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package resource

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sprightkit/spright/base/errors"
	"github.com/sprightkit/spright/base/iox/jsonx"
	"github.com/sprightkit/spright/base/iox/tomlx"
	"github.com/sprightkit/spright/base/iox/yamlx"
	"github.com/sprightkit/spright/types"
)

// TypePrefix is the first thing output in a resource metadata file,
// specifying the registered type of the data that follows. It appears
// all on one { } bracketed line at the start of the file, and can
// also be used to identify a file as a resource metadata file.
var TypePrefix = []byte(`{"resource.Type": `)

// TypeSuffix is just the } and \n at the end of the type line.
var TypeSuffix = []byte("}\n")

// typeHeader returns the type tag line for the given data.
func typeHeader(d Data) []byte {
	return []byte(string(TypePrefix) + fmt.Sprintf("%q", d.TypeName()) + string(TypeSuffix))
}

// readTypeHeader reads the type tag line written by [Write],
// returning the registered [types.Type] for the saved type name
// (an error if it is missing or not registered) and the remaining
// bytes holding the encoded body.
func readTypeHeader(b []byte) (*types.Type, []byte, error) {
	if !bytes.HasPrefix(b, TypePrefix) {
		return nil, b, fmt.Errorf("resource: type tag not found at start of file")
	}
	stidx := len(TypePrefix)
	eidx := bytes.Index(b, TypeSuffix)
	if eidx < 0 {
		return nil, b, fmt.Errorf("resource: malformed type tag line")
	}
	bodyidx := eidx + len(TypeSuffix)
	tn := string(bytes.Trim(bytes.TrimSpace(b[stidx:eidx]), "\""))
	typ := types.TypeByName(tn)
	if typ == nil {
		return nil, b[bodyidx:], fmt.Errorf("resource: type %q not registered", tn)
	}
	return typ, b[bodyidx:], nil
}

// encodeBody encodes the data body in the format for the given
// file extension: .toml and .yaml / .yml select those formats,
// anything else is JSON.
func encodeBody(d Data, ext string) ([]byte, error) {
	switch strings.ToLower(ext) {
	case ".toml":
		return tomlx.WriteBytes(d)
	case ".yaml", ".yml":
		return yamlx.WriteBytes(d)
	default:
		return jsonx.WriteBytes(d)
	}
}

// decodeBody decodes the data body per [encodeBody].
func decodeBody(v any, data []byte, ext string) error {
	switch strings.ToLower(ext) {
	case ".toml":
		return tomlx.ReadBytes(v, data)
	case ".yaml", ".yml":
		return yamlx.ReadBytes(v, data)
	default:
		return jsonx.ReadBytes(v, data)
	}
}

// Write writes the given data to the given writer as JSON, preceded
// by the type tag line, so that [Read] can reconstruct a value of the
// proper concrete type.
func Write(d Data, writer io.Writer) error {
	_, err := writer.Write(typeHeader(d))
	if err != nil {
		return err
	}
	return jsonx.Write(d, writer)
}

// Read reads resource data written by [Write], using the type tag at
// the start to construct a value of the proper registered type.
func Read(reader io.Reader) (Data, error) {
	b, err := io.ReadAll(reader)
	if err != nil {
		return nil, err
	}
	return readData(b, ".json")
}

// Save writes the given data to the given file, preceded by the type
// tag line. The body format follows the file extension: .json (or
// anything unrecognized) is JSON, .toml is TOML, .yaml / .yml is YAML.
func Save(d Data, filename string) error {
	body, err := encodeBody(d, filepath.Ext(filename))
	if err != nil {
		return errors.Log(err)
	}
	fp, err := os.Create(filename)
	if err != nil {
		return errors.Log(err)
	}
	defer fp.Close()
	bw := bufio.NewWriter(fp)
	if _, err = bw.Write(typeHeader(d)); err != nil {
		return errors.Log(err)
	}
	if _, err = bw.Write(body); err != nil {
		return errors.Log(err)
	}
	return errors.Log(bw.Flush())
}

// Open reads resource data from the given file written by [Save],
// using the type tag at the start to construct a value of the proper
// registered type, and the file extension to select the body format.
func Open(filename string) (Data, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, errors.Log(err)
	}
	d, err := readData(b, filepath.Ext(filename))
	return d, errors.Log(err)
}

// readData decodes a type-tagged byte stream into a new value of the
// registered concrete type.
func readData(b []byte, ext string) (Data, error) {
	typ, body, err := readTypeHeader(b)
	if err != nil {
		return nil, err
	}
	nv := types.NewOfType(typ)
	d, ok := nv.(Data)
	if !ok {
		return nil, fmt.Errorf("resource: type %q does not implement resource.Data", typ.Name)
	}
	if err := decodeBody(d, body, ext); err != nil {
		return nil, err
	}
	return d, nil
}
