// Copyright 2025 The Spright Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package resource

import "github.com/sprightkit/spright/types"

// Compression method identifiers carried in [SavedData].
// The codecs themselves belong to the external streaming system.
const (
	CompressionNone uint32 = 0
)

// SavedData is the metadata persisted alongside a saved resource:
// the resources it depends on, whether it may be loaded
// asynchronously, and how its data stream is compressed.
type SavedData struct {
	// Dependencies are the identifiers of the resources that the
	// saved resource depends on, in load order.
	Dependencies []string

	// AllowAsync is whether the resource is allowed to be loaded
	// asynchronously.
	AllowAsync bool

	// CompressionMethod identifies the compression applied to the
	// resource data stream.
	CompressionMethod uint32
}

// SavedDataType is the [types.Type] registry entry for [SavedData].
var SavedDataType = types.AddType(&types.Type{
	Name:     "github.com/sprightkit/spright/resource.SavedData",
	IDName:   "saved-data",
	Doc:      "SavedData is the metadata persisted alongside a saved resource.",
	Instance: &SavedData{},
})

// NewSavedData returns a new [SavedData] with the given dependency
// identifiers, async-load permission, and compression method.
func NewSavedData(dependencies []string, allowAsync bool, compressionMethod uint32) *SavedData {
	return &SavedData{Dependencies: dependencies, AllowAsync: allowAsync, CompressionMethod: compressionMethod}
}

// NewDefaultSavedData returns a new [SavedData] with no dependencies,
// asynchronous loading allowed, and no compression.
func NewDefaultSavedData() *SavedData {
	return &SavedData{AllowAsync: true, CompressionMethod: CompressionNone}
}

// TypeName implements [Data].
func (sd *SavedData) TypeName() string {
	return SavedDataType.Name
}
