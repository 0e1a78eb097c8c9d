// Copyright 2025 The Spright Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sprite

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"image/color"

	"github.com/sprightkit/spright/resource"
)

// MaterialType is the type of material used for rendering a sprite.
type MaterialType int32

const (
	// Text is the material for rendering text glyphs.
	Text MaterialType = iota

	// Image is the material for rendering opaque images.
	Image

	// ImageAlpha is the material for rendering images with alpha blending.
	ImageAlpha

	// MaterialTypeN is the number of material types.
	MaterialTypeN
)

var materialTypeNames = [MaterialTypeN]string{"Text", "Image", "ImageAlpha"}

func (mt MaterialType) String() string {
	if mt < 0 || mt >= MaterialTypeN {
		return fmt.Sprintf("MaterialType(%d)", int32(mt))
	}
	return materialTypeNames[mt]
}

// SetString sets the material type from its string representation,
// returning an error if the string is not recognized.
func (mt *MaterialType) SetString(s string) error {
	for i, nm := range materialTypeNames {
		if nm == s {
			*mt = MaterialType(i)
			return nil
		}
	}
	return fmt.Errorf("sprite.MaterialType: invalid value %q", s)
}

// MarshalText implements [encoding.TextMarshaler].
func (mt MaterialType) MarshalText() ([]byte, error) {
	return []byte(mt.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (mt *MaterialType) UnmarshalText(text []byte) error {
	return mt.SetString(string(text))
}

// MaterialInfo identifies the material variant used to render one
// group of sprite quads. It is a comparable value: two infos are the
// same material iff all fields are equal, and sprites with equal
// infos can be batched into the same draw call grouping.
type MaterialInfo struct {
	// Type is the material variant.
	Type MaterialType

	// GroupID allows differentiating otherwise identical materials
	// into separate batching groups.
	GroupID uint64

	// Texture is the handle of the texture rendered by the material.
	Texture resource.Handle

	// Tint is the color multiplied into the rendered output.
	Tint color.RGBA
}

// Hash returns a hash value describing the contents of the info,
// for use as a key in hash-based containers. Equal infos hash
// identically; any field difference changes the hashed bytes.
func (mi MaterialInfo) Hash() uint64 {
	h := fnv.New64a()
	var b [8]byte
	binary.LittleEndian.PutUint32(b[:4], uint32(mi.Type))
	h.Write(b[:4])
	binary.LittleEndian.PutUint64(b[:], mi.GroupID)
	h.Write(b[:])
	h.Write([]byte(mi.Texture))
	h.Write([]byte{mi.Tint.R, mi.Tint.G, mi.Tint.B, mi.Tint.A})
	return h.Sum64()
}
