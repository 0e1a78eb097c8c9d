// Copyright 2025 The Spright Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sprite

import (
	"fmt"

	"github.com/sprightkit/spright/math32"
)

// Anchor determines the position of a sprite relative to its bounds:
// the named point of the content is placed at the sprite's origin.
type Anchor int32

const (
	TopLeft Anchor = iota
	TopCenter
	TopRight
	MiddleLeft
	MiddleCenter
	MiddleRight
	BottomLeft
	BottomCenter
	BottomRight

	// AnchorN is the number of anchors.
	AnchorN
)

var anchorNames = [AnchorN]string{
	"TopLeft", "TopCenter", "TopRight",
	"MiddleLeft", "MiddleCenter", "MiddleRight",
	"BottomLeft", "BottomCenter", "BottomRight",
}

func (a Anchor) String() string {
	if a < 0 || a >= AnchorN {
		return fmt.Sprintf("Anchor(%d)", int32(a))
	}
	return anchorNames[a]
}

// SetString sets the anchor from its string representation,
// returning an error if the string is not recognized.
func (a *Anchor) SetString(s string) error {
	for i, nm := range anchorNames {
		if nm == s {
			*a = Anchor(i)
			return nil
		}
	}
	return fmt.Errorf("sprite.Anchor: invalid value %q", s)
}

// MarshalText implements [encoding.TextMarshaler].
func (a Anchor) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (a *Anchor) UnmarshalText(text []byte) error {
	return a.SetString(string(text))
}

// AnchorOffset returns the translation that moves content of the
// given width and height so that its anchor point lands at the
// origin: TopLeft yields (0, 0), MiddleCenter yields
// (-width/2, -height/2), and BottomRight yields (-width, -height).
func AnchorOffset(anchor Anchor, width, height float32) math32.Vector2 {
	offset := math32.Vector2{}
	switch anchor {
	case TopLeft, MiddleLeft, BottomLeft:
		offset.X = 0
	case TopCenter, MiddleCenter, BottomCenter:
		offset.X = -width / 2
	case TopRight, MiddleRight, BottomRight:
		offset.X = -width
	}
	switch anchor {
	case TopLeft, TopCenter, TopRight:
		offset.Y = 0
	case MiddleLeft, MiddleCenter, MiddleRight:
		offset.Y = -height / 2
	case BottomLeft, BottomCenter, BottomRight:
		offset.Y = -height
	}
	return offset
}
