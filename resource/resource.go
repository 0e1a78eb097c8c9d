// Copyright 2025 The Spright Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package resource provides the persistence metadata types for saved
// engine resources, and their polymorphic serialization through the
// central [types] registry. The resource streaming system itself
// (loading, compression codecs, texture management) is an external
// collaborator; this package only carries the data.
package resource

// Handle is an opaque identifier referencing a shared resource
// (such as a texture) managed by an external resource system.
type Handle string

// IsNil returns whether the handle references no resource.
func (h Handle) IsNil() bool {
	return h == ""
}

func (h Handle) String() string {
	return string(h)
}

// Data is the interface implemented by all persistable resource data
// types. Implementations register themselves in the [types] registry
// so that [Open] can reconstruct the concrete type named in a file.
type Data interface {
	// TypeName returns the long type name under which this type is
	// registered in the [types] registry, used as the on-disk type tag.
	TypeName() string
}
