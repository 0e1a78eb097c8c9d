// Copyright 2025 The Spright Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package types provides the central type registry used for
// polymorphic persistence of resource data: each serializable type
// registers itself once, and files carry the registered type name so
// that loading can construct a value of the correct concrete type.
package types

import (
	"fmt"
	"log/slog"
	"reflect"
	"sync/atomic"
)

// Type represents a registered type.
type Type struct {
	// Name is the fully package-path-qualified name of the type
	// (e.g., github.com/sprightkit/spright/resource.SavedData).
	Name string

	// IDName is the short, package-unqualified, kebab-case name of
	// the type that is suitable for use in an ID (e.g., saved-data).
	IDName string

	// Doc has the documentation for the type.
	Doc string

	// Instance is an instance of the type (a pointer to the zero
	// value), used to construct new values via reflection.
	Instance any

	// ID is the unique type ID number.
	ID uint64
}

func (tp *Type) String() string {
	return tp.Name
}

// ReflectType returns the [reflect.Type] for this type, using the Instance.
func (tp *Type) ReflectType() reflect.Type {
	if tp.Instance == nil {
		return nil
	}
	return reflect.TypeOf(tp.Instance).Elem()
}

var (
	// Types records all registered types (i.e., a type registry).
	// The key is the long type name: package_url.Type, e.g.,
	// github.com/sprightkit/spright/resource.SavedData.
	Types = map[string]*Type{}

	// typeIDCounter is an atomically incremented uint64 used
	// for assigning new [Type.ID] numbers.
	typeIDCounter uint64
)

// TypeByName returns a [Type] by name (package_url.Type), or nil if
// not found.
func TypeByName(nm string) *Type {
	tp, ok := Types[nm]
	if !ok {
		return nil
	}
	return tp
}

// TypeByNameTry returns a [Type] by name (package_url.Type), or an
// error if it is not found.
func TypeByNameTry(nm string) (*Type, error) {
	tp, ok := Types[nm]
	if !ok {
		return nil, fmt.Errorf("type %q not found", nm)
	}
	return tp, nil
}

// AddType adds a constructed [Type] to the registry and returns it.
// This sets the ID. A duplicate registration keeps the first entry.
func AddType(tp *Type) *Type {
	if ep, has := Types[tp.Name]; has {
		slog.Debug("types.AddType: Type already exists", "Type.Name", tp.Name)
		return ep
	}
	tp.ID = atomic.AddUint64(&typeIDCounter, 1)
	Types[tp.Name] = tp
	return tp
}

// NewOfType returns a new pointer value of the given [Type], using
// its Instance to determine the concrete type.
func NewOfType(tp *Type) any {
	rt := tp.ReflectType()
	if rt == nil {
		return nil
	}
	return reflect.New(rt).Interface()
}

// TypeName returns the long, full package-path-qualified name of the
// given type, as used for registry keys.
func TypeName(typ reflect.Type) string {
	return typ.PkgPath() + "." + typ.Name()
}

// TypeNameValue returns the long type name of the value's underlying
// (non-pointer) type.
func TypeNameValue(v any) string {
	typ := reflect.TypeOf(v)
	for typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}
	return TypeName(typ)
}
