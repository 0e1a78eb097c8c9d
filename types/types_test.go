// Copyright 2025 The Spright Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type testData struct {
	Name  string
	Count int
}

func TestRegistry(t *testing.T) {
	tp := AddType(&Type{Name: "github.com/sprightkit/spright/types.testData", IDName: "test-data", Instance: &testData{}})
	assert.NotZero(t, tp.ID)

	assert.Equal(t, tp, TypeByName("github.com/sprightkit/spright/types.testData"))
	assert.Nil(t, TypeByName("types.noSuchType"))

	_, err := TypeByNameTry("types.noSuchType")
	assert.Error(t, err)

	// duplicate registration keeps the first entry
	dup := AddType(&Type{Name: "github.com/sprightkit/spright/types.testData", Instance: &testData{}})
	assert.Equal(t, tp, dup)

	nv := NewOfType(tp)
	td, ok := nv.(*testData)
	assert.True(t, ok)
	assert.Equal(t, &testData{}, td)

	assert.Equal(t, "github.com/sprightkit/spright/types.testData", TypeNameValue(&testData{}))
	assert.Equal(t, "github.com/sprightkit/spright/types.testData", TypeNameValue(testData{}))
}
