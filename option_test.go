// Copyright 2026 The restpath Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package restpath

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDataMode_String(t *testing.T) {
	assert.Equal(t, "FORM", ModeForm.String())
	assert.Equal(t, "JSON", ModeJSON.String())
	assert.Equal(t, "UNKNOWN", DataMode(42).String())
}

func TestApplyOptions(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		o := applyOptions(nil)
		assert.False(t, o.hasData)
		assert.False(t, o.hasHeaders)
		assert.False(t, o.hasSuffix)
		assert.False(t, o.hasPath)
		assert.Equal(t, ModeForm, o.mode)
	})
	t.Run("explicit nil data is provided", func(t *testing.T) {
		o := applyOptions([]Option{Data(nil)})
		assert.True(t, o.hasData)
		assert.Nil(t, o.data)
	})
	t.Run("explicit empty suffix is provided", func(t *testing.T) {
		o := applyOptions([]Option{Suffix("")})
		assert.True(t, o.hasSuffix)
		assert.Empty(t, o.suffix)
	})
	t.Run("JSON is data plus mode", func(t *testing.T) {
		o := applyOptions([]Option{JSON(map[string]string{"a": "b"})})
		assert.True(t, o.hasData)
		assert.Equal(t, ModeJSON, o.mode)
	})
	t.Run("mode does not imply data", func(t *testing.T) {
		o := applyOptions([]Option{Mode(ModeJSON)})
		assert.False(t, o.hasData)
		assert.Equal(t, ModeJSON, o.mode)
	})
	t.Run("headers", func(t *testing.T) {
		h := http.Header{"X": {"y"}}
		o := applyOptions([]Option{Headers(h)})
		assert.True(t, o.hasHeaders)
		assert.Equal(t, h, o.headers)
	})
	t.Run("path", func(t *testing.T) {
		o := applyOptions([]Option{Path("/p")})
		assert.True(t, o.hasPath)
		assert.Equal(t, "/p", o.path)
	})
}
