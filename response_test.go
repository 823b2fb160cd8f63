// Copyright 2026 The restpath Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package restpath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponse_Text(t *testing.T) {
	r := &Response{Body: []byte("hello")}
	assert.Equal(t, "hello", r.Text())
	assert.Empty(t, (&Response{}).Text())
}

func TestResponse_JSON(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		r := &Response{Body: []byte(`{"foo": "bar", "nested": {"n": 1}}`)}
		var v map[string]interface{}
		require.NoError(t, r.JSON(&v))
		assert.Equal(t, "bar", v["foo"])
		assert.Equal(t, map[string]interface{}{"n": float64(1)}, v["nested"])
	})
	t.Run("invalid", func(t *testing.T) {
		r := &Response{Body: []byte("not json")}
		var v map[string]interface{}
		assert.Error(t, r.JSON(&v))
	})
}
