// Copyright 2026 The restpath Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package restpath

import (
	"context"
	"net/url"
	"testing"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRetryTransport(t *testing.T) {
	t.Run("nil client gets a quiet default", func(t *testing.T) {
		tr := NewRetryTransport(nil)
		require.NotNil(t, tr)
		require.NotNil(t, tr.Client)
		assert.Nil(t, tr.Client.Logger)
	})
	t.Run("given client is kept", func(t *testing.T) {
		c := retryablehttp.NewClient()
		tr := NewRetryTransport(c)
		assert.Same(t, c, tr.Client)
	})
}

func TestRetryTransport_Get(t *testing.T) {
	tr := NewRetryTransport(nil)
	resp, err := tr.Get(context.Background(), httpServer.URL+"/echo/", nil, nil)
	require.NoError(t, err)
	e := decodeEcho(t, resp)
	assert.Equal(t, "GET", e.Method)
	assert.Equal(t, "/echo/", e.Path)
}

func TestRetryTransport_FormPayload(t *testing.T) {
	tr := NewRetryTransport(nil)
	body := &Payload{Form: url.Values{"foo": {"bar"}}}
	resp, err := tr.Post(context.Background(), httpServer.URL+"/f/", body, nil)
	require.NoError(t, err)
	e := decodeEcho(t, resp)
	assert.Equal(t, "application/x-www-form-urlencoded", e.ContentType)
	assert.Equal(t, "foo=bar", e.Body)
}

func TestRetryTransport_RawPayload(t *testing.T) {
	tr := NewRetryTransport(nil)
	body := &Payload{Raw: []byte(`{"foo": "bar"}`), ContentType: "application/json"}
	resp, err := tr.Put(context.Background(), httpServer.URL+"/j/", body, nil)
	require.NoError(t, err)
	e := decodeEcho(t, resp)
	assert.Equal(t, "PUT", e.Method)
	assert.Equal(t, "application/json", e.ContentType)
	assert.Equal(t, `{"foo": "bar"}`, e.Body)
}

func TestRetryTransport_CloseIdleConnections(t *testing.T) {
	tr := NewRetryTransport(nil)
	assert.NotPanics(t, tr.CloseIdleConnections)
}
