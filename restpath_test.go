// Copyright 2026 The restpath Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package restpath

import (
	"context"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// End-to-end tests: a real Connection against the echo server, through
// each bundled transport.

func echoConn(t *testing.T) *Connection {
	t.Helper()
	conn, err := New(httpServer.URL, NewHTTPTransport(nil))
	require.NoError(t, err)
	return conn
}

func TestEndToEnd_ChainToResponse(t *testing.T) {
	conn := echoConn(t)
	p := conn.Seg("foo").Seg("bar").Get()
	assert.Equal(t, "GET", p.Method)
	assert.Equal(t, "/foo/bar", p.Path)
	assert.Equal(t, "Plan (GET /foo/bar/)", p.String())

	resp, err := p.Do(context.Background())
	require.NoError(t, err)
	e := decodeEcho(t, resp)
	assert.Equal(t, "GET", e.Method)
	assert.Equal(t, "/foo/bar/", e.Path)
}

func TestEndToEnd_AttrDispatch(t *testing.T) {
	conn := echoConn(t)
	ch, ok := conn.Attr("foo").(*Chain)
	require.True(t, ok)
	p, ok := ch.Seg("bar").Attr("get").(*Plan)
	require.True(t, ok)
	resp, err := p.Do(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "/foo/bar/", decodeEcho(t, resp).Path)
}

func TestEndToEnd_Suffix(t *testing.T) {
	t.Run("default suffix", func(t *testing.T) {
		conn := echoConn(t)
		resp, err := conn.Seg("dummy_get").Get().Do(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "/dummy_get/", decodeEcho(t, resp).Path)
	})
	t.Run("suffix disabled", func(t *testing.T) {
		conn := echoConn(t)
		conn.PathSuffix = ""
		resp, err := conn.Seg("dummy_get").Get().Do(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "/dummy_get", decodeEcho(t, resp).Path)
	})
}

func TestEndToEnd_DataModes(t *testing.T) {
	conn := echoConn(t)
	t.Run("form is encoded by the transport", func(t *testing.T) {
		resp, err := conn.Seg("dummy_post_form").Post().Do(context.Background(),
			Data(url.Values{"foo": {"bar"}}))
		require.NoError(t, err)
		e := decodeEcho(t, resp)
		assert.Equal(t, "POST", e.Method)
		assert.Equal(t, "application/x-www-form-urlencoded", e.ContentType)
		assert.Equal(t, "foo=bar", e.Body)
	})
	t.Run("json is serialized by the connection", func(t *testing.T) {
		resp, err := conn.Seg("dummy_post_form").Post().Do(context.Background(),
			JSON(map[string]string{"foo": "bar"}))
		require.NoError(t, err)
		e := decodeEcho(t, resp)
		assert.Equal(t, "application/json", e.ContentType)
		assert.Equal(t, `{"foo":"bar"}`, e.Body)
	})
}

func TestEndToEnd_HTTPS(t *testing.T) {
	conn, err := New(httpsServer.URL, NewHTTPTransport(httpsServer.Client()))
	require.NoError(t, err)
	resp, err := conn.Seg("secure").Get().Do(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "/secure/", decodeEcho(t, resp).Path)
}

func TestEndToEnd_RestyTransport(t *testing.T) {
	conn, err := New(httpServer.URL, NewRestyTransport(nil))
	require.NoError(t, err)
	resp, err := conn.Seg("via", "resty").Put().Do(context.Background(),
		JSON(map[string]int{"n": 1}))
	require.NoError(t, err)
	e := decodeEcho(t, resp)
	assert.Equal(t, "PUT", e.Method)
	assert.Equal(t, "/via/resty/", e.Path)
	assert.Equal(t, `{"n":1}`, e.Body)
}

func TestEndToEnd_RetryTransport(t *testing.T) {
	conn, err := New(httpServer.URL, NewRetryTransport(nil))
	require.NoError(t, err)
	resp, err := conn.Seg("via", "retryable").Delete().Do(context.Background())
	require.NoError(t, err)
	e := decodeEcho(t, resp)
	assert.Equal(t, "DELETE", e.Method)
	assert.Equal(t, "/via/retryable/", e.Path)
}
