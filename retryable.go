// Copyright 2026 The restpath Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package restpath

import (
	"context"
	"net/http"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/gogama/restpath/verb"
)

// A RetryTransport is a Transport backed by a retryablehttp client,
// for callers who want automatic retries with backoff. The connection
// itself never retries; injecting this transport keeps retry policy
// where it belongs, inside the transport.
type RetryTransport struct {
	// Client is the retryablehttp client used to execute requests. It
	// is never nil.
	Client *retryablehttp.Client
}

// NewRetryTransport returns a RetryTransport using the given
// retryablehttp client, which may be nil to use a fresh
// default-configured client with logging disabled.
func NewRetryTransport(client *retryablehttp.Client) *RetryTransport {
	if client == nil {
		client = retryablehttp.NewClient()
		client.Logger = nil
	}
	return &RetryTransport{Client: client}
}

func (t *RetryTransport) Get(ctx context.Context, url string, body *Payload, headers http.Header) (*Response, error) {
	return t.do(ctx, verb.Get, url, body, headers)
}

func (t *RetryTransport) Head(ctx context.Context, url string, body *Payload, headers http.Header) (*Response, error) {
	return t.do(ctx, verb.Head, url, body, headers)
}

func (t *RetryTransport) Post(ctx context.Context, url string, body *Payload, headers http.Header) (*Response, error) {
	return t.do(ctx, verb.Post, url, body, headers)
}

func (t *RetryTransport) Put(ctx context.Context, url string, body *Payload, headers http.Header) (*Response, error) {
	return t.do(ctx, verb.Put, url, body, headers)
}

func (t *RetryTransport) Delete(ctx context.Context, url string, body *Payload, headers http.Header) (*Response, error) {
	return t.do(ctx, verb.Delete, url, body, headers)
}

func (t *RetryTransport) Patch(ctx context.Context, url string, body *Payload, headers http.Header) (*Response, error) {
	return t.do(ctx, verb.Patch, url, body, headers)
}

func (t *RetryTransport) Options(ctx context.Context, url string, body *Payload, headers http.Header) (*Response, error) {
	return t.do(ctx, verb.Options, url, body, headers)
}

// CloseIdleConnections closes idle connections held by the
// retryablehttp client's underlying http.Client.
func (t *RetryTransport) CloseIdleConnections() {
	t.Client.HTTPClient.CloseIdleConnections()
}

func (t *RetryTransport) do(ctx context.Context, method, url string, body *Payload, headers http.Header) (*Response, error) {
	var raw interface{}
	var contentType string
	if body != nil {
		if body.Form != nil {
			raw = []byte(body.Form.Encode())
			contentType = "application/x-www-form-urlencoded"
		} else if body.Raw != nil {
			raw = body.Raw
			contentType = body.ContentType
		}
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, method, url, raw)
	if err != nil {
		return nil, err
	}
	copyHeaders(req.Header, headers)
	if contentType != "" && req.Header.Get("Content-Type") == "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := t.Client.Do(req)
	if err != nil {
		return nil, err
	}
	return buffer(resp)
}
