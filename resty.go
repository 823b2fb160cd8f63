// Copyright 2026 The restpath Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package restpath

import (
	"context"
	"net/http"

	"github.com/go-resty/resty/v2"

	"github.com/gogama/restpath/verb"
)

// A RestyTransport is a Transport backed by a resty client. It is the
// transport DefaultTransport creates when a Connection was constructed
// without one.
//
// The resty client owns every HTTP concern the connection delegates:
// connection pooling, TLS, redirects, and any timeout or retry policy
// configured on it. Configure the client before injecting the
// transport; the transport itself only translates between the
// Transport contract and resty's request API.
type RestyTransport struct {
	// Client is the resty client used to execute requests. It is never
	// nil.
	Client *resty.Client
}

// NewRestyTransport returns a RestyTransport using the given resty
// client, which may be nil to use a fresh default-configured client.
func NewRestyTransport(client *resty.Client) *RestyTransport {
	if client == nil {
		client = resty.New()
	}
	return &RestyTransport{Client: client}
}

func (t *RestyTransport) Get(ctx context.Context, url string, body *Payload, headers http.Header) (*Response, error) {
	return t.do(ctx, verb.Get, url, body, headers)
}

func (t *RestyTransport) Head(ctx context.Context, url string, body *Payload, headers http.Header) (*Response, error) {
	return t.do(ctx, verb.Head, url, body, headers)
}

func (t *RestyTransport) Post(ctx context.Context, url string, body *Payload, headers http.Header) (*Response, error) {
	return t.do(ctx, verb.Post, url, body, headers)
}

func (t *RestyTransport) Put(ctx context.Context, url string, body *Payload, headers http.Header) (*Response, error) {
	return t.do(ctx, verb.Put, url, body, headers)
}

func (t *RestyTransport) Delete(ctx context.Context, url string, body *Payload, headers http.Header) (*Response, error) {
	return t.do(ctx, verb.Delete, url, body, headers)
}

func (t *RestyTransport) Patch(ctx context.Context, url string, body *Payload, headers http.Header) (*Response, error) {
	return t.do(ctx, verb.Patch, url, body, headers)
}

func (t *RestyTransport) Options(ctx context.Context, url string, body *Payload, headers http.Header) (*Response, error) {
	return t.do(ctx, verb.Options, url, body, headers)
}

// CloseIdleConnections closes idle connections held by the resty
// client's underlying http.Client.
func (t *RestyTransport) CloseIdleConnections() {
	t.Client.GetClient().CloseIdleConnections()
}

func (t *RestyTransport) do(ctx context.Context, method, url string, body *Payload, headers http.Header) (*Response, error) {
	req := t.Client.R().SetContext(ctx)
	if headers != nil {
		req.SetHeaderMultiValues(headers)
	}
	if body != nil {
		if body.Form != nil {
			req.SetFormDataFromValues(body.Form)
		} else if body.Raw != nil {
			req.SetBody(body.Raw)
			if body.ContentType != "" && req.Header.Get("Content-Type") == "" {
				req.SetHeader("Content-Type", body.ContentType)
			}
		}
	}

	resp, err := req.Execute(method, url)
	if err != nil {
		return nil, err
	}

	return &Response{
		StatusCode: resp.StatusCode(),
		Header:     resp.Header(),
		Body:       resp.Body(),
		URL:        resp.Request.URL,
	}, nil
}
