// Copyright 2026 The restpath Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package restpath

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/gogama/restpath/verb"
)

// An HTTPDoer implements a Do method in the same manner as the GoLang
// standard library http.Client from the net/http package.
type HTTPDoer interface {
	// Do sends an HTTP request and returns an HTTP response following
	// policy (such as redirects, cookies, auth) configured on the
	// HTTPDoer.
	//
	// The Do method must follow the contract documented on the GoLang
	// standard library http.Client from the net/http package.
	Do(r *http.Request) (*http.Response, error)
}

// A Payload is the request body handed to a Transport.
//
// Exactly one of Form and Raw is set, or neither for a body-less
// request. When Form is set the transport is responsible for encoding
// the values (application/x-www-form-urlencoded for the transports in
// this package). When Raw is set the bytes are sent as-is with
// ContentType, which is how the connection delivers a JSON-serialized
// body.
type Payload struct {
	// Form contains form values for the transport to encode.
	Form url.Values

	// Raw contains a pre-encoded body to send unmodified.
	Raw []byte

	// ContentType is the media type of Raw. It is ignored when Form is
	// set.
	ContentType string
}

// A Transport performs the network I/O for a Connection. It is the
// named capability contract for the external collaborator that
// actually speaks HTTP: one method per recognized verb, each taking a
// fully assembled URL, an optional payload, and optional headers.
//
// Transport implementations own all HTTP semantics: connection
// pooling, TLS, redirects, timeouts, and retries if they want them.
// The connection never interprets a transport's response or error.
//
// A nil *Payload means no request body. A nil http.Header means no
// extra headers.
type Transport interface {
	Get(ctx context.Context, url string, body *Payload, headers http.Header) (*Response, error)
	Head(ctx context.Context, url string, body *Payload, headers http.Header) (*Response, error)
	Post(ctx context.Context, url string, body *Payload, headers http.Header) (*Response, error)
	Put(ctx context.Context, url string, body *Payload, headers http.Header) (*Response, error)
	Delete(ctx context.Context, url string, body *Payload, headers http.Header) (*Response, error)
	Patch(ctx context.Context, url string, body *Payload, headers http.Header) (*Response, error)
	Options(ctx context.Context, url string, body *Payload, headers http.Header) (*Response, error)
}

// IdleCloser is the interface that wraps the basic CloseIdleConnections
// method.
//
// If the underlying implementation supports it, CloseIdleConnections
// closes connections which were previously established for requests
// but are now sitting idle in a "keep-alive" state. It does not
// interrupt any connections currently in use.
//
// If the underlying implementation does not support this ability,
// CloseIdleConnections does nothing.
type IdleCloser interface {
	CloseIdleConnections()
}

// DefaultTransport constructs the transport a Connection lazily
// creates on first request when none was injected at construction.
//
// The default builds a resty-backed transport with a fresh
// default-configured resty client. Replace the variable to change the
// lazily created transport process-wide; inject a transport into New
// to change it per connection.
var DefaultTransport = func() Transport {
	return NewRestyTransport(nil)
}

// dispatch maps a canonical uppercase method name to the matching verb
// method on t. The method set is closed, so an unrecognized name is a
// caller bug upstream of this point.
func dispatch(t Transport, method string) func(context.Context, string, *Payload, http.Header) (*Response, error) {
	switch method {
	case verb.Get:
		return t.Get
	case verb.Head:
		return t.Head
	case verb.Post:
		return t.Post
	case verb.Put:
		return t.Put
	case verb.Delete:
		return t.Delete
	case verb.Patch:
		return t.Patch
	case verb.Options:
		return t.Options
	default:
		return nil
	}
}

// An HTTPTransport is a Transport backed by any HTTPDoer, typically
// the standard http.Client. Its zero value is a valid transport using
// http.DefaultClient.
//
// Form payloads are URL-encoded into an
// application/x-www-form-urlencoded body; raw payloads are sent
// unmodified with their declared content type. A Content-Type already
// present in the request headers wins over the payload's.
type HTTPTransport struct {
	// Doer specifies the mechanics of sending HTTP requests and
	// receiving responses.
	//
	// If Doer is nil, http.DefaultClient from the standard net/http
	// package is used.
	Doer HTTPDoer
}

// NewHTTPTransport returns an HTTPTransport using the given HTTPDoer,
// which may be nil to use http.DefaultClient.
func NewHTTPTransport(doer HTTPDoer) *HTTPTransport {
	return &HTTPTransport{Doer: doer}
}

func (t *HTTPTransport) Get(ctx context.Context, url string, body *Payload, headers http.Header) (*Response, error) {
	return t.do(ctx, verb.Get, url, body, headers)
}

func (t *HTTPTransport) Head(ctx context.Context, url string, body *Payload, headers http.Header) (*Response, error) {
	return t.do(ctx, verb.Head, url, body, headers)
}

func (t *HTTPTransport) Post(ctx context.Context, url string, body *Payload, headers http.Header) (*Response, error) {
	return t.do(ctx, verb.Post, url, body, headers)
}

func (t *HTTPTransport) Put(ctx context.Context, url string, body *Payload, headers http.Header) (*Response, error) {
	return t.do(ctx, verb.Put, url, body, headers)
}

func (t *HTTPTransport) Delete(ctx context.Context, url string, body *Payload, headers http.Header) (*Response, error) {
	return t.do(ctx, verb.Delete, url, body, headers)
}

func (t *HTTPTransport) Patch(ctx context.Context, url string, body *Payload, headers http.Header) (*Response, error) {
	return t.do(ctx, verb.Patch, url, body, headers)
}

func (t *HTTPTransport) Options(ctx context.Context, url string, body *Payload, headers http.Header) (*Response, error) {
	return t.do(ctx, verb.Options, url, body, headers)
}

// CloseIdleConnections invokes the same method on the transport's
// underlying HTTPDoer, if it has one, and does nothing otherwise.
func (t *HTTPTransport) CloseIdleConnections() {
	if ic, ok := t.doer().(IdleCloser); ok {
		ic.CloseIdleConnections()
	}
}

func (t *HTTPTransport) doer() HTTPDoer {
	if t.Doer == nil {
		return http.DefaultClient
	}

	return t.Doer
}

func (t *HTTPTransport) do(ctx context.Context, method, url string, body *Payload, headers http.Header) (*Response, error) {
	var rdr io.Reader
	var contentType string
	if body != nil {
		if body.Form != nil {
			rdr = strings.NewReader(body.Form.Encode())
			contentType = "application/x-www-form-urlencoded"
		} else if body.Raw != nil {
			rdr = bytes.NewReader(body.Raw)
			contentType = body.ContentType
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, url, rdr)
	if err != nil {
		return nil, err
	}
	copyHeaders(req.Header, headers)
	if contentType != "" && req.Header.Get("Content-Type") == "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := t.doer().Do(req)
	if err != nil {
		return nil, err
	}
	return buffer(resp)
}

// buffer drains and closes an http.Response body, producing the
// package's fully buffered Response.
func buffer(resp *http.Response) (*Response, error) {
	defer func() {
		_ = resp.Body.Close()
	}()
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	finalURL := ""
	if resp.Request != nil && resp.Request.URL != nil {
		finalURL = resp.Request.URL.String()
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       b,
		URL:        finalURL,
	}, nil
}

func copyHeaders(dst, src http.Header) {
	for name, values := range src {
		for _, value := range values {
			dst.Add(name, value)
		}
	}
}
