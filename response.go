// Copyright 2026 The restpath Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package restpath

import (
	"encoding/json"
	"net/http"
)

// A Response is the outcome of a single transport call, with the body
// fully read and buffered into a []byte.
//
// Response carries no behavior beyond accessors: the connection does
// not interpret status codes, follow redirects, or otherwise apply HTTP
// semantics. Whatever the transport produced is what the caller gets.
type Response struct {
	// StatusCode is the HTTP status code of the response, for example
	// 200.
	StatusCode int

	// Header contains the response header fields received from the
	// server.
	Header http.Header

	// Body is the complete buffered response body. It may be empty but
	// is never interpreted by this package.
	Body []byte

	// URL is the final URL the transport requested, after the
	// connection assembled root, path and suffix.
	URL string
}

// Text returns the response body as a string.
func (r *Response) Text() string {
	return string(r.Body)
}

// JSON unmarshals the response body into v using encoding/json.
func (r *Response) JSON(v interface{}) error {
	return json.Unmarshal(r.Body, v)
}
