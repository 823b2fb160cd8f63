// Copyright 2026 The restpath Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package restpath

import "net/http"

// A DataMode selects the request body encoding applied by
// Connection.Request to the value given via the Data option.
type DataMode int

const (
	// ModeForm passes the data value through for the transport to
	// form-encode. It is the default mode.
	ModeForm DataMode = iota
	// ModeJSON serializes the data value to a JSON text body.
	ModeJSON
)

var dataModeNames = []string{
	"FORM",
	"JSON",
}

// String returns the name of the data mode.
func (m DataMode) String() string {
	if int(m) < len(dataModeNames) {
		return dataModeNames[int(m)]
	}
	return "UNKNOWN"
}

// An Option customizes a single request made through
// Connection.Request or Plan.Do.
//
// Options carry an explicit "was this provided" bit, so an omitted
// option is distinguishable from an option explicitly set to a nil or
// empty value: Data(nil) sends a null body in JSON mode, while no Data
// option at all sends no body; Suffix("") disables suffix enforcement
// for the request, while no Suffix option keeps the connection's
// configured suffix.
type Option func(*requestOptions)

type requestOptions struct {
	data       interface{}
	hasData    bool
	mode       DataMode
	headers    http.Header
	hasHeaders bool
	suffix     string
	hasSuffix  bool
	path       string
	hasPath    bool
}

func applyOptions(opts []Option) requestOptions {
	o := requestOptions{mode: ModeForm}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Data sets the request body payload. Encoding is controlled by the
// Mode option and defaults to ModeForm, in which case v must be a
// url.Values, map[string][]string, or map[string]string for the
// transport to form-encode. In ModeJSON, v may be any value accepted
// by json.Marshal.
func Data(v interface{}) Option {
	return func(o *requestOptions) {
		o.data = v
		o.hasData = true
	}
}

// Mode sets the encoding applied to the Data value.
func Mode(m DataMode) Option {
	return func(o *requestOptions) {
		o.mode = m
	}
}

// JSON sets the request body payload to the JSON serialization of v.
// It is shorthand for combining Data(v) with Mode(ModeJSON).
func JSON(v interface{}) Option {
	return func(o *requestOptions) {
		o.data = v
		o.hasData = true
		o.mode = ModeJSON
	}
}

// Headers sets request header fields to pass through to the transport
// verbatim. Header names and values are checked for validity before
// the request is made, but are otherwise untouched.
func Headers(h http.Header) Option {
	return func(o *requestOptions) {
		o.headers = h
		o.hasHeaders = true
	}
}

// Suffix overrides the connection's path suffix for a single request.
// Suffix("") disables suffix enforcement for the request.
func Suffix(s string) Option {
	return func(o *requestOptions) {
		o.suffix = s
		o.hasSuffix = true
	}
}

// Path sets the request path on a Plan whose path was left unresolved,
// i.e. a plan obtained directly from a Connection rather than from a
// Chain. Plan.Do consumes this option; Connection.Request, which
// receives the path as an ordinary parameter, ignores it.
func Path(p string) Option {
	return func(o *requestOptions) {
		o.path = p
		o.hasPath = true
	}
}
