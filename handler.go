// Copyright 2026 The restpath Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package restpath

import "net/http"

var emptyHandlers = HandlerGroup{}

// An Exchange is the state of a single request made by a Connection,
// as seen by event handlers.
//
// BeforeRequest handlers receive the exchange after the connection has
// assembled it and may modify URL, Payload and Headers to decorate the
// outgoing request. AfterRequest handlers additionally see the
// transport's Response or Err.
type Exchange struct {
	// Method is the canonical uppercase HTTP method of the request.
	Method string

	// URL is the fully assembled request URL, root plus normalized
	// path.
	URL string

	// Payload is the encoded request body, or nil for a body-less
	// request.
	Payload *Payload

	// Headers contains the passthrough header fields for the request,
	// or nil if none were provided.
	Headers http.Header

	// Response is the transport's response. It is nil until the
	// transport returns, and stays nil if the transport returned an
	// error.
	Response *Response

	// Err is the transport's error, untouched. It is nil until the
	// transport returns, and stays nil if the transport returned a
	// response.
	Err error
}

// A HandlerGroup is a group of event handler chains which can be
// installed in a Connection.
type HandlerGroup struct {
	handlers [][]Handler
}

// PushBack adds an event handler to the back of the event handler
// chain for a specific event type.
func (g *HandlerGroup) PushBack(evt Event, h Handler) {
	if h == nil {
		panic("restpath: nil handler")
	}

	if g.handlers == nil {
		g.handlers = make([][]Handler, numEvents)
	}

	g.handlers[evt] = append(g.handlers[evt], h)
}

func (g *HandlerGroup) run(evt Event, x *Exchange) {
	i := int(evt)
	if i < len(g.handlers) {
		run(g.handlers[i], evt, x)
	}
}

func run(chain []Handler, evt Event, x *Exchange) {
	for _, h := range chain {
		h.Handle(evt, x)
	}
}

// A Handler handles the occurrence of an event during a request made
// by a Connection.
type Handler interface {
	Handle(Event, *Exchange)
}

// The HandlerFunc type is an adapter to allow the use of ordinary
// functions as event handlers. If f is a function with the appropriate
// signature, HandlerFunc(f) is a Handler that calls f.
type HandlerFunc func(Event, *Exchange)

// Handle calls f(evt, x).
func (f HandlerFunc) Handle(evt Event, x *Exchange) {
	f(evt, x)
}
