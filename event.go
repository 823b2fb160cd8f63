// Copyright 2026 The restpath Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package restpath

// An Event identifies the event type when installing or running a
// Handler. Install event handlers in a Connection to extend it with
// custom functionality such as logging, metrics, or request
// decoration.
type Event int

const (
	// BeforeRequest identifies the event that occurs after the
	// connection has assembled the method, URL, payload and headers,
	// immediately before the transport is invoked.
	//
	// When the connection fires BeforeRequest, the exchange's Response
	// and Err fields are nil. Handlers may modify the exchange's URL,
	// Payload and Headers fields, thus changing the request the
	// transport will make.
	BeforeRequest Event = iota
	// AfterRequest identifies the event that occurs after the
	// transport has returned, whether it returned a response or an
	// error.
	//
	// When the connection fires AfterRequest, exactly one of the
	// exchange's Response and Err fields is non-nil.
	AfterRequest
	// eventSentinel provides the total number of events typed as an
	// Event.
	eventSentinel

	// numEvents provides the total number of events typed as an int.
	numEvents = int(eventSentinel)
)

var eventNames = []string{
	"BeforeRequest",
	"AfterRequest",
}

// Events returns a slice containing all events which can occur while a
// Connection makes a request, in the order in which they would occur.
func Events() []Event {
	return []Event{
		BeforeRequest,
		AfterRequest,
	}
}

// Name returns the name of the event.
func (evt Event) Name() string {
	return eventNames[int(evt)]
}

// String returns the name of the event.
func (evt Event) String() string {
	return evt.Name()
}
