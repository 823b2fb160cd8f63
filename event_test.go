// Copyright 2026 The restpath Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package restpath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvents(t *testing.T) {
	evts := Events()
	assert.Len(t, evts, numEvents)
	assert.Equal(t, []Event{BeforeRequest, AfterRequest}, evts)
}

func TestEvent_Name(t *testing.T) {
	assert.Equal(t, "BeforeRequest", BeforeRequest.Name())
	assert.Equal(t, "AfterRequest", AfterRequest.Name())
}

func TestEvent_String(t *testing.T) {
	for _, evt := range Events() {
		assert.Equal(t, evt.Name(), evt.String())
	}
}
