// Copyright 2026 The restpath Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package restpath

import (
	"context"
	"fmt"
	"strings"

	"github.com/gogama/restpath/verb"
)

// A Plan is a resolved method and path pair whose execution is
// deferred until Do is invoked.
//
// A Plan produced from a Chain carries the chain's accumulated path. A
// Plan produced directly from a Connection has an empty Path, which is
// resolved at Do time: from the Path option if given, else "/".
//
// A Plan holds no mutable state, so it may be invoked repeatedly; each
// invocation produces an independent request.
type Plan struct {
	// Method is the canonical uppercase HTTP method.
	Method string

	// Path is the request path, or the empty string to resolve the
	// path at Do time.
	Path string

	conn *Connection
}

// NewPlan returns a Plan bound to the given connection. The method,
// compared case-insensitively, must be a member of the recognized
// method set (package verb) and is stored in its canonical uppercase
// form. The path may be empty to defer resolution to Do.
func NewPlan(c *Connection, method, path string) (*Plan, error) {
	m, ok := verb.Match(method)
	if !ok {
		return nil, fmt.Errorf("restpath: unsupported method %q", method)
	}
	return &Plan{conn: c, Method: m, Path: path}, nil
}

// Do executes the plan and blocks until the transport completes.
//
// The request path is the plan's Path if set; otherwise the Path
// option if given; otherwise "/". All options are then forwarded to
// Connection.Request, whose response and error are returned directly.
func (p *Plan) Do(ctx context.Context, opts ...Option) (*Response, error) {
	path := p.Path
	if path == "" {
		o := applyOptions(opts)
		if o.hasPath {
			path = o.path
		}
	}
	if path == "" {
		path = "/"
	}
	return p.conn.Request(ctx, p.Method, path, opts...)
}

// String returns a diagnostic form showing the plan's method and path
// with the connection's suffix enforced, e.g. "Plan (GET /foo/bar/)".
func (p *Plan) String() string {
	path := p.Path
	if path == "" {
		path = "/"
	}
	suffix := p.conn.PathSuffix
	if strings.HasSuffix(path, suffix) {
		suffix = ""
	}
	return "Plan (" + p.Method + " " + path + suffix + ")"
}

func (*Plan) node() {}
