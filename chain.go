// Copyright 2026 The restpath Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package restpath

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gogama/restpath/verb"
)

// A Node is either a *Chain or a *Plan: the result of resolving a
// single name at a dispatch point (Connection.Attr or Chain.Attr).
// A name matching a recognized HTTP method terminates the chain as a
// *Plan; any other name extends it as a *Chain.
type Node interface {
	fmt.Stringer

	// node restricts the interface to the two types produced by
	// dispatch.
	node()
}

// A Chain is an immutable ordered list of path segments accumulated
// through chained extensions, bound to the Connection that will
// eventually execute the request.
//
// Every extension allocates a new Chain and leaves the receiver
// untouched, so a chain can be branched — reused as a prefix for
// several divergent chains — without aliasing:
//
//	users := conn.Seg("users")
//	a := users.Seg(42)          // /users/42
//	b := users.Seg("search")    // /users/search
//
// The zero-segment chain is valid and has path "/".
type Chain struct {
	conn *Connection
	segs []string
}

func newChain(conn *Connection, base []string, parts []interface{}) *Chain {
	segs := make([]string, 0, len(base)+len(parts))
	segs = append(segs, base...)
	for _, part := range parts {
		segs = append(segs, strings.Split(segment(part), "/")...)
	}
	return &Chain{conn: conn, segs: segs}
}

// segment stringifies a single path part. Ints take their decimal
// form; everything else falls through to fmt.Sprint.
func segment(part interface{}) string {
	switch x := part.(type) {
	case string:
		return x
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprint(x)
	}
}

// Seg returns a new Chain with the given parts appended to the
// receiver's segments, under the same stringify-and-split rule as
// Connection.Seg. Calling Seg with no parts returns the receiver
// itself, not a copy.
func (ch *Chain) Seg(parts ...interface{}) *Chain {
	if len(parts) == 0 {
		return ch
	}
	return newChain(ch.conn, ch.segs, parts)
}

// Attr is the chain's dispatch point for a single name: if name
// matches a recognized HTTP method in any letter case, Attr returns a
// *Plan bound to the canonical uppercase method and the chain's
// accumulated path; otherwise it returns a new *Chain with name
// appended, split on "/" as needed.
func (ch *Chain) Attr(name string) Node {
	if m, ok := verb.Match(name); ok {
		return &Plan{conn: ch.conn, Method: m, Path: ch.Path()}
	}
	return newChain(ch.conn, ch.segs, []interface{}{name})
}

// Path returns the segments joined by "/" and prefixed with "/". A
// chain with zero segments has path "/".
func (ch *Chain) Path() string {
	return "/" + strings.Join(ch.segs, "/")
}

// Segments returns a copy of the chain's segments.
func (ch *Chain) Segments() []string {
	segs := make([]string, len(ch.segs))
	copy(segs, ch.segs)
	return segs
}

// Get returns a Plan for a GET request on the chain's path.
func (ch *Chain) Get() *Plan { return ch.plan(verb.Get) }

// Head returns a Plan for a HEAD request on the chain's path.
func (ch *Chain) Head() *Plan { return ch.plan(verb.Head) }

// Post returns a Plan for a POST request on the chain's path.
func (ch *Chain) Post() *Plan { return ch.plan(verb.Post) }

// Put returns a Plan for a PUT request on the chain's path.
func (ch *Chain) Put() *Plan { return ch.plan(verb.Put) }

// Delete returns a Plan for a DELETE request on the chain's path.
func (ch *Chain) Delete() *Plan { return ch.plan(verb.Delete) }

// Patch returns a Plan for a PATCH request on the chain's path.
func (ch *Chain) Patch() *Plan { return ch.plan(verb.Patch) }

// Options returns a Plan for an OPTIONS request on the chain's path.
func (ch *Chain) Options() *Plan { return ch.plan(verb.Options) }

func (ch *Chain) plan(method string) *Plan {
	return &Plan{conn: ch.conn, Method: method, Path: ch.Path()}
}

// String returns a diagnostic form showing the chain's path with the
// connection's suffix appended, e.g. "Chain (/foo/bar/)".
func (ch *Chain) String() string {
	return "Chain (" + ch.Path() + ch.conn.PathSuffix + ")"
}

func (*Chain) node() {}
