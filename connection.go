// Copyright 2026 The restpath Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package restpath

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"golang.org/x/net/http/httpguts"

	"github.com/gogama/restpath/verb"
)

const (
	// DefaultPathSuffix is the path suffix configured on a new
	// Connection: every request path is made to end with it unless the
	// connection or the request overrides it.
	DefaultPathSuffix = "/"

	nilCtxMsg      = "restpath: nil context"
	badFormTypeMsg = "restpath: invalid form data type (use url.Values, " +
		"map[string][]string or map[string]string, or select ModeJSON)"
)

// An InvalidRootError reports that a root URL given to New or
// ValidateRoot was rejected.
type InvalidRootError struct {
	// Root is the root URL as given.
	Root string
	// Reason describes why the root was rejected.
	Reason string
}

func (e *InvalidRootError) Error() string {
	return fmt.Sprintf("restpath: invalid root URL %q: %s", e.Root, e.Reason)
}

// A Connection holds a validated base URL and builds requests against
// it. Path chains start from a Connection (Seg, Attr, or a verb
// method) and every request built on them is ultimately executed by
// Connection.Request.
//
// The root URL is validated once at construction and immutable
// thereafter. The transport is either injected at construction or
// lazily created, at most once, on the first request; either way it is
// shared by all requests for the connection's lifetime. A Connection
// is safe for concurrent use by multiple goroutines provided
// PathSuffix and Handlers are not mutated concurrently with requests.
type Connection struct {
	// PathSuffix is enforced at the end of every request path: if the
	// path does not already end with it, it is appended. It defaults
	// to DefaultPathSuffix; set it to the empty string to disable
	// suffix enforcement connection-wide. A per-request Suffix option
	// overrides it.
	PathSuffix string

	// Handlers allows custom handler chains to be invoked around each
	// request the connection makes.
	//
	// If Handlers is nil, no custom handlers will be run.
	Handlers *HandlerGroup

	root string

	mu        sync.Mutex
	transport Transport
}

// New returns a Connection rooted at the given base URL.
//
// The root must be an absolute http or https URL; a trailing slash on
// its path is stripped and any query or fragment is discarded (see
// ValidateRoot). Otherwise New returns an *InvalidRootError.
//
// The transport may be nil, in which case the connection creates
// DefaultTransport() on first use and reuses it thereafter.
func New(root string, transport Transport) (*Connection, error) {
	r, err := ValidateRoot(root)
	if err != nil {
		return nil, err
	}
	return &Connection{
		PathSuffix: DefaultPathSuffix,
		root:       r,
		transport:  transport,
	}, nil
}

// ValidateRoot checks and sanitizes a connection root URL.
//
// The URL must parse and its scheme, compared case-insensitively, must
// be http or https. The returned root is rebuilt from scheme, host and
// path only: a single trailing slash is stripped from the path, and
// any query or fragment is dropped. ValidateRoot is idempotent:
// validating an already validated root returns it unchanged.
func ValidateRoot(root string) (string, error) {
	u, err := url.Parse(root)
	if err != nil {
		return "", &InvalidRootError{Root: root, Reason: err.Error()}
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", &InvalidRootError{Root: root, Reason: "scheme must be http or https"}
	}

	path := u.EscapedPath()
	if strings.HasSuffix(path, "/") {
		path = path[:len(path)-1]
	}

	return u.Scheme + "://" + u.Host + path, nil
}

// Root returns the connection's validated base URL.
func (c *Connection) Root() string {
	return c.root
}

// Attr is the connection's dispatch point for a single name, mirroring
// the chain extension rule: if name matches a recognized HTTP method
// in any letter case, Attr returns a *Plan bound to the canonical
// uppercase method with its path left unresolved; otherwise it returns
// a *Chain seeded with name, split on "/" into one segment per piece.
func (c *Connection) Attr(name string) Node {
	if m, ok := verb.Match(name); ok {
		return &Plan{conn: c, Method: m}
	}
	return newChain(c, nil, []interface{}{name})
}

// Seg returns a new Chain whose segments are the given parts. Strings
// are split on "/", ints become their decimal form, and any other
// value is stringified with fmt.Sprint. Calling Seg with no parts is
// permitted and yields an empty chain with path "/".
func (c *Connection) Seg(parts ...interface{}) *Chain {
	return newChain(c, nil, parts)
}

// Get returns a Plan for a GET request with its path left unresolved.
func (c *Connection) Get() *Plan { return &Plan{conn: c, Method: verb.Get} }

// Head returns a Plan for a HEAD request with its path left unresolved.
func (c *Connection) Head() *Plan { return &Plan{conn: c, Method: verb.Head} }

// Post returns a Plan for a POST request with its path left unresolved.
func (c *Connection) Post() *Plan { return &Plan{conn: c, Method: verb.Post} }

// Put returns a Plan for a PUT request with its path left unresolved.
func (c *Connection) Put() *Plan { return &Plan{conn: c, Method: verb.Put} }

// Delete returns a Plan for a DELETE request with its path left
// unresolved.
func (c *Connection) Delete() *Plan { return &Plan{conn: c, Method: verb.Delete} }

// Patch returns a Plan for a PATCH request with its path left
// unresolved.
func (c *Connection) Patch() *Plan { return &Plan{conn: c, Method: verb.Patch} }

// Options returns a Plan for an OPTIONS request with its path left
// unresolved.
func (c *Connection) Options() *Plan { return &Plan{conn: c, Method: verb.Options} }

// Request assembles and executes a single HTTP request.
//
// The method, compared case-insensitively, must be a member of the
// recognized method set (package verb). The path is made to start with
// "/" and to end with the effective suffix — the Suffix option if
// given, else the connection's PathSuffix — unless it already does; an
// empty effective suffix disables enforcement. The final URL is the
// connection root concatenated with the normalized path.
//
// A Data option value is serialized to a JSON text body under
// ModeJSON, or handed to the transport for form encoding under
// ModeForm (the default). A Headers option passes header fields
// through to the transport verbatim after a validity check. The Path
// option is ignored here; it belongs to Plan.Do.
//
// Request blocks until the transport completes and returns its
// response and error untouched: no retries, no implicit timeout, no
// status code interpretation. Timeout and cancellation belong to ctx
// and to the transport.
//
// On the first request of a connection constructed without a
// transport, DefaultTransport() is created and cached; creation is
// guarded so concurrent first requests share a single transport.
func (c *Connection) Request(ctx context.Context, method, path string, opts ...Option) (*Response, error) {
	if ctx == nil {
		return nil, errors.New(nilCtxMsg)
	}
	m, ok := verb.Match(method)
	if !ok {
		return nil, fmt.Errorf("restpath: unsupported method %q", method)
	}

	o := applyOptions(opts)

	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	suffix := c.PathSuffix
	if o.hasSuffix {
		suffix = o.suffix
	}
	if suffix != "" && !strings.HasSuffix(path, suffix) {
		path += suffix
	}

	payload, err := encodeData(o)
	if err != nil {
		return nil, err
	}

	var headers http.Header
	if o.hasHeaders {
		if err := checkHeaders(o.headers); err != nil {
			return nil, err
		}
		headers = o.headers
	}

	handlers := c.Handlers
	if handlers == nil {
		handlers = &emptyHandlers
	}

	x := &Exchange{
		Method:  m,
		URL:     c.root + path,
		Payload: payload,
		Headers: headers,
	}
	handlers.run(BeforeRequest, x)

	x.Response, x.Err = dispatch(c.Transport(), m)(ctx, x.URL, x.Payload, x.Headers)

	handlers.run(AfterRequest, x)
	return x.Response, x.Err
}

// Transport returns the connection's transport, lazily creating
// DefaultTransport() on first use if none was injected at
// construction. The transport is created at most once per connection.
func (c *Connection) Transport() Transport {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.transport == nil {
		c.transport = DefaultTransport()
	}
	return c.transport
}

// CloseIdleConnections invokes the same method on the connection's
// transport, if it has one, and does nothing otherwise. A connection
// that has not yet made a request and was constructed without a
// transport has nothing to close, and none is created.
func (c *Connection) CloseIdleConnections() {
	c.mu.Lock()
	t := c.transport
	c.mu.Unlock()
	if ic, ok := t.(IdleCloser); ok {
		ic.CloseIdleConnections()
	}
}

func encodeData(o requestOptions) (*Payload, error) {
	if !o.hasData {
		return nil, nil
	}

	if o.mode == ModeJSON {
		b, err := json.Marshal(o.data)
		if err != nil {
			return nil, err
		}
		return &Payload{Raw: b, ContentType: "application/json"}, nil
	}

	form, err := formValues(o.data)
	if err != nil {
		return nil, err
	}
	return &Payload{Form: form}, nil
}

func formValues(v interface{}) (url.Values, error) {
	switch x := v.(type) {
	case nil:
		return url.Values{}, nil
	case url.Values:
		return x, nil
	case map[string][]string:
		return url.Values(x), nil
	case map[string]string:
		vals := make(url.Values, len(x))
		for k, s := range x {
			vals.Set(k, s)
		}
		return vals, nil
	default:
		return nil, errors.New(badFormTypeMsg)
	}
}

func checkHeaders(h http.Header) error {
	for name, values := range h {
		if !httpguts.ValidHeaderFieldName(name) {
			return fmt.Errorf("restpath: invalid header field name %q", name)
		}
		for _, value := range values {
			if !httpguts.ValidHeaderFieldValue(value) {
				return fmt.Errorf("restpath: invalid value for header field %q", name)
			}
		}
	}
	return nil
}
