// Copyright 2026 The restpath Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package restpath provides a fluent path-building HTTP client helper: a
request is described by chaining path segments off a Connection and
finally naming an HTTP method, which yields a deferred Plan that can be
executed on demand.

Create a Connection to begin building requests.

	conn, err := restpath.New("https://httpbin.org/", nil)
	...
	resp, err := conn.Seg("repos", "gogama", "restpath").Get().Do(ctx)
	...
	resp, err := conn.Seg("login").Post().Do(ctx,
		restpath.Data(url.Values{"user": {"sam"}}))

Each segment extends an immutable Chain; chains may be branched and
reused as prefixes without aliasing:

	users := conn.Seg("users")
	a, err := users.Seg(42).Get().Do(ctx)
	b, err := users.Seg("search").Get().Do(ctx)

Attr mirrors the chain's single dispatch rule: a name that matches a
recognized HTTP method (package verb) in any letter case terminates the
chain as a *Plan; any other name extends it as a *Chain, splitting on
"/" as needed.

	conn.Attr("foo")          // *Chain (/foo/)
	conn.Seg("bar/baz", 1)    // *Chain (/bar/baz/1/)
	conn.Attr("get")          // *Plan (GET /)

The Connection only assembles a method, URL and payload; the network
I/O is delegated to a Transport. If no Transport is injected, the
connection lazily creates DefaultTransport() (a resty-backed transport)
on first use. HTTPTransport adapts any HTTPDoer such as the standard
http.Client, and RetryTransport adapts a retryablehttp.Client for
callers that want retries inside the transport, where they belong. The
Connection itself imposes no timeout, no retries and no status code
interpretation: transport errors and responses pass through untouched.

To observe or decorate requests, install handlers into the connection's
handler group:

	log := log.New(os.Stdout, "", log.LstdFlags)
	handlers := &restpath.HandlerGroup{}
	handlers.PushBack(restpath.BeforeRequest, restpath.HandlerFunc(
		func(_ restpath.Event, x *restpath.Exchange) {
			log.Printf("%s %s", x.Method, x.URL)
		}))
	conn.Handlers = handlers
*/
package restpath
