// Copyright 2026 The restpath Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package verb enumerates the closed set of HTTP methods recognized by
// the restpath fluent path builder.
//
// The set contains every standard HTTP method except CONNECT and TRACE,
// which have no place in a resource-path oriented client. At each
// dispatch point in the path builder, a name that matches a member of
// this set (in any letter case) terminates the chain and produces an
// executable request plan; any other name extends the path.
package verb
