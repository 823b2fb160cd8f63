// Copyright 2026 The restpath Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package verb

import "strings"

// Canonical uppercase names of the recognized HTTP methods.
const (
	Delete  = "DELETE"
	Get     = "GET"
	Head    = "HEAD"
	Options = "OPTIONS"
	Patch   = "PATCH"
	Post    = "POST"
	Put     = "PUT"
)

var methods = map[string]struct{}{
	Delete:  {},
	Get:     {},
	Head:    {},
	Options: {},
	Patch:   {},
	Post:    {},
	Put:     {},
}

// Match reports whether name, compared case-insensitively, is a
// recognized HTTP method. If it is, Match returns the canonical
// uppercase form of the method and true. Otherwise it returns the
// empty string and false.
func Match(name string) (string, bool) {
	m := strings.ToUpper(name)
	if _, ok := methods[m]; ok {
		return m, true
	}
	return "", false
}

// Is reports whether name, compared case-insensitively, is a
// recognized HTTP method.
func Is(name string) bool {
	_, ok := Match(name)
	return ok
}

// All returns the recognized HTTP methods in their canonical uppercase
// form, in lexical order. The returned slice is a copy and may be
// modified freely.
func All() []string {
	return []string{Delete, Get, Head, Options, Patch, Post, Put}
}
