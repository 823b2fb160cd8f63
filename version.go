// Copyright 2026 The restpath Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package restpath

import "runtime/debug"

// fallbackVersion is reported when module build information is not
// embedded in the binary, e.g. in a test binary built from the module
// source tree.
const fallbackVersion = "v0.0.0-devel"

// Version returns the module version of restpath recorded in the
// running binary's build information, or a fallback placeholder when
// no version is recorded.
func Version() string {
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, dep := range info.Deps {
			if dep.Path == "github.com/gogama/restpath" {
				return dep.Version
			}
		}
		if info.Main.Path == "github.com/gogama/restpath" && info.Main.Version != "" && info.Main.Version != "(devel)" {
			return info.Main.Version
		}
	}
	return fallbackVersion
}
