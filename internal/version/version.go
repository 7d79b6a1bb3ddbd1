// Package version reports the build version of shape.
package version

import (
	"runtime/debug"
	"sync"
)

// Get returns the module version recorded at build time
var Get = sync.OnceValue(func() string {
	info, ok := debug.ReadBuildInfo()
	if ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return "development"
})
