package block

import "runtime/debug"

// version is overridden at build time:
//
//	go build -ldflags "-X github.com/joshuapare/memkit/block.version=v1.2.3"
var version = "dev"

// Version returns the library build identifier. It is a diagnostics
// string owned by the package, not part of the allocation contract.
func Version() string {
	if version != "dev" {
		return version
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		if v := info.Main.Version; v != "" && v != "(devel)" {
			return v
		}
	}
	return version
}
