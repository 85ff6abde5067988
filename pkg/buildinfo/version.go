// Package buildinfo holds the colorbars version.
//
// Release builds inject the values with ldflags:
//
//	go build -ldflags "-X github.com/matzehuels/colorbars/pkg/buildinfo.Version=v1.0.0 \
//	    -X github.com/matzehuels/colorbars/pkg/buildinfo.Commit=$(git rev-parse HEAD) \
//	    -X github.com/matzehuels/colorbars/pkg/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
//
// Binaries built with "go install module@version" carry no ldflags; [Resolve]
// fills the gaps from the module build info embedded by the Go toolchain.
package buildinfo

import (
	"fmt"
	"runtime/debug"
)

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// Resolve replaces unset values with the main module version and the VCS
// revision and time recorded in the binary.
func Resolve() {
	if info, ok := debug.ReadBuildInfo(); ok {
		apply(info)
	}
}

func apply(info *debug.BuildInfo) {
	if Version == "dev" && info.Main.Version != "" && info.Main.Version != "(devel)" {
		Version = info.Main.Version
	}
	for _, s := range info.Settings {
		switch {
		case s.Key == "vcs.revision" && Commit == "none":
			Commit = s.Value
		case s.Key == "vcs.time" && Date == "unknown":
			Date = s.Value
		}
	}
}

// Template returns the cobra version template.
func Template() string {
	return fmt.Sprintf("{{.Name}} version %s\ncommit: %s\nbuilt: %s\n", Version, Commit, Date)
}

// UserAgent is sent when fetching remote tables.
func UserAgent() string {
	return "colorbars/" + Version
}
