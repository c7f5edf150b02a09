// Package misc keeps program identity: name, version and source revision.
package misc

import (
	"runtime/debug"
	"strings"
)

const appName = "scssx"

// set with -ldflags "-X scssx/misc.version=... -X scssx/misc.gitHash=..."
var (
	version = ""
	gitHash = ""
)

func GetAppName() string {
	return appName
}

// GetVersion returns program version, falling back to module build
// information when nothing was linked in.
func GetVersion() string {
	if version != "" {
		return version
	}
	if bi, ok := debug.ReadBuildInfo(); ok && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		return strings.TrimPrefix(bi.Main.Version, "v")
	}
	return "dev"
}

// GetGitHash returns VCS revision program was built from.
func GetGitHash() string {
	if gitHash != "" {
		return gitHash
	}
	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, s := range bi.Settings {
			if s.Key == "vcs.revision" {
				if len(s.Value) > 7 {
					return s.Value[:7]
				}
				return s.Value
			}
		}
	}
	return "unknown"
}
