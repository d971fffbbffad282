// Package buildinfo exposes the version metadata stamped into the lazytig
// binary at link time.
package buildinfo

import (
	"fmt"
	"runtime/debug"
)

// Info describes one build of the binary.
type Info struct {
	Version string
	Commit  string
	Date    string
	BuiltBy string
}

var current = Info{
	Version: "dev",
	Commit:  "none",
	Date:    "unknown",
	BuiltBy: "unknown",
}

// Set records the linker-injected values. main calls it once before
// anything reads Current.
func Set(version, commit, date, builtBy string) {
	current = Info{Version: version, Commit: commit, Date: date, BuiltBy: builtBy}
}

// Current returns the build metadata. Fields the linker left at their
// defaults are filled from the module build info: the VCS revision stands
// in for the commit, the Go toolchain version for the builder.
func Current() Info {
	info := current
	if info.Commit != "none" && info.BuiltBy != "unknown" {
		return info
	}
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}
	if info.Commit == "none" {
		for _, setting := range bi.Settings {
			if setting.Key == "vcs.revision" {
				info.Commit = setting.Value
			}
		}
	}
	if info.BuiltBy == "unknown" {
		info.BuiltBy = bi.GoVersion
	}
	return info
}

// Summary renders the multi-line text printed by --version.
func (i Info) Summary() string {
	return fmt.Sprintf("lazytig version %s\ncommit: %s\nbuilt at: %s\nbuilt by: %s",
		i.Version, i.Commit, i.Date, i.BuiltBy)
}
