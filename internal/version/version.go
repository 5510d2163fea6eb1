// Package version reports the build the syndicate binary was cut from.
package version

import "fmt"

// Set at build time via -ldflags "-X".
var (
	Release   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// String returns the release, short commit and build time.
func String() string {
	return fmt.Sprintf("syndicate %s (commit: %s, built: %s)", Release, ShortCommit(), BuildTime)
}

// ShortCommit truncates Commit to seven characters.
func ShortCommit() string {
	if len(Commit) > 7 {
		return Commit[:7]
	}
	return Commit
}
