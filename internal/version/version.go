// Package version carries build identity, set at link time via -ldflags.
package version

var (
	// Version is the release version.
	Version = "dev"
	// GitSHA is the source commit.
	GitSHA = "unknown"
)
