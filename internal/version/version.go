// Package version holds build information set by the linker.
package version

var (
	// Version is the release version, set with -ldflags at build time.
	Version = "dev"
	// Commit is the git commit the binary was built from.
	Commit = "none"
)
