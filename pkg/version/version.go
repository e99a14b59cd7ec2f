// Package version holds build-time version metadata, overridden via
// -ldflags at build time.
package version

var (
	// Version is the semantic version of this build.
	Version = "dev"
	// Commit is the git commit this build was produced from.
	Commit = "unknown"
	// BuildDate is when this build was produced.
	BuildDate = "unknown"
)
