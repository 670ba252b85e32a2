// Package buildinfo holds version metadata stamped in at build time.
package buildinfo

// Overridden via -ldflags on release builds.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)
