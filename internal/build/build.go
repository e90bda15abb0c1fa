// Package build holds build-time metadata injected via ldflags.
package build

// Populated at release time with -ldflags "-X ...".
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)
