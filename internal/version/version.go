// Package version holds the agroctl version information.
// It has no dependencies so it can be imported from any package.
package version

var (
	// Version information - set via ldflags during build
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)
