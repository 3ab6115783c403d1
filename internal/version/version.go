// Package version holds the application version information.
// These variables are set at build time using ldflags.
package version

var (
	// Version is the current version of beamcalc
	Version = "0.1.0"

	// BuildTime is the time the binary was built
	BuildTime = "unknown"

	// GitCommit is the git commit hash
	GitCommit = "unknown"

	// Author is the author of the application
	Author = "SiliconWit Engineering"

	// Year is the year for the copyright
	Year = "2026"
)
