// Package version provides build and version information.
package version

// Version is the current application version.
const Version = "0.2.0"

// Milestones:
// 0.2.0 - HTTP API with request IDs and result caching, circumpolar handling
// 0.1.0 - Initial release: moon age and rise/set engine, TUI dashboard, calc mode
