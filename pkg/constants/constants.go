// Package constants provides shared constants used throughout the printdex codebase.
// This includes timeouts, limits, and file permissions that should be consistent
// across the application.
package constants

import "time"

// Timeout constants define various timeout durations used in the application
const (
	// DefaultHTTPTimeout is the standard timeout for HTTP requests to upstream repositories
	DefaultHTTPTimeout = 30 * time.Second

	// ProbeTimeout is the timeout for lightweight HEAD existence probes
	ProbeTimeout = 10 * time.Second

	// BuildTimeout is the timeout for one full catalog build
	BuildTimeout = 30 * time.Minute
)

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)

// Limit constants define various limits and capacities
const (
	// MaxConcurrentFetches is the maximum number of concurrent upstream fetches
	MaxConcurrentFetches = 8

	// GitHubRequestsPerSecond caps the client-side request rate against the
	// GitHub contents API
	GitHubRequestsPerSecond = 5
)
