// Package constant defines immutable application-level identifiers and configuration defaults.
package constant

const (
	// Remuco is the canonical application identifier used for filesystem paths and CLI branding.
	Remuco = "remuco"

	// Version is the current application semantic version string.
	Version = "0.1.0"

	// UserAgent is sent by the remote-control HTTP client.
	UserAgent = Remuco + "/" + Version
)

// Build metadata, overridden at link time with -ldflags "-X".
var (
	BuiltAt  = "unknown"
	BuiltBy  = "unknown"
	Revision = "unknown"
)
