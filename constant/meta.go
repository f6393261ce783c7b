// Package constant defines immutable application-level identifiers and configuration defaults.
package constant

const (
	// Proxer is the canonical application identifier used for filesystem paths, env prefixes and CLI branding.
	Proxer = "proxer"

	// Version is the current application semantic version string.
	Version = "0.3.0"

	// Repository is the home of the project, advertised in the User-Agent.
	Repository = "https://github.com/Ceeox/proxer-go"

	// UserAgent identifies this client to the Proxer API.
	UserAgent = "proxer-go (" + Repository + ", " + Version + ")"

	// Notice is shown wherever the client presents itself; the API terms require unofficial clients to say so.
	Notice = "proxer is an unofficial client for the Proxer.me API"
)

// Build metadata, injected with -ldflags "-X".
var (
	BuiltAt  = "unknown"
	BuiltBy  = "unknown"
	Revision = "unknown"
)
