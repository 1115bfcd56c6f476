// Package constant defines immutable application-level identifiers and configuration defaults.
package constant

const (
	// Flixstream is the canonical application identifier used for filesystem paths and CLI branding.
	Flixstream = "flixstream"

	// Version is the current application semantic version string.
	Version = "0.1.0"

	// UserAgent is sent with every request to the upstream workers.
	UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
)

// Repository is the GitHub owner/name releases are published under.
const Repository = "flixstream/flixstream"

// Build metadata, set with -ldflags "-X github.com/flixstream/flixstream/constant.Revision=..."
var (
	BuiltAt  = "unknown"
	BuiltBy  = "unknown"
	Revision = "unknown"
)
