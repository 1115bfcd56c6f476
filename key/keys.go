// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// DefinedFieldsCount is the number of registered configuration fields.
const DefinedFieldsCount = 20

// Source selection and endpoint overrides.
const (
	DefaultSource   = "sources.default"
	YouJizzEndpoint = "sources.youjizz.endpoint"
	XAnimuEndpoint  = "sources.xanimu.endpoint"
	Rule34Endpoint  = "sources.rule34.endpoint"
	HamsterEndpoint = "sources.hamster.endpoint"
)

// Search Interaction - these keys define the parameters for search discovery.
const (
	SearchShowQuerySuggestions = "search.show_query_suggestions"
	SearchRememberQueries      = "search.remember_queries"
)

// Outbound HTTP.
const (
	NetworkTimeout           = "network.timeout"
	NetworkRequestsPerSecond = "network.requests_per_second"
	NetworkTLSFingerprint    = "network.tls_fingerprint"
)

// Media Playback - these keys configure the external player and its remote.
const (
	Player                 = "player.default"
	PlayerRemote           = "player.remote"
	PlayerPreferredQuality = "player.preferred_quality"
)

// History Tracking - these keys configure the persistence of watch state.
const (
	HistorySaveOnPlay = "history.save_on_play"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these flags and settings govern the non-TUI application behavior.
const (
	CliColored      = "cli.colored"
	CliVersionCheck = "cli.version_check"
)
