// Package key defines the configuration keys of the proxer CLI.
package key

// API access - the key, endpoint and body encoding used for every request.
const (
	APIKey       = "api.key"
	APIBaseURL   = "api.base_url"
	APIVersion   = "api.version"
	APIRawParams = "api.raw_params"
)

// Legacy news feed location.
const (
	NewsURL = "news.url"
)

// Network - selects the HTTP transport.
const (
	NetworkTransport = "network.transport"
)

// Output - controls how command results are rendered.
const (
	OutputFormat = "output.format"
	OutputWrap   = "output.wrap"
)

// Search history used for query suggestions.
const (
	SearchHistory = "search.history"
)

// Opening pages in a browser.
const (
	OpenBrowser = "open.browser"
)

// Iconography
const (
	IconsVariant = "icons.variant"
)

// Logging - file output, level and rotation.
const (
	LogsWrite      = "logs.write"
	LogsLevel      = "logs.level"
	LogsJson       = "logs.json"
	LogsMaxSize    = "logs.max_size"
	LogsMaxBackups = "logs.max_backups"
	LogsMaxAge     = "logs.max_age"
)

// CLI behaviour outside of the browse mode.
const (
	CliColored      = "cli.colored"
	CliVersionCheck = "cli.version_check"
)
