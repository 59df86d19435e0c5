// Package key names the configuration keys read through viper.
package key

// Player connection - these keys control how the bridge reaches the media player.
const (
	PlayerAddress   = "player.address"
	PlayerName      = "player.name"
	PlayerMaxRating = "player.max_rating"
)

// Remote-control server - these keys configure the HTTP surface remote clients talk to.
const (
	ServerAddress     = "server.address"
	ServerCORSOrigins = "server.cors_origins"
)

// Bridge behaviour.
const (
	BridgeWaitTimeout  = "bridge.wait_timeout"
	BridgeStartupDelay = "bridge.startup_delay"
)

// Metadata cache.
const (
	CachePlobEnable   = "cache.plob_enable"
	CachePlobLifetime = "cache.plob_lifetime"
)

// Iconography - these keys manage the visual rendering of CLI symbols.
const (
	IconsVariant = "icons.variant"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
	LogsKeep  = "logs.keep_days"
)

// CLI Execution Environment.
const (
	CliColored = "cli.colored"
	CtlServer  = "ctl.server"
)
