package config

// Application settings.
const (
	AppName       = "goalpad"
	ReportsPrefix = "goals"
)

// Environment variables read by the CLI as flag defaults.
const (
	EnvTheme      = "GOALPAD_THEME"
	EnvIDs        = "GOALPAD_IDS"
	EnvReportsDir = "GOALPAD_REPORTS_DIR"
	EnvLogFile    = "GOALPAD_LOG_FILE"
)

// Identifier schemes.
const (
	IDSchemeUUID    = "uuid"
	IDSchemeCounter = "counter"
)

// DefaultTheme is used when no theme is configured.
const DefaultTheme = "default"
