package envcatalog

type VarInfo struct {
	Category    string
	Name        string
	Description string
	Dynamic     bool
	Internal    bool
}

func Catalog() []VarInfo {
	return []VarInfo{
		{
			Category:    "Config",
			Name:        "UXS_CONFIG",
			Description: "Path to the uxs config file.",
		},
		{
			Category:    "Config",
			Name:        "UXS_<FLAG>",
			Dynamic:     true,
			Description: "Set any uxs CLI flag via environment (hyphens become underscores). Example: UXS_ALTITUDE_BAND=mountain.",
		},
		{
			Category:    "Catalog",
			Name:        "UXS_CATALOG",
			Description: "Path to a component catalog file (JSON or YAML) overriding the embedded catalog.",
		},
		{
			Category:    "Session",
			Name:        "UXS_SESSION",
			Description: "Path to the session database. Defaults to ~/.uxs/session.sqlite.",
		},
		{
			Category:    "Output",
			Name:        "NO_COLOR",
			Description: "Disable ANSI color output (any non-empty value).",
		},
		{
			Category:    "Output",
			Name:        "UXS_FORMAT",
			Description: "Default output format for table-capable commands when --format is not provided.",
		},
		{
			Category:    "Logging",
			Name:        "UXS_LOG_LEVEL",
			Description: "Default log level when --log-level is not provided (debug, info, warn, error).",
		},
		{
			Category:    "Serve",
			Name:        "UXS_LISTEN",
			Description: "Default listen address for `uxs mission serve` when --listen is not provided.",
		},
		{
			Category:    "Serve",
			Name:        "UXS_SERVE_POLL_MS",
			Internal:    true,
			Description: "Overlay server bundle watch poll interval in milliseconds (default 1000).",
		},
	}
}
