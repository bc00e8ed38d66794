// Package config provides centralized configuration for the optimizer.
// Settings load from environment variables with defaults and are validated
// on startup to fail fast on misconfiguration.
package config

// Config holds all tool configuration.
type Config struct {
	Pipeline PipelineConfig
	Split    SplitConfig
	Logging  LoggingConfig
}

// PipelineConfig holds transform settings.
type PipelineConfig struct {
	// Profile selects the registered schema to reconcile against (default: document)
	Profile string `env:"OPTIMIZER_PROFILE" default:"document"`

	// Marker replaces embedded line breaks inside field values (default: <br>)
	Marker string `env:"OPTIMIZER_MARKER" default:"<br>"`
}

// SplitConfig holds chunk-splitting settings.
type SplitConfig struct {
	// ChunkRows is the number of data rows per part file (default: 3800)
	ChunkRows int `env:"OPTIMIZER_CHUNK_ROWS" default:"3800"`

	// ThresholdBytes is the unsplit output size above which splitting is
	// offered (default: 10MB)
	ThresholdBytes int64 `env:"OPTIMIZER_SPLIT_THRESHOLD" default:"10485760"`

	// Confirm controls the split decision: ask, always, or never
	// (default: ask; "ask" degrades to "never" without a terminal)
	Confirm string `env:"OPTIMIZER_SPLIT_CONFIRM" default:"ask"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error (default: info)
	Level string `env:"LOG_LEVEL" default:"info"`

	// Format is the log format: text or json (default: text)
	Format string `env:"LOG_FORMAT" default:"text"`
}

// Split confirmation policies.
const (
	SplitAsk    = "ask"
	SplitAlways = "always"
	SplitNever  = "never"
)
