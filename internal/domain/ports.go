package domain

import "time"

// CollectionStore persists a whole task collection. Each save fully
// replaces the previous contents; there is no partial update path.
type CollectionStore interface {
	// Load reads the persisted collection. Returns ErrStoreNotFound if
	// the backing file does not exist, and an error wrapping
	// ErrStoreRecord if any record cannot be decoded.
	Load() ([]Task, error)

	// Save replaces the persisted collection with tasks.
	Save(tasks []Task) error

	// Path returns the backing file path, for diagnostics.
	Path() string
}

// ConfigLoader loads configuration from files.
type ConfigLoader interface {
	// Load returns the merged configuration (working directory + global).
	Load() (*Config, error)
}

// Config represents the application configuration.
type Config struct {
	Store  StoreConfig  `toml:"store"`
	Format FormatConfig `toml:"format"`
	Log    LogConfig    `toml:"log"`
}

// StoreConfig holds settings from the [store] section.
type StoreConfig struct {
	Path   string `toml:"path"`   // Default store file path
	Format string `toml:"format"` // "jsonl" or "yaml"
}

// FormatConfig holds settings from the [format] section.
type FormatConfig struct {
	Indent int `toml:"indent"` // Spaces per nesting level
}

// LogConfig holds settings from the [log] section.
type LogConfig struct {
	Level string `toml:"level"` // Log level: debug, info, warn, error
}

// Store format names accepted in StoreConfig.Format.
const (
	StoreFormatJSONL = "jsonl"
	StoreFormatYAML  = "yaml"
)

// NewDefaultConfig returns the built-in defaults.
func NewDefaultConfig() *Config {
	return &Config{
		Store:  StoreConfig{Path: "tasks.jsonl", Format: StoreFormatJSONL},
		Format: FormatConfig{Indent: 4},
		Log:    LogConfig{Level: "info"},
	}
}

// Clock provides time operations for testability.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// RealClock implements Clock using the system clock.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time {
	return time.Now()
}
