// internal/common/config/config.go
package config

import "time"

// Config is the main application configuration struct.
type Config struct {
	App       AppConfig       `mapstructure:"app"`
	Server    ServerConfig    `mapstructure:"server"`
	Geo       GeoAPIConfig    `mapstructure:"geo"`
	Directory DirectoryConfig `mapstructure:"directory"`
	Catalog   CatalogConfig   `mapstructure:"catalog"`
	Logging   LoggingConfig   `mapstructure:"logging"`
}

// --- Core App Config ---
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

// ServerConfig holds the HTTP gateway settings.
type ServerConfig struct {
	Port            int      `mapstructure:"port"`
	ReadTimeout     int      `mapstructure:"read_timeout"`     // milliseconds
	WriteTimeout    int      `mapstructure:"write_timeout"`    // milliseconds
	ShutdownTimeout int      `mapstructure:"shutdown_timeout"` // milliseconds
	AllowedOrigins  []string `mapstructure:"allowed_origins"`
}

// GeoAPIConfig holds the external geo-reference service settings. The API
// key goes out on every request as the X-CSCAPI-KEY header.
type GeoAPIConfig struct {
	BaseURL string `mapstructure:"base_url"`
	APIKey  string `mapstructure:"api_key"`
	Timeout int    `mapstructure:"timeout"` // milliseconds
}

// GetTimeout returns the lookup timeout as a duration, defaulting to 10s.
func (g GeoAPIConfig) GetTimeout() time.Duration {
	if g.Timeout <= 0 {
		return 10 * time.Second
	}
	return time.Duration(g.Timeout) * time.Millisecond
}

// DirectoryConfig holds the helper-directory backend settings.
type DirectoryConfig struct {
	BaseURL string `mapstructure:"base_url"`
	Timeout int    `mapstructure:"timeout"` // milliseconds
}

// GetTimeout returns the directory call timeout as a duration, defaulting
// to 15s.
func (d DirectoryConfig) GetTimeout() time.Duration {
	if d.Timeout <= 0 {
		return 15 * time.Second
	}
	return time.Duration(d.Timeout) * time.Millisecond
}

// CatalogConfig points at an optional catalog override file; when Path is
// empty the compiled-in defaults are used.
type CatalogConfig struct {
	Path string `mapstructure:"path"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}
