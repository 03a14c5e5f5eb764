package config

import "errors"

// Config is the top-level configuration struct for angularize.
// Field tags use mapstructure for viper unmarshalling.
type Config struct {
	Output  OutputConfig  `mapstructure:"output"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// OutputConfig holds artifact placement settings.
type OutputConfig struct {
	Dir       string `mapstructure:"dir"`
	Overwrite bool   `mapstructure:"overwrite"`
}

// LoggingConfig holds log verbosity and format settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Valid logging option values.
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Sentinel errors for configuration validation.
var (
	// ErrInvalidOutputDir indicates the output directory is empty.
	ErrInvalidOutputDir = errors.New("output.dir must not be empty")
	// ErrInvalidLogLevel indicates an unrecognized logging level.
	ErrInvalidLogLevel = errors.New("logging.level must be one of debug, info, warn, error")
	// ErrInvalidLogFormat indicates an unrecognized logging format.
	ErrInvalidLogFormat = errors.New("logging.format must be text or json")
)

var validLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Validate checks Config invariants and returns the first error found.
func (c *Config) Validate() error {
	if c.Output.Dir == "" {
		return ErrInvalidOutputDir
	}

	if !validLevels[c.Logging.Level] {
		return ErrInvalidLogLevel
	}

	if c.Logging.Format != LogFormatText && c.Logging.Format != LogFormatJSON {
		return ErrInvalidLogFormat
	}

	return nil
}
