package logger

// Config holds configuration for the logger.
type Config struct {
	// Level controls verbosity (debug, info, warn, error).
	Level string `mapstructure:"level" default:"info"`
	// Format selects the encoding (console or json).
	Format string `mapstructure:"format" default:"console"`
}
