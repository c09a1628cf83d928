package config

// Config is the main application configuration struct.
type Config struct {
	App     AppConfig     `mapstructure:"app"`
	Server  ServerConfig  `mapstructure:"server"`
	Triage  TriageConfig  `mapstructure:"triage"`
	Logging LoggingConfig `mapstructure:"logging"`
}

type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

// ServerConfig holds the web listener settings. Timeouts are in milliseconds.
type ServerConfig struct {
	Address         string `mapstructure:"address"`
	MetricsAddress  string `mapstructure:"metrics_address"`
	ReadTimeout     int    `mapstructure:"read_timeout"`
	WriteTimeout    int    `mapstructure:"write_timeout"`
	ShutdownTimeout int    `mapstructure:"shutdown_timeout"`
}

// TriageConfig holds settings for the triage run itself. The scoring rules
// and weights are fixed in code and deliberately not configurable.
type TriageConfig struct {
	// DatasetPath optionally points at a JSON file with ticket records that
	// replaces the built-in sample set. Empty means use the built-in set.
	DatasetPath string `mapstructure:"dataset_path"`
	// MaxBodyLength truncates ticket bodies in the rendered listing.
	// Zero disables truncation.
	MaxBodyLength int `mapstructure:"max_body_length"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}
