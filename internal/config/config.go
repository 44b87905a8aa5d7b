package config

import "time"

// Config holds server configuration values.
type Config struct {
	Addr              string        `mapstructure:"addr" yaml:"addr"`
	ReadHeaderTimeout time.Duration `mapstructure:"read_header_timeout" yaml:"read_header_timeout"`
	ShutdownTimeout   time.Duration `mapstructure:"shutdown_timeout" yaml:"shutdown_timeout"`
	LogLevel          string        `mapstructure:"log_level" yaml:"log_level"`

	// AdminPassword is the shared admin secret. Admin login is disabled
	// while it is empty.
	AdminPassword string        `mapstructure:"admin_password" yaml:"admin_password"`
	MuteDuration  time.Duration `mapstructure:"mute_duration" yaml:"mute_duration"`
	AppealLink    string        `mapstructure:"appeal_link" yaml:"appeal_link"`

	// StaticDir is served at the root path when non-empty.
	StaticDir string `mapstructure:"static_dir" yaml:"static_dir"`
}

// Default returns configuration with reasonable starter defaults.
func Default() Config {
	return Config{
		Addr:              ":8080",
		ReadHeaderTimeout: 5 * time.Second,
		ShutdownTimeout:   5 * time.Second,
		LogLevel:          "info",
		MuteDuration:      5 * time.Minute,
		AppealLink:        "https://example.com/appeal",
		StaticDir:         "web",
	}
}
