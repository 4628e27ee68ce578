package config

// Defaults returns the default configuration.
func Defaults() *Config {
	return &Config{
		Version: 1,
		Home:    "~/.lastword",
		Input: InputConfig{
			StripNumbering: true,
		},
		Completion: CompletionConfig{
			Workers: 0,
			Verify:  false,
		},
		Output: OutputConfig{
			DefaultFormat: "auto",
			Color:         "auto",
			Verbose:       false,
		},
		Logging: LoggingConfig{
			Level: "error",
			File:  "",
		},
	}
}
