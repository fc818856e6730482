package pagemirror

import "time"

// Config holds the settings that can be supplied from a config file.
// Zero values mean "not set".
type Config struct {
	Extensions []string      `yaml:"extensions"`
	UserAgent  string        `yaml:"user_agent"`
	Timeout    time.Duration `yaml:"timeout"`
	Rate       float64       `yaml:"rate"`
	Output     string        `yaml:"output"`
	Verbose    bool          `yaml:"verbose"`
}

// Validate returns an error if the config contains invalid fields.
func (c *Config) Validate() error {
	if c.Timeout < 0 {
		return Errorf(EINVALID, "timeout must not be negative")
	}
	if c.Rate < 0 {
		return Errorf(EINVALID, "rate must not be negative")
	}
	return nil
}
