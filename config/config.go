package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	LogLevel int `yaml:"log_level"`

	// Target site and destination store
	SiteURL    string `yaml:"site_url"`
	OutputFile string `yaml:"output_file"`

	// Browser options
	Headless           bool `yaml:"headless"`
	WaitTimeoutSeconds int  `yaml:"wait_timeout_seconds"`

	// Carousel shape
	TracksPerPage int `yaml:"tracks_per_page"`
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var config *Config

	// Unmarshal the YAML data into the struct
	err = yaml.Unmarshal(data, &config)
	if err != nil {
		return nil, err
	}

	// Set defaults if not provided
	if config.SiteURL == "" {
		config.SiteURL = "https://bandcamp.com/"
	}

	if config.OutputFile == "" {
		config.OutputFile = "tracks.csv"
	}

	if config.WaitTimeoutSeconds == 0 {
		config.WaitTimeoutSeconds = 10
	}

	if config.TracksPerPage == 0 {
		config.TracksPerPage = 8
	}

	return config, nil
}

// WaitTimeout returns the bounded wait policy for element visibility.
func (c *Config) WaitTimeout() time.Duration {
	return time.Duration(c.WaitTimeoutSeconds) * time.Second
}
