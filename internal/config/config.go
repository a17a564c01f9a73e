package config

import (
	"fmt"
	"os"
	"sync"

	"github.com/pagekit/pagekit/internal/config/data"
)

// Config is the root configuration for the application.
type Config struct {
	Pagekit *Pagekit `yaml:"pagekit"`
	path    string
	mx      sync.RWMutex
}

// NewConfig creates a new Config with default settings.
func NewConfig() *Config {
	return &Config{
		Pagekit: NewPagekit(),
		path:    AppConfigFile,
	}
}

// Load loads the configuration from the given path.
// If the file doesn't exist and force is false, the current config is kept.
func (c *Config) Load(path string, force bool) error {
	c.mx.Lock()
	defer c.mx.Unlock()

	c.path = path
	load := data.MustLoadYAML
	if !force {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return nil
		}
		load = data.LoadYAML
	}
	if err := load(path, c); err != nil {
		return fmt.Errorf("failed to load config from %s: %w", path, err)
	}

	if c.Pagekit == nil {
		c.Pagekit = NewPagekit()
	}
	c.Pagekit.Validate()

	return nil
}

// Save saves the configuration to the path it was loaded from.
// If force is false, only saves if the file already exists.
func (c *Config) Save(force bool) error {
	c.mx.RLock()
	defer c.mx.RUnlock()

	if c.path == "" {
		return fmt.Errorf("no config file path configured")
	}

	_, err := os.Stat(c.path)
	if !force && err != nil {
		return nil
	}

	if err := data.SaveYAML(c.path, c); err != nil {
		return fmt.Errorf("failed to save config to %s: %w", c.path, err)
	}

	return nil
}

// Refine applies CLI flag overrides on top of the loaded configuration.
// Precedence: CLI flag > config file > built-in default.
func (c *Config) Refine(flags *data.Flags) error {
	c.mx.Lock()
	defer c.mx.Unlock()

	if c.Pagekit == nil {
		return fmt.Errorf("config.Pagekit is nil")
	}

	return c.Pagekit.Override(flags)
}
