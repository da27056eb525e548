package config

import (
	"errors"
	"fmt"
)

// The shell thumbnail cache caps requested extraction sizes; anything past
// this is rejected by the service rather than scaled down.
const maxDimensions = 2560

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePreload(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validatePreload() error {
	if c.Preload.Dimensions > maxDimensions {
		return fmt.Errorf("preload.dimensions must be between 1 and %d", maxDimensions)
	}
	if c.Preload.LockDir == "" {
		return errors.New("preload.lock_dir must be set")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	return nil
}
