package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePreload(); err != nil {
		return err
	}
	return c.normalizeLogging()
}

func (c *Config) normalizePreload() error {
	c.Preload.DialogTitle = strings.TrimSpace(c.Preload.DialogTitle)
	if c.Preload.DialogTitle == "" {
		c.Preload.DialogTitle = defaultDialogTitle
	}
	if c.Preload.Dimensions == 0 {
		c.Preload.Dimensions = defaultDimensions
	}

	if strings.TrimSpace(c.Preload.LockDir) == "" {
		c.Preload.LockDir = defaultLockDir
	}
	lockDir, err := ExpandPath(c.Preload.LockDir)
	if err != nil {
		return fmt.Errorf("preload.lock_dir: %w", err)
	}
	c.Preload.LockDir = lockDir
	return nil
}

func (c *Config) normalizeLogging() error {
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	if dir := strings.TrimSpace(c.Logging.LogDir); dir != "" {
		expanded, err := ExpandPath(dir)
		if err != nil {
			return fmt.Errorf("logging.log_dir: %w", err)
		}
		c.Logging.LogDir = expanded
	} else {
		c.Logging.LogDir = ""
	}
	return nil
}
