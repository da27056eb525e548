// Package config loads, normalizes, and validates thumbwarm configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads TOML files. The Config type centralizes every knob the
// CLI needs: thumbnail dimensions, the progress dialog title, lock and log
// directories, and logging output settings.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
