package config

const (
	defaultConfigPath  = "~/.config/thumbwarm/config.toml"
	defaultDimensions  = 72
	defaultDialogTitle = "Thumbnail Preloader"
	defaultLockDir     = "~/.local/state/thumbwarm"
	defaultLogLevel    = "info"
	defaultLogFormat   = "console"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Preload: Preload{
			Dimensions:  defaultDimensions,
			DialogTitle: defaultDialogTitle,
			LockDir:     defaultLockDir,
		},
		Logging: Logging{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
	}
}
