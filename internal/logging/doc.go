// Package logging constructs the slog loggers used across thumbwarm.
//
// It offers a human-oriented console handler (colorized when stdout is a
// terminal) and a machine-oriented JSON handler, selected through config.
// Standardized field keys keep run, file, and component attributes consistent
// between the two formats.
package logging
