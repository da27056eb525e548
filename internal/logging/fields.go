package logging

import "log/slog"

const (
	// FieldComponent is the standardized structured logging key for component names.
	FieldComponent = "component"
	// FieldRunID is the standardized structured logging key for preload run identifiers.
	FieldRunID = "run_id"
	// FieldDirectory is the standardized structured logging key for the target directory.
	FieldDirectory = "dir"
	// FieldFile is the standardized structured logging key for the file being preloaded.
	FieldFile = "file"
)

// WithComponent returns a logger tagged with the given component name.
func WithComponent(logger *slog.Logger, component string) *slog.Logger {
	if logger == nil {
		return NewNop()
	}
	return logger.With(slog.String(FieldComponent, component))
}

// WithRun returns a logger tagged with a run identifier and target directory.
func WithRun(logger *slog.Logger, runID, dir string) *slog.Logger {
	if logger == nil {
		return NewNop()
	}
	return logger.With(slog.String(FieldRunID, runID), slog.String(FieldDirectory, dir))
}
