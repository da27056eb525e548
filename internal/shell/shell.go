package shell

import "errors"

// ErrUnsupported reports that the host OS has no shell thumbnail cache.
var ErrUnsupported = errors.New("thumbnail preloading requires the Windows shell")

// Options configures the shell backend.
type Options struct {
	// Dimensions is the requested square thumbnail size in pixels.
	Dimensions uint32
	// DialogTitle is shown on the progress dialog.
	DialogTitle string
}
