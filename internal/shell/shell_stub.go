//go:build !windows

package shell

import "thumbwarm/internal/preload"

// New reports that no shell thumbnail cache exists on this platform.
func New(Options) (preload.Backend, error) {
	return nil, ErrUnsupported
}
