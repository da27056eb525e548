//go:build windows

package shell

import (
	"runtime"
	"strings"

	"thumbwarm/internal/preload"
)

type backend struct {
	dimensions uint32
	title      string
}

// New returns the Windows shell backend.
func New(opts Options) (preload.Backend, error) {
	dims := opts.Dimensions
	if dims == 0 {
		dims = 72
	}
	title := strings.TrimSpace(opts.DialogTitle)
	if title == "" {
		title = "Thumbnail Preloader"
	}
	return &backend{dimensions: dims, title: title}, nil
}

func (b *backend) Connect() (preload.Session, error) {
	// The cache lives in a single-threaded apartment bound to the thread
	// that initializes it, so the connecting goroutine holds its OS thread
	// until Close releases the session.
	runtime.LockOSThread()

	if err := initCOM(); err != nil {
		runtime.UnlockOSThread()
		return nil, preload.NewError(preload.FailedToInitialiseCOM, err)
	}

	bindCtx, err := createBindCtx()
	if err != nil {
		runtime.UnlockOSThread()
		return nil, preload.NewError(preload.FailedToCreateBindContext, err)
	}

	obj, err := coCreateInstance(&clsidLocalThumbnailCache, &iidIThumbnailCache, "CoCreateInstance(LocalThumbnailCache)")
	if err != nil {
		bindCtx.Release()
		runtime.UnlockOSThread()
		return nil, preload.NewError(preload.FailedToCreateThumbnailCache, err)
	}

	return &session{
		bindCtx:    bindCtx,
		cache:      (*thumbnailCache)(obj),
		dimensions: b.dimensions,
	}, nil
}

func (b *backend) NewProgress(total int) (preload.Progress, error) {
	return newProgressSurface(b.title, total)
}
