//go:build windows

package shell

import (
	"runtime"
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"

	"thumbwarm/internal/preload"
)

// thumbnailCache wraps an IThumbnailCache instance.
type thumbnailCache struct {
	vtbl *thumbnailCacheVtbl
}

type thumbnailCacheVtbl struct {
	comVtbl
	getThumbnail     uintptr
	getThumbnailByID uintptr
}

func (c *thumbnailCache) Release() {
	(*comObject)(unsafe.Pointer(c)).Release()
}

// getThumbnail asks the cache to materialize a thumbnail for item at the
// given square size. The returned shared bitmap is released immediately: the
// cache population is the only effect we want.
func (c *thumbnailCache) getThumbnail(item *comObject, size uint32, flags uint32) error {
	var bitmap *comObject
	hr, _, _ := syscall.SyscallN(c.vtbl.getThumbnail,
		uintptr(unsafe.Pointer(c)),
		uintptr(unsafe.Pointer(item)),
		uintptr(size),
		uintptr(flags),
		uintptr(unsafe.Pointer(&bitmap)),
		0,
		0,
	)
	if bitmap != nil {
		bitmap.Release()
	}
	if hrFailed(hr) {
		return newCOMError("IThumbnailCache::GetThumbnail", hr)
	}
	return nil
}

// session owns the bind context and cache handles for one preload run.
type session struct {
	bindCtx    *comObject
	cache      *thumbnailCache
	dimensions uint32
}

func (s *session) Force(path string) error {
	pathPtr, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return preload.NewError(preload.FailedToCreateShellItem, err)
	}

	var item *comObject
	hr, _, _ := procSHCreateItemFromParsingName.Call(
		uintptr(unsafe.Pointer(pathPtr)),
		uintptr(unsafe.Pointer(s.bindCtx)),
		uintptr(unsafe.Pointer(&iidIShellItem)),
		uintptr(unsafe.Pointer(&item)),
	)
	if hrFailed(hr) {
		return preload.NewError(preload.FailedToCreateShellItem, newCOMError("SHCreateItemFromParsingName", hr))
	}
	defer item.Release()

	if err := s.cache.getThumbnail(item, s.dimensions, wtsForceExtraction); err != nil {
		return preload.NewError(preload.FailedToGenerateThumbnail, err)
	}
	return nil
}

func (s *session) Close() {
	s.cache.Release()
	s.bindCtx.Release()
	// Releases the OS thread Connect pinned for the apartment.
	runtime.UnlockOSThread()
}
