//go:build windows

package shell

import (
	"fmt"
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	modole32   = windows.NewLazySystemDLL("ole32.dll")
	modshell32 = windows.NewLazySystemDLL("shell32.dll")

	procCoInitializeEx   = modole32.NewProc("CoInitializeEx")
	procCoCreateInstance = modole32.NewProc("CoCreateInstance")
	procCreateBindCtx    = modole32.NewProc("CreateBindCtx")

	procSHCreateItemFromParsingName = modshell32.NewProc("SHCreateItemFromParsingName")
)

const (
	hrSFalse           = 0x00000001
	coinitApartment    = 0x2
	clsctxAll          = 0x17
	wtsForceExtraction = 0x4
	progdlgAutoTime    = 0x2
	progdlgNoMinimize  = 0x8
)

var (
	// CLSID of the per-user thumbnail cache service.
	clsidLocalThumbnailCache = windows.GUID{Data1: 0x50ef4544, Data2: 0xac9f, Data3: 0x4a8e, Data4: [8]byte{0xb2, 0x1b, 0x8a, 0x26, 0x18, 0x0d, 0xb1, 0x3f}}
	iidIThumbnailCache       = windows.GUID{Data1: 0xf676c15d, Data2: 0x596a, Data3: 0x4ce2, Data4: [8]byte{0x82, 0x34, 0x33, 0x99, 0x6f, 0x44, 0x5d, 0xb1}}
	clsidProgressDialog      = windows.GUID{Data1: 0xf8383852, Data2: 0xfcd3, Data3: 0x11d1, Data4: [8]byte{0xa6, 0xb9, 0x00, 0x60, 0x97, 0xdf, 0x5b, 0xd4}}
	iidIProgressDialog       = windows.GUID{Data1: 0xebbc7c04, Data2: 0x315e, Data3: 0x11d2, Data4: [8]byte{0xb6, 0x2f, 0x00, 0x60, 0x97, 0xdf, 0x5b, 0xd4}}
	iidIShellItem            = windows.GUID{Data1: 0x43826d1e, Data2: 0xe718, Data3: 0x42ee, Data4: [8]byte{0xbc, 0x55, 0x8e, 0x77, 0xfc, 0x70, 0x4e, 0x22}}
)

func hrFailed(hr uintptr) bool { return int32(hr) < 0 }

// comError carries the operation name and raw HRESULT of a failed COM call.
type comError struct {
	op string
	hr uintptr
}

func (e *comError) Error() string {
	return fmt.Sprintf("%s: %s (0x%08X)", e.op, syscall.Errno(e.hr).Error(), uint32(e.hr))
}

func newCOMError(op string, hr uintptr) error {
	return &comError{op: op, hr: hr}
}

// comObject is the IUnknown prefix every COM interface shares.
type comObject struct {
	vtbl *comVtbl
}

type comVtbl struct {
	queryInterface uintptr
	addRef         uintptr
	release        uintptr
}

func (o *comObject) Release() {
	if o == nil {
		return
	}
	syscall.SyscallN(o.vtbl.release, uintptr(unsafe.Pointer(o)))
}

// initCOM enters a single-threaded apartment on the current OS thread. The
// apartment is per-thread, so the caller must already hold the thread with
// runtime.LockOSThread and keep it until the session ends. The runtime stays
// initialized until the process exits.
func initCOM() error {
	hr, _, _ := procCoInitializeEx.Call(0, coinitApartment)
	// S_FALSE means the apartment was already initialized on this thread.
	if hrFailed(hr) && hr != hrSFalse {
		return newCOMError("CoInitializeEx", hr)
	}
	return nil
}

func createBindCtx() (*comObject, error) {
	var ctx *comObject
	hr, _, _ := procCreateBindCtx.Call(0, uintptr(unsafe.Pointer(&ctx)))
	if hrFailed(hr) {
		return nil, newCOMError("CreateBindCtx", hr)
	}
	return ctx, nil
}

func coCreateInstance(clsid, iid *windows.GUID, op string) (unsafe.Pointer, error) {
	var obj unsafe.Pointer
	hr, _, _ := procCoCreateInstance.Call(
		uintptr(unsafe.Pointer(clsid)),
		0,
		clsctxAll,
		uintptr(unsafe.Pointer(iid)),
		uintptr(unsafe.Pointer(&obj)),
	)
	if hrFailed(hr) {
		return nil, newCOMError(op, hr)
	}
	return obj, nil
}
