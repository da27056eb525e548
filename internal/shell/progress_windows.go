//go:build windows

package shell

import (
	"fmt"
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"

	"thumbwarm/internal/preload"
	"thumbwarm/internal/textutil"
)

// progressDialog wraps an IProgressDialog instance.
type progressDialog struct {
	vtbl *progressDialogVtbl
}

// Method order matches the IProgressDialog declaration in shlobj_core.h.
type progressDialogVtbl struct {
	comVtbl
	startProgressDialog uintptr
	stopProgressDialog  uintptr
	setTitle            uintptr
	setAnimation        uintptr
	hasUserCancelled    uintptr
	setProgress         uintptr
	setProgress64       uintptr
	setLine             uintptr
	setCancelMsg        uintptr
	timer               uintptr
}

func (d *progressDialog) Release() {
	(*comObject)(unsafe.Pointer(d)).Release()
}

func (d *progressDialog) setTitleText(title string) error {
	ptr, err := windows.UTF16PtrFromString(title)
	if err != nil {
		return fmt.Errorf("encode dialog title: %w", err)
	}
	hr, _, _ := syscall.SyscallN(d.vtbl.setTitle,
		uintptr(unsafe.Pointer(d)),
		uintptr(unsafe.Pointer(ptr)),
	)
	if hrFailed(hr) {
		return newCOMError("IProgressDialog::SetTitle", hr)
	}
	return nil
}

func (d *progressDialog) setLineText(line uint32, text string, compactPath bool) error {
	ptr, err := windows.UTF16PtrFromString(text)
	if err != nil {
		return fmt.Errorf("encode dialog line: %w", err)
	}
	compact := uintptr(0)
	if compactPath {
		compact = 1
	}
	hr, _, _ := syscall.SyscallN(d.vtbl.setLine,
		uintptr(unsafe.Pointer(d)),
		uintptr(line),
		uintptr(unsafe.Pointer(ptr)),
		compact,
		0,
	)
	if hrFailed(hr) {
		return newCOMError("IProgressDialog::SetLine", hr)
	}
	return nil
}

// progressSurface adapts the dialog to the preload.Progress contract.
type progressSurface struct {
	dlg      *progressDialog
	released bool
}

func newProgressSurface(title string, total int) (*progressSurface, error) {
	obj, err := coCreateInstance(&clsidProgressDialog, &iidIProgressDialog, "CoCreateInstance(ProgressDialog)")
	if err != nil {
		return nil, preload.NewError(preload.FailedToCreateProgressDialog, err)
	}
	dlg := (*progressDialog)(obj)

	if err := dlg.setTitleText(title); err != nil {
		dlg.Release()
		return nil, preload.NewError(preload.FailedToCreateProgressDialog, err)
	}
	summary := fmt.Sprintf("Preloading %s files", textutil.GroupedInt(total))
	if err := dlg.setLineText(1, summary, false); err != nil {
		dlg.Release()
		return nil, preload.NewError(preload.FailedToCreateProgressDialog, err)
	}

	return &progressSurface{dlg: dlg}, nil
}

func (p *progressSurface) Show() error {
	// The automatic time flag makes the dialog estimate completion itself.
	hr, _, _ := syscall.SyscallN(p.dlg.vtbl.startProgressDialog,
		uintptr(unsafe.Pointer(p.dlg)),
		0,
		0,
		progdlgAutoTime|progdlgNoMinimize,
		0,
	)
	if hrFailed(hr) {
		p.release()
		return preload.NewError(preload.FailedToShowProgressDialog, newCOMError("IProgressDialog::StartProgressDialog", hr))
	}
	return nil
}

func (p *progressSurface) Cancelled() bool {
	cancelled, _, _ := syscall.SyscallN(p.dlg.vtbl.hasUserCancelled,
		uintptr(unsafe.Pointer(p.dlg)),
	)
	return cancelled != 0
}

func (p *progressSurface) Update(index, total int, label string) error {
	hr, _, _ := syscall.SyscallN(p.dlg.vtbl.setProgress,
		uintptr(unsafe.Pointer(p.dlg)),
		uintptr(uint32(index)),
		uintptr(uint32(total)),
	)
	if hrFailed(hr) {
		return preload.NewError(preload.FailedToUpdateProgressDialog, newCOMError("IProgressDialog::SetProgress", hr))
	}
	if err := p.dlg.setLineText(2, label, true); err != nil {
		return preload.NewError(preload.FailedToUpdateProgressDialog, err)
	}
	return nil
}

func (p *progressSurface) Close() error {
	hr, _, _ := syscall.SyscallN(p.dlg.vtbl.stopProgressDialog,
		uintptr(unsafe.Pointer(p.dlg)),
	)
	p.release()
	if hrFailed(hr) {
		return preload.NewError(preload.FailedToHideProgressDialog, newCOMError("IProgressDialog::StopProgressDialog", hr))
	}
	return nil
}

func (p *progressSurface) release() {
	if p.released {
		return
	}
	p.released = true
	p.dlg.Release()
}
