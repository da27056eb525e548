package preload

import (
	"errors"
	"fmt"
)

// Reason identifies which stage of a preload run failed. The set is closed:
// every error produced by this package and its backends carries one of these.
type Reason uint8

const (
	// InvalidDirectory means the target path does not exist or cannot be
	// canonicalized.
	InvalidDirectory Reason = iota
	// FailedToReadDirectory means listing the target directory failed.
	FailedToReadDirectory
	// FailedToInitialiseCOM means the object-activation subsystem could not
	// be initialized.
	FailedToInitialiseCOM
	// FailedToCreateBindContext means the name-resolution bind context could
	// not be created.
	FailedToCreateBindContext
	// FailedToCreateThumbnailCache means the local thumbnail cache service
	// could not be instantiated.
	FailedToCreateThumbnailCache
	// FailedToCreateProgressDialog means the progress dialog could not be
	// created or initialized.
	FailedToCreateProgressDialog
	// FailedToShowProgressDialog means the progress dialog failed to begin
	// displaying.
	FailedToShowProgressDialog
	// FailedToUpdateProgressDialog means a per-item progress update failed.
	FailedToUpdateProgressDialog
	// FailedToCreateShellItem means one file's path could not be resolved to
	// a shell item. Local to that file.
	FailedToCreateShellItem
	// FailedToGenerateThumbnail means one file's thumbnail generation failed.
	// Local to that file.
	FailedToGenerateThumbnail
	// FailedToHideProgressDialog means dialog teardown failed. Reported, but
	// the run's outcome stands.
	FailedToHideProgressDialog
)

var reasonText = map[Reason]string{
	InvalidDirectory:             "invalid directory",
	FailedToReadDirectory:        "failed to read directory",
	FailedToInitialiseCOM:        "failed to initialise COM",
	FailedToCreateBindContext:    "failed to create bind context",
	FailedToCreateThumbnailCache: "failed to create thumbnail cache",
	FailedToCreateProgressDialog: "failed to create progress dialog",
	FailedToShowProgressDialog:   "failed to show progress dialog",
	FailedToUpdateProgressDialog: "failed to update progress dialog",
	FailedToCreateShellItem:      "failed to create shell item",
	FailedToGenerateThumbnail:    "failed to generate thumbnail",
	FailedToHideProgressDialog:   "failed to hide progress dialog",
}

func (r Reason) String() string {
	if text, ok := reasonText[r]; ok {
		return text
	}
	return fmt.Sprintf("unknown preload failure (%d)", uint8(r))
}

// Fatal reports whether the reason aborts the whole run. Per-file resolution
// and generation failures only skip the affected file, and a teardown failure
// never reverses an already-determined outcome.
func (r Reason) Fatal() bool {
	switch r {
	case FailedToCreateShellItem, FailedToGenerateThumbnail, FailedToHideProgressDialog:
		return false
	default:
		return true
	}
}

// Error is a preload failure tagged with the stage that produced it.
type Error struct {
	Reason Reason
	Err    error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s [%v]", e.Reason, e.Err)
	}
	return e.Reason.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewError wraps err with the given reason tag.
func NewError(reason Reason, err error) *Error {
	return &Error{Reason: reason, Err: err}
}

// ReasonOf extracts the taxonomy tag from err, if it carries one.
func ReasonOf(err error) (Reason, bool) {
	var perr *Error
	if errors.As(err, &perr) {
		return perr.Reason, true
	}
	return 0, false
}

// coerce returns err unchanged when it already carries a reason tag, and
// otherwise wraps it with the fallback reason for the stage that observed it.
func coerce(err error, fallback Reason) error {
	var perr *Error
	if errors.As(err, &perr) {
		return perr
	}
	return NewError(fallback, err)
}
