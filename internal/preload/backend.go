package preload

// Session is an open connection to the OS thumbnail-generation service plus
// the bind context used to resolve paths into shell items. A run creates
// exactly one and invokes it for every file.
type Session interface {
	// Force resolves path into a shell item and regenerates its thumbnail,
	// ignoring any cached entry. Failures are local to the given file and
	// carry FailedToCreateShellItem or FailedToGenerateThumbnail.
	Force(path string) error

	// Close releases the session's handles. Safe to call once the run ends.
	Close()
}

// Progress is the modal, cancellable indicator shown for the duration of a
// run. Implementations start in the initialized state; Show begins display.
type Progress interface {
	Show() error

	// Cancelled reports whether the user asked to stop. Polled before each
	// file's work begins.
	Cancelled() bool

	// Update advances the indicator to the given zero-based index and names
	// the file being processed. An update failure is unrecoverable.
	Update(index, total int, label string) error

	// Close dismisses the indicator. Called exactly once, on every exit path
	// after Show succeeded.
	Close() error
}

// Backend provides the OS services a preload run needs. The windows shell
// backend is the production implementation; tests substitute fakes.
type Backend interface {
	// Connect initializes the object subsystem and acquires the bind context
	// and thumbnail cache service. Each acquisition failure is fatal with its
	// own reason tag. Connect may pin the calling goroutine to its OS thread
	// until Session.Close, so the session, the progress indicator, and Close
	// must all be driven from the goroutine that connected.
	Connect() (Session, error)

	// NewProgress creates the progress indicator primed with the run's total
	// file count.
	NewProgress(total int) (Progress, error)
}
