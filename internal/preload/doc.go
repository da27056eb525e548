// Package preload drives the thumbnail-warming pipeline: enumerate a
// directory, open a session against the OS thumbnail cache, force a thumbnail
// for each file while reflecting progress in a cancellable dialog, and tear
// the dialog down on every exit path.
//
// The orchestrator talks to the OS through the Backend, Session, and Progress
// interfaces so the loop's fatal-versus-local failure policy can be exercised
// without a live shell. Failures carry a closed Reason taxonomy: setup and
// progress-dialog failures abort the run, per-file failures are logged and
// skipped, and a teardown failure is reported without changing the run's
// outcome.
package preload
