// Package shell implements the preload backend against the Windows shell.
//
// It talks COM directly through ole32 and shell32: one CoInitializeEx per
// process, a bind context plus the local IThumbnailCache instance per run,
// IShellItem resolution per file, and an IProgressDialog as the cancellable
// progress surface. Thumbnails are requested with the force-extraction flag
// so the cache regenerates entries instead of serving hits.
//
// On every other operating system New returns ErrUnsupported and the CLI
// degrades to a no-op message.
package shell
