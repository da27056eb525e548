package preload

import (
	"context"
	"log/slog"
	"time"

	"thumbwarm/internal/fileutil"
	"thumbwarm/internal/logging"
)

// Options configures a single preload run.
type Options struct {
	// Dir is the target directory whose immediate files get thumbnails.
	Dir string
}

// Outcome summarizes a completed run. Processed counts files handed to the
// thumbnail forcer, which is less than Total when the run was cancelled;
// Failed counts the subset whose forcing failed locally.
type Outcome struct {
	Dir       string
	Total     int
	Processed int
	Failed    int
	Cancelled bool
	Elapsed   time.Duration
}

// Run executes one preload pass over the directory in opts. The returned
// error always carries a fatal Reason tag; the Reason.Fatal split decides
// whether a forcer failure aborts the run or is logged and counted in the
// Outcome instead. Cancellation, whether through the progress dialog or ctx,
// truncates the run cleanly and is not an error.
func Run(ctx context.Context, opts Options, backend Backend, logger *slog.Logger) (*Outcome, error) {
	log := logging.WithComponent(logger, "preload")

	dir, err := fileutil.Canonical(opts.Dir)
	if err != nil {
		return nil, NewError(InvalidDirectory, err)
	}

	log.Info("searching for files", logging.FieldDirectory, dir)
	searchStart := time.Now()
	files, err := Enumerate(dir)
	if err != nil {
		return nil, err
	}
	log.Info("search complete", "files", len(files), "elapsed", time.Since(searchStart).Round(time.Millisecond).String())

	log.Info("connecting to thumbnail cache")
	session, err := backend.Connect()
	if err != nil {
		return nil, coerce(err, FailedToCreateThumbnailCache)
	}
	defer session.Close()

	log.Info("creating progress dialog")
	progress, err := backend.NewProgress(len(files))
	if err != nil {
		return nil, coerce(err, FailedToCreateProgressDialog)
	}

	start := time.Now()
	if err := progress.Show(); err != nil {
		return nil, coerce(err, FailedToShowProgressDialog)
	}
	defer func() {
		if err := progress.Close(); err != nil {
			log.Warn("failed to hide progress dialog", "error", coerce(err, FailedToHideProgressDialog))
		}
	}()

	outcome := &Outcome{Dir: dir, Total: len(files)}
	log.Info("preloading files", "files", len(files))

	for index, path := range files {
		if ctx.Err() != nil || progress.Cancelled() {
			outcome.Cancelled = true
			log.Info("preload cancelled", "processed", outcome.Processed, "total", outcome.Total)
			break
		}

		log.Info("preloading file", logging.FieldFile, path, "index", index+1, "total", outcome.Total)
		if err := progress.Update(index, outcome.Total, path); err != nil {
			return nil, coerce(err, FailedToUpdateProgressDialog)
		}

		outcome.Processed++
		if err := session.Force(path); err != nil {
			ferr := coerce(err, FailedToGenerateThumbnail)
			if reason, ok := ReasonOf(ferr); ok && reason.Fatal() {
				return nil, ferr
			}
			outcome.Failed++
			log.Warn("failed to preload file", logging.FieldFile, path, "error", ferr)
		}
	}

	outcome.Elapsed = time.Since(start)
	log.Info("preload finished",
		"processed", outcome.Processed,
		"failed", outcome.Failed,
		"elapsed", outcome.Elapsed.Round(time.Millisecond).String(),
	)
	return outcome, nil
}
