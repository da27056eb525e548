package main

import (
	"errors"
	"fmt"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"thumbwarm/internal/logging"
	"thumbwarm/internal/preload"
	"thumbwarm/internal/shell"
	"thumbwarm/internal/textutil"
)

func newPreloadCommand(ctx *commandContext) *cobra.Command {
	var dirFlag string
	var dimensionsFlag uint32

	cmd := &cobra.Command{
		Use:   "preload [directory]",
		Short: "Force thumbnail generation for every file in a directory",
		Long: "Preload enumerates the immediate files of a directory and asks the " +
			"Windows thumbnail cache to regenerate a thumbnail for each one, so " +
			"Explorer never has to build them on demand. A modal progress dialog " +
			"reports progress and allows cancellation.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := strings.TrimSpace(dirFlag)
			if len(args) == 1 {
				if dir != "" {
					return errors.New("pass the directory either positionally or with --dir, not both")
				}
				dir = args[0]
			}
			if dir == "" {
				return errors.New("specify a directory to preload (positional or --dir)")
			}

			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if dimensionsFlag > 0 {
				cfg.Preload.Dimensions = dimensionsFlag
				if err := cfg.Validate(); err != nil {
					return err
				}
			}

			// The thumbnail cache session is single-instance; refuse to race
			// another run instead of confusing the shell service.
			lock, err := acquireRunLock(cfg.Preload.LockDir)
			if err != nil {
				return err
			}
			defer func() { _ = lock.Unlock() }()

			backend, err := shell.New(shell.Options{
				Dimensions:  cfg.Preload.Dimensions,
				DialogTitle: cfg.Preload.DialogTitle,
			})
			if errors.Is(err, shell.ErrUnsupported) {
				fmt.Fprintln(cmd.OutOrStdout(), "Thumbnail preloading is only supported on Windows; nothing to do.")
				return nil
			}
			if err != nil {
				return err
			}

			logger, err := logging.NewFromConfig(cfg)
			if err != nil {
				return fmt.Errorf("set up logging: %w", err)
			}

			runLogger := logging.WithRun(logger, uuid.NewString(), dir)

			signalCtx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			outcome, err := preload.Run(signalCtx, preload.Options{Dir: dir}, backend, runLogger)
			if err != nil {
				return fmt.Errorf("preload %s: %w", dir, err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderSummary(outcome))
			if outcome.Cancelled {
				fmt.Fprintf(out, "Preload cancelled after %s of %s files.\n",
					textutil.GroupedInt(outcome.Processed), textutil.GroupedInt(outcome.Total))
			} else {
				fmt.Fprintf(out, "Successfully preloaded %s files.\n", textutil.GroupedInt(outcome.Processed))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&dirFlag, "dir", "d", "", "Directory to preload")
	cmd.Flags().Uint32Var(&dimensionsFlag, "dimensions", 0, "Thumbnail size in pixels (overrides config)")
	return cmd
}

// acquireRunLock takes the single-instance lock under lockDir, refusing when
// another run holds it. The caller unlocks the returned lock when done.
func acquireRunLock(lockDir string) (*flock.Flock, error) {
	lock := flock.New(filepath.Join(lockDir, "thumbwarm.lock"))
	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire run lock: %w", err)
	}
	if !locked {
		return nil, errors.New("another thumbwarm run is already active")
	}
	return lock, nil
}
