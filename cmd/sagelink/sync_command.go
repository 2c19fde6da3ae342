package main

import (
	"errors"
	"fmt"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"sagelink/internal/library"
	"sagelink/internal/sagetv"
	"sagelink/internal/services"
	"sagelink/internal/state"
)

func newSyncCommand(cmdCtx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Run one reconciliation pass against the SageTV server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cmdCtx.ensureConfig()
			if err != nil {
				return err
			}

			lock := flock.New(filepath.Join(cfg.Paths.StateDir, "sagelink.lock"))
			locked, err := lock.TryLock()
			if err != nil {
				return fmt.Errorf("acquire run lock: %w", err)
			}
			if !locked {
				return errors.New("another sagelink sync is already running")
			}
			defer func() { _ = lock.Unlock() }()

			logger, err := newLogger(cfg)
			if err != nil {
				return fmt.Errorf("initialize logging: %w", err)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			ctx = services.WithRunID(ctx, uuid.NewString())

			store, err := state.Open(cfg, logger)
			if err != nil {
				return fmt.Errorf("open state store: %w", err)
			}
			defer store.Close()

			catalog := sagetv.NewClient(cfg, logger)
			reconciler := library.NewReconciler(cfg, catalog, store, logger)
			summary, err := reconciler.Run(ctx)
			if err != nil {
				return fmt.Errorf("persist sync state: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable(
				[]string{"Processed", "Created", "Replaced", "Unchanged", "Skipped", "Failed", "Removed"},
				[][]string{{
					fmt.Sprintf("%d", summary.Processed),
					fmt.Sprintf("%d", summary.Created),
					fmt.Sprintf("%d", summary.Replaced),
					fmt.Sprintf("%d", summary.Unchanged),
					fmt.Sprintf("%d", summary.Skipped),
					fmt.Sprintf("%d", summary.Failed),
					fmt.Sprintf("%d", summary.Removed),
				}},
				[]columnAlignment{alignRight, alignRight, alignRight, alignRight, alignRight, alignRight, alignRight},
			))
			fmt.Fprintf(out, "Completed in %s\n", summary.Duration.Round(time.Millisecond))

			if summary.FetchErr != nil {
				return fmt.Errorf("sync finished with a fetch error: %w", summary.FetchErr)
			}
			return nil
		},
	}
}
