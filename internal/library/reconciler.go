package library

import (
	"context"
	"log/slog"
	"time"

	"sagelink/internal/config"
	"sagelink/internal/logging"
	"sagelink/internal/notifications"
	"sagelink/internal/sagetv"
	"sagelink/internal/services"
	"sagelink/internal/services/jellyfin"
	"sagelink/internal/state"
)

// Catalog supplies paginated media records. *sagetv.Client satisfies it; tests
// substitute fakes.
type Catalog interface {
	PageSize() int
	FetchPage(ctx context.Context, start int) ([]sagetv.Record, error)
}

// Summary reports what one sync run did.
type Summary struct {
	Processed int
	Created   int
	Replaced  int
	Unchanged int
	Skipped   int
	Failed    int
	Removed   int
	Duration  time.Duration
	FetchErr  error
}

// Changed reports whether the run mutated the library tree.
func (s *Summary) Changed() bool {
	return s.Created+s.Replaced+s.Removed > 0
}

// Reconciler drives one sync run: fetch records page by page, materialize
// artifacts, sweep stale ones, and persist the new snapshot.
type Reconciler struct {
	cfg        *config.Config
	catalog    Catalog
	store      *state.Store
	jellyfin   jellyfin.Service
	notifier   notifications.Service
	logger     *slog.Logger
	rootLogger *slog.Logger
}

// NewReconciler constructs a reconciler with default collaborators.
func NewReconciler(cfg *config.Config, catalog Catalog, store *state.Store, logger *slog.Logger) *Reconciler {
	return NewReconcilerWithDependencies(cfg, catalog, store, logger,
		jellyfin.NewConfiguredService(cfg), notifications.NewService(cfg))
}

// NewReconcilerWithDependencies allows injecting collaborators (used in tests).
func NewReconcilerWithDependencies(
	cfg *config.Config,
	catalog Catalog,
	store *state.Store,
	logger *slog.Logger,
	refresher jellyfin.Service,
	notifier notifications.Service,
) *Reconciler {
	return &Reconciler{
		cfg:        cfg,
		catalog:    catalog,
		store:      store,
		jellyfin:   refresher,
		notifier:   notifier,
		logger:     logging.NewComponentLogger(logger, "reconciler"),
		rootLogger: logger,
	}
}

// Run executes one full sync. Record-level failures are isolated; a page
// fetch failure stops pagination but the sweep and state save still happen so
// the run stays restartable. The returned error covers state persistence
// only.
func (r *Reconciler) Run(ctx context.Context) (*Summary, error) {
	logger := logging.WithContext(ctx, r.logger)
	started := time.Now()
	summary := &Summary{}

	previous, err := r.store.Load(ctx)
	if err != nil {
		logger.Warn("loading previous snapshot failed, starting from empty state", logging.Error(err))
		previous = state.Snapshot{}
	}
	logger.Info("sync started", logging.Int("tracked_artifacts", len(previous)))

	if err := r.notifier.NotifySyncStarted(ctx); err != nil {
		logger.Warn("sync start notification failed", logging.Error(err))
	}

	current := state.Snapshot{}
	resolver := NewResolver(r.cfg)
	writer := NewWriter(r.rootLogger)

	r.paginate(ctx, func(rec sagetv.Record) {
		summary.Processed++
		recCtx := services.WithMediaID(ctx, rec.ID)
		recLogger := logging.WithContext(recCtx, r.logger)
		outcome, err := r.processRecord(recCtx, rec, previous, current, resolver, writer)
		switch {
		case err != nil && services.IsSkippable(err):
			recLogger.Warn("record skipped", logging.Error(err))
			summary.Skipped++
		case err != nil:
			recLogger.Error("record failed", logging.Error(err))
			summary.Failed++
		case outcome == OutcomeCreated:
			summary.Created++
		case outcome == OutcomeReplaced:
			summary.Replaced++
		default:
			summary.Unchanged++
		}
	}, summary)

	sweeper := NewSweeper(r.cfg, r.rootLogger)
	summary.Removed = sweeper.Sweep(ctx, previous, current)

	saveErr := r.store.Replace(ctx, current)
	if saveErr != nil {
		logger.Error("persisting snapshot failed", logging.Error(saveErr))
	}

	if summary.Changed() {
		if err := r.jellyfin.Refresh(ctx); err != nil {
			logger.Warn("jellyfin refresh failed", logging.Error(err))
		} else {
			logger.Info("jellyfin refresh requested")
		}
	}

	summary.Duration = time.Since(started)
	logger.Info("sync completed",
		logging.Int("processed", summary.Processed),
		logging.Int("created", summary.Created),
		logging.Int("replaced", summary.Replaced),
		logging.Int("unchanged", summary.Unchanged),
		logging.Int("skipped", summary.Skipped),
		logging.Int("failed", summary.Failed),
		logging.Int("removed", summary.Removed),
		logging.Duration("duration", summary.Duration),
	)

	if summary.FetchErr != nil {
		if err := r.notifier.NotifyError(ctx, summary.FetchErr, "sync"); err != nil {
			logger.Warn("error notification failed", logging.Error(err))
		}
	}
	if err := r.notifier.NotifySyncCompleted(ctx, summary.Processed, summary.Removed, summary.Failed, summary.Duration); err != nil {
		logger.Warn("sync completion notification failed", logging.Error(err))
	}

	return summary, saveErr
}

// paginate fetches pages until the catalog is exhausted, the configured
// record cap is hit, or a fetch fails. The inter-page delay is a politeness
// throttle toward the catalog server.
func (r *Reconciler) paginate(ctx context.Context, handle func(sagetv.Record), summary *Summary) {
	logger := logging.WithContext(ctx, r.logger)
	pageSize := r.catalog.PageSize()
	maxFiles := r.cfg.SageTV.MaxFiles
	delay := time.Duration(r.cfg.SageTV.PageDelayMs) * time.Millisecond

	start := 0
	for {
		page, err := r.catalog.FetchPage(ctx, start)
		if err != nil {
			logger.Error("page fetch failed, stopping pagination", logging.Error(err), logging.Int("start", start))
			summary.FetchErr = err
			return
		}
		for _, rec := range page {
			if maxFiles > 0 && summary.Processed >= maxFiles {
				logger.Info("record cap reached", logging.Int("max_files", maxFiles))
				return
			}
			handle(rec)
		}
		if len(page) < pageSize {
			return
		}
		start += pageSize

		if delay > 0 {
			select {
			case <-ctx.Done():
				summary.FetchErr = ctx.Err()
				return
			case <-time.After(delay):
			}
		}
	}
}

func (r *Reconciler) processRecord(
	ctx context.Context,
	rec sagetv.Record,
	previous, current state.Snapshot,
	resolver *Resolver,
	writer *Writer,
) (Outcome, error) {
	target, err := resolver.Resolve(rec)
	if err != nil {
		return OutcomeUnchanged, err
	}

	base := target.Base
	if prev, ok := previous[rec.ID]; ok && prev.FilenameBase != "" {
		base = prev.FilenameBase
	} else {
		base = FinalBase(target.Dir, target.Base, target.SourcePath, rec.ID)
		if base != target.Base {
			logging.WithContext(ctx, r.logger).Info("collision resolved with identity suffix",
				logging.String(logging.FieldDecisionType, "collision_suffix"),
				logging.String("base", base),
			)
		}
	}

	outcome, artifact, err := writer.Write(rec, target, base)
	if err != nil {
		return OutcomeUnchanged, err
	}
	current[rec.ID] = artifact
	return outcome, nil
}
