package library

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"sagelink/internal/config"
	"sagelink/internal/fileutil"
	"sagelink/internal/logging"
	"sagelink/internal/state"
)

// Sweeper removes artifacts whose backing source file is gone and prunes the
// directories they leave behind. It only ever deletes symlinks with dead
// targets and the sidecar files recorded for them; regular files are never
// touched.
type Sweeper struct {
	tvRoot     string
	moviesRoot string
	logger     *slog.Logger
}

// NewSweeper constructs a sweeper from configuration.
func NewSweeper(cfg *config.Config, logger *slog.Logger) *Sweeper {
	return &Sweeper{
		tvRoot:     cfg.TVRoot(),
		moviesRoot: cfg.MoviesRoot(),
		logger:     logging.NewComponentLogger(logger, "sweeper"),
	}
}

// Sweep walks the previous snapshot and removes every link whose target no
// longer exists, together with its sidecar. Missing links and non-link files
// at recorded paths are skipped, as are sidecars still claimed by the current
// snapshot (a link whose extension changed keeps the same sidecar path).
// Returns the number of links removed.
func (s *Sweeper) Sweep(ctx context.Context, previous, current state.Snapshot) int {
	logger := logging.WithContext(ctx, s.logger)
	inUse := make(map[string]bool, len(current)*2)
	for _, artifact := range current {
		inUse[fileutil.PathKey(artifact.LinkPath)] = true
		inUse[fileutil.PathKey(artifact.SidecarPath)] = true
	}

	removed := 0
	for id, artifact := range previous {
		isLink, err := fileutil.IsSymlink(artifact.LinkPath)
		if err != nil {
			logger.Warn("inspect link failed", logging.Error(err), logging.String("link", artifact.LinkPath))
			continue
		}
		if !isLink {
			continue
		}
		target, err := fileutil.LinkTarget(artifact.LinkPath)
		if err != nil {
			logger.Warn("read link failed", logging.Error(err), logging.String("link", artifact.LinkPath))
			continue
		}
		if fileutil.FileExists(target) {
			continue
		}
		if inUse[fileutil.PathKey(artifact.LinkPath)] {
			continue
		}

		if err := os.Remove(artifact.LinkPath); err != nil {
			logger.Warn("remove stale link failed", logging.Error(err), logging.String("link", artifact.LinkPath))
			continue
		}
		if fileutil.FileExists(artifact.SidecarPath) && !inUse[fileutil.PathKey(artifact.SidecarPath)] {
			if err := os.Remove(artifact.SidecarPath); err != nil {
				logger.Warn("remove stale sidecar failed", logging.Error(err), logging.String("sidecar", artifact.SidecarPath))
			}
		}
		logger.Info("removed stale artifact",
			logging.String(logging.FieldMediaID, id),
			logging.String("link", artifact.LinkPath),
		)
		removed++
	}

	s.pruneEmptyDirs(ctx)
	return removed
}

// pruneEmptyDirs removes empty directories under both library roots, deepest
// first so an emptied season folder can cascade into its show folder. A show
// folder holding nothing but its tvshow.nfo is treated as empty.
func (s *Sweeper) pruneEmptyDirs(ctx context.Context) {
	logger := logging.WithContext(ctx, s.logger)
	for _, root := range []string{s.tvRoot, s.moviesRoot} {
		dirs := collectDirs(root)
		sort.Slice(dirs, func(i, j int) bool {
			return strings.Count(dirs[i], string(filepath.Separator)) > strings.Count(dirs[j], string(filepath.Separator))
		})
		for _, dir := range dirs {
			if fileutil.SamePath(dir, root) {
				continue
			}
			entries, err := os.ReadDir(dir)
			if err != nil {
				logger.Warn("read dir failed during prune", logging.Error(err), logging.String("dir", dir))
				continue
			}
			if len(entries) == 1 && !entries[0].IsDir() && entries[0].Name() == "tvshow.nfo" {
				if err := os.Remove(filepath.Join(dir, "tvshow.nfo")); err != nil {
					logger.Warn("remove orphaned tvshow.nfo failed", logging.Error(err), logging.String("dir", dir))
					continue
				}
			} else if len(entries) != 0 {
				continue
			}
			removed, err := fileutil.RemoveIfEmpty(dir)
			if err != nil {
				logger.Warn("remove empty dir failed", logging.Error(err), logging.String("dir", dir))
				continue
			}
			if removed {
				logger.Debug("pruned empty dir", logging.String("dir", dir))
			}
		}
	}
}

func collectDirs(root string) []string {
	var dirs []string
	_ = filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			dirs = append(dirs, path)
		}
		return nil
	})
	return dirs
}
