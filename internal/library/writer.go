package library

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"sagelink/internal/fileutil"
	"sagelink/internal/logging"
	"sagelink/internal/nfo"
	"sagelink/internal/sagetv"
	"sagelink/internal/services"
	"sagelink/internal/state"
)

// Outcome reports what the writer did with one record's link.
type Outcome int

const (
	OutcomeUnchanged Outcome = iota
	OutcomeCreated
	OutcomeReplaced
)

// String renders the outcome for log output.
func (o Outcome) String() string {
	switch o {
	case OutcomeCreated:
		return "created"
	case OutcomeReplaced:
		return "replaced"
	default:
		return "unchanged"
	}
}

// Writer materializes links and sidecar files. It is stateful only for the
// once-per-run tvshow.nfo bookkeeping.
type Writer struct {
	logger    *slog.Logger
	seenShows map[string]bool
	symlinkFn func(oldname, newname string) error
	writeFile func(name string, data []byte, perm os.FileMode) error
}

// NewWriter constructs a writer for one sync run.
func NewWriter(logger *slog.Logger) *Writer {
	return &Writer{
		logger:    logging.NewComponentLogger(logger, "writer"),
		seenShows: make(map[string]bool),
		symlinkFn: os.Symlink,
		writeFile: os.WriteFile,
	}
}

// Write ensures the link and sidecar for a record exist with the given base
// filename and returns the artifact entry for the current snapshot. Existing
// links pointing elsewhere are replaced; non-link files at the link path are
// a conflict and the record is skipped. Sidecar files are only ever written
// when absent so manual edits survive.
func (w *Writer) Write(rec sagetv.Record, target Target, base string) (Outcome, state.Artifact, error) {
	if err := os.MkdirAll(target.Dir, 0o755); err != nil {
		return OutcomeUnchanged, state.Artifact{}, services.Wrap(
			services.ErrTransient, "writer", "create target dir", target.Dir, err)
	}

	linkPath := filepath.Join(target.Dir, base+filepath.Ext(target.SourcePath))
	sidecarPath := filepath.Join(target.Dir, base+".nfo")

	outcome, err := w.ensureLink(linkPath, target.SourcePath)
	if err != nil {
		return OutcomeUnchanged, state.Artifact{}, err
	}

	if err := w.ensureSidecar(rec, target, sidecarPath); err != nil {
		return outcome, state.Artifact{}, err
	}
	if target.ShowDir != "" {
		w.ensureShowSidecar(rec, target.ShowDir)
	}

	artifact := state.Artifact{
		FilenameBase: base,
		LinkPath:     linkPath,
		SidecarPath:  sidecarPath,
		SourcePath:   target.SourcePath,
		SourceMTime:  sourceModTime(target.SourcePath),
	}
	return outcome, artifact, nil
}

func (w *Writer) ensureLink(linkPath, sourcePath string) (Outcome, error) {
	info, err := os.Lstat(linkPath)
	switch {
	case err == nil && info.Mode()&os.ModeSymlink == 0:
		return OutcomeUnchanged, services.Wrap(
			services.ErrConflict,
			"writer",
			"create link",
			fmt.Sprintf("%s exists and is not a symlink", linkPath),
			nil,
		)
	case err == nil:
		current, readErr := fileutil.LinkTarget(linkPath)
		if readErr == nil && fileutil.SamePath(current, sourcePath) {
			return OutcomeUnchanged, nil
		}
		if removeErr := os.Remove(linkPath); removeErr != nil {
			return OutcomeUnchanged, services.Wrap(
				services.ErrTransient, "writer", "replace link", linkPath, removeErr)
		}
		if linkErr := w.symlinkFn(sourcePath, linkPath); linkErr != nil {
			return OutcomeUnchanged, services.Wrap(
				services.ErrTransient, "writer", "replace link", linkPath, linkErr)
		}
		w.logger.Info("replaced link", logging.String("link", linkPath), logging.String("target", sourcePath))
		return OutcomeReplaced, nil
	case os.IsNotExist(err):
		if linkErr := w.symlinkFn(sourcePath, linkPath); linkErr != nil {
			return OutcomeUnchanged, services.Wrap(
				services.ErrTransient, "writer", "create link", linkPath, linkErr)
		}
		w.logger.Info("created link", logging.String("link", linkPath), logging.String("target", sourcePath))
		return OutcomeCreated, nil
	default:
		return OutcomeUnchanged, services.Wrap(
			services.ErrTransient, "writer", "inspect link path", linkPath, err)
	}
}

func (w *Writer) ensureSidecar(rec sagetv.Record, target Target, sidecarPath string) error {
	if fileutil.FileExists(sidecarPath) {
		return nil
	}

	var body []byte
	var err error
	if rec.IsMovie {
		body, err = nfo.EncodeMovie(nfo.MovieDoc{
			Title:     rec.Title,
			Year:      rec.Year,
			Plot:      rec.Description,
			Rating:    rec.Rating,
			Genre:     rec.Genre,
			RuntimeMs: rec.DurationMs,
			Directors: nfo.SplitNames(rec.Directors),
			Writers:   nfo.SplitNames(rec.Writers),
		})
	} else {
		body, err = nfo.EncodeEpisode(nfo.EpisodeDoc{
			Title:     rec.EpisodeTitle,
			ShowTitle: rec.Title,
			Season:    target.Season,
			Episode:   target.Episode,
			Plot:      rec.Description,
			Year:      rec.Year,
			Genre:     rec.Genre,
			RuntimeMs: rec.DurationMs,
		})
	}
	if err != nil {
		return services.Wrap(services.ErrTransient, "writer", "encode sidecar", sidecarPath, err)
	}
	if err := w.writeFile(sidecarPath, body, 0o644); err != nil {
		return services.Wrap(services.ErrTransient, "writer", "write sidecar", sidecarPath, err)
	}
	w.logger.Debug("wrote sidecar", logging.String("path", sidecarPath))
	return nil
}

// ensureShowSidecar writes the series-level tvshow.nfo the first time a show
// is seen this run. Failures are logged and swallowed; the episode's own
// artifacts are already in place.
func (w *Writer) ensureShowSidecar(rec sagetv.Record, showDir string) {
	if w.seenShows[showDir] {
		return
	}
	w.seenShows[showDir] = true

	path := filepath.Join(showDir, "tvshow.nfo")
	if fileutil.FileExists(path) {
		return
	}
	body, err := nfo.EncodeShow(nfo.ShowDoc{
		Title:     rec.Title,
		Plot:      rec.Description,
		Year:      rec.Year,
		Genre:     rec.Genre,
		Directors: nfo.SplitNames(rec.Directors),
		Writers:   nfo.SplitNames(rec.Writers),
	})
	if err != nil {
		w.logger.Warn("encode tvshow.nfo failed", logging.Error(err), logging.String("show_dir", showDir))
		return
	}
	if err := w.writeFile(path, body, 0o644); err != nil {
		w.logger.Warn("write tvshow.nfo failed", logging.Error(err), logging.String("path", path))
		return
	}
	w.logger.Debug("wrote tvshow.nfo", logging.String("path", path))
}

func sourceModTime(path string) int64 {
	info, err := os.Stat(path)
	if err != nil {
		return 0
	}
	return info.ModTime().Unix()
}
