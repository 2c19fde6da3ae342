package library

import (
	"fmt"
	"path/filepath"
	"strings"

	"sagelink/internal/config"
	"sagelink/internal/episodeid"
	"sagelink/internal/sagetv"
	"sagelink/internal/textutil"
)

// Target is the resolved output location for one record before collision
// handling: the directory, the default base filename, and the source file the
// link will point at. ShowDir is set for episodes only and locates the
// series-level tvshow.nfo.
type Target struct {
	Dir        string
	Base       string
	SourcePath string
	ShowDir    string
	Season     int
	Episode    int
}

// Resolver computes target directories and default base filenames.
type Resolver struct {
	tvRoot     string
	moviesRoot string
	flatMovies bool
}

// NewResolver constructs a resolver from configuration.
func NewResolver(cfg *config.Config) *Resolver {
	return &Resolver{
		tvRoot:     cfg.TVRoot(),
		moviesRoot: cfg.MoviesRoot(),
		flatMovies: cfg.Library.FlatMovies,
	}
}

// Resolve locates the record's source file and derives its target directory
// and default base filename. Collision handling happens afterwards so the
// memoized base from a previous run can short-circuit it.
func (r *Resolver) Resolve(rec sagetv.Record) (Target, error) {
	source, err := ResolveSource(rec.FilePath)
	if err != nil {
		return Target{}, err
	}

	title := strings.TrimSpace(rec.Title)
	if title == "" {
		title = textutil.DeriveTitle(source)
	}

	if rec.IsMovie {
		return r.resolveMovie(rec, title, source), nil
	}
	return r.resolveEpisode(rec, title, source), nil
}

func (r *Resolver) resolveEpisode(rec sagetv.Record, title, source string) Target {
	season, episode := episodeid.Identify(rec.SeasonNumber, rec.EpisodeNumber, filepath.Base(source))

	show := textutil.SanitizeName(title)
	episodeTitle := textutil.SanitizeName(rec.EpisodeTitle)
	if strings.TrimSpace(rec.EpisodeTitle) == "" {
		episodeTitle = "Episode"
	}

	showDir := filepath.Join(r.tvRoot, show)
	return Target{
		Dir:        filepath.Join(showDir, fmt.Sprintf("Season %02d", season)),
		Base:       fmt.Sprintf("%s - S%02dE%02d - %s", show, season, episode, episodeTitle),
		SourcePath: source,
		ShowDir:    showDir,
		Season:     season,
		Episode:    episode,
	}
}

func (r *Resolver) resolveMovie(rec sagetv.Record, title, source string) Target {
	name := textutil.SanitizeName(title)
	if year := strings.TrimSpace(rec.Year); year != "" {
		name = fmt.Sprintf("%s (%s)", name, year)
	}

	dir := r.moviesRoot
	if !r.flatMovies {
		dir = filepath.Join(r.moviesRoot, name)
	}
	return Target{
		Dir:        dir,
		Base:       name,
		SourcePath: source,
	}
}
