package library_test

import (
	"errors"
	"path/filepath"
	"testing"

	"sagelink/internal/library"
	"sagelink/internal/sagetv"
	"sagelink/internal/services"
	"sagelink/internal/testsupport"
)

func TestResolveEpisodeFromFilename(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	media := t.TempDir()
	source := filepath.Join(media, "Show.S01E02.mkv")
	testsupport.WriteFile(t, source)

	resolver := library.NewResolver(cfg)
	target, err := resolver.Resolve(sagetv.Record{
		ID:       "42",
		Title:    "Show",
		FilePath: source,
	})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	wantDir := filepath.Join(cfg.TVRoot(), "Show", "Season 01")
	if target.Dir != wantDir {
		t.Fatalf("expected dir %q, got %q", wantDir, target.Dir)
	}
	if target.Base != "Show - S01E02 - Episode" {
		t.Fatalf("unexpected base %q", target.Base)
	}
	if target.Season != 1 || target.Episode != 2 {
		t.Fatalf("unexpected numbering %d/%d", target.Season, target.Episode)
	}
	if target.ShowDir != filepath.Join(cfg.TVRoot(), "Show") {
		t.Fatalf("unexpected show dir %q", target.ShowDir)
	}
}

func TestResolveEpisodeHintsAndTitleSanitized(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	source := filepath.Join(t.TempDir(), "recording.ts")
	testsupport.WriteFile(t, source)

	resolver := library.NewResolver(cfg)
	target, err := resolver.Resolve(sagetv.Record{
		ID:            "9",
		Title:         "Show: Reloaded",
		EpisodeTitle:  "Who/What?",
		SeasonNumber:  3,
		EpisodeNumber: 7,
		FilePath:      source,
	})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	if target.Base != "Show- Reloaded - S03E07 - Who-What-" {
		t.Fatalf("unexpected base %q", target.Base)
	}
	if filepath.Base(filepath.Dir(target.Dir)) != "Show- Reloaded" {
		t.Fatalf("unexpected show folder in %q", target.Dir)
	}
}

func TestResolveEpisodeUnsortedBucket(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	source := filepath.Join(t.TempDir(), "recording.mpg")
	testsupport.WriteFile(t, source)

	resolver := library.NewResolver(cfg)
	target, err := resolver.Resolve(sagetv.Record{ID: "5", Title: "Show", FilePath: source})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if target.Season != 0 || target.Episode != 1 {
		t.Fatalf("expected unsorted bucket 0/1, got %d/%d", target.Season, target.Episode)
	}
	if filepath.Base(target.Dir) != "Season 00" {
		t.Fatalf("unexpected season dir %q", target.Dir)
	}
}

func TestResolveMovieFolderMode(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	source := filepath.Join(t.TempDir(), "movie.mkv")
	testsupport.WriteFile(t, source)

	resolver := library.NewResolver(cfg)
	target, err := resolver.Resolve(sagetv.Record{
		ID:       "7",
		IsMovie:  true,
		Title:    "Some Movie",
		Year:     "1999",
		FilePath: source,
	})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	if target.Base != "Some Movie (1999)" {
		t.Fatalf("unexpected base %q", target.Base)
	}
	if target.Dir != filepath.Join(cfg.MoviesRoot(), "Some Movie (1999)") {
		t.Fatalf("unexpected dir %q", target.Dir)
	}
	if target.ShowDir != "" {
		t.Fatal("movies must not carry a show dir")
	}
}

func TestResolveMovieFlatMode(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithFlatMovies())
	source := filepath.Join(t.TempDir(), "movie.mkv")
	testsupport.WriteFile(t, source)

	resolver := library.NewResolver(cfg)
	target, err := resolver.Resolve(sagetv.Record{ID: "7", IsMovie: true, Title: "Some Movie", FilePath: source})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	if target.Dir != cfg.MoviesRoot() {
		t.Fatalf("expected flat movies root, got %q", target.Dir)
	}
	if target.Base != "Some Movie" {
		t.Fatalf("unexpected base without year %q", target.Base)
	}
}

func TestResolveMissingSourceSkips(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	resolver := library.NewResolver(cfg)

	_, err := resolver.Resolve(sagetv.Record{ID: "1", Title: "Show", FilePath: "/nope/missing.mkv"})
	if !errors.Is(err, services.ErrNotFound) {
		t.Fatalf("expected not-found, got %v", err)
	}
}
