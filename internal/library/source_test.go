package library_test

import (
	"errors"
	"path/filepath"
	"testing"

	"sagelink/internal/library"
	"sagelink/internal/services"
	"sagelink/internal/testsupport"
)

func TestResolveSourceDeclaredPath(t *testing.T) {
	dir := t.TempDir()
	declared := filepath.Join(dir, "Show.S01E02.ts")
	testsupport.WriteFile(t, declared)

	got, err := library.ResolveSource(declared)
	if err != nil {
		t.Fatalf("ResolveSource: %v", err)
	}
	if got != declared {
		t.Fatalf("expected declared path, got %q", got)
	}
}

func TestResolveSourceProbesAlternateExtensions(t *testing.T) {
	dir := t.TempDir()
	testsupport.WriteFile(t, filepath.Join(dir, "Show.S01E02.mkv"))
	testsupport.WriteFile(t, filepath.Join(dir, "Show.S01E02.mp4"))

	got, err := library.ResolveSource(filepath.Join(dir, "Show.S01E02.ts"))
	if err != nil {
		t.Fatalf("ResolveSource: %v", err)
	}
	// .mkv is probed before .mp4
	if filepath.Ext(got) != ".mkv" {
		t.Fatalf("expected .mkv probe to win, got %q", got)
	}
}

func TestResolveSourceMissing(t *testing.T) {
	_, err := library.ResolveSource(filepath.Join(t.TempDir(), "gone.mpg"))
	if !errors.Is(err, services.ErrNotFound) {
		t.Fatalf("expected not-found error, got %v", err)
	}
	if !services.IsSkippable(err) {
		t.Fatal("missing source must be skippable, not fatal")
	}
}

func TestResolveSourceEmptyPath(t *testing.T) {
	_, err := library.ResolveSource("  ")
	if !errors.Is(err, services.ErrNotFound) {
		t.Fatalf("expected not-found error, got %v", err)
	}
}
