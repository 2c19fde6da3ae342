package fileutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestPathKeyNormalizesSeparatorsAndDots(t *testing.T) {
	a := PathKey("/media/show/../show/ep.mkv")
	b := PathKey("/media/show/ep.mkv")
	if a != b {
		t.Fatalf("expected equal keys, got %q and %q", a, b)
	}
}

func TestSamePath(t *testing.T) {
	if !SamePath("/a/b/c", "/a/b/./c") {
		t.Fatal("expected paths to compare equal")
	}
	if SamePath("/a/b/c", "/a/b/d") {
		t.Fatal("expected paths to differ")
	}
}

func TestIsSymlink(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "target.txt")
	if err := os.WriteFile(target, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	link := filepath.Join(dir, "link.txt")
	if err := os.Symlink(target, link); err != nil {
		t.Fatal(err)
	}

	if ok, err := IsSymlink(link); err != nil || !ok {
		t.Fatalf("IsSymlink(link) = %v, %v", ok, err)
	}
	if ok, err := IsSymlink(target); err != nil || ok {
		t.Fatalf("IsSymlink(regular) = %v, %v", ok, err)
	}
	if ok, err := IsSymlink(filepath.Join(dir, "missing")); err != nil || ok {
		t.Fatalf("IsSymlink(missing) = %v, %v", ok, err)
	}
}

func TestRemoveIfEmpty(t *testing.T) {
	dir := t.TempDir()
	empty := filepath.Join(dir, "empty")
	if err := os.Mkdir(empty, 0o755); err != nil {
		t.Fatal(err)
	}

	removed, err := RemoveIfEmpty(empty)
	if err != nil || !removed {
		t.Fatalf("RemoveIfEmpty(empty) = %v, %v", removed, err)
	}

	full := filepath.Join(dir, "full")
	if err := os.Mkdir(full, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(full, "f"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	removed, err = RemoveIfEmpty(full)
	if err != nil || removed {
		t.Fatalf("RemoveIfEmpty(full) = %v, %v", removed, err)
	}

	removed, err = RemoveIfEmpty(filepath.Join(dir, "missing"))
	if err != nil || removed {
		t.Fatalf("RemoveIfEmpty(missing) = %v, %v", removed, err)
	}
}
