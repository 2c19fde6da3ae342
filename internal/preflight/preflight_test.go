package preflight_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"sagelink/internal/preflight"
)

func TestCheckDirectoryAccess(t *testing.T) {
	dir := t.TempDir()
	result := preflight.CheckDirectoryAccess("Library directory", dir)
	if !result.Passed {
		t.Fatalf("expected pass for writable dir: %+v", result)
	}

	result = preflight.CheckDirectoryAccess("Library directory", filepath.Join(dir, "missing"))
	if result.Passed {
		t.Fatalf("expected failure for missing dir: %+v", result)
	}

	file := filepath.Join(dir, "file")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	result = preflight.CheckDirectoryAccess("Library directory", file)
	if result.Passed {
		t.Fatalf("expected failure for non-directory: %+v", result)
	}
}

func TestCheckJellyfin(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-Emby-Token") != "good" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	result := preflight.CheckJellyfin(context.Background(), server.URL, "good")
	if !result.Passed {
		t.Fatalf("expected pass: %+v", result)
	}

	result = preflight.CheckJellyfin(context.Background(), server.URL, "bad")
	if result.Passed || result.Detail != "auth failed (invalid api key)" {
		t.Fatalf("expected auth failure: %+v", result)
	}

	result = preflight.CheckJellyfin(context.Background(), "", "good")
	if result.Passed {
		t.Fatalf("expected failure for missing url: %+v", result)
	}
}

func TestAllPassed(t *testing.T) {
	pass := preflight.Result{Passed: true}
	fail := preflight.Result{}
	if !preflight.AllPassed([]preflight.Result{pass, pass}) {
		t.Fatal("expected all-pass")
	}
	if preflight.AllPassed([]preflight.Result{pass, fail}) {
		t.Fatal("expected failure to propagate")
	}
}
