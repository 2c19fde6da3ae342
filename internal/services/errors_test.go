package services_test

import (
	"errors"
	"fmt"
	"testing"

	"sagelink/internal/services"
)

func TestWrapTagsMarkerAndJoinsDetail(t *testing.T) {
	base := errors.New("boom")
	err := services.Wrap(services.ErrExternalTool, "sagetv", "fetch page", "request failed", base)
	if !errors.Is(err, services.ErrExternalTool) {
		t.Fatalf("expected marker to be preserved: %v", err)
	}
	if !errors.Is(err, base) {
		t.Fatalf("expected cause to be preserved: %v", err)
	}
	want := "external service error: sagetv: fetch page: request failed: boom"
	if err.Error() != want {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}

func TestWrapDefaultsToTransient(t *testing.T) {
	err := services.Wrap(nil, "", "", "", nil)
	if !errors.Is(err, services.ErrTransient) {
		t.Fatalf("expected transient marker: %v", err)
	}
	want := fmt.Sprintf("%s: service failure", services.ErrTransient)
	if err.Error() != want {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}

func TestIsSkippable(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want bool
	}{
		{"not found", services.Wrap(services.ErrNotFound, "library", "resolve source", "missing", nil), true},
		{"conflict", services.Wrap(services.ErrConflict, "library", "write link", "not a symlink", nil), true},
		{"transient", services.Wrap(services.ErrTransient, "state", "persist", "disk full", nil), false},
		{"nil", nil, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := services.IsSkippable(tc.err); got != tc.want {
				t.Fatalf("IsSkippable(%v) = %v, want %v", tc.err, got, tc.want)
			}
		})
	}
}
