package jellyfin_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"sagelink/internal/config"
	"sagelink/internal/services"
	"sagelink/internal/services/jellyfin"
)

func TestRefreshPostsWithToken(t *testing.T) {
	var gotMethod, gotPath, gotToken string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotToken = r.Header.Get("X-Emby-Token")
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	svc := jellyfin.NewHTTPService(server.URL, "secret", server.Client())
	if err := svc.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	if gotMethod != http.MethodPost || gotPath != "/Library/Refresh" {
		t.Fatalf("unexpected request: %s %s", gotMethod, gotPath)
	}
	if gotToken != "secret" {
		t.Fatalf("unexpected token %q", gotToken)
	}
}

func TestRefreshErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusUnauthorized)
	}))
	defer server.Close()

	svc := jellyfin.NewHTTPService(server.URL, "secret", server.Client())
	err := svc.Refresh(context.Background())
	if !errors.Is(err, services.ErrExternalTool) {
		t.Fatalf("expected external tool error, got %v", err)
	}
}

func TestConfiguredServiceDisabled(t *testing.T) {
	cfg := config.Default()
	cfg.Jellyfin.Enabled = false

	svc := jellyfin.NewConfiguredService(&cfg)
	if err := svc.Refresh(context.Background()); err != nil {
		t.Fatalf("disabled service should be a no-op, got %v", err)
	}
}

func TestConfiguredServiceMissingCredentials(t *testing.T) {
	cfg := config.Default()
	cfg.Jellyfin.Enabled = true
	cfg.Jellyfin.URL = ""
	cfg.Jellyfin.APIKey = ""

	svc := jellyfin.NewConfiguredService(&cfg)
	if err := svc.Refresh(context.Background()); err != nil {
		t.Fatalf("service without credentials should be a no-op, got %v", err)
	}
}
