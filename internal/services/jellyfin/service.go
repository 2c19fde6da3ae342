package jellyfin

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"sagelink/internal/config"
	"sagelink/internal/services"
)

// HTTPDoer describes the HTTP client used by the Jellyfin service.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Service triggers Jellyfin library scans after a sync run.
type Service interface {
	Refresh(ctx context.Context) error
}

type httpService struct {
	baseURL string
	apiKey  string
	client  HTTPDoer
}

type noopService struct{}

func (noopService) Refresh(context.Context) error { return nil }

// NewConfiguredService returns an HTTP-backed Jellyfin service when refresh is
// enabled and credentials are present, and a no-op service otherwise.
func NewConfiguredService(cfg *config.Config) Service {
	if cfg == nil || !cfg.Jellyfin.Enabled {
		return noopService{}
	}
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.Jellyfin.URL), "/")
	apiKey := strings.TrimSpace(cfg.Jellyfin.APIKey)
	if baseURL == "" || apiKey == "" {
		return noopService{}
	}
	return NewHTTPService(baseURL, apiKey, http.DefaultClient)
}

// NewHTTPService constructs an HTTP-backed Jellyfin service.
func NewHTTPService(baseURL, apiKey string, client HTTPDoer) Service {
	return &httpService{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		apiKey:  strings.TrimSpace(apiKey),
		client:  client,
	}
}

func (s *httpService) Refresh(ctx context.Context) error {
	if s == nil || s.client == nil || s.baseURL == "" || s.apiKey == "" {
		return nil
	}
	refreshURL := fmt.Sprintf("%s/Library/Refresh", s.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, refreshURL, nil)
	if err != nil {
		return services.Wrap(services.ErrExternalTool, "jellyfin", "build refresh request", "", err)
	}
	req.Header.Set("X-Emby-Token", s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return services.Wrap(services.ErrExternalTool, "jellyfin", "refresh library", "", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= http.StatusMultipleChoices {
		return services.Wrap(
			services.ErrExternalTool,
			"jellyfin",
			"refresh library",
			fmt.Sprintf("refresh returned %d", resp.StatusCode),
			nil,
		)
	}
	return nil
}
