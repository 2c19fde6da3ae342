package sagetv

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"sagelink/internal/config"
	"sagelink/internal/logging"
	"sagelink/internal/services"
)

const userAgent = "sagelink/0.1"

// HTTPDoer describes the HTTP client used by the catalog client.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client fetches media file records from the SageTV SageX web API.
type Client struct {
	baseURL  string
	user     string
	password string
	pageSize int
	client   HTTPDoer
	logger   *slog.Logger
}

// NewClient constructs a catalog client from configuration.
func NewClient(cfg *config.Config, logger *slog.Logger) *Client {
	timeout := time.Duration(cfg.SageTV.RequestTimeout) * time.Second
	return &Client{
		baseURL:  fmt.Sprintf("http://%s:%d/sagex/api", cfg.SageTV.Host, cfg.SageTV.Port),
		user:     cfg.SageTV.User,
		password: cfg.SageTV.Password,
		pageSize: cfg.SageTV.PageSize,
		client:   &http.Client{Timeout: timeout},
		logger:   logging.NewComponentLogger(logger, "sagetv"),
	}
}

// NewClientWithDoer allows injecting the HTTP transport (used in tests).
func NewClientWithDoer(baseURL string, pageSize int, doer HTTPDoer, logger *slog.Logger) *Client {
	return &Client{
		baseURL:  baseURL,
		pageSize: pageSize,
		client:   doer,
		logger:   logging.NewComponentLogger(logger, "sagetv"),
	}
}

// PageSize returns the number of records requested per page.
func (c *Client) PageSize() int {
	return c.pageSize
}

// FetchPage retrieves one page of media records starting at the given offset.
// A page shorter than PageSize signals the end of the listing.
func (c *Client) FetchPage(ctx context.Context, start int) ([]Record, error) {
	query := url.Values{}
	query.Set("command", "GetMediaFiles")
	query.Set("format", "xml")
	query.Set("size", strconv.Itoa(c.pageSize))
	query.Set("start", strconv.Itoa(start))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+query.Encode(), nil)
	if err != nil {
		return nil, services.Wrap(services.ErrExternalTool, "sagetv", "build request", "", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/xml")
	if c.user != "" || c.password != "" {
		req.SetBasicAuth(c.user, c.password)
	}

	c.logger.Debug("fetching media files page", logging.Int("start", start), logging.Int("size", c.pageSize))

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, services.Wrap(services.ErrExternalTool, "sagetv", "fetch page", fmt.Sprintf("start=%d", start), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return nil, services.Wrap(
			services.ErrExternalTool,
			"sagetv",
			"fetch page",
			fmt.Sprintf("start=%d: status %d: %s", start, resp.StatusCode, string(body)),
			nil,
		)
	}

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, services.Wrap(services.ErrExternalTool, "sagetv", "read page", fmt.Sprintf("start=%d", start), err)
	}

	var parsed mediaFilesResponse
	if err := xml.Unmarshal(payload, &parsed); err != nil {
		return nil, services.Wrap(services.ErrExternalTool, "sagetv", "parse page", fmt.Sprintf("start=%d", start), err)
	}

	records := make([]Record, 0, len(parsed.MediaFiles))
	for _, mf := range parsed.MediaFiles {
		records = append(records, mf.toRecord())
	}
	return records, nil
}
