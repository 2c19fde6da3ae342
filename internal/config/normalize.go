package config

import (
	"os"
	"strings"
)

// normalize expands path fields and applies environment overrides so the rest
// of the system can treat the config as absolute and complete.
func (c *Config) normalize() error {
	var err error
	if c.Paths.LibraryDir, err = expandPath(c.Paths.LibraryDir); err != nil {
		return err
	}
	if c.Paths.StateDir, err = expandPath(c.Paths.StateDir); err != nil {
		return err
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return err
	}

	if v := strings.TrimSpace(os.Getenv("SAGETV_USER")); v != "" && c.SageTV.User == "" {
		c.SageTV.User = v
	}
	if v := strings.TrimSpace(os.Getenv("SAGETV_PASS")); v != "" && c.SageTV.Password == "" {
		c.SageTV.Password = v
	}
	if v := strings.TrimSpace(os.Getenv("JELLYFIN_API_KEY")); v != "" && c.Jellyfin.APIKey == "" {
		c.Jellyfin.APIKey = v
	}

	c.SageTV.Host = strings.TrimSpace(c.SageTV.Host)
	c.Jellyfin.URL = strings.TrimRight(strings.TrimSpace(c.Jellyfin.URL), "/")
	c.Library.TVDir = strings.TrimSpace(c.Library.TVDir)
	c.Library.MoviesDir = strings.TrimSpace(c.Library.MoviesDir)
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))

	if c.SageTV.PageSize <= 0 {
		c.SageTV.PageSize = defaultPageSize
	}
	if c.SageTV.PageDelayMs < 0 {
		c.SageTV.PageDelayMs = 0
	}
	if c.SageTV.RequestTimeout <= 0 {
		c.SageTV.RequestTimeout = defaultRequestTimeout
	}
	if c.Notifications.RequestTimeout <= 0 {
		c.Notifications.RequestTimeout = defaultNotifyTimeout
	}
	return nil
}
