// Package jellyfin triggers Jellyfin library refreshes over its HTTP API.
// When refresh is disabled or credentials are missing the configured service
// degrades to a no-op so the sync workflow never depends on Jellyfin being
// reachable.
package jellyfin
