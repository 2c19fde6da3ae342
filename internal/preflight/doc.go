// Package preflight validates the environment before a sync run: library and
// state directories must be writable, the SageTV server must answer queries,
// and Jellyfin must accept the configured API key when refresh is enabled.
package preflight
