// Package library implements the reconciliation engine that mirrors the
// SageTV catalog into a Jellyfin-consumable directory tree of symlinks and
// NFO sidecars.
//
// One run loads the previous artifact snapshot, resolves each catalog record
// to a target path (recalling memoized collision decisions), materializes or
// repairs its link and sidecar, sweeps artifacts whose source vanished, and
// persists the new snapshot. Every step is idempotent against the filesystem
// so interrupted runs are safely retried.
package library
