// Package fileutil provides path normalization and symlink helpers shared by
// the reconciliation engine.
package fileutil
