package library

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"sagelink/internal/services"
)

// probeExtensions is the ordered list of alternate extensions tried when a
// record's declared path is missing, typically because the recording was
// remuxed after the catalog entry was written.
var probeExtensions = []string{".mkv", ".mp4", ".avi", ".ts", ".mpg"}

// ResolveSource locates the media file backing a record. The declared path is
// tried verbatim first, then sibling files with the same stem and each probe
// extension. A record with no on-disk source resolves to services.ErrNotFound
// so callers skip it without failing the run.
func ResolveSource(declared string) (string, error) {
	declared = strings.TrimSpace(declared)
	if declared == "" {
		return "", services.Wrap(services.ErrNotFound, "library", "resolve source", "record has no file path", nil)
	}
	if info, err := os.Stat(declared); err == nil && !info.IsDir() {
		return declared, nil
	}

	stem := strings.TrimSuffix(declared, filepath.Ext(declared))
	for _, ext := range probeExtensions {
		candidate := stem + ext
		if candidate == declared {
			continue
		}
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
	}
	return "", services.Wrap(
		services.ErrNotFound,
		"library",
		"resolve source",
		fmt.Sprintf("no media file at %s or alternate extensions", declared),
		nil,
	)
}
