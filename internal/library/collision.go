package library

import (
	"path/filepath"

	"sagelink/internal/fileutil"
)

// collisionExtensions is the fixed set of extensions checked when deciding
// whether a default base filename already belongs to a different source.
var collisionExtensions = []string{".mpg", ".mkv", ".mp4", ".ts", ".avi"}

// FinalBase resolves the base filename for a record that has no memoized
// resolution. When an existing symlink in the target directory uses the
// default base but points at a different source file, the identity key is
// appended as a uniqueness suffix. The first source to claim a base keeps it
// unsuffixed; callers memoize the result so that ordering stays durable
// across runs.
func FinalBase(dir, defaultBase, sourcePath, identityKey string) string {
	for _, ext := range collisionExtensions {
		candidate := filepath.Join(dir, defaultBase+ext)
		isLink, err := fileutil.IsSymlink(candidate)
		if err != nil || !isLink {
			continue
		}
		target, err := fileutil.LinkTarget(candidate)
		if err != nil {
			return defaultBase + " - " + identityKey
		}
		if !fileutil.SamePath(target, sourcePath) {
			return defaultBase + " - " + identityKey
		}
	}
	return defaultBase
}
