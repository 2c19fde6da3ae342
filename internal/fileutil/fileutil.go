package fileutil

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// PathKey normalizes a path into a comparable form: forward slashes, absolute
// and cleaned, case-folded only on case-insensitive filesystems. Two PathKey
// results are equal exactly when the paths name the same filesystem location.
func PathKey(path string) string {
	if path == "" {
		return ""
	}

	normalized := path
	if abs, err := filepath.Abs(filepath.Clean(path)); err == nil {
		normalized = abs
	}
	normalized = filepath.ToSlash(normalized)
	// Windows extended-length prefix.
	normalized = strings.TrimPrefix(normalized, "//?/")

	if runtime.GOOS == "windows" || runtime.GOOS == "darwin" {
		return strings.ToLower(normalized)
	}
	return normalized
}

// SamePath reports whether two paths name the same filesystem location after
// normalization.
func SamePath(a, b string) bool {
	return PathKey(a) == PathKey(b)
}

// IsSymlink reports whether path exists and is a symbolic link. A missing
// path is not an error; it is simply not a link.
func IsSymlink(path string) (bool, error) {
	info, err := os.Lstat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	return info.Mode()&fs.ModeSymlink != 0, nil
}

// LinkTarget returns the target of the symbolic link at path.
func LinkTarget(path string) (string, error) {
	return os.Readlink(path)
}

// FileExists reports whether path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// RemoveIfEmpty removes dir when it contains no entries. It reports whether
// the directory was removed.
func RemoveIfEmpty(dir string) (bool, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	if len(entries) > 0 {
		return false, nil
	}
	if err := os.Remove(dir); err != nil {
		return false, err
	}
	return true, nil
}
