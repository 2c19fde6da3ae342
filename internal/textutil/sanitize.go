package textutil

import "strings"

// FallbackName is returned by SanitizeName when sanitization leaves nothing usable.
const FallbackName = "UnknownMedia"

// illegalChars are characters that cannot appear in directory or file names
// on the filesystems the generated library may live on.
const illegalChars = `<>:"/\|?*`

// SanitizeName maps an arbitrary title to a filesystem-safe name fragment.
// Illegal characters become dashes, surrounding whitespace is trimmed, and
// trailing dot/space sequences are stripped repeatedly since each trim can
// expose more. Returns FallbackName when the result would be empty. The
// function is total and idempotent.
func SanitizeName(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		if strings.ContainsRune(illegalChars, r) {
			b.WriteByte('-')
		} else {
			b.WriteRune(r)
		}
	}

	cleaned := strings.TrimSpace(b.String())
	for cleaned != "" && (strings.HasSuffix(cleaned, ".") || strings.HasSuffix(cleaned, " ")) {
		cleaned = strings.TrimSpace(strings.TrimRight(cleaned, ". "))
	}

	if cleaned == "" {
		return FallbackName
	}
	return cleaned
}
