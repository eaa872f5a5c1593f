// Package slugify derives URL-safe identifiers from display names. Slugs are
// assigned once at creation time and never regenerated on rename, so URLs and
// stored QR references stay stable.
package slugify

import (
	"fmt"
	"strings"

	"pasar/internal/apperrors"
)

// Make normalizes name to a URL-safe token: lowercased, runs of
// non-alphanumeric characters collapsed to a single '-', leading and trailing
// separators trimmed.
func Make(name string) (string, error) {
	var b strings.Builder
	pendingDash := false
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			if pendingDash && b.Len() > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(r)
			pendingDash = false
		default:
			pendingDash = true
		}
	}
	slug := b.String()
	if slug == "" {
		return "", fmt.Errorf("slugify %q: %w", name, apperrors.ErrInvalidName)
	}
	return slug, nil
}

// Unique returns the first candidate derived from name that exists reports as
// unused: the base slug, then base-2, base-3 and so on.
func Unique(name string, exists func(string) (bool, error)) (string, error) {
	base, err := Make(name)
	if err != nil {
		return "", err
	}
	candidate := base
	for n := 2; ; n++ {
		taken, err := exists(candidate)
		if err != nil {
			return "", fmt.Errorf("slug uniqueness check for %q: %w", candidate, err)
		}
		if !taken {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, n)
	}
}
