// Package slug assigns URL-safe identifiers to named entities. Each entity
// type (galleries, artworks, events) owns an independent slug namespace; the
// caller supplies the uniqueness check scoped to its own table.
package slug

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// TakenFunc reports whether a candidate slug is already in use.
type TakenFunc func(ctx context.Context, slug string) (bool, error)

// Make normalizes a human-readable name to its base slug: lowercase ASCII
// letters and digits, with every run of other characters collapsed into a
// single hyphen. Accented letters decompose to their base letter first, so
// "Café" slugs as "cafe". An all-punctuation name yields the empty string.
func Make(name string) string {
	decomposed := norm.NFKD.String(strings.ToLower(name))

	var b strings.Builder
	b.Grow(len(decomposed))

	pendingHyphen := false
	for _, r := range decomposed {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
		case unicode.Is(unicode.Mn, r):
			// Combining marks left over from decomposition vanish
			// without splitting the word.
		default:
			pendingHyphen = true
		}
	}

	return b.String()
}

// Assign finds the first free slug for base: base itself, then base-1, base-2
// and so on. The scan is sequential and unbounded; deleted slugs are never
// reused out of order. An empty base degenerates to "-1", "-2", ….
func Assign(ctx context.Context, base string, taken TakenFunc) (string, error) {
	candidate := base

	for counter := 1; ; counter++ {
		if candidate != "" {
			used, err := taken(ctx, candidate)
			if err != nil {
				return "", fmt.Errorf("slug.Assign: %w", err)
			}
			if !used {
				return candidate, nil
			}
		}

		candidate = Next(base, counter)
	}
}

// Next returns the counter-suffixed candidate for base. It is what Assign
// tries after a collision; creating code also calls it directly when the
// storage layer reports a uniqueness violation on insert.
func Next(base string, counter int) string {
	return fmt.Sprintf("%s-%d", base, counter)
}
