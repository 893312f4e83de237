// Package textnorm holds the deterministic normalization and de-duplication
// helpers shared by every exercise type. Two strings that normalize to the
// same key are treated as the same answer.
package textnorm

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// strippedPunct is removed by NormalizeBase. Apostrophes and hyphens are
// kept because they change meaning inside words ("it's", "well-known").
const strippedPunct = ".,;:!?\"()[]{}«»“”„…¡¿"

// NormalizeFunc maps a string to its comparison key.
type NormalizeFunc func(string) string

// NormalizeBase trims, lowercases, strips punctuation and compresses
// internal whitespace into single spaces.
func NormalizeBase(s string) string {
	s = strings.ToLower(s)

	var b strings.Builder
	b.Grow(len(s))
	pendingSpace := false
	for _, r := range s {
		if strings.ContainsRune(strippedPunct, r) {
			continue
		}
		if unicode.IsSpace(r) {
			pendingSpace = b.Len() > 0
			continue
		}
		if pendingSpace {
			b.WriteByte(' ')
			pendingSpace = false
		}
		b.WriteRune(r)
	}
	return b.String()
}

// NormalizeLocalized applies NormalizeBase, then canonical decomposition
// with combining marks removed, so "Café" and "cafe" share a key.
func NormalizeLocalized(s string) string {
	base := NormalizeBase(s)
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, base)
	if err != nil {
		return base
	}
	return out
}

// UniqueBy returns items with later duplicates removed, keeping the first
// occurrence of each key. Order is preserved.
func UniqueBy[T any](items []T, key func(T) string) []T {
	seen := make(map[string]struct{}, len(items))
	out := make([]T, 0, len(items))
	for _, it := range items {
		k := key(it)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, it)
	}
	return out
}

// IsAmbiguous reports whether any two choices share a normalized key.
func IsAmbiguous(choices []string, normalize NormalizeFunc) bool {
	_, _, ok := FirstCollision(choices, normalize)
	return ok
}

// FirstCollision returns the indexes of the first pair of choices that
// normalize to the same key.
func FirstCollision(choices []string, normalize NormalizeFunc) (first, second int, found bool) {
	seen := make(map[string]int, len(choices))
	for i, c := range choices {
		k := normalize(c)
		if j, ok := seen[k]; ok {
			return j, i, true
		}
		seen[k] = i
	}
	return -1, -1, false
}

// Overlaps reports whether either normalized string contains the other.
// Empty strings never overlap.
func Overlaps(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	return strings.Contains(a, b) || strings.Contains(b, a)
}

// WordCount counts whitespace-separated words.
func WordCount(s string) int {
	return len(strings.Fields(s))
}
