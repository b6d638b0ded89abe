package nlp

import (
	"regexp"
	"strings"
)

var (
	reNonWord = regexp.MustCompile(`[^\p{L}\p{N}]+`)
	reSpaces  = regexp.MustCompile(`\s+`)
)

// NormalizeText lowercases s, replaces non letter/digit runs with a space
// and collapses whitespace. Used for case-insensitive name lookups.
func NormalizeText(s string) string {
	s = strings.ToLower(s)
	s = reNonWord.ReplaceAllString(s, " ")
	s = reSpaces.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// SameName reports whether two record names are equal after normalization.
func SameName(a, b string) bool {
	return NormalizeText(a) == NormalizeText(b)
}
