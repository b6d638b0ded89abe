package nlp

import (
	"regexp"
	"strings"
)

var nonDigit = regexp.MustCompile(`[^0-9]+`)

// Words lowercases s and splits it on whitespace.
func Words(s string) []string {
	return strings.Fields(strings.ToLower(s))
}

// DigitsOnly drops every character that is not an ASCII digit.
// "$7,500" becomes "7500", "Amount Varies" becomes "".
func DigitsOnly(s string) string {
	return nonDigit.ReplaceAllString(s, "")
}

// ContainsAny reports whether any keyword is a substring of text.
// Both sides are compared as given; callers lowercase beforehand.
func ContainsAny(text string, keywords []string) bool {
	for _, k := range keywords {
		if k != "" && strings.Contains(text, k) {
			return true
		}
	}
	return false
}
