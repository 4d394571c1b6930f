// Package match implements the ownership rule shared by every platform verifier:
// a code proves ownership when it appears as a whole whitespace-separated token
package match

import "strings"

// Token reports whether code equals one of the whitespace-separated tokens of fragment.
// Comparison is exact and case-sensitive; an empty code never matches
func Token(fragment, code string) bool {
	if code == "" {
		return false
	}
	for _, tok := range strings.Fields(fragment) {
		if tok == code {
			return true
		}
	}
	return false
}

// Any reports whether code matches a token of any fragment, stopping at the first hit
func Any(fragments []string, code string) bool {
	for _, f := range fragments {
		if Token(f, code) {
			return true
		}
	}
	return false
}
