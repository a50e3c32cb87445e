package core

import (
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// closeMatchRatio is the minimum similarity for a "did you mean" suggestion.
const closeMatchRatio = 0.6

// CleanString trims all leading and trailing whitespace in `s` and optionally lowers it.
func CleanString(s string, lower ...bool) string {
	s = strings.TrimSpace(s)
	if len(lower) > 0 && lower[0] {
		return strings.ToLower(s)
	}
	return s
}

// ClosestMatch returns the entry of `known` most similar to `name`, or "" when none is close enough.
// Earlier entries win ties.
func ClosestMatch(name string, known []string) string {
	if name == "" {
		return ""
	}
	var (
		best      string
		bestRatio float64
	)
	chars := strings.Split(strings.ToLower(name), "")
	for _, k := range known {
		ratio := difflib.NewMatcher(chars, strings.Split(strings.ToLower(k), "")).Ratio()
		if ratio >= closeMatchRatio && ratio > bestRatio {
			best, bestRatio = k, ratio
		}
	}
	return best
}
