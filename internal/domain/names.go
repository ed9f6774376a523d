package domain

import (
	"slices"
	"strings"
)

// MatchesName reports whether a kernel device or interface name fits one of
// patterns. A trailing "*" makes a pattern a prefix; anything else matches
// as a substring. Case is ignored.
func MatchesName(name string, patterns []string) bool {
	name = strings.ToLower(name)
	return slices.ContainsFunc(patterns, func(p string) bool {
		p = strings.ToLower(p)
		if prefix, ok := strings.CutSuffix(p, "*"); ok {
			return strings.HasPrefix(name, prefix)
		}
		return strings.Contains(name, p)
	})
}
