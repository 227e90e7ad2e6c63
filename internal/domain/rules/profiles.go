package rules

import (
	"sort"
	"strings"
)

const (
	MinAge            = 18
	MaxAge            = 120
	MaxDisplayNameLen = 64
	MaxBioLen         = 1024
	MaxInterests      = 20
)

// NormalizeInterests trims, lowercases, deduplicates and sorts an interest
// list so equal sets always serialize identically.
func NormalizeInterests(interests []string) []string {
	seen := make(map[string]struct{}, len(interests))
	out := make([]string, 0, len(interests))
	for _, raw := range interests {
		v := strings.ToLower(strings.TrimSpace(raw))
		if v == "" {
			continue
		}
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
