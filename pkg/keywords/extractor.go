package keywords

import (
	"sort"
	"strings"
)

// Entry is one row of the shared keyword dictionary.
type Entry struct {
	Keyword  string
	Priority string
}

// Extract returns every dictionary keyword of the requested priority
// tier whose lowercase form occurs as a substring of text. The entry
// equal to excluded (the owning term's name) never matches, so a term
// cannot tag itself.
func Extract(text string, dictionary []Entry, priority, excluded string) []string {
	lowerText := strings.ToLower(text)
	lowerExcluded := strings.ToLower(excluded)

	matched := make([]string, 0)
	for _, entry := range dictionary {
		lowerKeyword := strings.ToLower(entry.Keyword)
		if !strings.Contains(lowerText, lowerKeyword) {
			continue
		}
		if !strings.EqualFold(entry.Priority, priority) {
			continue
		}
		if lowerKeyword == lowerExcluded {
			continue
		}
		matched = append(matched, entry.Keyword)
	}
	return matched
}

// Join deduplicates matches and serializes them as a comma-joined
// string. Order inside a tier carries no meaning; sorting keeps the
// stored value stable across sync runs.
func Join(matches []string) string {
	seen := make(map[string]struct{}, len(matches))
	unique := make([]string, 0, len(matches))
	for _, m := range matches {
		if _, ok := seen[m]; ok {
			continue
		}
		seen[m] = struct{}{}
		unique = append(unique, m)
	}
	sort.Strings(unique)
	return strings.Join(unique, ", ")
}
