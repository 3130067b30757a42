package utils

import (
	"strings"
)

// SplitUniqueNonEmpty splits raw on separator, trims whitespace and drops
// empty and duplicate entries. First-seen order is preserved so mirror
// lists keep their configured priority.
func SplitUniqueNonEmpty(raw string, separator string) []string {
	seen := make(map[string]bool)
	values := make([]string, 0)
	for _, value := range strings.Split(raw, separator) {
		value = strings.TrimSpace(value)
		if value == "" || seen[value] {
			continue
		}
		seen[value] = true
		values = append(values, value)
	}
	return values
}
