package app

import "strings"

const maxTracedQueryLength = 512

// formatDBQueryForTrace flattens builder output onto one line so the full
// statement lands in a single span attribute, truncating pathological ones.
func formatDBQueryForTrace(query string) string {
	fields := strings.Fields(query)
	if len(fields) == 0 {
		return ""
	}

	normalized := strings.Join(fields, " ")
	if len(normalized) > maxTracedQueryLength {
		normalized = normalized[:maxTracedQueryLength] + "..."
	}

	return normalized
}
