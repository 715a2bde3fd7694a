package stats

import (
	"fmt"
	"strings"
)

// Pending summarizes porcelain status lines into the compact
// "<modified>+- <added>+ <deleted>-" form, omitting zero counters.
// Empty input yields an empty string, which suppresses the field.
// Malformed or unrecognized lines are skipped, not errors.
func Pending(lines []string) string {
	var deleted, added, modified int

	for _, line := range lines {
		if len(line) < 2 {
			continue
		}
		switch strings.TrimSpace(line[:2]) {
		case "D":
			deleted++
		case "A", "AM", "??":
			added++
		case "M", "MM", "R":
			modified++
		}
	}

	var parts []string
	if modified > 0 {
		parts = append(parts, fmt.Sprintf("%d+-", modified))
	}
	if added > 0 {
		parts = append(parts, fmt.Sprintf("%d+", added))
	}
	if deleted > 0 {
		parts = append(parts, fmt.Sprintf("%d-", deleted))
	}
	return strings.Join(parts, " ")
}
