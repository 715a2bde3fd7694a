package stats

import (
	"sort"
	"strings"

	"gitfetch/internal/domain"
)

// Authors ranks commit authors by commit count and truncates to topN.
// Ties keep first-seen order so repeated runs rank identically.
// Percentages use floor division against the full history, so the
// displayed subset generally does not sum to 100.
func Authors(records []domain.CommitRecord, topN int) []domain.AuthorStat {
	if len(records) == 0 || topN <= 0 {
		return nil
	}

	counts := make(map[string]int)
	firstSeen := make(map[string]int)
	order := 0
	for _, rec := range records {
		name := trimQuotes(rec.Author)
		if _, seen := counts[name]; !seen {
			firstSeen[name] = order
			order++
		}
		counts[name]++
	}
	total := len(records)

	ranked := make([]domain.AuthorStat, 0, len(counts))
	for name, count := range counts {
		ranked = append(ranked, domain.AuthorStat{
			Name:    name,
			Commits: count,
			Percent: count * 100 / total,
		})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Commits != ranked[j].Commits {
			return ranked[i].Commits > ranked[j].Commits
		}
		return firstSeen[ranked[i].Name] < firstSeen[ranked[j].Name]
	})

	if len(ranked) > topN {
		ranked = ranked[:topN]
	}
	return ranked
}

// CreationDate extracts the repository creation date from the oldest
// (last) history record.
func CreationDate(records []domain.CommitRecord) string {
	if len(records) == 0 {
		return domain.Unknown
	}
	return records[len(records)-1].When
}

// trimQuotes trims surrounding whitespace, then one layer of matched
// surrounding quote characters. Whitespace inside the quotes is kept.
func trimQuotes(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 {
		if (s[0] == '\'' && s[len(s)-1] == '\'') || (s[0] == '"' && s[len(s)-1] == '"') {
			return s[1 : len(s)-1]
		}
	}
	return s
}
