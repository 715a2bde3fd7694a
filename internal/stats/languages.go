// Package stats holds the pure reducers that turn raw probe output into
// the ranked figures shown in the summary.
package stats

import (
	"sort"

	"gitfetch/internal/domain"
)

// OtherBucket is the synthetic entry low-rank languages collapse into.
const OtherBucket = "Other"

// maxDisplayedLanguages is the number of ranked entries kept before the
// remainder is merged into OtherBucket.
const maxDisplayedLanguages = 6

// Languages reduces per-language code-line counts to ranked percentages.
// Returns the ranked list and the total line count. A repository with zero
// code lines is an error, not an empty list.
func Languages(counts map[string]int) ([]domain.LanguageStat, int, error) {
	total := 0
	for _, lines := range counts {
		total += lines
	}
	if total == 0 {
		return nil, 0, domain.ErrNoSourceCode
	}

	ranked := make([]domain.LanguageStat, 0, len(counts))
	for name, lines := range counts {
		if lines <= 0 {
			continue
		}
		ranked = append(ranked, domain.LanguageStat{
			Name:    name,
			Percent: float64(lines) * 100 / float64(total),
		})
	}

	// Descending by share; ties broken by name so runs are deterministic
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Percent != ranked[j].Percent {
			return ranked[i].Percent > ranked[j].Percent
		}
		return ranked[i].Name < ranked[j].Name
	})

	return ranked, total, nil
}

// Bucket collapses everything past the sixth rank into a single "Other"
// entry holding the merged percentages. "Other" always comes last, even
// when its summed share would rank higher.
func Bucket(ranked []domain.LanguageStat) []domain.LanguageStat {
	if len(ranked) <= maxDisplayedLanguages {
		return ranked
	}

	kept := make([]domain.LanguageStat, maxDisplayedLanguages, maxDisplayedLanguages+1)
	copy(kept, ranked[:maxDisplayedLanguages])

	other := 0.0
	for _, s := range ranked[maxDisplayedLanguages:] {
		other += s.Percent
	}
	return append(kept, domain.LanguageStat{Name: OtherBucket, Percent: other})
}
