// Package scanner counts source lines per language using gocloc.
package scanner

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/hhatto/gocloc"

	"gitfetch/internal/logging"
	"gitfetch/internal/ports"
)

// Counter implements ports.SourceCounter on top of gocloc
type Counter struct{}

// Verify interface compliance at compile time
var _ ports.SourceCounter = (*Counter)(nil)

// NewCounter creates a new Counter
func NewCounter() *Counter {
	return &Counter{}
}

// CountLines implements SourceCounter.CountLines
func (c *Counter) CountLines(dir string, exclude []string) (map[string]int, error) {
	languages := gocloc.NewDefinedLanguages()
	options := gocloc.NewClocOptions()
	options.SkipDuplicated = true

	// The VCS metadata directory is never source code
	patterns := append([]string{".git"}, exclude...)
	re, err := excludeRegexp(patterns)
	if err != nil {
		return nil, fmt.Errorf("invalid exclude pattern: %w", err)
	}
	options.ReNotMatchDir = re

	processor := gocloc.NewProcessor(languages, options)
	result, err := processor.Analyze([]string{dir})
	if err != nil {
		return nil, fmt.Errorf("line count failed: %w", err)
	}

	counts := make(map[string]int, len(result.Languages))
	for name, lang := range result.Languages {
		if lang.Code > 0 {
			counts[name] = int(lang.Code)
		}
	}
	logging.Logger.Debug("Counted source lines", "dir", dir, "languages", len(counts))
	return counts, nil
}

// excludeRegexp turns the user's ignore globs into one directory-matching
// expression. Patterns containing a path separator are rewritten to their
// recursive form first, so "vendor/generated" matches at any depth. Each
// alternative is anchored to a segment boundary: "node_modules" must match
// a whole path segment, never a "my_node_modules" suffix.
func excludeRegexp(patterns []string) (*regexp.Regexp, error) {
	alternatives := make([]string, 0, len(patterns))
	for _, p := range patterns {
		if p == "" {
			continue
		}
		if strings.Contains(p, "/") {
			if strings.HasPrefix(p, "/") {
				p = "**" + p
			} else {
				p = "**/" + p
			}
		}
		alternatives = append(alternatives, globToRegexp(p))
	}
	if len(alternatives) == 0 {
		return nil, nil
	}
	return regexp.Compile("(?:^|/)(?:" + strings.Join(alternatives, "|") + ")$")
}

// globToRegexp translates a single glob to regexp syntax: "**/" matches
// zero or more whole directories, * and ? stay within one path segment.
func globToRegexp(glob string) string {
	var b strings.Builder
	for i := 0; i < len(glob); i++ {
		switch glob[i] {
		case '*':
			switch {
			case i+2 < len(glob) && glob[i+1] == '*' && glob[i+2] == '/':
				b.WriteString(`(?:.*/)?`)
				i += 2
			case i+1 < len(glob) && glob[i+1] == '*':
				b.WriteString(".*")
				i++
			default:
				b.WriteString("[^/]*")
			}
		case '?':
			b.WriteString("[^/]")
		default:
			b.WriteString(regexp.QuoteMeta(string(glob[i])))
		}
	}
	return b.String()
}
