package scanner

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestExcludeRegexp_PlainNameMatchesAnyDepth(t *testing.T) {
	re, err := excludeRegexp([]string{".git", "node_modules"})
	require.NoError(t, err)

	assert.True(t, re.MatchString("/repo/.git"))
	assert.True(t, re.MatchString("/repo/sub/node_modules"))
	assert.False(t, re.MatchString("/repo/src"))
	assert.False(t, re.MatchString("/repo/.github"))
}

func TestExcludeRegexp_MatchesWholeSegmentsOnly(t *testing.T) {
	re, err := excludeRegexp([]string{".git", "node_modules"})
	require.NoError(t, err)

	assert.False(t, re.MatchString("/repo/my_node_modules"))
	assert.False(t, re.MatchString("/repo/history.git"))
	assert.False(t, re.MatchString("/repo/node_modules_backup"))
	assert.True(t, re.MatchString("/repo/node_modules"))
}

func TestExcludeRegexp_PathPatternRewrittenRecursive(t *testing.T) {
	re, err := excludeRegexp([]string{"vendor/generated"})
	require.NoError(t, err)

	assert.True(t, re.MatchString("/repo/vendor/generated"))
	assert.True(t, re.MatchString("/repo/deep/vendor/generated"))
	assert.False(t, re.MatchString("/repo/vendor"))
}

func TestExcludeRegexp_EmptyPatternsGiveNilMatcher(t *testing.T) {
	re, err := excludeRegexp([]string{"", ""})
	require.NoError(t, err)
	assert.Nil(t, re)
}

func TestGlobToRegexp(t *testing.T) {
	tests := []struct {
		glob     string
		input    string
		expected bool
	}{
		{"*.min.js", "app.min.js", true},
		{"*.min.js", "lib/app.min.js", true},
		{"*.min.js", "app_min_js", false},
		{"**/dist", "a/b/dist", true},
		{"**/dist", "dist", true},
		{"**/dist", "a/my_dist", false},
		{"cache?", "cache1", true},
		{"cache?", "cache/x", false},
		{"a.b", "aXb", false},
	}

	for _, tt := range tests {
		t.Run(tt.glob+"/"+tt.input, func(t *testing.T) {
			re, err := excludeRegexp([]string{tt.glob})
			require.NoError(t, err)
			assert.Equal(t, tt.expected, re.MatchString(tt.input), "glob %q against %q", tt.glob, tt.input)
		})
	}
}

func TestCountLines_CountsRealSources(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "main.go", "package main\n\nfunc main() {}\n")
	writeFile(t, dir, "README.md", "# readme\n")

	counts, err := NewCounter().CountLines(dir, nil)
	require.NoError(t, err)

	assert.Equal(t, 2, counts["Go"])
}

func TestCountLines_HonorsExcludePatterns(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "main.go", "package main\n\nfunc main() {}\n")
	writeFile(t, dir, filepath.Join("generated", "big.go"), "package generated\n\nvar X = 1\nvar Y = 2\n")

	counts, err := NewCounter().CountLines(dir, []string{"generated"})
	require.NoError(t, err)

	assert.Equal(t, 2, counts["Go"])
}
