package render

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitfetch/internal/domain"
	"gitfetch/internal/theme"
)

func plainLogo(lines int, width int) LogoBlock {
	block := LogoBlock{Width: width}
	for i := 0; i < lines; i++ {
		block.Lines = append(block.Lines, strings.Repeat("#", width))
	}
	return block
}

func TestZip_InfoLongerThanLogo(t *testing.T) {
	logo := plainLogo(3, 10)
	info := []string{"one", "two", "three", "four", "five"}

	out := Zip(logo, info)
	rows := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, rows, 5)

	// While both streams have lines, rows are logo + gutter + info
	assert.Equal(t, strings.Repeat("#", 10)+"   one", rows[0])

	// Once the logo runs out, its reserved width is blanked
	assert.Equal(t, strings.Repeat(" ", 10)+"   four", rows[3])
	assert.Equal(t, strings.Repeat(" ", 10)+"   five", rows[4])
}

func TestZip_LogoLongerThanInfo(t *testing.T) {
	logo := plainLogo(4, 6)
	info := []string{"only"}

	out := Zip(logo, info)
	rows := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, rows, 4)

	assert.Equal(t, "######   only", rows[0])
	// Remaining logo rows carry no gutter and no info
	assert.Equal(t, "######", rows[1])
	assert.Equal(t, "######", rows[3])
}

func TestZip_TrailingBlankLine(t *testing.T) {
	out := Zip(plainLogo(1, 3), []string{"x"})
	assert.True(t, strings.HasSuffix(out, "\n\n"))
}

func TestBuildLogo_WidthIsWidestLine(t *testing.T) {
	art := "{0}##\n{0}######\n{1}###\n"
	block := BuildLogo(art, []theme.Color{"2", "4"}, false)

	assert.Equal(t, 6, block.Width)
	require.Len(t, block.Lines, 3)
	for _, line := range block.Lines {
		assert.Equal(t, 6, lipgloss.Width(line))
	}
}

func TestBuildLogo_TokensDoNotCountTowardsWidth(t *testing.T) {
	art := "{0}ab{1}cd\n"
	block := BuildLogo(art, []theme.Color{"2", "4"}, false)

	assert.Equal(t, 4, block.Width)
}

func TestBuildLogo_OutOfPaletteTokenFallsBack(t *testing.T) {
	art := "{9}###\n"
	block := BuildLogo(art, []theme.Color{"2"}, false)

	require.Len(t, block.Lines, 1)
	assert.Equal(t, 3, lipgloss.Width(block.Lines[0]))
}

func sampleSummary() *domain.Summary {
	return &domain.Summary{
		GitVersion:   "git version 2.43.0",
		GitUsername:  "alice",
		ProjectName:  "gitfetch",
		Head:         domain.CommitInfo{Hash: "abc1234", Refs: []string{"main"}},
		Version:      "v1.2.0",
		CreationDate: "4 years ago",
		Languages:    []domain.LanguageStat{{Name: "Go", Percent: 100}},
		Authors:      []domain.AuthorStat{{Name: "alice", Commits: 42, Percent: 84}},
		LastChange:   "2 hours ago",
		RemoteURL:    "https://example.com/alice/gitfetch.git",
		Commits:      50,
		Pending:      "1+-",
		RepoSize:     "1.20 MiB (31 files)",
		LinesOfCode:  4321,
		License:      "MIT",
	}
}

func TestRender_ContainsAllFields(t *testing.T) {
	out := Render(sampleSummary(), Options{})

	for _, want := range []string{
		"alice", "git version 2.43.0",
		"Project: ", "HEAD: ", "abc1234 (main)",
		"Pending: ", "1+-",
		"Version: ", "v1.2.0",
		"Created: ", "4 years ago",
		"Language: ", "Go",
		"Author: ", "84% alice 42",
		"Last change: ", "Repo: ", "Commits: ", "50",
		"Lines of code: ", "4,321",
		"Size: ", "License: ", "MIT",
	} {
		assert.Contains(t, out, want)
	}
}

func TestRender_DisabledFieldsAreSuppressed(t *testing.T) {
	opts := Options{
		Fields:        FieldsOff{Project: true, License: true},
		NoColorBlocks: true,
	}
	out := Render(sampleSummary(), opts)

	assert.NotContains(t, out, "Project: ")
	assert.NotContains(t, out, "License: ")
	assert.Contains(t, out, "Commits: ")
}

func TestRender_EmptyPendingSuppressed(t *testing.T) {
	s := sampleSummary()
	s.Pending = ""

	out := Render(s, Options{})
	assert.NotContains(t, out, "Pending: ")
}

func TestLanguageLines_MultipleLanguagesWrapThreePerLine(t *testing.T) {
	ranked := []domain.LanguageStat{
		{Name: "Go", Percent: 40},
		{Name: "C", Percent: 30},
		{Name: "Shell", Percent: 20},
		{Name: "Lua", Percent: 10},
	}
	lines := languageLines(ranked, func(s string) string { return s })

	require.Len(t, lines, 2)
	assert.Equal(t, "Languages: Go (40.0 %) C (30.0 %) Shell (20.0 %)", lines[0])
	assert.Equal(t, "           Lua (10.0 %)", lines[1])
}

func TestLanguageLines_MoreThanSixGetsOtherBucket(t *testing.T) {
	var ranked []domain.LanguageStat
	for _, name := range []string{"A", "B", "C", "D", "E", "F", "G", "H"} {
		ranked = append(ranked, domain.LanguageStat{Name: name, Percent: 12.5})
	}
	lines := languageLines(ranked, func(s string) string { return s })

	joined := strings.Join(lines, "\n")
	assert.Contains(t, joined, "Other (25.0 %)")
	assert.NotContains(t, joined, "G (")
	assert.NotContains(t, joined, "H (")
}

func TestAuthorLines_PluralTitleAndPadding(t *testing.T) {
	authors := []domain.AuthorStat{
		{Name: "alice", Commits: 30, Percent: 60},
		{Name: "bob", Commits: 20, Percent: 40},
	}
	lines := authorLines(authors, func(s string) string { return s })

	require.Len(t, lines, 2)
	assert.Equal(t, "Authors: 60% alice 30", lines[0])
	assert.Equal(t, "         40% bob 20", lines[1])
}

func TestParseDisabledFields(t *testing.T) {
	off, err := ParseDisabledFields([]string{"git", "LOC", " size "})
	require.NoError(t, err)
	assert.True(t, off.GitInfo)
	assert.True(t, off.LinesOfCode)
	assert.True(t, off.Size)
	assert.False(t, off.Project)

	_, err = ParseDisabledFields([]string{"bogus"})
	assert.Error(t, err)
}
