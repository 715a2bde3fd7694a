package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"

	"gitfetch/internal/domain"
	"gitfetch/internal/stats"
	"gitfetch/internal/theme"
)

// FieldsOff suppresses individual info fields at render time.
type FieldsOff struct {
	GitInfo     bool
	Project     bool
	Head        bool
	Pending     bool
	Version     bool
	Created     bool
	Languages   bool
	Authors     bool
	LastChange  bool
	Repo        bool
	Commits     bool
	LinesOfCode bool
	Size        bool
	License     bool
}

// ParseDisabledFields builds a FieldsOff from the user's field names.
func ParseDisabledFields(names []string) (FieldsOff, error) {
	var off FieldsOff
	for _, name := range names {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "":
		case "git":
			off.GitInfo = true
		case "project":
			off.Project = true
		case "head":
			off.Head = true
		case "pending":
			off.Pending = true
		case "version":
			off.Version = true
		case "created":
			off.Created = true
		case "languages":
			off.Languages = true
		case "authors":
			off.Authors = true
		case "lastchange":
			off.LastChange = true
		case "repo":
			off.Repo = true
		case "commits":
			off.Commits = true
		case "loc":
			off.LinesOfCode = true
		case "size":
			off.Size = true
		case "license":
			off.License = true
		default:
			return FieldsOff{}, fmt.Errorf("unknown field %q", name)
		}
	}
	return off, nil
}

// languagesPerLine is how many language entries share one info line.
const languagesPerLine = 3

// infoLines formats the summary into the right-hand column.
func infoLines(s *domain.Summary, opts Options, primary theme.Color) []string {
	label := func(text string) string {
		return theme.LabelStyle(primary, opts.Bold).Render(text)
	}

	var lines []string
	off := opts.Fields

	if !off.GitInfo {
		headerLen := len(s.GitVersion)
		if s.GitUsername != "" {
			headerLen += len(s.GitUsername) + 3
			lines = append(lines, label(s.GitUsername)+" ~ "+label(s.GitVersion))
		} else {
			lines = append(lines, label(s.GitVersion))
		}
		lines = append(lines, strings.Repeat("-", headerLen))
	}
	if !off.Project {
		lines = append(lines, label("Project: ")+s.ProjectName)
	}
	if !off.Head {
		lines = append(lines, label("HEAD: ")+s.Head.String())
	}
	if !off.Pending && s.Pending != "" {
		lines = append(lines, label("Pending: ")+s.Pending)
	}
	if !off.Version {
		lines = append(lines, label("Version: ")+s.Version)
	}
	if !off.Created {
		lines = append(lines, label("Created: ")+s.CreationDate)
	}
	if !off.Languages && len(s.Languages) > 0 {
		lines = append(lines, languageLines(s.Languages, label)...)
	}
	if !off.Authors && len(s.Authors) > 0 {
		lines = append(lines, authorLines(s.Authors, label)...)
	}
	if !off.LastChange {
		lines = append(lines, label("Last change: ")+s.LastChange)
	}
	if !off.Repo {
		lines = append(lines, label("Repo: ")+s.RemoteURL)
	}
	if !off.Commits {
		lines = append(lines, label("Commits: ")+strconv.Itoa(s.Commits))
	}
	if !off.LinesOfCode {
		lines = append(lines, label("Lines of code: ")+humanize.Comma(int64(s.LinesOfCode)))
	}
	if !off.Size {
		lines = append(lines, label("Size: ")+s.RepoSize)
	}
	if !off.License {
		lines = append(lines, label("License: ")+s.License)
	}
	if !opts.NoColorBlocks {
		lines = append(lines, "", theme.ColorBlocks())
	}
	return lines
}

// languageLines renders the ranked language list, three entries per line,
// bucketing everything past the sixth rank into "Other". A single
// language collapses to a plain "Language:" field.
func languageLines(ranked []domain.LanguageStat, label func(string) string) []string {
	if len(ranked) == 1 {
		return []string{label("Language: ") + ranked[0].Name}
	}

	const title = "Languages: "
	pad := strings.Repeat(" ", len(title))
	bucketed := stats.Bucket(ranked)

	var lines []string
	line := label(title)
	for i, lang := range bucketed {
		if i != 0 && i%languagesPerLine == 0 {
			lines = append(lines, strings.TrimRight(line, " "))
			line = pad
		}
		line += fmt.Sprintf("%s (%.1f %%) ", lang.Name, lang.Percent)
	}
	return append(lines, strings.TrimRight(line, " "))
}

// authorLines renders the ranked author list, one author per line, the
// label only on the first.
func authorLines(authors []domain.AuthorStat, label func(string) string) []string {
	title := "Author: "
	if len(authors) > 1 {
		title = "Authors: "
	}
	pad := strings.Repeat(" ", len(title))

	lines := make([]string, 0, len(authors))
	for i, a := range authors {
		entry := fmt.Sprintf("%d%% %s %d", a.Percent, a.Name, a.Commits)
		if i == 0 {
			lines = append(lines, label(title)+entry)
		} else {
			lines = append(lines, pad+entry)
		}
	}
	return lines
}
