package domain

import "strings"

// Unknown is the placeholder shown for fields no probe could resolve.
const Unknown = "??"

// CommitInfo identifies the current HEAD commit and the symbolic refs
// pointing at it.
type CommitInfo struct {
	Hash string
	Refs []string
}

// String renders the commit as "hash (ref1, ref2)".
func (c CommitInfo) String() string {
	if len(c.Refs) == 0 {
		return c.Hash
	}
	return c.Hash + " (" + strings.Join(c.Refs, ", ") + ")"
}

// LanguageStat is one language's share of the repository's code lines.
type LanguageStat struct {
	Name    string
	Percent float64
}

// AuthorStat is one author's share of the commit history.
// Percent is floor-divided, so displayed percentages may not sum to 100.
type AuthorStat struct {
	Name    string
	Commits int
	Percent int
}

// CommitRecord is one line of the history fetch: a relative time label
// and the author name, newest first.
type CommitRecord struct {
	When   string
	Author string
}

// Summary is the assembled result of one collection run. It is built once
// by the collector and never mutated afterwards; the renderer owns it for
// the rest of the invocation.
type Summary struct {
	GitVersion   string
	GitUsername  string
	ProjectName  string
	Head         CommitInfo
	Version      string
	CreationDate string
	Languages    []LanguageStat
	Authors      []AuthorStat
	LastChange   string
	RemoteURL    string
	Commits      int
	Pending      string
	RepoSize     string
	LinesOfCode  int
	License      string
}

// Dominant returns the highest-ranked language, or Unknown when the
// language list is empty.
func (s *Summary) Dominant() string {
	if len(s.Languages) == 0 {
		return Unknown
	}
	return s.Languages[0].Name
}
