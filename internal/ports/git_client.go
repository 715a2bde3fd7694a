package ports

import (
	"context"

	"gitfetch/internal/domain"
)

// GitClient is the narrow command/response contract with the version
// control backend: each method runs one query against the repository and
// returns parsed text. Implementations must not share state between calls.
type GitClient interface {
	// Version returns the git client version string ("git version x.y.z").
	Version(ctx context.Context) (string, error)

	// UserName returns the configured user.name, empty when unset.
	UserName(ctx context.Context, dir string) (string, error)

	// RemoteInfo returns the project name and canonical remote URL derived
	// from the remote configuration (upstream preferred over origin).
	RemoteInfo(ctx context.Context, dir string) (name, url string, err error)

	// HeadInfo resolves the current HEAD commit and the refs pointing at it.
	HeadInfo(ctx context.Context, dir string) (domain.CommitInfo, error)

	// LatestTag returns the most recent tag reachable from HEAD,
	// empty when the repository has no tags.
	LatestTag(ctx context.Context, dir string) (string, error)

	// History returns one record per commit, newest first.
	History(ctx context.Context, dir string, noMerges bool) ([]domain.CommitRecord, error)

	// StatusLines returns the porcelain status output, one line per entry.
	StatusLines(ctx context.Context, dir string) ([]string, error)

	// PackedSize returns the packed object size ("x.y KiB") and the number
	// of tracked files. fileCount is -1 when the file listing failed.
	PackedSize(ctx context.Context, dir string) (size string, fileCount int, err error)

	// LastChange returns the relative time of the most recent commit.
	LastChange(ctx context.Context, dir string) (string, error)
}
