package git

import (
	gogit "github.com/go-git/go-git/v5"

	"gitfetch/internal/domain"
	"gitfetch/internal/logging"
)

// Discover locates the repository containing path and returns its working
// tree root. These are the two critical checks every other probe depends
// on: failing either aborts collection before any probe is launched.
func Discover(path string) (string, error) {
	repo, err := gogit.PlainOpenWithOptions(path, &gogit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		logging.Logger.Debug("Repository discovery failed", "path", path, "error", err)
		return "", domain.ErrNotARepository
	}

	wt, err := repo.Worktree()
	if err != nil {
		logging.Logger.Debug("No working tree", "path", path, "error", err)
		return "", domain.ErrBareRepository
	}

	root := wt.Filesystem.Root()
	logging.Logger.Info("Found git repository", "workdir", root)
	return root, nil
}
