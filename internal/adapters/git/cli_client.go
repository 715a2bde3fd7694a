// Package git runs the repository queries through the local git binary,
// one subprocess per query.
package git

import (
	"context"
	"os/exec"
	"strings"

	"gitfetch/internal/domain"
	"gitfetch/internal/logging"
	"gitfetch/internal/ports"
)

// CLIClient implements ports.GitClient using local git commands
type CLIClient struct{}

// Verify interface compliance at compile time
var _ ports.GitClient = (*CLIClient)(nil)

// NewCLIClient creates a new CLIClient
func NewCLIClient() *CLIClient {
	return &CLIClient{}
}

// Version implements GitClient.Version
func (c *CLIClient) Version(ctx context.Context) (string, error) {
	out, err := runGit(ctx, "", "--version")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// UserName implements GitClient.UserName
func (c *CLIClient) UserName(ctx context.Context, dir string) (string, error) {
	out, err := runGit(ctx, dir, "config", "--get", "user.name")
	if err != nil {
		// git exits 1 when the key is simply unset
		if exitCode(err) == 1 {
			return "", nil
		}
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// RemoteInfo implements GitClient.RemoteInfo
func (c *CLIClient) RemoteInfo(ctx context.Context, dir string) (string, string, error) {
	out, err := runGit(ctx, dir, "config", "--get-regexp", `^remote\..+\.url$`)
	if err != nil {
		// Exit 1 means no remotes are configured at all
		if exitCode(err) == 1 {
			return "", "", nil
		}
		return "", "", err
	}

	url := pickRemoteURL(out)
	if url == "" {
		return "", "", nil
	}
	return projectNameFromURL(url), url, nil
}

// HeadInfo implements GitClient.HeadInfo
func (c *CLIClient) HeadInfo(ctx context.Context, dir string) (domain.CommitInfo, error) {
	hash, err := runGit(ctx, dir, "rev-parse", "HEAD")
	if err != nil {
		return domain.CommitInfo{}, err
	}

	info := domain.CommitInfo{Hash: strings.TrimSpace(hash)}

	out, err := runGit(ctx, dir, "for-each-ref", "--points-at", "HEAD", "--format", "%(refname)")
	if err != nil {
		return domain.CommitInfo{}, err
	}
	for _, ref := range strings.Split(out, "\n") {
		if short := shortenRef(strings.TrimSpace(ref)); short != "" {
			info.Refs = append(info.Refs, short)
		}
	}
	return info, nil
}

// LatestTag implements GitClient.LatestTag
func (c *CLIClient) LatestTag(ctx context.Context, dir string) (string, error) {
	out, err := runGit(ctx, dir, "describe", "--abbrev=0", "--tags")
	if err != nil {
		// No tags in the repository
		logging.Logger.Debug("No tags found", "dir", dir, "error", err)
		return "", nil
	}
	return strings.TrimSpace(out), nil
}

// History implements GitClient.History
func (c *CLIClient) History(ctx context.Context, dir string, noMerges bool) ([]domain.CommitRecord, error) {
	args := []string{"log", "--pretty=format:%cr%x09%an"}
	if noMerges {
		args = append(args, "--no-merges")
	}

	out, err := runGit(ctx, dir, args...)
	if err != nil {
		// A repository without commits has no history, not an error
		logging.Logger.Debug("History fetch failed", "dir", dir, "error", err)
		return nil, nil
	}

	var records []domain.CommitRecord
	for _, line := range strings.Split(out, "\n") {
		when, author, ok := strings.Cut(line, "\t")
		if !ok || when == "" {
			// Tolerate unexpected log output rather than dropping the probe
			continue
		}
		records = append(records, domain.CommitRecord{When: when, Author: author})
	}
	return records, nil
}

// StatusLines implements GitClient.StatusLines
func (c *CLIClient) StatusLines(ctx context.Context, dir string) ([]string, error) {
	out, err := runGit(ctx, dir, "status", "--porcelain")
	if err != nil {
		return nil, err
	}

	var lines []string
	for _, line := range strings.Split(out, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	return lines, nil
}

// PackedSize implements GitClient.PackedSize
func (c *CLIClient) PackedSize(ctx context.Context, dir string) (string, int, error) {
	out, err := runGit(ctx, dir, "count-objects", "-vH")
	if err != nil {
		return "", -1, err
	}

	size := domain.Unknown
	for _, line := range strings.Split(out, "\n") {
		if rest, ok := strings.CutPrefix(line, "size-pack:"); ok {
			size = strings.TrimSpace(rest)
			break
		}
	}

	files, err := runGit(ctx, dir, "ls-files")
	if err != nil {
		// Size is still useful without the file count
		logging.Logger.Debug("ls-files failed", "dir", dir, "error", err)
		return size, -1, nil
	}

	count := 0
	for _, line := range strings.Split(files, "\n") {
		if strings.TrimSpace(line) != "" {
			count++
		}
	}
	return size, count, nil
}

// LastChange implements GitClient.LastChange
func (c *CLIClient) LastChange(ctx context.Context, dir string) (string, error) {
	out, err := runGit(ctx, dir, "log", "-1", "--format=%cr")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// runGit executes one git query and returns its stdout
func runGit(ctx context.Context, dir string, args ...string) (string, error) {
	logging.Logger.Debug("Running git query", "dir", dir, "args", strings.Join(args, " "))

	cmd := exec.CommandContext(ctx, "git", args...)
	if dir != "" {
		cmd.Dir = dir
	}

	output, err := cmd.Output()
	if err != nil {
		logging.Logger.Debug("Git query failed", "args", strings.Join(args, " "), "error", err)
		return "", err
	}
	return string(output), nil
}

// exitCode extracts the subprocess exit code, -1 when the command never ran
func exitCode(err error) int {
	if exitErr, ok := err.(*exec.ExitError); ok {
		return exitErr.ExitCode()
	}
	return -1
}
