// Package services contains the business logic of the application.
package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"gitfetch/internal/domain"
	"gitfetch/internal/logging"
	"gitfetch/internal/ports"
	"gitfetch/internal/stats"
)

// licenseFilePrefixes are the canonical file names scanned for license
// text at the repository top level (case-sensitive prefix match).
var licenseFilePrefixes = []string{"LICENSE", "LICENCE", "COPYING"}

// CollectOptions configures one collection run.
type CollectOptions struct {
	Dir        string   // Starting path; the repository is discovered from here
	NoMerges   bool     // Exclude merge commits from the history fetch
	MaxAuthors int      // Author ranking size
	Exclude    []string // Ignore patterns for the line counter
}

// Collector gathers every repository fact concurrently and assembles the
// immutable summary.
type Collector struct {
	locator    ports.RepoLocator
	git        ports.GitClient
	counter    ports.SourceCounter
	classifier ports.LicenseClassifier
}

// NewCollector creates a new Collector instance.
func NewCollector(locator ports.RepoLocator, git ports.GitClient, counter ports.SourceCounter, classifier ports.LicenseClassifier) *Collector {
	return &Collector{
		locator:    locator,
		git:        git,
		counter:    counter,
		classifier: classifier,
	}
}

// Collect runs the whole aggregation: critical path checks first, then a
// single-level fan-out of independent probes joined once. Probes never
// share state; each failure is either fatal (reference resolution, remote
// configuration, source counting) or degrades to a placeholder.
func (c *Collector) Collect(ctx context.Context, opts CollectOptions) (*domain.Summary, error) {
	// Critical checks before any probe is launched: everything else needs
	// a resolved working tree.
	workdir, err := c.locator.Discover(opts.Dir)
	if err != nil {
		return nil, err
	}
	logging.Logger.Debug("Starting collection", "workdir", workdir)

	var (
		gitVersion, userName, projectName, remoteURL string
		tag, lastChange, packedSize, license         string
		head                                         domain.CommitInfo
		history                                      []domain.CommitRecord
		statusLines                                  []string
		fileCount                                    int
		counts                                       map[string]int

		versionErr, userErr, remoteErr, headErr, tagErr   error
		historyErr, statusErr, sizeErr, changeErr, loCErr error
		licenseErr                                        error
	)

	// Full join: every closure returns nil so a failing probe never stops
	// collection of the others. Failures are inspected after the barrier.
	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		gitVersion, versionErr = c.git.Version(egCtx)
		return nil
	})
	eg.Go(func() error {
		userName, userErr = c.git.UserName(egCtx, workdir)
		return nil
	})
	eg.Go(func() error {
		projectName, remoteURL, remoteErr = c.git.RemoteInfo(egCtx, workdir)
		return nil
	})
	eg.Go(func() error {
		head, headErr = c.git.HeadInfo(egCtx, workdir)
		return nil
	})
	eg.Go(func() error {
		tag, tagErr = c.git.LatestTag(egCtx, workdir)
		return nil
	})
	eg.Go(func() error {
		history, historyErr = c.git.History(egCtx, workdir, opts.NoMerges)
		return nil
	})
	eg.Go(func() error {
		statusLines, statusErr = c.git.StatusLines(egCtx, workdir)
		return nil
	})
	eg.Go(func() error {
		packedSize, fileCount, sizeErr = c.git.PackedSize(egCtx, workdir)
		return nil
	})
	eg.Go(func() error {
		lastChange, changeErr = c.git.LastChange(egCtx, workdir)
		return nil
	})
	eg.Go(func() error {
		counts, loCErr = c.counter.CountLines(workdir, opts.Exclude)
		return nil
	})
	eg.Go(func() error {
		license, licenseErr = c.scanLicense(workdir)
		return nil
	})
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	// Fatal failures surface as the sole output; no partial summary.
	if headErr != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrReferenceResolution, headErr)
	}
	if remoteErr != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrConfigUnavailable, remoteErr)
	}
	if loCErr != nil {
		return nil, fmt.Errorf("counting source lines: %w", loCErr)
	}
	languages, linesOfCode, err := stats.Languages(counts)
	if err != nil {
		return nil, err
	}

	// The three history-derived fields share the one history fetch so the
	// commit count and author ranking always agree.
	if historyErr != nil {
		logging.Logger.Debug("History probe degraded", "error", historyErr)
		history = nil
	}
	authors := stats.Authors(history, opts.MaxAuthors)
	creationDate := stats.CreationDate(history)

	pending := ""
	if statusErr == nil {
		pending = stats.Pending(statusLines)
	}

	summary := &domain.Summary{
		GitVersion:   orUnknown(gitVersion, versionErr),
		GitUsername:  degraded(userName, userErr),
		ProjectName:  orUnknown(projectName, remoteErr),
		Head:         head,
		Version:      orUnknown(tag, tagErr),
		CreationDate: creationDate,
		Languages:    languages,
		Authors:      authors,
		LastChange:   orUnknown(lastChange, changeErr),
		RemoteURL:    orUnknown(remoteURL, remoteErr),
		Commits:      len(history),
		Pending:      pending,
		RepoSize:     formatRepoSize(packedSize, fileCount, sizeErr),
		LinesOfCode:  linesOfCode,
		License:      orUnknown(license, licenseErr),
	}
	logging.Logger.Info("Collection complete", "project", summary.ProjectName, "commits", summary.Commits)
	return summary, nil
}

// scanLicense checks every top-level file with a canonical license name
// against the classifier and joins the deduplicated results.
func (c *Collector) scanLicense(dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrUnreadableDirectory, err)
	}

	seen := make(map[string]bool)
	var ids []string
	for _, entry := range entries {
		if entry.IsDir() || !isLicenseFile(entry.Name()) {
			continue
		}
		content, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			continue
		}
		if id, ok := c.classifier.Classify(string(content)); ok && !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}

	sort.Strings(ids)
	return strings.Join(ids, ", "), nil
}

func isLicenseFile(name string) bool {
	for _, prefix := range licenseFilePrefixes {
		if strings.HasPrefix(name, prefix) {
			return true
		}
	}
	return false
}

// orUnknown maps a failed or empty probe result to the placeholder.
func orUnknown(value string, err error) string {
	if err != nil || value == "" {
		return domain.Unknown
	}
	return value
}

// degraded keeps empty results as-is (the field is simply omitted) but
// still swallows probe failures.
func degraded(value string, err error) string {
	if err != nil {
		return ""
	}
	return value
}

// formatRepoSize appends the tracked-file count when the listing worked.
func formatRepoSize(size string, fileCount int, err error) string {
	if err != nil || size == "" {
		return domain.Unknown
	}
	if fileCount < 0 {
		return size
	}
	return fmt.Sprintf("%s (%d files)", size, fileCount)
}
