package git

import "gitfetch/internal/ports"

// Locator implements ports.RepoLocator via go-git discovery
type Locator struct{}

// Verify interface compliance at compile time
var _ ports.RepoLocator = (*Locator)(nil)

// NewLocator creates a new Locator
func NewLocator() *Locator {
	return &Locator{}
}

// Discover implements RepoLocator.Discover
func (l *Locator) Discover(path string) (string, error) {
	return Discover(path)
}
