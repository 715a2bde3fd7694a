package ports

// RepoLocator resolves a path to the working tree root of the repository
// containing it. Both failure modes are fatal for the whole run.
type RepoLocator interface {
	Discover(path string) (string, error)
}
