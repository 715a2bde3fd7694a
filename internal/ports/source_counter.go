package ports

// SourceCounter counts code lines per language under a directory tree.
// Exclude patterns containing a path separator are matched anywhere in the
// tree; bare names match directory names directly.
type SourceCounter interface {
	CountLines(dir string, exclude []string) (map[string]int, error)
}
