package domain

import "errors"

// Fatal collection errors. Any of these aborts the whole run; no partial
// summary is printed. Everything else degrades to the Unknown placeholder.
var (
	ErrNotARepository      = errors.New("not a git repository")
	ErrBareRepository      = errors.New("bare repository has no working tree")
	ErrNoSourceCode        = errors.New("no source code found")
	ErrReferenceResolution = errors.New("cannot resolve HEAD reference")
	ErrConfigUnavailable   = errors.New("repository configuration unavailable")
	ErrUnreadableDirectory = errors.New("cannot read directory")
)
