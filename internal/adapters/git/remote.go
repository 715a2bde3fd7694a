package git

import "strings"

// pickRemoteURL chooses the canonical remote from `git config --get-regexp`
// output. The upstream remote wins over origin; otherwise the first entry
// is used.
func pickRemoteURL(configOut string) string {
	var origin, upstream, first string

	for _, line := range strings.Split(configOut, "\n") {
		key, value, ok := strings.Cut(strings.TrimSpace(line), " ")
		if !ok || value == "" {
			continue
		}
		switch key {
		case "remote.upstream.url":
			upstream = value
		case "remote.origin.url":
			origin = value
		default:
			if first == "" {
				first = value
			}
		}
	}

	switch {
	case upstream != "":
		return upstream
	case origin != "":
		return origin
	default:
		return first
	}
}

// projectNameFromURL derives the project display name from a remote URL:
// the last path segment with any .git suffix removed.
func projectNameFromURL(url string) string {
	segments := strings.Split(strings.TrimRight(url, "/"), "/")
	name := segments[len(segments)-1]

	// SSH URLs like git@host:owner/repo.git have no slash before owner
	if idx := strings.LastIndex(name, ":"); idx >= 0 {
		name = name[idx+1:]
	}
	if idx := strings.Index(name, ".git"); idx >= 0 {
		name = name[:idx]
	}
	return name
}

// shortenRef converts a full ref name to its display form: branches keep
// their bare name, tags keep a tags/ prefix, remote refs drop the
// refs/remotes/ prefix.
func shortenRef(ref string) string {
	switch {
	case ref == "":
		return ""
	case strings.HasPrefix(ref, "refs/heads/"):
		return strings.TrimPrefix(ref, "refs/heads/")
	case strings.HasPrefix(ref, "refs/tags/"):
		return "tags/" + strings.TrimPrefix(ref, "refs/tags/")
	case strings.HasPrefix(ref, "refs/remotes/"):
		return strings.TrimPrefix(ref, "refs/remotes/")
	default:
		return ref
	}
}
