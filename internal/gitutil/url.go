package gitutil

import (
	"net/url"
	"strings"
)

// ParseRemoteURL extracts host and "owner/repo" from an HTTPS or SSH remote URL.
func ParseRemoteURL(raw string) (host, fullName string, ok bool) {
	raw = strings.TrimSpace(raw)
	// HTTPS: https://github.com/owner/repo.git
	if u, err := url.Parse(raw); err == nil && (u.Scheme == "http" || u.Scheme == "https") && u.Host != "" {
		name := strings.TrimSuffix(strings.Trim(u.Path, "/"), ".git")
		return strings.ToLower(u.Hostname()), name, strings.Count(name, "/") == 1
	}
	// SSH: git@github.com:owner/repo.git
	if at := strings.Index(raw, "@"); at >= 0 {
		hostPart, path, found := strings.Cut(raw[at+1:], ":")
		if found {
			name := strings.TrimSuffix(strings.Trim(path, "/"), ".git")
			return strings.ToLower(hostPart), name, strings.Count(name, "/") == 1
		}
	}
	return "", "", false
}

// SameRepository reports whether two remote URLs address the same repository,
// ignoring scheme, a ".git" suffix and the case of the host and owner.
func SameRepository(a, b string) bool {
	hostA, nameA, okA := ParseRemoteURL(a)
	hostB, nameB, okB := ParseRemoteURL(b)
	if !okA || !okB {
		return false
	}
	return hostA == hostB && strings.EqualFold(nameA, nameB)
}
