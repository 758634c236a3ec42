package core

// ReviewState is the state of the pull request addressed by (head, base).
type ReviewState int

const (
	ReviewAbsent ReviewState = iota
	ReviewOpen
	ReviewClosed
)

func (s ReviewState) String() string {
	switch s {
	case ReviewAbsent:
		return "absent"
	case ReviewOpen:
		return "open"
	case ReviewClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// ReviewRequest is the remote pull request proposing the fork branch.
type ReviewRequest struct {
	Number int
	URL    string
	Head   string
	Base   string
	State  ReviewState
}

// ForkRecord describes the authenticated user's copy of the upstream repository.
type ForkRecord struct {
	Owner  string
	Name   string
	Exists bool
	IsFork bool
	// Parent is the "owner/name" of the repository this one was forked from.
	Parent string
}

// AuthStatus is what the hosting service reports about the current credentials.
type AuthStatus struct {
	LoggedIn bool
	Scopes   []string
	// ScopesReported is false for credentials that carry no scope list,
	// such as fine-grained tokens.
	ScopesReported bool
}

// Satisfies reports whether the credentials are usable for the wanted scopes.
// Credentials that report no scopes are trusted as is.
func (s AuthStatus) Satisfies(wanted ...string) bool {
	return s.LoggedIn && (!s.ScopesReported || s.HasScopes(wanted...))
}

// HasScopes reports whether every wanted scope was granted.
func (s AuthStatus) HasScopes(wanted ...string) bool {
	for _, w := range wanted {
		found := false
		for _, got := range s.Scopes {
			if got == w {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// User is the authenticated account.
type User struct {
	Login string
	Email string
}
