package core

// ChangeGroup is one size-bounded, order-preserving slice of a diff. Files
// holds absolute paths; TotalBytes is their summed on-disk size.
type ChangeGroup struct {
	Files      []string
	TotalBytes int64
}

// BranchState is the reconciliation input for the project branch.
type BranchState int

const (
	// BranchAbsent means neither the remote nor the store knows the branch.
	BranchAbsent BranchState = iota
	// BranchLocalOnly means the remote probe found nothing but a local ref exists.
	BranchLocalOnly
	// BranchRemoteExists means the fork already carries the branch.
	BranchRemoteExists
)

func (s BranchState) String() string {
	switch s {
	case BranchAbsent:
		return "absent-everywhere"
	case BranchLocalOnly:
		return "local-only"
	case BranchRemoteExists:
		return "remote-exists"
	default:
		return "unknown"
	}
}

// Probe is the outcome of an existence check that is allowed to fail.
type Probe int

const (
	NotFound Probe = iota
	Found
	// Ambiguous means the check itself failed (network, auth, unexpected exit
	// code). Callers treat it as NotFound and log a warning.
	Ambiguous
)

func (p Probe) String() string {
	switch p {
	case NotFound:
		return "not-found"
	case Found:
		return "found"
	case Ambiguous:
		return "ambiguous"
	default:
		return "unknown"
	}
}
