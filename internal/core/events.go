// Package core defines the essential interfaces and data structures that form the
// backbone of the application. These components are designed to be abstract,
// allowing for flexible and decoupled implementations of the application's logic.
package core

import (
	"fmt"
	"path/filepath"
)

// Project is the identity of the subtree being published. Its Name doubles as
// the review branch name and as the directory tracked under version control.
type Project struct {
	Name     string
	RootPath string
}

// ParentDir is the working tree the shadow repository tracks: the directory
// that contains the project root, including unrelated sibling content.
func (p Project) ParentDir() string {
	return filepath.Dir(p.RootPath)
}

// BranchRef returns the fully qualified local ref of the project branch.
func (p Project) BranchRef() string {
	return "refs/heads/" + p.Name
}

// Submission is everything a single publish run needs, resolved before the
// run starts. The orchestrator never asks the user for anything.
type Submission struct {
	Project  Project
	Metadata *Metadata
	// MetadataSource records how Metadata was obtained.
	MetadataSource MetadataSource
	// DryRun computes and reports the change groups without committing,
	// pushing or touching the review request.
	DryRun bool
}

// SubmitResult summarizes what a run published.
type SubmitResult struct {
	Branch       string
	Verb         string
	Deleted      int
	Changed      int
	Groups       []ChangeGroup
	Review       ReviewRequest
	StashPatch   string
	ForkRecreate bool
	// ForkMissing is only set by dry runs, which never create the fork.
	ForkMissing bool
}

// HeadRef renders the "<owner>:<branch>" form used to address a fork branch
// from the upstream repository.
func HeadRef(owner, branch string) string {
	return fmt.Sprintf("%s:%s", owner, branch)
}
