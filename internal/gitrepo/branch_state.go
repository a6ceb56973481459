package gitrepo

import "strings"

const (
	detachedHeadPlaceholderConstant = "HEAD"
	detachedBranchLabelConstant     = "(detached)"
)

// BranchState models the checked-out branch as either a named branch or a
// detached HEAD.
type BranchState struct {
	name     string
	detached bool
}

// NamedBranchState constructs the state for a checked-out named branch.
func NamedBranchState(branchName string) BranchState {
	return BranchState{name: branchName}
}

// DetachedBranchState constructs the state representing a detached HEAD.
func DetachedBranchState() BranchState {
	return BranchState{detached: true}
}

// ParseBranchState interprets the trimmed output of the abbreviated-ref query.
// Git reports the literal placeholder HEAD when the repository is detached;
// empty output receives the same interpretation.
func ParseBranchState(abbreviatedReference string) BranchState {
	trimmedReference := strings.TrimSpace(abbreviatedReference)
	if len(trimmedReference) == 0 || strings.EqualFold(trimmedReference, detachedHeadPlaceholderConstant) {
		return DetachedBranchState()
	}
	return NamedBranchState(trimmedReference)
}

// Detached reports whether the repository is in a detached HEAD state.
func (state BranchState) Detached() bool {
	return state.detached
}

// Name returns the branch name and whether a named branch is checked out.
func (state BranchState) Name() (string, bool) {
	if state.detached {
		return "", false
	}
	return state.name, len(state.name) > 0
}

// String renders the branch state for diagnostics.
func (state BranchState) String() string {
	if state.detached {
		return detachedBranchLabelConstant
	}
	return state.name
}
