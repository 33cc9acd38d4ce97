package minigit

import "errors"

// Errors returned by engine operations.
//
// Check them with errors.Is; operations wrap these with path or id
// context via fmt.Errorf and %w:
//
//	if errors.Is(err, minigit.ErrDirtyWorktree) {
//	    // refuse checkout/revert/merge until the worktree is clean
//	}
var (
	// ErrNotInitialised is returned when the operation requires an
	// initialised repository and none exists.
	ErrNotInitialised = errors.New("not a minigit repository")

	// ErrAlreadyInitialised is returned by Init when the repository
	// directory already exists.
	ErrAlreadyInitialised = errors.New("repository already initialised")

	// ErrPathNotFound is returned when a path passed to Add is absent
	// from the working directory.
	ErrPathNotFound = errors.New("path not found")

	// ErrNothingToCommit is returned when a commit is attempted with an
	// empty staged set.
	ErrNothingToCommit = errors.New("nothing to commit")

	// ErrDirtyWorktree is returned when an operation is forbidden while
	// staged or modified files exist.
	ErrDirtyWorktree = errors.New("worktree has staged or modified files")

	// ErrInvalidCommitID is returned when a commit id is not present in
	// the current branch's log.
	ErrInvalidCommitID = errors.New("commit not found in current branch")

	// ErrBranchNotFound is returned when the target branch does not
	// exist.
	ErrBranchNotFound = errors.New("branch not found")

	// ErrBranchExists is returned when creating a branch whose name is
	// already taken.
	ErrBranchExists = errors.New("branch already exists")

	// ErrNoCommits is returned when an operation requires the current
	// branch to have at least one commit.
	ErrNoCommits = errors.New("current branch has no commits")

	// ErrNoCommonAncestor is returned when merge cannot find a merge
	// base between the two branch logs.
	ErrNoCommonAncestor = errors.New("no common ancestor")

	// ErrAlreadyUpToDate is returned when the merge base equals the
	// other branch's tip and there is nothing to merge.
	ErrAlreadyUpToDate = errors.New("already up to date")

	// ErrMergeConflict is returned when the three-way merge finds
	// divergent changes for at least one path.
	ErrMergeConflict = errors.New("merge conflict")
)
