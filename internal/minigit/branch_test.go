package minigit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateBranchBeforeFirstCommit(t *testing.T) {
	r, _ := newInitializedRepo(t)

	err := r.CreateBranch("feature")
	assert.ErrorIs(t, err, ErrNoCommits)
}

func TestCreateBranch(t *testing.T) {
	r, fs := newInitializedRepo(t)
	rec := stageAndCommit(t, r, fs, "a.txt", "hello", "first")

	require.NoError(t, r.CreateBranch("feature"))

	// The new branch points at the same tip; HEAD does not move.
	tip, ok, err := r.refs.Tip("feature")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, rec.ID, tip)

	head, err := r.refs.Head()
	require.NoError(t, err)
	assert.Equal(t, "master", head)

	// The new branch's log starts with the source's last entry.
	entries, err := r.logs.Read(r.Layout().BranchLog("feature"))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, rec.ID, entries[0].NewCommitID)
}

func TestCreateBranchDuplicate(t *testing.T) {
	r, fs := newInitializedRepo(t)
	stageAndCommit(t, r, fs, "a.txt", "hello", "first")
	require.NoError(t, r.CreateBranch("feature"))

	err := r.CreateBranch("feature")
	assert.ErrorIs(t, err, ErrBranchExists)
}

func TestBranchesListing(t *testing.T) {
	r, fs := newInitializedRepo(t)
	stageAndCommit(t, r, fs, "a.txt", "hello", "first")
	require.NoError(t, r.CreateBranch("feature"))

	branches, err := r.Branches()
	require.NoError(t, err)
	assert.Equal(t, []string{"feature", "master"}, branches)
}
