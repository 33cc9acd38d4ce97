package minigit

import (
	"testing"

	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRevertRestoresSnapshot(t *testing.T) {
	r, fs := newInitializedRepo(t)
	first := stageAndCommit(t, r, fs, "a.txt", "hello", "first")
	writeWorkFile(t, fs, "a.txt", "world")
	require.NoError(t, r.Add([]string{"a.txt"}))
	_, err := r.Commit("second")
	require.NoError(t, err)

	rec, err := r.Revert(first.ID)
	require.NoError(t, err)

	// A third commit whose snapshot equals the first.
	assert.Equal(t, first.FileHashes, rec.FileHashes)
	assert.Equal(t, "Reverting to "+first.ID, rec.Message)
	assert.NotEqual(t, first.ID, rec.ID)

	content, err := util.ReadFile(fs, "a.txt")
	require.NoError(t, err)
	assert.Equal(t, "hello", string(content))

	tracked, err := r.index.Load()
	require.NoError(t, err)
	assert.Equal(t, first.FileHashes, tracked)

	entries, err := r.logs.Read(r.Layout().BranchLog("master"))
	require.NoError(t, err)
	assert.Len(t, entries, 3)

	st, err := r.Status()
	require.NoError(t, err)
	assert.True(t, st.Clean())
}

func TestRevertTwiceProducesEqualSnapshots(t *testing.T) {
	r, fs := newInitializedRepo(t)
	first := stageAndCommit(t, r, fs, "a.txt", "hello", "first")
	writeWorkFile(t, fs, "a.txt", "world")
	require.NoError(t, r.Add([]string{"a.txt"}))
	_, err := r.Commit("second")
	require.NoError(t, err)

	one, err := r.Revert(first.ID)
	require.NoError(t, err)
	two, err := r.Revert(first.ID)
	require.NoError(t, err)

	assert.Equal(t, one.FileHashes, two.FileHashes)
	assert.NotEqual(t, one.ID, two.ID, "each revert is its own commit")
	assert.Equal(t, one.ID, two.Parent1ID)
}

func TestRevertRejectsForeignCommit(t *testing.T) {
	r, fs := newInitializedRepo(t)
	stageAndCommit(t, r, fs, "a.txt", "hello", "first")
	require.NoError(t, r.CreateBranch("feature"))
	require.NoError(t, r.Checkout("feature"))
	onFeature := stageAndCommit(t, r, fs, "b.txt", "x", "on feature")
	require.NoError(t, r.Checkout("master"))

	// The commit exists in the store but not on master's log.
	require.True(t, r.objects.HasCommit(onFeature.ID))
	_, err := r.Revert(onFeature.ID)
	assert.ErrorIs(t, err, ErrInvalidCommitID)
}

func TestRevertDirtyWorktree(t *testing.T) {
	r, fs := newInitializedRepo(t)
	first := stageAndCommit(t, r, fs, "a.txt", "hello", "first")

	writeWorkFile(t, fs, "a.txt", "dirty")
	_, err := r.Revert(first.ID)
	assert.ErrorIs(t, err, ErrDirtyWorktree)
}

func TestRevertLeavesNewerFilesInPlace(t *testing.T) {
	r, fs := newInitializedRepo(t)
	first := stageAndCommit(t, r, fs, "a.txt", "hello", "first")
	stageAndCommit(t, r, fs, "b.txt", "x", "second")

	_, err := r.Revert(first.ID)
	require.NoError(t, err)

	// b.txt is not tracked by the target snapshot but stays on disk.
	_, err = fs.Stat("b.txt")
	assert.NoError(t, err)
	tracked, err := r.index.Load()
	require.NoError(t, err)
	assert.NotContains(t, tracked, "b.txt")
}
