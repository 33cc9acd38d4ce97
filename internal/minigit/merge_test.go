package minigit

import (
	"testing"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// divergedRepo builds master and feature with a shared root commit:
// master edits a.txt, feature adds b.txt. HEAD ends on master.
func divergedRepo(t *testing.T) (*Repository, billy.Filesystem, *CommitRecord) {
	t.Helper()
	r, fs := newInitializedRepo(t)
	root := stageAndCommit(t, r, fs, "a.txt", "hello", "root")
	require.NoError(t, r.CreateBranch("feature"))

	require.NoError(t, r.Checkout("feature"))
	stageAndCommit(t, r, fs, "b.txt", "feature work", "add b")

	require.NoError(t, r.Checkout("master"))
	writeWorkFile(t, fs, "a.txt", "hello, master")
	require.NoError(t, r.Add([]string{"a.txt"}))
	_, err := r.Commit("edit a")
	require.NoError(t, err)

	return r, fs, root
}

func TestMergeUnknownBranch(t *testing.T) {
	r, fs := newInitializedRepo(t)
	stageAndCommit(t, r, fs, "a.txt", "hello", "first")

	_, err := r.Merge("nope")
	assert.ErrorIs(t, err, ErrBranchNotFound)
}

func TestMergeDirtyWorktree(t *testing.T) {
	r, fs, _ := divergedRepo(t)
	writeWorkFile(t, fs, "a.txt", "dirty")

	_, err := r.Merge("feature")
	assert.ErrorIs(t, err, ErrDirtyWorktree)
}

func TestMergeSelfIsUpToDate(t *testing.T) {
	r, fs := newInitializedRepo(t)
	stageAndCommit(t, r, fs, "a.txt", "hello", "first")

	_, err := r.Merge("master")
	assert.ErrorIs(t, err, ErrAlreadyUpToDate)
}

func TestMergeBehindBranchIsUpToDate(t *testing.T) {
	// feature is strictly behind master: the base is feature's tip.
	r, fs := newInitializedRepo(t)
	stageAndCommit(t, r, fs, "a.txt", "hello", "root")
	require.NoError(t, r.CreateBranch("feature"))
	stageAndCommit(t, r, fs, "b.txt", "x", "ahead on master")

	_, err := r.Merge("feature")
	assert.ErrorIs(t, err, ErrAlreadyUpToDate)
}

func TestMergeNoCommonAncestor(t *testing.T) {
	r, fs := newInitializedRepo(t)
	stageAndCommit(t, r, fs, "a.txt", "hello", "first")

	// Handcraft an unrelated branch: a ref and a log that share no
	// commit with master.
	orphan := CommitRecord{
		Author:     "Author",
		Message:    "orphan",
		Timestamp:  "2024-05-01 12:00:00",
		FileHashes: map[string]string{"z.txt": blobID([]byte("z"))},
	}
	orphan.ID = commitID(orphan)
	require.NoError(t, r.objects.PutCommit(orphan))
	require.NoError(t, r.refs.SetTip("orphan", orphan.ID))
	require.NoError(t, r.logs.Append(r.Layout().BranchLog("orphan"), LogEntry{
		NewCommitID: orphan.ID, Author: "Author", Timestamp: orphan.Timestamp, Message: "orphan",
	}))

	_, err := r.Merge("orphan")
	assert.ErrorIs(t, err, ErrNoCommonAncestor)
}

func TestMergeThreeWay(t *testing.T) {
	r, fs, _ := divergedRepo(t)
	masterTip, _, err := r.refs.Tip("master")
	require.NoError(t, err)
	featureTip, _, err := r.refs.Tip("feature")
	require.NoError(t, err)

	res, err := r.Merge("feature")
	require.NoError(t, err)
	require.NotNil(t, res.Commit)
	assert.Empty(t, res.PotentialConflicts)

	rec := res.Commit
	assert.Equal(t, masterTip, rec.Parent1ID)
	assert.Equal(t, featureTip, rec.Parent2ID)

	// Master's edit of a.txt survives, feature's b.txt arrives.
	assert.Equal(t, blobID([]byte("hello, master")), rec.FileHashes["a.txt"])
	assert.Equal(t, blobID([]byte("feature work")), rec.FileHashes["b.txt"])

	// The worktree and index hold the merged snapshot.
	content, err := util.ReadFile(fs, "b.txt")
	require.NoError(t, err)
	assert.Equal(t, "feature work", string(content))
	tracked, err := r.index.Load()
	require.NoError(t, err)
	assert.Equal(t, rec.FileHashes, tracked)

	// The tip moved and both logs flag the merge.
	tip, ok, err := r.refs.Tip("master")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, rec.ID, tip)
	for _, path := range []string{r.Layout().HeadLog(), r.Layout().BranchLog("master")} {
		entries, err := r.logs.Read(path)
		require.NoError(t, err)
		last := entries[len(entries)-1]
		assert.True(t, last.Merge, path)
		assert.Equal(t, featureTip, last.OtherCommitID, path)
		assert.Equal(t, rec.ID, last.NewCommitID, path)
	}
}

func TestMergeConflictRefused(t *testing.T) {
	// Both branches edit a.txt away from the root version.
	r, fs := newInitializedRepo(t)
	stageAndCommit(t, r, fs, "a.txt", "hello", "root")
	require.NoError(t, r.CreateBranch("feature"))

	require.NoError(t, r.Checkout("feature"))
	writeWorkFile(t, fs, "a.txt", "feature version")
	require.NoError(t, r.Add([]string{"a.txt"}))
	_, err := r.Commit("feature edit")
	require.NoError(t, err)

	require.NoError(t, r.Checkout("master"))
	writeWorkFile(t, fs, "a.txt", "master version")
	require.NoError(t, r.Add([]string{"a.txt"}))
	_, err = r.Commit("master edit")
	require.NoError(t, err)

	tipBefore, _, err := r.refs.Tip("master")
	require.NoError(t, err)
	logBefore, err := r.logs.Read(r.Layout().BranchLog("master"))
	require.NoError(t, err)

	_, err = r.Merge("feature")
	assert.ErrorIs(t, err, ErrMergeConflict)
	assert.Contains(t, err.Error(), "a.txt")

	// Refused merges change nothing.
	tipAfter, _, err := r.refs.Tip("master")
	require.NoError(t, err)
	assert.Equal(t, tipBefore, tipAfter)
	logAfter, err := r.logs.Read(r.Layout().BranchLog("master"))
	require.NoError(t, err)
	assert.Len(t, logAfter, len(logBefore))
	content, err := util.ReadFile(fs, "a.txt")
	require.NoError(t, err)
	assert.Equal(t, "master version", string(content))
}

func TestMergePotentialConflictKeepsOurs(t *testing.T) {
	// Both branches add c.txt (absent from the base) with different
	// content: the current side wins and the path is reported.
	r, fs := newInitializedRepo(t)
	stageAndCommit(t, r, fs, "a.txt", "hello", "root")
	require.NoError(t, r.CreateBranch("feature"))

	require.NoError(t, r.Checkout("feature"))
	stageAndCommit(t, r, fs, "c.txt", "theirs", "add c on feature")

	require.NoError(t, r.Checkout("master"))
	stageAndCommit(t, r, fs, "c.txt", "ours", "add c on master")

	res, err := r.Merge("feature")
	require.NoError(t, err)
	assert.Equal(t, []string{"c.txt"}, res.PotentialConflicts)
	assert.Equal(t, blobID([]byte("ours")), res.Commit.FileHashes["c.txt"])
}

func TestMergeFileHashesTable(t *testing.T) {
	base := map[string]string{"same": "s0", "ours": "s0", "theirs": "s0", "both": "s0"}
	ours := map[string]string{"same": "s0", "ours": "o1", "theirs": "s0", "both": "o1"}
	theirs := map[string]string{"same": "s0", "ours": "s0", "theirs": "t1", "both": "t1", "new": "n1"}

	merged, potential, conflicts := mergeFileHashes(base, ours, theirs)

	assert.Equal(t, map[string]string{
		"same":   "s0",
		"ours":   "o1",
		"theirs": "t1",
		"new":    "n1",
		"both":   "o1",
	}, merged)
	assert.Empty(t, potential)
	assert.Equal(t, []string{"both"}, conflicts)
}
