package minigit

import (
	"errors"
	"fmt"
	"os"
)

// Revert restores the working copy and index to the snapshot of an
// earlier commit on the current branch and records the restoration as
// a new commit on top. The worktree must be clean, and the target must
// appear in the current branch's log, not merely in the object store.
// Files tracked since the target but absent from it are left in the
// working directory.
func (r *Repository) Revert(id string) (*CommitRecord, error) {
	if err := r.requireInitialized(); err != nil {
		return nil, err
	}
	if err := r.requireClean(); err != nil {
		return nil, err
	}

	branch, err := r.refs.Head()
	if err != nil {
		return nil, err
	}
	entries, err := r.logs.Read(r.layout.BranchLog(branch))
	if err != nil {
		return nil, err
	}
	onBranch := false
	for _, e := range entries {
		if e.NewCommitID == id {
			onBranch = true
			break
		}
	}
	if !onBranch {
		return nil, fmt.Errorf("%s: %w", id, ErrInvalidCommitID)
	}

	target, err := r.objects.GetCommit(id)
	if err != nil {
		return nil, err
	}

	for _, path := range sortedPaths(target.FileHashes) {
		want := target.FileHashes[path]
		current, err := r.workingBlobID(path)
		if err == nil && current == want {
			continue
		}
		if err != nil && !isNotExist(err) {
			return nil, err
		}
		if err := r.objects.CopyBlobTo(want, path); err != nil {
			return nil, err
		}
	}
	if err := r.index.Save(cloneHashes(target.FileHashes)); err != nil {
		return nil, err
	}

	tip, _, err := r.refs.Tip(branch)
	if err != nil {
		return nil, err
	}
	rec := CommitRecord{
		Author:     r.authorName(),
		Message:    "Reverting to " + id,
		Timestamp:  r.timestamp(),
		Parent1ID:  tip,
		FileHashes: cloneHashes(target.FileHashes),
	}
	rec.ID = commitID(rec)

	entry := LogEntry{
		OldCommitID: tip,
		NewCommitID: rec.ID,
		Author:      rec.Author,
		Timestamp:   rec.Timestamp,
		Message:     rec.Message,
	}
	if err := r.writeCommit(branch, rec, entry); err != nil {
		return nil, err
	}
	return &rec, nil
}

func isNotExist(err error) bool {
	return errors.Is(err, os.ErrNotExist)
}
