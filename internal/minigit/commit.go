package minigit

import "github.com/sirupsen/logrus"

// Commit snapshots the index as a new commit on the current branch.
// The staged set must be non-empty; otherwise nothing is written and
// ErrNothingToCommit is returned. The record is written before the tip
// moves, and the tip moves before the log entries are appended.
func (r *Repository) Commit(message string) (*CommitRecord, error) {
	st, err := r.Status()
	if err != nil {
		return nil, err
	}
	if len(st.Staged) == 0 {
		return nil, ErrNothingToCommit
	}

	tracked, err := r.index.Load()
	if err != nil {
		return nil, err
	}
	branch := st.Branch
	tip, _, err := r.refs.Tip(branch)
	if err != nil {
		return nil, err
	}

	rec := CommitRecord{
		Author:     r.authorName(),
		Message:    message,
		Timestamp:  r.timestamp(),
		Parent1ID:  tip,
		FileHashes: cloneHashes(tracked),
	}
	rec.ID = commitID(rec)

	entry := LogEntry{
		OldCommitID: tip,
		NewCommitID: rec.ID,
		Author:      rec.Author,
		Timestamp:   rec.Timestamp,
		Message:     message,
	}
	if err := r.writeCommit(branch, rec, entry); err != nil {
		return nil, err
	}
	r.log.WithFields(logrus.Fields{"branch": branch, "commit": rec.ID}).Debug("committed")
	return &rec, nil
}
