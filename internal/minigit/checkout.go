package minigit

import "github.com/sirupsen/logrus"

// Checkout switches HEAD to the named branch, rewrites the index to
// the branch tip's file_hashes and restores those files into the
// working copy. Files tracked before the switch but absent from the
// new tip are left in place. Only logs/HEAD records the switch.
func (r *Repository) Checkout(branch string) error {
	if err := r.requireInitialized(); err != nil {
		return err
	}
	if !r.refs.Exists(branch) {
		return ErrBranchNotFound
	}
	current, err := r.refs.Head()
	if err != nil {
		return err
	}
	if current == branch {
		return nil
	}
	if err := r.requireClean(); err != nil {
		return err
	}

	priorTip, _, err := r.refs.Tip(current)
	if err != nil {
		return err
	}
	if err := r.refs.SetHead(branch); err != nil {
		return err
	}

	tip, ok, err := r.refs.Tip(branch)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNoCommits
	}
	target, err := r.objects.GetCommit(tip)
	if err != nil {
		return err
	}

	if err := r.index.Save(cloneHashes(target.FileHashes)); err != nil {
		return err
	}
	for _, path := range sortedPaths(target.FileHashes) {
		if err := r.objects.CopyBlobTo(target.FileHashes[path], path); err != nil {
			return err
		}
	}

	entry := LogEntry{
		OldCommitID: priorTip,
		NewCommitID: target.ID,
		Author:      r.authorName(),
		Timestamp:   r.timestamp(),
		Message:     "Switched to branch " + branch,
	}
	if err := r.logs.Append(r.layout.HeadLog(), entry); err != nil {
		return err
	}
	r.log.WithFields(logrus.Fields{"from": current, "to": branch}).Debug("checked out")
	return nil
}
