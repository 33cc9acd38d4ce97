package minigit

// CreateBranch points a new branch at the current branch's tip and
// seeds its log with the current branch's last entry. HEAD does not
// move. The current branch must have at least one commit.
func (r *Repository) CreateBranch(name string) error {
	if err := r.requireInitialized(); err != nil {
		return err
	}
	branch, err := r.refs.Head()
	if err != nil {
		return err
	}
	tip, ok, err := r.refs.Tip(branch)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNoCommits
	}
	if r.refs.Exists(name) {
		return ErrBranchExists
	}

	if err := r.refs.SetTip(name, tip); err != nil {
		return err
	}
	entries, err := r.logs.Read(r.layout.BranchLog(branch))
	if err != nil {
		return err
	}
	if len(entries) > 0 {
		return r.logs.Append(r.layout.BranchLog(name), entries[len(entries)-1])
	}
	return nil
}
