package minigit

import (
	"fmt"
	"sort"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
)

// RefStore manages the branch ref files under refs/heads and the HEAD
// pointer. Each ref file holds a single commit id; HEAD holds the
// current branch name. Detached HEAD is not modelled.
type RefStore struct {
	fs     billy.Filesystem
	layout Layout
}

// Head returns the current branch name.
func (s *RefStore) Head() (string, error) {
	data, err := util.ReadFile(s.fs, s.layout.Head())
	if err != nil {
		return "", fmt.Errorf("read HEAD: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

// SetHead points HEAD at the named branch.
func (s *RefStore) SetHead(branch string) error {
	if err := util.WriteFile(s.fs, s.layout.Head(), []byte(branch+"\n"), 0o644); err != nil {
		return fmt.Errorf("write HEAD: %w", err)
	}
	return nil
}

// Tip returns the commit id the branch points at. ok is false when the
// branch has no ref file yet (zero commits).
func (s *RefStore) Tip(branch string) (id string, ok bool, err error) {
	data, err := util.ReadFile(s.fs, s.layout.Branch(branch))
	if err != nil {
		return "", false, nil
	}
	return strings.TrimSpace(string(data)), true, nil
}

// SetTip moves the branch ref to the given commit id, creating the ref
// file on the first commit.
func (s *RefStore) SetTip(branch, id string) error {
	if err := util.WriteFile(s.fs, s.layout.Branch(branch), []byte(id+"\n"), 0o644); err != nil {
		return fmt.Errorf("write ref %s: %w", branch, err)
	}
	return nil
}

// Exists reports whether the named branch has a ref file.
func (s *RefStore) Exists(branch string) bool {
	_, err := s.fs.Stat(s.layout.Branch(branch))
	return err == nil
}

// Branches lists every branch ref, sorted by name.
func (s *RefStore) Branches() ([]string, error) {
	entries, err := s.fs.ReadDir(s.layout.BranchesDir())
	if err != nil {
		return nil, fmt.Errorf("list branches: %w", err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}
