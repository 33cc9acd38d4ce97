package minigit

import (
	"fmt"
	"sort"

	"github.com/go-git/go-billy/v5/util"
)

// Status classifies the files of the flat working directory into three
// disjoint sets, except that a file added and then edited again is
// both staged and modified.
type Status struct {
	Branch    string
	Staged    []string
	Modified  []string
	Untracked []string
}

// Clean reports whether neither staged nor modified files exist.
// Untracked files do not make a worktree dirty.
func (s *Status) Clean() bool {
	return len(s.Staged) == 0 && len(s.Modified) == 0
}

// Status computes the working-directory classification against the
// index and the current branch's tip commit.
func (r *Repository) Status() (*Status, error) {
	if err := r.requireInitialized(); err != nil {
		return nil, err
	}

	branch, err := r.refs.Head()
	if err != nil {
		return nil, err
	}
	tracked, err := r.index.Load()
	if err != nil {
		return nil, err
	}

	// The tip's file_hashes; empty before the first commit.
	headHashes := map[string]string{}
	if tip, ok, _ := r.refs.Tip(branch); ok {
		head, err := r.objects.GetCommit(tip)
		if err != nil {
			return nil, err
		}
		headHashes = head.FileHashes
	}

	files, err := r.workingFiles()
	if err != nil {
		return nil, err
	}

	st := &Status{Branch: branch}
	for _, name := range files {
		indexHash, inIndex := tracked[name]
		if !inIndex {
			st.Untracked = append(st.Untracked, name)
			continue
		}
		if headHash, inHead := headHashes[name]; !inHead || headHash != indexHash {
			st.Staged = append(st.Staged, name)
		}
		current, err := r.workingBlobID(name)
		if err != nil {
			return nil, err
		}
		if current != indexHash {
			st.Modified = append(st.Modified, name)
		}
	}
	sort.Strings(st.Staged)
	sort.Strings(st.Modified)
	sort.Strings(st.Untracked)
	return st, nil
}

// workingFiles enumerates the regular files of the working directory.
// The enumeration is flat: subdirectories are not tracked, and the
// repository directory itself is skipped.
func (r *Repository) workingFiles() ([]string, error) {
	entries, err := r.fs.ReadDir(".")
	if err != nil {
		return nil, fmt.Errorf("read working directory: %w", err)
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		files = append(files, e.Name())
	}
	sort.Strings(files)
	return files, nil
}

// workingBlobID hashes the working copy of path as it would be stored.
func (r *Repository) workingBlobID(path string) (string, error) {
	content, err := util.ReadFile(r.fs, path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return blobID(content), nil
}
