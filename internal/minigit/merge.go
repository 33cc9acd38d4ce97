package minigit

import (
	"fmt"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
)

// MergeResult reports a successful merge.
type MergeResult struct {
	// Commit is the merge commit placed on the current branch.
	Commit *CommitRecord
	// PotentialConflicts lists paths absent from the merge base that
	// both sides hold with different content. The current side's
	// version won; the front-end should surface these.
	PotentialConflicts []string
}

// Merge joins the named branch into the current one with a three-way
// merge. The merge base is discovered by scanning the two branch logs:
// the other branch's entries, newest first, against the set of commits
// recorded on the current branch. A base equal to the other tip means
// there is nothing to merge (ErrAlreadyUpToDate). Divergent changes to
// the same path abort the merge with ErrMergeConflict before anything
// is written.
func (r *Repository) Merge(other string) (*MergeResult, error) {
	if err := r.requireInitialized(); err != nil {
		return nil, err
	}
	if !r.refs.Exists(other) {
		return nil, fmt.Errorf("%s: %w", other, ErrBranchNotFound)
	}
	if err := r.requireClean(); err != nil {
		return nil, err
	}

	branch, err := r.refs.Head()
	if err != nil {
		return nil, err
	}

	baseID, err := r.mergeBase(branch, other)
	if err != nil {
		return nil, err
	}
	otherTip, _, err := r.refs.Tip(other)
	if err != nil {
		return nil, err
	}
	if baseID == otherTip {
		return nil, ErrAlreadyUpToDate
	}
	currentTip, _, err := r.refs.Tip(branch)
	if err != nil {
		return nil, err
	}

	base, err := r.objects.GetCommit(baseID)
	if err != nil {
		return nil, err
	}
	ours, err := r.objects.GetCommit(currentTip)
	if err != nil {
		return nil, err
	}
	theirs, err := r.objects.GetCommit(otherTip)
	if err != nil {
		return nil, err
	}

	merged, potential, conflicts := mergeFileHashes(base.FileHashes, ours.FileHashes, theirs.FileHashes)
	if len(conflicts) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMergeConflict, strings.Join(conflicts, ", "))
	}

	rec := CommitRecord{
		Author:     r.authorName(),
		Message:    "Merged branch " + other,
		Timestamp:  r.timestamp(),
		Parent1ID:  currentTip,
		Parent2ID:  otherTip,
		FileHashes: merged,
	}
	rec.ID = commitID(rec)

	entry := LogEntry{
		OldCommitID:   currentTip,
		NewCommitID:   rec.ID,
		Author:        rec.Author,
		Timestamp:     rec.Timestamp,
		Message:       rec.Message,
		Merge:         true,
		OtherCommitID: otherTip,
	}
	if err := r.writeCommit(branch, rec, entry); err != nil {
		return nil, err
	}

	// Materialise the merged snapshot: index first, then every path
	// whose working content differs from the merge result.
	if err := r.index.Save(cloneHashes(merged)); err != nil {
		return nil, err
	}
	for _, path := range sortedPaths(merged) {
		want := merged[path]
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

	r.log.WithFields(logrus.Fields{"branch": branch, "other": other, "commit": rec.ID}).Debug("merged")
	return &MergeResult{Commit: &rec, PotentialConflicts: potential}, nil
}

// mergeBase walks the other branch's log newest to oldest and returns
// the first commit also recorded on the current branch.
func (r *Repository) mergeBase(branch, other string) (string, error) {
	ourLog, err := r.logs.Read(r.layout.BranchLog(branch))
	if err != nil {
		return "", err
	}
	theirLog, err := r.logs.Read(r.layout.BranchLog(other))
	if err != nil {
		return "", err
	}

	onOurs := make(map[string]bool, len(ourLog))
	for _, e := range ourLog {
		onOurs[e.NewCommitID] = true
	}
	for i := len(theirLog) - 1; i >= 0; i-- {
		if onOurs[theirLog[i].NewCommitID] {
			return theirLog[i].NewCommitID, nil
		}
	}
	return "", fmt.Errorf("%s and %s: %w", branch, other, ErrNoCommonAncestor)
}

// mergeFileHashes computes the three-way merge of the path -> blob id
// maps. The result starts from ours; for each of their paths:
// absent here means take theirs, identical content stays, a path only
// they changed takes theirs, a path only we changed stays, and a path
// both changed is a conflict. Paths absent from the base that both
// sides hold differently stay ours and are reported as potential
// conflicts. The result is independent of map iteration order.
func mergeFileHashes(base, ours, theirs map[string]string) (merged map[string]string, potential, conflicts []string) {
	merged = cloneHashes(ours)
	for _, path := range sortedPaths(theirs) {
		theirHash := theirs[path]
		ourHash, inOurs := ours[path]
		if !inOurs {
			merged[path] = theirHash
			continue
		}
		baseHash, inBase := base[path]
		if !inBase {
			if theirHash != ourHash {
				potential = append(potential, path)
			}
			continue
		}
		switch {
		case theirHash == ourHash:
			// unchanged relative to each other
		case ourHash == baseHash:
			merged[path] = theirHash
		case theirHash == baseHash:
			// only we changed it
		default:
			conflicts = append(conflicts, path)
		}
	}
	sort.Strings(potential)
	sort.Strings(conflicts)
	return merged, potential, conflicts
}
