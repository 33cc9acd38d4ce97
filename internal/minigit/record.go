package minigit

import (
	"encoding/hex"
	"sort"
	"time"

	"github.com/pjbgf/sha1cd"
)

// TimeLayout is the timestamp format used in commit records and log
// entries: UTC wall clock, second resolution.
const TimeLayout = "2006-01-02 15:04:05"

// CommitRecord is one immutable snapshot node. Commits form a DAG with
// at most two parents; parent ids are empty strings when absent.
type CommitRecord struct {
	ID         string            `json:"id"`
	Author     string            `json:"author"`
	Message    string            `json:"message"`
	Timestamp  string            `json:"timestamp"`
	Parent1ID  string            `json:"parent_1_id"`
	Parent2ID  string            `json:"parent_2_id"`
	FileHashes map[string]string `json:"file_hashes"`
}

// LogEntry records one ref movement. OtherCommitID is the incoming tip
// when Merge is true, empty otherwise.
type LogEntry struct {
	OldCommitID   string `json:"old_commit_id"`
	NewCommitID   string `json:"new_commit_id"`
	Author        string `json:"author"`
	Timestamp     string `json:"timestamp"`
	Message       string `json:"message"`
	Merge         bool   `json:"merge"`
	OtherCommitID string `json:"other_commit_id"`
}

// FormatTimestamp renders t for storage in records and log entries.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimeLayout)
}

func hashHex(parts ...string) string {
	h := sha1cd.New()
	for _, p := range parts {
		h.Write([]byte(p))
	}
	return hex.EncodeToString(h.Sum(nil))
}

// blobID derives the content address of one file version: the SHA-1 of
// the file bytes, as 40 lowercase hex characters.
func blobID(content []byte) string {
	h := sha1cd.New()
	h.Write(content)
	return hex.EncodeToString(h.Sum(nil))
}

// commitID derives the id of a record from its author, timestamp,
// message, first parent and a canonical rendering of file_hashes. The
// record's ID field does not participate.
func commitID(rec CommitRecord) string {
	return hashHex(rec.Author, rec.Timestamp, rec.Message, rec.Parent1ID, canonicalFileHashes(rec.FileHashes))
}

// canonicalFileHashes renders the map independently of iteration order:
// NUL-delimited path/hash pairs sorted by path.
func canonicalFileHashes(m map[string]string) string {
	paths := make([]string, 0, len(m))
	for p := range m {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	var out []byte
	for _, p := range paths {
		out = append(out, p...)
		out = append(out, 0)
		out = append(out, m[p]...)
		out = append(out, 0)
	}
	return string(out)
}

func cloneHashes(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func sortedPaths(m map[string]string) []string {
	paths := make([]string, 0, len(m))
	for p := range m {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}
