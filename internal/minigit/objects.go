package minigit

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
)

// ObjectStore holds blobs and commit records under objects/. Both
// sub-stores are append-only: files are written once and never mutated.
type ObjectStore struct {
	fs     billy.Filesystem
	layout Layout
}

// PutBlob copies the working file at path into the blob store and
// returns its blob id. Re-staging unchanged content is a no-op: the
// blob file already exists and is left alone. The blob's mtime is set
// to the source file's mtime where the filesystem supports it.
func (s *ObjectStore) PutBlob(path string) (string, error) {
	content, err := util.ReadFile(s.fs, path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	id := blobID(content)

	dest := s.layout.Blob(id)
	if _, err := s.fs.Stat(dest); err == nil {
		return id, nil
	}
	if err := util.WriteFile(s.fs, dest, content, 0o644); err != nil {
		return "", fmt.Errorf("write blob %s: %w", id, err)
	}
	if fi, err := s.fs.Stat(path); err == nil {
		s.preserveMtime(dest, fi.ModTime())
	}
	return id, nil
}

// HasBlob reports whether a blob with the given id is stored.
func (s *ObjectStore) HasBlob(id string) bool {
	_, err := s.fs.Stat(s.layout.Blob(id))
	return err == nil
}

// CopyBlobTo restores a blob into the working copy at dest, carrying
// the blob file's mtime over where the filesystem supports it.
func (s *ObjectStore) CopyBlobTo(id, dest string) error {
	src := s.layout.Blob(id)
	content, err := util.ReadFile(s.fs, src)
	if err != nil {
		return fmt.Errorf("read blob %s: %w", id, err)
	}
	if err := s.fs.Remove(dest); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove %s: %w", dest, err)
	}
	if err := util.WriteFile(s.fs, dest, content, 0o644); err != nil {
		return fmt.Errorf("restore %s: %w", dest, err)
	}
	if fi, err := s.fs.Stat(src); err == nil {
		s.preserveMtime(dest, fi.ModTime())
	}
	return nil
}

// PutCommit writes a commit record. Records are written once; the
// caller guarantees the id is fresh.
func (s *ObjectStore) PutCommit(rec CommitRecord) error {
	data, err := json.MarshalIndent(rec, "", "    ")
	if err != nil {
		return fmt.Errorf("encode commit %s: %w", rec.ID, err)
	}
	if err := util.WriteFile(s.fs, s.layout.Commit(rec.ID), data, 0o644); err != nil {
		return fmt.Errorf("write commit %s: %w", rec.ID, err)
	}
	return nil
}

// GetCommit loads the record for id. The error wraps os.ErrNotExist
// when no such commit is stored.
func (s *ObjectStore) GetCommit(id string) (CommitRecord, error) {
	var rec CommitRecord
	data, err := util.ReadFile(s.fs, s.layout.Commit(id))
	if err != nil {
		return rec, fmt.Errorf("commit %s: %w", id, err)
	}
	if err := json.Unmarshal(data, &rec); err != nil {
		return rec, fmt.Errorf("decode commit %s: %w", id, err)
	}
	return rec, nil
}

// HasCommit reports whether a record with the given id is stored.
func (s *ObjectStore) HasCommit(id string) bool {
	_, err := s.fs.Stat(s.layout.Commit(id))
	return err == nil
}

// preserveMtime is best effort: memfs has no billy.Change support and
// content-addressed ids do not depend on mtimes.
func (s *ObjectStore) preserveMtime(path string, mtime time.Time) {
	if ch, ok := s.fs.(billy.Change); ok {
		_ = ch.Chtimes(path, mtime, mtime)
	}
}
