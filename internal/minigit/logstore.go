package minigit

import (
	"encoding/json"
	"fmt"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
)

// logDocument is the on-disk envelope for a ref log.
type logDocument struct {
	Log []LogEntry `json:"log"`
}

// LogStore manages the per-ref append-only logs under logs/. The HEAD
// log records commits on the current branch and branch switches; each
// branch log records the movements of that branch's tip.
type LogStore struct {
	fs     billy.Filesystem
	layout Layout
}

// Read returns the entries of the log at path, oldest first. A missing
// log file reads as empty.
func (s *LogStore) Read(path string) ([]LogEntry, error) {
	data, err := util.ReadFile(s.fs, path)
	if err != nil {
		return nil, nil
	}
	var doc logDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode log %s: %w", path, err)
	}
	return doc.Log, nil
}

// Append reads the log, pushes the entry and rewrites the whole file.
func (s *LogStore) Append(path string, entry LogEntry) error {
	entries, err := s.Read(path)
	if err != nil {
		return err
	}
	entries = append(entries, entry)

	data, err := json.MarshalIndent(logDocument{Log: entries}, "", "    ")
	if err != nil {
		return fmt.Errorf("encode log %s: %w", path, err)
	}
	if err := util.WriteFile(s.fs, path, data, 0o644); err != nil {
		return fmt.Errorf("write log %s: %w", path, err)
	}
	return nil
}
