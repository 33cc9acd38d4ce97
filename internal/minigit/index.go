package minigit

import (
	"encoding/json"
	"fmt"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
)

// indexDocument is the on-disk form of the staging area.
type indexDocument struct {
	TrackedFiles map[string]string `json:"tracked_files"`
}

// IndexStore persists the staging map path -> blob id at index.json.
// An entry exists iff the file is tracked; the blob id names the
// version to be committed, not necessarily the working-copy version.
type IndexStore struct {
	fs     billy.Filesystem
	layout Layout
}

// Load returns the tracked-file map. A missing index reads as empty.
func (s *IndexStore) Load() (map[string]string, error) {
	data, err := util.ReadFile(s.fs, s.layout.Index())
	if err != nil {
		return map[string]string{}, nil
	}
	var doc indexDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode index: %w", err)
	}
	if doc.TrackedFiles == nil {
		doc.TrackedFiles = map[string]string{}
	}
	return doc.TrackedFiles, nil
}

// Save rewrites the index with the given map.
func (s *IndexStore) Save(tracked map[string]string) error {
	data, err := json.MarshalIndent(indexDocument{TrackedFiles: tracked}, "", "    ")
	if err != nil {
		return fmt.Errorf("encode index: %w", err)
	}
	if err := util.WriteFile(s.fs, s.layout.Index(), data, 0o644); err != nil {
		return fmt.Errorf("write index: %w", err)
	}
	return nil
}
