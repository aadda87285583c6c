package bench

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// Store persists session records.
type Store interface {
	Save(rec Record) error
	LoadLatest(label string) (*Record, error)
	LoadAll() ([]Record, error)
}

// FileStore implements Store using a JSON file.
type FileStore struct {
	path string
}

func NewFileStore(path string) (*FileStore, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	return &FileStore{path: path}, nil
}

func (s *FileStore) Save(rec Record) error {
	recs, err := s.LoadAll()
	if err != nil {
		return err
	}
	recs = append(recs, rec)

	data, err := json.MarshalIndent(recs, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal records: %w", err)
	}
	return os.WriteFile(s.path, data, 0o644)
}

func (s *FileStore) LoadAll() ([]Record, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []Record{}, nil
		}
		return nil, err
	}
	if len(data) == 0 {
		return []Record{}, nil
	}

	var recs []Record
	if err := json.Unmarshal(data, &recs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal records: %w", err)
	}

	sort.Slice(recs, func(i, j int) bool {
		return recs[i].Timestamp.Before(recs[j].Timestamp)
	})
	return recs, nil
}

// LoadLatest returns the most recent record for label, or nil when none
// exists. An empty label matches any record.
func (s *FileStore) LoadLatest(label string) (*Record, error) {
	recs, err := s.LoadAll()
	if err != nil {
		return nil, err
	}
	for i := len(recs) - 1; i >= 0; i-- {
		if label == "" || recs[i].Label == label {
			return &recs[i], nil
		}
	}
	return nil, nil
}
