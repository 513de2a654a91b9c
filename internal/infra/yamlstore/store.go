// Package yamlstore persists a task collection as a single YAML
// document. It is the alternate backend to jsonstore, selected with
// store.format = "yaml" in the configuration.
package yamlstore

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mdtask/mdtask/internal/domain"
)

// storeData is the YAML file structure.
type storeData struct {
	Tasks []domain.Task `yaml:"tasks"`
}

// Store implements domain.CollectionStore using a YAML file.
type Store struct {
	path string
}

// New creates a Store for the given file path.
func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads the whole collection.
func (s *Store) Load() ([]domain.Task, error) {
	content, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", domain.ErrStoreNotFound, s.path)
		}
		return nil, fmt.Errorf("read store file: %w", err)
	}

	var data storeData
	if err := yaml.Unmarshal(content, &data); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStoreRecord, err)
	}

	domain.CanonicalizeStatuses(data.Tasks)
	return data.Tasks, nil
}

// Save replaces the collection. The file is written to a temp path and
// renamed for atomicity.
func (s *Store) Save(tasks []domain.Task) error {
	content, err := yaml.Marshal(&storeData{Tasks: tasks})
	if err != nil {
		return fmt.Errorf("marshal store data: %w", err)
	}

	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, content, 0o600); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath) // Clean up
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}

// Ensure Store implements CollectionStore.
var _ domain.CollectionStore = (*Store)(nil)
