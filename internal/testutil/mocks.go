// Package testutil provides shared test doubles.
package testutil

import (
	"time"

	"github.com/mdtask/mdtask/internal/domain"
)

// FixedClock implements domain.Clock with a fixed time.
type FixedClock struct {
	T time.Time
}

// Now returns the fixed time.
func (c FixedClock) Now() time.Time {
	return c.T
}

// ClockAt returns a FixedClock set to midnight of the given date.
func ClockAt(year int, month time.Month, day int) FixedClock {
	return FixedClock{T: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// MemStore implements domain.CollectionStore in memory.
type MemStore struct {
	Tasks      []domain.Task
	LoadErr    error
	SaveErr    error
	SaveCalled bool
	StorePath  string
}

// NewMemStore creates an empty MemStore.
func NewMemStore() *MemStore {
	return &MemStore{StorePath: "mem://tasks"}
}

// Load returns the stored tasks or LoadErr.
func (s *MemStore) Load() ([]domain.Task, error) {
	if s.LoadErr != nil {
		return nil, s.LoadErr
	}
	return s.Tasks, nil
}

// Save replaces the stored tasks or returns SaveErr.
func (s *MemStore) Save(tasks []domain.Task) error {
	s.SaveCalled = true
	if s.SaveErr != nil {
		return s.SaveErr
	}
	s.Tasks = tasks
	return nil
}

// Path returns the mock path.
func (s *MemStore) Path() string {
	return s.StorePath
}

// Ensure MemStore implements CollectionStore.
var _ domain.CollectionStore = (*MemStore)(nil)
