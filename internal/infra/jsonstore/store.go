// Package jsonstore persists a task collection as JSON Lines: one root
// task record per line, subtasks nested inside their record.
package jsonstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/mdtask/mdtask/internal/domain"
)

// Store implements domain.CollectionStore using a JSON Lines file.
type Store struct {
	path     string
	lockPath string
}

// New creates a Store for the given file path. The file must exist for
// Load; Save creates it.
func New(path string) *Store {
	return &Store{
		path:     path,
		lockPath: path + ".lock",
	}
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads the whole collection. Blank lines are skipped; any line
// that cannot be decoded aborts the load with an error wrapping
// domain.ErrStoreRecord.
func (s *Store) Load() ([]domain.Task, error) {
	lock, err := s.acquireLock(syscall.LOCK_SH)
	if err != nil {
		return nil, err
	}
	defer s.releaseLock(lock)

	content, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", domain.ErrStoreNotFound, s.path)
		}
		return nil, fmt.Errorf("read store file: %w", err)
	}

	var tasks []domain.Task
	for i, line := range strings.Split(string(content), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		var task domain.Task
		if err := json.Unmarshal([]byte(line), &task); err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", domain.ErrStoreRecord, i+1, err)
		}
		tasks = append(tasks, task)
	}

	domain.CanonicalizeStatuses(tasks)
	return tasks, nil
}

// Save replaces the collection. The file is written to a temp path and
// renamed for atomicity.
func (s *Store) Save(tasks []domain.Task) error {
	lock, err := s.acquireLock(syscall.LOCK_EX)
	if err != nil {
		return err
	}
	defer s.releaseLock(lock)

	var b strings.Builder
	for i := range tasks {
		line, err := json.Marshal(&tasks[i])
		if err != nil {
			return fmt.Errorf("marshal task %d: %w", tasks[i].ID, err)
		}
		b.Write(line)
		b.WriteByte('\n')
	}

	return s.write([]byte(b.String()))
}

func (s *Store) write(content []byte) error {
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

func (s *Store) acquireLock(lockType int) (*os.File, error) {
	dir := filepath.Dir(s.lockPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("create lock directory: %w", err)
	}

	lock, err := os.OpenFile(s.lockPath, os.O_CREATE|os.O_RDWR, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open lock file: %w", err)
	}
	if err := syscall.Flock(int(lock.Fd()), lockType); err != nil {
		_ = lock.Close()
		return nil, fmt.Errorf("acquire lock: %w", err)
	}
	return lock, nil
}

func (s *Store) releaseLock(lock *os.File) {
	_ = syscall.Flock(int(lock.Fd()), syscall.LOCK_UN)
	_ = lock.Close()
}

// Ensure Store implements CollectionStore.
var _ domain.CollectionStore = (*Store)(nil)
