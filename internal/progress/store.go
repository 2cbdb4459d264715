// Package progress persists per-task workshop progress as a JSON file
// under the repository's .git directory.
package progress

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Task status values
const (
	StatusStarted = "started"
	StatusDone    = "done"
)

// fileName is the progress file kept inside .git so it never shows up
// in the workshop worktree.
const fileName = ".git_tasks_progress"

// TaskProgress records the state of a single task
type TaskProgress struct {
	Status       string     `json:"status"`
	BaseRevision string     `json:"baseRevision,omitempty"`
	StartedAt    *time.Time `json:"startedAt,omitempty"`
	CompletedAt  *time.Time `json:"completedAt,omitempty"`
}

// Store reads and writes task progress for one repository
type Store struct {
	repoRoot string
}

// NewStore creates a store for the repository at repoRoot
func NewStore(repoRoot string) *Store {
	return &Store{repoRoot: repoRoot}
}

func (s *Store) path() string {
	return filepath.Join(s.repoRoot, ".git", fileName)
}

// Load reads all recorded progress. A missing file is an empty record.
func (s *Store) Load() (map[string]TaskProgress, error) {
	data, err := os.ReadFile(s.path())
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]TaskProgress{}, nil
		}
		return nil, fmt.Errorf("failed to read progress file: %w", err)
	}

	var record map[string]TaskProgress
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("failed to parse progress file: %w", err)
	}
	if record == nil {
		record = map[string]TaskProgress{}
	}
	return record, nil
}

// Get returns the progress for one task, if recorded
func (s *Store) Get(taskName string) (TaskProgress, bool, error) {
	record, err := s.Load()
	if err != nil {
		return TaskProgress{}, false, err
	}
	p, ok := record[taskName]
	return p, ok, nil
}

// MarkStarted records that a task was started at the given base revision.
// Re-starting a completed task resets it to started.
func (s *Store) MarkStarted(taskName, baseRevision string) error {
	record, err := s.Load()
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	record[taskName] = TaskProgress{
		Status:       StatusStarted,
		BaseRevision: baseRevision,
		StartedAt:    &now,
	}
	return s.save(record)
}

// MarkDone records that a task passed all its checks.
// The started state (base revision, start time) is preserved.
func (s *Store) MarkDone(taskName string) error {
	record, err := s.Load()
	if err != nil {
		return err
	}

	p := record[taskName]
	now := time.Now().UTC()
	p.Status = StatusDone
	p.CompletedAt = &now
	record[taskName] = p
	return s.save(record)
}

// Clear removes the recorded progress for one task
func (s *Store) Clear(taskName string) error {
	record, err := s.Load()
	if err != nil {
		return err
	}

	delete(record, taskName)
	return s.save(record)
}

func (s *Store) save(record map[string]TaskProgress) error {
	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal progress: %w", err)
	}
	return os.WriteFile(s.path(), data, 0600)
}
