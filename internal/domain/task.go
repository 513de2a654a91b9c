// Package domain contains core business entities and interfaces.
package domain

// Task is one node in the hierarchical task record. A task owns its
// subtasks exclusively; there are no back-references.
//
// The field tags encode the storage contract: required keys always
// serialize, the nullable date keys (due, updated, completed) serialize
// as null when unset, and optional keys disappear entirely when absent.
type Task struct {
	Name         string `json:"name" yaml:"name"`
	Status       Status `json:"status" yaml:"status"`
	Priority     string `json:"priority" yaml:"priority"`
	ID           int64  `json:"id" yaml:"id"`
	Created      Date   `json:"created" yaml:"created"`
	DisplayOrder int64  `json:"display_order" yaml:"display_order"`

	Due       *Date `json:"due" yaml:"due"`
	Updated   *Date `json:"updated" yaml:"updated"`
	Completed *Date `json:"completed" yaml:"completed"`

	Project  *string        `json:"project,omitempty" yaml:"project,omitempty"`
	Contexts []string       `json:"contexts,omitempty" yaml:"contexts,omitempty"`
	Notes    *string        `json:"notes,omitempty" yaml:"notes,omitempty"`
	Tags     []string       `json:"tags,omitempty" yaml:"tags,omitempty"`
	Subtasks []Task         `json:"subtasks,omitempty" yaml:"subtasks,omitempty"`
	Extra    map[string]any `json:"extra,omitempty" yaml:"extra,omitempty"`
	Repeat   *RepeatInfo    `json:"repeat,omitempty" yaml:"repeat,omitempty"`
}

// RepeatInfo is a placeholder for future recurrence rules.
type RepeatInfo struct{}

// HasSubtasks returns true if the task has at least one subtask.
func (t *Task) HasSubtasks() bool {
	return len(t.Subtasks) > 0
}

// Count returns the number of tasks in the tree rooted at t, including
// t itself.
func (t *Task) Count() int {
	n := 1
	for i := range t.Subtasks {
		n += t.Subtasks[i].Count()
	}
	return n
}

// CanonicalizeStatuses rewrites legacy status words to their canonical
// form across a whole forest. Stores call this after decoding so old
// data never leaks legacy spellings into new output.
func CanonicalizeStatuses(tasks []Task) {
	for i := range tasks {
		tasks[i].Status = tasks[i].Status.Canonical()
		CanonicalizeStatuses(tasks[i].Subtasks)
	}
}
