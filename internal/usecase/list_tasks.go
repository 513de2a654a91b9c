package usecase

import (
	"context"
	"fmt"
	"slices"

	"github.com/mdtask/mdtask/internal/domain"
)

// ListTasksOutput contains the stored collection in display order.
type ListTasksOutput struct {
	Tasks []domain.Task
}

// ListTasks is the use case for reading the stored collection.
type ListTasks struct {
	store domain.CollectionStore
}

// NewListTasks creates a new ListTasks use case.
func NewListTasks(store domain.CollectionStore) *ListTasks {
	return &ListTasks{store: store}
}

// Execute loads the collection, ordered by display order.
func (uc *ListTasks) Execute(_ context.Context) (*ListTasksOutput, error) {
	tasks, err := uc.store.Load()
	if err != nil {
		return nil, fmt.Errorf("load store: %w", err)
	}

	slices.SortStableFunc(tasks, func(a, b domain.Task) int {
		return int(a.DisplayOrder - b.DisplayOrder)
	})
	return &ListTasksOutput{Tasks: tasks}, nil
}
