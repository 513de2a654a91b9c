// Package merge reconciles a freshly parsed task forest against the
// previously persisted collection.
//
// This is a two-state reconciliation, not a three-way diff: the prior
// collection and the document as typed are the only inputs, and
// deletion is the set difference of identifiers.
package merge

import (
	"slices"

	"github.com/mdtask/mdtask/internal/domain"
)

// Apply merges the parsed forest into the prior collection and returns
// the new collection.
//
// Per matched identifier, every markdown-editable field (name, status,
// priority, due, completed, notes, project, contexts, tags, subtasks)
// is replaced by the document's value, including to absent. id and
// created are carried over from the prior record, as are extra and
// repeat, which the text form cannot author. updated is stamped with
// today for every created or matched record, whether or not a visible
// field changed. Subtask trees replace the prior ones wholesale.
//
// Identifiers absent from the parsed forest are dropped without
// confirmation. The output is ordered by document position and its
// display_order values renumbered to a dense 1..N.
func Apply(prev, parsed []domain.Task, today domain.Date) []domain.Task {
	prevByID := make(map[int64]domain.Task, len(prev))
	for _, t := range prev {
		prevByID[t.ID] = t
	}

	merged := make([]domain.Task, 0, len(parsed))
	order := int64(1)
	for _, task := range parsed {
		task.DisplayOrder = order
		order++

		if old, ok := prevByID[task.ID]; ok {
			task.Created = old.Created
			task.Extra = old.Extra
			task.Repeat = old.Repeat
		}
		stamp := today
		task.Updated = &stamp

		merged = append(merged, task)
	}

	slices.SortStableFunc(merged, func(a, b domain.Task) int {
		return int(a.DisplayOrder - b.DisplayOrder)
	})
	for i := range merged {
		merged[i].DisplayOrder = int64(i + 1)
	}
	return merged
}

// Added returns the tasks in parsed whose identifiers do not occur in
// prev, in document order. Used by dry runs to report what an apply
// would create.
func Added(prev, parsed []domain.Task) []domain.Task {
	prevIDs := make(map[int64]struct{}, len(prev))
	for _, t := range prev {
		prevIDs[t.ID] = struct{}{}
	}
	var added []domain.Task
	for _, t := range parsed {
		if _, ok := prevIDs[t.ID]; !ok {
			added = append(added, t)
		}
	}
	return added
}
