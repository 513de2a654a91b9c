package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mdtask/mdtask/internal/domain"
	"github.com/mdtask/mdtask/internal/markdown"
	"github.com/mdtask/mdtask/internal/merge"
)

// ApplyDocumentInput contains the parameters for applying a markdown
// edit to the stored collection.
type ApplyDocumentInput struct {
	Source string // Edited markdown document
	DryRun bool   // Report additions without writing
}

// ApplyDocumentOutput contains the result of an apply.
type ApplyDocumentOutput struct {
	Tasks    []domain.Task // The merged collection
	Added    []domain.Task // Tasks the document introduced
	Rendered string        // Canonical markdown of the merged collection
}

// ApplyDocument is the use case for reconciling an edited markdown
// document against the persisted collection.
type ApplyDocument struct {
	store  domain.CollectionStore
	clock  domain.Clock
	logger *slog.Logger
	indent int
}

// NewApplyDocument creates a new ApplyDocument use case.
func NewApplyDocument(store domain.CollectionStore, clock domain.Clock, logger *slog.Logger, indent int) *ApplyDocument {
	return &ApplyDocument{store: store, clock: clock, logger: logger, indent: indent}
}

// Execute parses the document, merges it with the stored collection and,
// unless DryRun is set, replaces the store with the result.
func (uc *ApplyDocument) Execute(_ context.Context, in ApplyDocumentInput) (*ApplyDocumentOutput, error) {
	today := domain.DateOf(uc.clock.Now())

	parsed, err := markdown.ParseDocument(in.Source, markdown.ParseOptions{
		DefaultCreated: today,
		IndentWidth:    uc.indent,
	})
	if err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}

	prev, err := uc.store.Load()
	if err != nil {
		return nil, fmt.Errorf("load store: %w", err)
	}

	added := merge.Added(prev, parsed)
	merged := merge.Apply(prev, parsed, today)

	out := &ApplyDocumentOutput{
		Tasks:    merged,
		Added:    added,
		Rendered: markdown.FormatDocument(merged, uc.indent),
	}
	if in.DryRun {
		return out, nil
	}

	if err := uc.store.Save(merged); err != nil {
		return nil, fmt.Errorf("save store: %w", err)
	}

	if uc.logger != nil {
		uc.logger.Info("applied document",
			"store", uc.store.Path(),
			"tasks", len(merged),
			"added", len(added))
	}
	return out, nil
}
