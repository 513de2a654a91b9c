// Package usecase contains application use cases.
package usecase

import (
	"context"
	"fmt"

	"github.com/mdtask/mdtask/internal/domain"
	"github.com/mdtask/mdtask/internal/markdown"
)

// FormatDocumentInput contains the parameters for formatting a
// markdown document.
type FormatDocumentInput struct {
	Source string // Raw markdown document
}

// FormatDocumentOutput contains the result of formatting.
type FormatDocumentOutput struct {
	Formatted string // Canonically formatted markdown
	TaskCount int    // Total number of tasks, nested ones included
}

// FormatDocument is the use case for reformatting a markdown task
// document: parse, allocate missing ids, render canonically.
type FormatDocument struct {
	clock  domain.Clock
	indent int
}

// NewFormatDocument creates a new FormatDocument use case.
func NewFormatDocument(clock domain.Clock, indent int) *FormatDocument {
	return &FormatDocument{clock: clock, indent: indent}
}

// Execute formats the given document.
func (uc *FormatDocument) Execute(_ context.Context, in FormatDocumentInput) (*FormatDocumentOutput, error) {
	today := domain.DateOf(uc.clock.Now())
	tasks, err := markdown.ParseDocument(in.Source, markdown.ParseOptions{
		DefaultCreated: today,
		IndentWidth:    uc.indent,
	})
	if err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}

	count := 0
	for i := range tasks {
		count += tasks[i].Count()
	}

	return &FormatDocumentOutput{
		Formatted: markdown.FormatDocument(tasks, uc.indent),
		TaskCount: count,
	}, nil
}
