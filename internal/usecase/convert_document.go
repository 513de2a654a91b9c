package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mdtask/mdtask/internal/domain"
	"github.com/mdtask/mdtask/internal/markdown"
)

// Document format names accepted by ConvertDocument.
const (
	FormatMarkdown = "markdown"
	FormatJSON     = "json"
)

// ConvertDocumentInput contains the parameters for a format conversion.
type ConvertDocumentInput struct {
	Source string // Document in the From format
	From   string // Input format
	To     string // Output format
}

// ConvertDocumentOutput contains the converted document.
type ConvertDocumentOutput struct {
	Result string
}

// ConvertDocument is the use case for converting between the markdown
// document form and the JSON Lines record form.
type ConvertDocument struct {
	clock  domain.Clock
	indent int
}

// NewConvertDocument creates a new ConvertDocument use case.
func NewConvertDocument(clock domain.Clock, indent int) *ConvertDocument {
	return &ConvertDocument{clock: clock, indent: indent}
}

// Execute converts the document. Only markdown→json and json→markdown
// are supported.
func (uc *ConvertDocument) Execute(_ context.Context, in ConvertDocumentInput) (*ConvertDocumentOutput, error) {
	switch {
	case in.From == FormatMarkdown && in.To == FormatJSON:
		return uc.markdownToJSON(in.Source)
	case in.From == FormatJSON && in.To == FormatMarkdown:
		return uc.jsonToMarkdown(in.Source)
	default:
		return nil, fmt.Errorf("%w: %s to %s", domain.ErrUnsupportedFormat, in.From, in.To)
	}
}

func (uc *ConvertDocument) markdownToJSON(source string) (*ConvertDocumentOutput, error) {
	today := domain.DateOf(uc.clock.Now())
	tasks, err := markdown.ParseDocument(source, markdown.ParseOptions{
		DefaultCreated: today,
		IndentWidth:    uc.indent,
	})
	if err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}

	var b strings.Builder
	for i := range tasks {
		line, err := json.Marshal(&tasks[i])
		if err != nil {
			return nil, fmt.Errorf("marshal task %d: %w", tasks[i].ID, err)
		}
		b.Write(line)
		b.WriteByte('\n')
	}
	return &ConvertDocumentOutput{Result: b.String()}, nil
}

func (uc *ConvertDocument) jsonToMarkdown(source string) (*ConvertDocumentOutput, error) {
	tasks, err := DecodeJSONLines(source)
	if err != nil {
		return nil, err
	}
	return &ConvertDocumentOutput{Result: markdown.FormatDocument(tasks, uc.indent)}, nil
}

// DecodeJSONLines decodes a JSON Lines document into a task collection.
// Blank lines are skipped; any undecodable line aborts with an error
// wrapping domain.ErrStoreRecord.
func DecodeJSONLines(source string) ([]domain.Task, error) {
	var tasks []domain.Task
	for i, line := range strings.Split(source, "\n") {
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
