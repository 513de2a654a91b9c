package markdown

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mdtask/mdtask/internal/domain"
)

func strPtr(s string) *string {
	return &s
}

func TestFormatDocument_SingleTaskAllAttributes(t *testing.T) {
	task := domain.Task{
		Name:         "Simple Task",
		Status:       domain.StatusPending,
		Priority:     "A",
		ID:           1,
		Created:      domain.MustDate(2024, time.January, 1),
		DisplayOrder: 1,
		Due:          datePtr(2024, time.December, 31),
		Project:      strPtr("MyProject"),
		Contexts:     []string{"work", "home"},
		Notes:        strPtr("This is a note."),
		Tags:         []string{"important"},
	}

	want := `- [p] (A) [[Simple Task]] id:1 due:2024-12-31 +MyProject @work @home #important created:2024-01-01 updated:"" completed:"" note:"This is a note."`
	assert.Equal(t, want, FormatDocument([]domain.Task{task}, DefaultIndentWidth))
}

func TestFormatDocument_MinimalTask(t *testing.T) {
	task := domain.Task{
		Name:         "Minimal Task",
		Status:       domain.StatusNone,
		Priority:     "N",
		ID:           2,
		Created:      domain.MustDate(2024, time.January, 2),
		DisplayOrder: 2,
	}

	want := `- [ ] (N) [[Minimal Task]] id:2 due:"" created:2024-01-02 updated:"" completed:""`
	assert.Equal(t, want, FormatDocument([]domain.Task{task}, DefaultIndentWidth))
}

func TestFormatDocument_EmptyNoteKeepsKey(t *testing.T) {
	task := domain.Task{
		Name:         "Empty Note Task",
		Status:       domain.StatusDone,
		Priority:     "C",
		ID:           3,
		Created:      domain.MustDate(2024, time.March, 3),
		DisplayOrder: 3,
		Due:          datePtr(2024, time.March, 10),
		Updated:      datePtr(2024, time.March, 4),
		Completed:    datePtr(2024, time.March, 5),
		Notes:        strPtr(""),
	}

	want := `- [x] (C) [[Empty Note Task]] id:3 due:2024-03-10 created:2024-03-03 updated:2024-03-04 completed:2024-03-05 note:""`
	assert.Equal(t, want, FormatDocument([]domain.Task{task}, DefaultIndentWidth))
}

func TestFormatDocument_QuotesInNoteAreDoubled(t *testing.T) {
	task := domain.Task{
		Name:         "Note with quotes",
		Status:       domain.StatusPending,
		Priority:     "B",
		ID:           4,
		Created:      domain.MustDate(2024, time.July, 1),
		DisplayOrder: 4,
		Notes:        strPtr(`This is a "quoted" note.`),
	}

	want := `- [p] (B) [[Note with quotes]] id:4 due:"" created:2024-07-01 updated:"" completed:"" note:"This is a ""quoted"" note."`
	assert.Equal(t, want, FormatDocument([]domain.Task{task}, DefaultIndentWidth))
}

func TestFormatDocument_MultipleTasks(t *testing.T) {
	tasks := []domain.Task{
		{
			Name: "Task 1", Status: domain.StatusNone, Priority: "N", ID: 1,
			Created: domain.MustDate(2024, time.January, 1), DisplayOrder: 1,
		},
		{
			Name: "Task 2", Status: domain.StatusDone, Priority: "A", ID: 2,
			Created: domain.MustDate(2024, time.January, 2), DisplayOrder: 2,
			Due:       datePtr(2024, time.January, 10),
			Completed: datePtr(2024, time.January, 3),
		},
	}

	want := `- [ ] (N) [[Task 1]] id:1 due:"" created:2024-01-01 updated:"" completed:""` + "\n" +
		`- [x] (A) [[Task 2]] id:2 due:2024-01-10 created:2024-01-02 updated:"" completed:2024-01-03`
	assert.Equal(t, want, FormatDocument(tasks, DefaultIndentWidth))
}

func TestFormatDocument_SubtaskIndentation(t *testing.T) {
	parent := domain.Task{
		Name: "Parent Task", Status: domain.StatusNone, Priority: "A", ID: 10,
		Created: domain.MustDate(2024, time.July, 15), DisplayOrder: 1,
		Subtasks: []domain.Task{
			{
				Name: "Child Task", Status: domain.StatusPending, Priority: "N", ID: 11,
				Created: domain.MustDate(2024, time.July, 15), DisplayOrder: 2,
			},
		},
	}

	want := `- [ ] (A) [[Parent Task]] id:10 due:"" created:2024-07-15 updated:"" completed:""` + "\n" +
		`    - [p] (N) [[Child Task]] id:11 due:"" created:2024-07-15 updated:"" completed:""`
	assert.Equal(t, want, FormatDocument([]domain.Task{parent}, DefaultIndentWidth))
}

func TestFormatDocument_MultipleLevels(t *testing.T) {
	mk := func(name string, id int64, order int64, subtasks ...domain.Task) domain.Task {
		return domain.Task{
			Name: name, Status: domain.StatusNone, Priority: "N", ID: id,
			Created: domain.MustDate(2024, time.January, 1), DisplayOrder: order,
			Subtasks: subtasks,
		}
	}

	tasks := []domain.Task{
		mk("Parent 1", 1, 1,
			mk("Child 1.1", 2, 2, mk("Grandchild 1.1.1", 3, 3)),
			mk("Child 1.2", 4, 4),
		),
		mk("Parent 2", 5, 5,
			mk("Child 2.1", 6, 6, mk("GrandGrandchild 2.1.1", 7, 7)),
		),
	}

	got := FormatDocument(tasks, DefaultIndentWidth)
	lines := []string{
		`- [ ] (N) [[Parent 1]] id:1 due:"" created:2024-01-01 updated:"" completed:""`,
		`    - [ ] (N) [[Child 1.1]] id:2 due:"" created:2024-01-01 updated:"" completed:""`,
		`        - [ ] (N) [[Grandchild 1.1.1]] id:3 due:"" created:2024-01-01 updated:"" completed:""`,
		`    - [ ] (N) [[Child 1.2]] id:4 due:"" created:2024-01-01 updated:"" completed:""`,
		`- [ ] (N) [[Parent 2]] id:5 due:"" created:2024-01-01 updated:"" completed:""`,
		`    - [ ] (N) [[Child 2.1]] id:6 due:"" created:2024-01-01 updated:"" completed:""`,
		`        - [ ] (N) [[GrandGrandchild 2.1.1]] id:7 due:"" created:2024-01-01 updated:"" completed:""`,
	}
	assert.Equal(t, lines, splitLines(got))
}

func splitLines(s string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			lines = append(lines, s[start:i])
			start = i + 1
		}
	}
	return append(lines, s[start:])
}

func TestFormatDocument_RoundTrip(t *testing.T) {
	doc := `- [p] (A) [[Simple Task]] id:1 due:2024-12-31 +MyProject @work @home #important created:2024-01-01 updated:"" completed:"" note:"This is a note."` + "\n" +
		`    - [x] (N) [[Done child]] id:2 due:"" created:2024-01-02 updated:"" completed:2024-02-01`

	opts := optsWithDefault(2024, time.January, 1)
	tasks, err := ParseDocument(doc, opts)
	require.NoError(t, err)

	rendered := FormatDocument(tasks, DefaultIndentWidth)
	assert.Equal(t, doc, rendered)

	again, err := ParseDocument(rendered, opts)
	require.NoError(t, err)
	assert.Equal(t, tasks, again)
}
