package markdown

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mdtask/mdtask/internal/domain"
)

// FormatDocument renders a task forest back to markdown, one task per
// line, subtasks indented one level deeper than their parent. It is the
// inverse of ParseDocument for any forest without colliding ids.
//
// indentWidth <= 0 means DefaultIndentWidth.
func FormatDocument(tasks []domain.Task, indentWidth int) string {
	if indentWidth <= 0 {
		indentWidth = DefaultIndentWidth
	}
	var lines []string
	for i := range tasks {
		appendTaskLines(&lines, &tasks[i], 0, indentWidth)
	}
	return strings.Join(lines, "\n")
}

func appendTaskLines(lines *[]string, t *domain.Task, level, indentWidth int) {
	indent := strings.Repeat(" ", level*indentWidth)
	*lines = append(*lines, indent+"- "+formatLine(t))
	for i := range t.Subtasks {
		appendTaskLines(lines, &t.Subtasks[i], level+1, indentWidth)
	}
}

// formatLine renders the line body without indentation or list marker.
// The attribute order (id, due, project, contexts, tags, created,
// updated, completed, notes) is a compatibility contract relied on by
// round-trip tests; do not reorder.
func formatLine(t *domain.Task) string {
	attrs := make([]string, 0, 9)
	attrs = append(attrs, "id:"+strconv.FormatInt(t.ID, 10))
	attrs = append(attrs, "due:"+dateOrEmpty(t.Due))
	if t.Project != nil {
		attrs = append(attrs, "+"+*t.Project)
	}
	for _, c := range t.Contexts {
		attrs = append(attrs, "@"+c)
	}
	for _, tag := range t.Tags {
		attrs = append(attrs, "#"+tag)
	}
	attrs = append(attrs, "created:"+t.Created.String())
	attrs = append(attrs, "updated:"+dateOrEmpty(t.Updated))
	attrs = append(attrs, "completed:"+dateOrEmpty(t.Completed))
	if t.Notes != nil {
		attrs = append(attrs, `note:"`+strings.ReplaceAll(*t.Notes, `"`, `""`)+`"`)
	}

	return fmt.Sprintf("[%c] (%s) [[%s]] %s",
		t.Status.Marker(), t.Priority, t.Name, strings.Join(attrs, " "))
}

// dateOrEmpty renders a nullable date, using the explicit empty-quote
// form when the value is absent so the key survives the round trip.
func dateOrEmpty(d *domain.Date) string {
	if d == nil {
		return `""`
	}
	return d.String()
}
