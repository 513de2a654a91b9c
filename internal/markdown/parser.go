package markdown

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/mdtask/mdtask/internal/domain"
)

// DefaultIndentWidth is the number of leading spaces per nesting level.
const DefaultIndentWidth = 4

// taskLinePrefix marks a line as a task line after indentation.
const taskLinePrefix = "- ["

// ParseOptions configures document and line parsing.
type ParseOptions struct {
	// DefaultCreated is used as the created date for lines that carry
	// no created attribute. Its year also resolves the two-part date
	// spellings (MM/DD, M/D), so parsing is deterministic for a fixed
	// processing date.
	DefaultCreated domain.Date

	// IndentWidth is the number of spaces per nesting level.
	// Zero means DefaultIndentWidth.
	IndentWidth int
}

func (o ParseOptions) indentWidth() int {
	if o.IndentWidth <= 0 {
		return DefaultIndentWidth
	}
	return o.IndentWidth
}

// ParseLine parses one task line (leading indentation and list marker
// already stripped) into a Task with no subtasks. The id is left 0 when
// the line carries no usable id attribute; the caller allocates one.
//
// Malformed individual attributes degrade to absent. A line that does
// not match the base shape returns an error wrapping ErrLineFormat.
func ParseLine(line string, opts ParseOptions) (domain.Task, error) {
	trimmed := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), "- "))

	m := baseRe.FindStringSubmatch(trimmed)
	if m == nil {
		return domain.Task{}, fmt.Errorf("%w: %q", domain.ErrLineFormat, trimmed)
	}

	task := domain.Task{
		Status:   domain.StatusFromMarker(rune(m[baseStatusIdx][0])),
		Priority: m[basePriorityIdx],
		Created:  opts.DefaultCreated,
	}
	if task.Priority == "" {
		task.Priority = "N"
	}
	if name := m[baseNameIdx]; name != "" {
		task.Name = name
	} else {
		task.Name = m[basePlainIdx]
	}

	attrs := strings.TrimSpace(m[baseAttrsIdx])
	year := opts.DefaultCreated.Year

	if val, ok := firstCapture(idRe, attrs); ok {
		if id, err := strconv.ParseInt(val, 10, 64); err == nil {
			task.ID = id
		}
	}
	if val, ok := firstCapture(createdRe, attrs); ok {
		if d, ok := parseDateToken(val, year); ok {
			task.Created = d
		}
	}
	task.Due = parseNullableDate(dueRe, attrs, year)
	task.Updated = parseNullableDate(updatedRe, attrs, year)
	task.Completed = parseNullableDate(completedRe, attrs, year)

	if val, ok := firstCapture(projectRe, attrs); ok {
		task.Project = &val
	}
	task.Contexts = allCaptures(contextRe, attrs)
	task.Tags = allCaptures(tagRe, attrs)

	if val, ok := firstCapture(noteRe, attrs); ok {
		note := strings.ReplaceAll(val, `""`, `"`)
		task.Notes = &note
	}

	return task, nil
}

// parseNullableDate scans attrs for a nullable date attribute. Both an
// absent attribute and an explicit "" value yield nil; so does a token
// that names no real calendar day.
func parseNullableDate(re *regexp.Regexp, attrs string, year int) *domain.Date {
	val, ok := firstCapture(re, attrs)
	if !ok || val == `""` {
		return nil
	}
	d, ok := parseDateToken(val, year)
	if !ok {
		return nil
	}
	return &d
}

// parseDateToken parses one of the four date spellings. Two-part forms
// take the given year.
func parseDateToken(s string, year int) (domain.Date, bool) {
	var parts []string
	switch {
	case strings.Count(s, "-") == 2:
		parts = strings.SplitN(s, "-", 3)
	case strings.Count(s, "/") == 2:
		parts = strings.SplitN(s, "/", 3)
	case strings.Count(s, "/") == 1:
		md := strings.SplitN(s, "/", 2)
		parts = []string{strconv.Itoa(year), md[0], md[1]}
	default:
		return domain.Date{}, false
	}

	nums := make([]int, 3)
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return domain.Date{}, false
		}
		nums[i] = n
	}
	return domain.NewDate(nums[0], time.Month(nums[1]), nums[2])
}

// ParseDocument parses a whole markdown document into an ordered forest
// of tasks. Lines that do not begin with the task list marker are
// skipped; any malformed task line aborts the parse.
//
// Identifier allocation runs in two named passes: the pre-scan reserves
// every id explicitly authored anywhere in the text, then the parse
// pass allocates the smallest free id for unlabeled lines. An explicit
// id can therefore never collide with an earlier automatic one.
func ParseDocument(doc string, opts ParseOptions) ([]domain.Task, error) {
	lines := strings.Split(doc, "\n")
	alloc := newIDAllocator()
	collectExplicitIDs(lines, alloc)

	width := opts.indentWidth()
	var items []flatItem
	order := int64(1)
	for i, line := range lines {
		if !isTaskLine(line) {
			continue
		}
		task, err := ParseLine(stripMarker(line), opts)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		task.DisplayOrder = order
		order++
		if task.ID == 0 {
			task.ID = alloc.alloc()
		} else {
			alloc.reserve(task.ID)
		}
		items = append(items, flatItem{task: task, depth: indentDepth(line, width)})
	}

	return assembleForest(items), nil
}

// flatItem is one parsed task line before tree assembly.
type flatItem struct {
	task  domain.Task
	depth int
}

// collectExplicitIDs is the pre-scan pass: it reserves every id
// attribute present in the raw text, ignoring structure.
func collectExplicitIDs(lines []string, alloc *idAllocator) {
	for _, line := range lines {
		if !isTaskLine(line) {
			continue
		}
		for _, val := range allCaptures(idRe, stripMarker(line)) {
			if id, err := strconv.ParseInt(val, 10, 64); err == nil {
				alloc.reserve(id)
			}
		}
	}
}

// assembleForest turns the flat parsed sequence into an owned forest.
// Tasks live in a flat arena; parent/child links are tracked as indices
// while the indentation stack runs, and the owned tree is materialized
// only once every position is final.
func assembleForest(items []flatItem) []domain.Task {
	if len(items) == 0 {
		return nil
	}

	children := make([][]int, len(items))
	var roots []int

	type stackEntry struct {
		idx   int
		depth int
	}
	var stack []stackEntry
	for i, it := range items {
		// Anything at the same or deeper indentation cannot be an
		// ancestor of this line.
		for len(stack) > 0 && stack[len(stack)-1].depth >= it.depth {
			stack = stack[:len(stack)-1]
		}
		if len(stack) == 0 {
			roots = append(roots, i)
		} else {
			parent := stack[len(stack)-1].idx
			children[parent] = append(children[parent], i)
		}
		stack = append(stack, stackEntry{idx: i, depth: it.depth})
	}

	var build func(i int) domain.Task
	build = func(i int) domain.Task {
		task := items[i].task
		for _, c := range children[i] {
			task.Subtasks = append(task.Subtasks, build(c))
		}
		return task
	}

	forest := make([]domain.Task, 0, len(roots))
	for _, r := range roots {
		forest = append(forest, build(r))
	}
	return forest
}

// idAllocator hands out task identifiers, avoiding every id it has
// seen. State is local to one document parse so concurrent parses do
// not interfere.
type idAllocator struct {
	used map[int64]struct{}
	next int64
}

func newIDAllocator() *idAllocator {
	return &idAllocator{used: make(map[int64]struct{}), next: 1}
}

func (a *idAllocator) reserve(id int64) {
	a.used[id] = struct{}{}
}

// alloc returns the smallest positive id not yet reserved.
func (a *idAllocator) alloc() int64 {
	for {
		if _, taken := a.used[a.next]; !taken {
			id := a.next
			a.used[id] = struct{}{}
			a.next++
			return id
		}
		a.next++
	}
}

// isTaskLine reports whether the line is a task list item.
func isTaskLine(line string) bool {
	return strings.HasPrefix(strings.TrimLeft(line, " \t"), taskLinePrefix)
}

// indentDepth computes the nesting level from leading spaces.
func indentDepth(line string, width int) int {
	n := 0
	for _, r := range line {
		if r != ' ' {
			break
		}
		n++
	}
	return n / width
}

// stripMarker removes leading indentation and the list marker.
func stripMarker(line string) string {
	return strings.TrimLeft(strings.TrimLeft(line, " -*"), " \t")
}
