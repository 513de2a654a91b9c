// Package markdown implements the task line grammar, the document
// hierarchy builder and the inverse renderer.
package markdown

import "regexp"

// Line grammar. The base shape is anchored and must match for a line to
// parse at all; attribute patterns are scanned independently over the
// tail, so attributes may appear in any order and unrecognized tokens
// are ignored.
const (
	statusMarkerPattern = `\[(?P<status>[ xXpPwW?>cC-])\]`
	priorityPattern     = `\((?P<priority>[A-Z]+|N)\)`
	taskNamePattern     = `(?:\[\[(?P<name>.+?)\]\]|(?P<plain>.+))`

	// Date literals: YYYY-MM-DD, YYYY/MM/DD, MM/DD, M/D.
	dateTokenPattern = `\d{4}[-/]\d{1,2}[-/]\d{1,2}|\d{1,2}/\d{1,2}`
)

var (
	baseRe = regexp.MustCompile(
		`^\s*` + statusMarkerPattern +
			`\s*(?:` + priorityPattern + `\s*)?` +
			taskNamePattern +
			`\s*(?P<attrs>.*)$`)

	idRe        = regexp.MustCompile(`id:(?P<val>\d+)`)
	createdRe   = regexp.MustCompile(`created:(?P<val>` + dateTokenPattern + `)`)
	dueRe       = regexp.MustCompile(`due:(?P<val>` + dateTokenPattern + `|"")`)
	updatedRe   = regexp.MustCompile(`updated:(?P<val>` + dateTokenPattern + `|"")`)
	completedRe = regexp.MustCompile(`completed:(?P<val>` + dateTokenPattern + `|"")`)
	projectRe   = regexp.MustCompile(`\+(?P<val>\S+)`)
	contextRe   = regexp.MustCompile(`@(?P<val>\S+)`)
	tagRe       = regexp.MustCompile(`#(?P<val>\S+)`)
	noteRe      = regexp.MustCompile(`note:"(?P<val>(?:[^"]|"")*)"`)
)

var (
	baseStatusIdx   = baseRe.SubexpIndex("status")
	basePriorityIdx = baseRe.SubexpIndex("priority")
	baseNameIdx     = baseRe.SubexpIndex("name")
	basePlainIdx    = baseRe.SubexpIndex("plain")
	baseAttrsIdx    = baseRe.SubexpIndex("attrs")
)

// firstCapture returns the first capture of re in s, or "" and false if
// there is no match. Conflicting occurrences of the same attribute are
// resolved by taking the leftmost one.
func firstCapture(re *regexp.Regexp, s string) (string, bool) {
	m := re.FindStringSubmatch(s)
	if m == nil {
		return "", false
	}
	return m[re.SubexpIndex("val")], true
}

// allCaptures returns every capture of re in s, in order of appearance.
func allCaptures(re *regexp.Regexp, s string) []string {
	ms := re.FindAllStringSubmatch(s, -1)
	if len(ms) == 0 {
		return nil
	}
	idx := re.SubexpIndex("val")
	vals := make([]string, 0, len(ms))
	for _, m := range ms {
		vals = append(vals, m[idx])
	}
	return vals
}
