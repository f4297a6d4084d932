// Package mindmap reads and writes the hierarchical test-case format: XMind
// content XML, either bare or inside the classic .xmind ZIP container.
package mindmap

import (
	"encoding/xml"
	"strings"

	"github.com/misldy/testcase-converter/internal/domain"
)

const (
	// contentNamespace is the XMind 2.0 content schema namespace.
	contentNamespace = "urn:xmind:xmap:xmlns:content:2.0"
	// contentVersion is the schema revision this package reads and writes.
	contentVersion = "2.0"
	// contentEntry is the document entry inside a .xmind archive.
	contentEntry = "content.xml"
	// zenEntry identifies XMind 2020 ("Zen") archives, which replaced the
	// XML document with JSON.
	zenEntry = "content.json"
)

// Note section labels carried on a case topic. Step topics carry the
// expected result as a bare note instead.
const (
	labelPrecondition = "Precondition"
	labelPriority     = "Priority"
)

// document is the xmap-content root element.
type document struct {
	XMLName xml.Name `xml:"xmap-content"`
	XMLNS   string   `xml:"xmlns,attr"`
	Version string   `xml:"version,attr"`
	Sheets  []sheet  `xml:"sheet"`
}

// sheet holds one mind map: a title and a single root topic.
type sheet struct {
	Title string `xml:"title"`
	Root  *topic `xml:"topic"`
}

// topic is a recursive mind-map node.
type topic struct {
	Title    string    `xml:"title"`
	Notes    *notes    `xml:"notes"`
	Children *children `xml:"children"`
}

type children struct {
	Topics []topicList `xml:"topics"`
}

// topicList carries a type attribute: "attached" topics form the visible
// tree, "detached" ones float beside it.
type topicList struct {
	Type   string  `xml:"type,attr"`
	Topics []topic `xml:"topic"`
}

type notes struct {
	Plain string `xml:"plain"`
}

// childTopics returns the attached child topics in document order. Detached
// (floating) topics carry no test-case structure and are ignored.
func (t *topic) childTopics() []topic {
	if t.Children == nil {
		return nil
	}
	var out []topic
	for _, list := range t.Children.Topics {
		if list.Type == "" || list.Type == "attached" {
			out = append(out, list.Topics...)
		}
	}
	return out
}

// formatCaseNote renders the case-level note: one [Label] section per
// non-empty field, value starting on the label's line and running until the
// next label. Returns "" when the case has neither field.
func formatCaseNote(c *domain.Case) string {
	var b strings.Builder
	if c.Precondition != "" {
		b.WriteString("[" + labelPrecondition + "] " + c.Precondition)
	}
	if c.Priority != "" {
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		b.WriteString("[" + labelPriority + "] " + c.Priority)
	}
	return b.String()
}

// noteSection is one parsed [Label] block. Text before the first label is
// returned as a section with an empty label.
type noteSection struct {
	Label string
	Value string
}

// parseLabeledNote splits a case note into its [Label] sections.
func parseLabeledNote(note string) []noteSection {
	var sections []noteSection
	cur := noteSection{}
	flush := func() {
		cur.Value = strings.TrimSpace(cur.Value)
		if cur.Label != "" || cur.Value != "" {
			sections = append(sections, cur)
		}
	}

	for _, line := range strings.Split(note, "\n") {
		label, rest, ok := splitLabelLine(line)
		if !ok {
			if cur.Value != "" {
				cur.Value += "\n"
			}
			cur.Value += line
			continue
		}
		flush()
		cur = noteSection{Label: label, Value: rest}
	}
	flush()
	return sections
}

// splitLabelLine recognizes lines of the form "[Label] rest".
func splitLabelLine(line string) (label, rest string, ok bool) {
	if !strings.HasPrefix(line, "[") {
		return "", "", false
	}
	end := strings.Index(line, "]")
	if end < 1 {
		return "", "", false
	}
	return line[1:end], strings.TrimSpace(line[end+1:]), true
}

// applyCaseNote fills case fields from a note. Leading unlabeled text is
// taken as the precondition; an explicit [Precondition] section wins over
// it. Unknown labels are reported, not fatal.
func applyCaseNote(c *domain.Case, note, location string, warnings *[]domain.Warning) {
	for _, sec := range parseLabeledNote(note) {
		switch sec.Label {
		case "":
			if c.Precondition == "" {
				c.Precondition = sec.Value
			}
		case labelPrecondition:
			c.Precondition = sec.Value
		case labelPriority:
			c.Priority = sec.Value
		default:
			*warnings = append(*warnings, domain.Warningf(location, "unknown note label %q ignored", sec.Label))
		}
	}
}
