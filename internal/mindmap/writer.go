package mindmap

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"

	"github.com/misldy/testcase-converter/internal/config"
	"github.com/misldy/testcase-converter/internal/domain"
)

// Writer serializes a suite into the hierarchical format.
type Writer struct {
	cfg *config.Config
}

// NewWriter creates a Writer using the given configuration.
func NewWriter(cfg *config.Config) *Writer {
	return &Writer{cfg: cfg}
}

// Write renders the suite as a classic .xmind archive: a ZIP container
// holding content.xml. Output is deterministic: no topic IDs are generated
// and archive entry timestamps are left zero, so an identical suite always
// produces identical bytes.
func (w *Writer) Write(s *domain.Suite) ([]byte, error) {
	content, err := w.WriteContent(s)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	entry, err := zw.Create(contentEntry)
	if err != nil {
		return nil, fmt.Errorf("create archive entry: %w", err)
	}
	if _, err := entry.Write(content); err != nil {
		return nil, fmt.Errorf("write archive entry: %w", err)
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("close archive: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteContent renders the suite as bare xmap-content XML: one sheet, one
// root topic named after the suite, nested group topics in traversal order,
// one topic per case and one child topic per step. Step notes carry the
// expected result; case notes carry the labeled precondition and priority.
func (w *Writer) WriteContent(s *domain.Suite) ([]byte, error) {
	root := topic{Title: s.Name}
	var tops []topic
	for _, g := range s.Groups {
		tops = append(tops, w.groupTopic(g))
	}
	attach(&root, tops)

	doc := document{
		XMLNS:   contentNamespace,
		Version: contentVersion,
		Sheets:  []sheet{{Title: s.Name, Root: &root}},
	}

	body, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal content XML: %w", err)
	}
	out := make([]byte, 0, len(xml.Header)+len(body)+1)
	out = append(out, xml.Header...)
	out = append(out, body...)
	out = append(out, '\n')
	return out, nil
}

func (w *Writer) groupTopic(g *domain.Group) topic {
	t := topic{Title: g.Name}
	var kids []topic
	for _, sub := range g.Groups {
		kids = append(kids, w.groupTopic(sub))
	}
	for _, c := range g.Cases {
		kids = append(kids, w.caseTopic(c))
	}
	attach(&t, kids)
	return t
}

func (w *Writer) caseTopic(c *domain.Case) topic {
	t := topic{Title: w.cfg.CaseMarker + c.Name}
	if note := formatCaseNote(c); note != "" {
		t.Notes = &notes{Plain: note}
	}
	var kids []topic
	for _, s := range c.Steps {
		st := topic{Title: s.Action}
		if s.Expected != "" {
			st.Notes = &notes{Plain: s.Expected}
		}
		kids = append(kids, st)
	}
	attach(&t, kids)
	return t
}

func attach(t *topic, kids []topic) {
	if len(kids) == 0 {
		return
	}
	t.Children = &children{Topics: []topicList{{Type: "attached", Topics: kids}}}
}
