package mindmap

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/misldy/testcase-converter/internal/config"
	"github.com/misldy/testcase-converter/internal/domain"
)

// Reader parses a hierarchical document into a suite.
type Reader struct {
	cfg *config.Config
}

// NewReader creates a Reader using the given configuration.
func NewReader(cfg *config.Config) *Reader {
	return &Reader{cfg: cfg}
}

// ReadFile reads and parses the mind-map file at path.
func (r *Reader) ReadFile(path string) (*domain.Suite, []domain.Warning, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("read mind-map file: %w", err)
	}
	return r.Read(data)
}

// Read parses mind-map bytes: either a classic .xmind ZIP archive or bare
// xmap-content XML. It returns the suite, non-fatal warnings, and the first
// error encountered. On error the partially built suite is discarded.
func (r *Reader) Read(data []byte) (*domain.Suite, []domain.Warning, error) {
	content, err := extractContent(data)
	if err != nil {
		return nil, nil, err
	}

	var doc document
	if err := xml.Unmarshal(content, &doc); err != nil {
		return nil, nil, domain.MalformedDocument("", "cannot parse mind-map XML: %v", err)
	}
	// The original schema revision is 2.0; legacy exports omit the version
	// attribute entirely. Anything else is a schema we do not speak.
	if doc.Version != "" && !strings.HasPrefix(doc.Version, "2.") {
		return nil, nil, domain.UnsupportedVersion(contentEntry, "content schema version %q, want %s", doc.Version, contentVersion)
	}
	if len(doc.Sheets) == 0 {
		return nil, nil, domain.MalformedDocument("", "document has no sheets")
	}

	var warnings []domain.Warning
	// One suite per conversion: only the first sheet is read.
	for _, extra := range doc.Sheets[1:] {
		warnings = append(warnings, domain.Warningf("sheet "+extra.Title, "extra sheet ignored"))
	}

	sh := doc.Sheets[0]
	if sh.Root == nil {
		return nil, nil, domain.MalformedDocument("sheet "+sh.Title, "sheet has no root topic")
	}

	name := sh.Root.Title
	if name == "" {
		name = sh.Title
	}
	if name == "" {
		name = r.cfg.SuiteName
	}

	topics := sh.Root.childTopics()
	if len(topics) == 0 {
		return nil, nil, domain.MalformedDocument(name, "root topic has no topics")
	}

	suite := domain.NewSuite(name)
	for _, t := range topics {
		// Depth 1 sits at or below the default threshold, so root children
		// always read as groups; the model admits no suite-level cases.
		g := suite.AddGroup(t.Title)
		r.readInto(g, &t, 2, name+" > "+t.Title, &warnings)
	}
	return suite, warnings, nil
}

// readInto classifies and reads the children of a group topic.
func (r *Reader) readInto(g *domain.Group, t *topic, depth int, path string, warnings *[]domain.Warning) {
	for _, child := range t.childTopics() {
		childPath := path + " > " + child.Title
		if r.classify(&child, depth) == kindGroup {
			sub := g.AddGroup(child.Title)
			r.readInto(sub, &child, depth+1, childPath, warnings)
		} else {
			r.readCase(g, &child, childPath, warnings)
		}
	}
}

type topicKind int

const (
	kindGroup topicKind = iota
	kindCase
)

// classify decides whether a topic is a group or a case. The policy, in
// order (root children are depth 1):
//
//  1. depth <= CaseDepthThreshold: group, the top levels are module groups
//  2. title carries the configured case marker: case
//  3. any child carries the case marker: group, its children are cases
//  4. no child topics: case with zero steps
//  5. every child topic is childless: case, the children are its steps
//  6. otherwise: group
//
// Rules 4 and 5 are heuristics: a childless topic beyond the threshold and a
// group holding only zero-step cases are genuinely ambiguous and read as
// cases. Configure the case marker to make the distinction explicit.
func (r *Reader) classify(t *topic, depth int) topicKind {
	if depth <= r.cfg.CaseDepthThreshold {
		return kindGroup
	}
	marked := func(title string) bool {
		return r.cfg.CaseMarker != "" && strings.HasPrefix(title, r.cfg.CaseMarker)
	}
	if marked(t.Title) {
		return kindCase
	}
	kids := t.childTopics()
	if len(kids) == 0 {
		return kindCase
	}
	for i := range kids {
		if len(kids[i].childTopics()) > 0 || marked(kids[i].Title) {
			return kindGroup
		}
	}
	return kindCase
}

// readCase reads a case topic: its note carries the labeled case fields and
// its child topics are the steps (title = action, note = expected result).
func (r *Reader) readCase(g *domain.Group, t *topic, path string, warnings *[]domain.Warning) {
	name := strings.TrimPrefix(t.Title, r.cfg.CaseMarker)
	c := g.AddCase(name)
	if t.Notes != nil {
		applyCaseNote(c, t.Notes.Plain, path, warnings)
	}
	for _, st := range t.childTopics() {
		expected := ""
		if st.Notes != nil {
			expected = st.Notes.Plain
		}
		c.AddStep(st.Title, expected)
		// Marker-classified cases may carry nested structure we cannot keep.
		if len(st.childTopics()) > 0 {
			*warnings = append(*warnings, domain.Warningf(path+" > "+st.Title, "nested topics under a step ignored"))
		}
	}
}

// extractContent unwraps the document bytes: ZIP archives yield their
// content.xml entry, anything else is treated as bare XML.
func extractContent(data []byte) ([]byte, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, domain.MalformedDocument("", "document is empty")
	}
	if !bytes.HasPrefix(data, []byte("PK")) {
		return data, nil
	}

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, domain.MalformedDocument("", "cannot open archive: %v", err)
	}

	var hasZen bool
	for _, f := range zr.File {
		switch f.Name {
		case contentEntry:
			rc, err := f.Open()
			if err != nil {
				return nil, domain.MalformedDocument(contentEntry, "cannot open archive entry: %v", err)
			}
			defer rc.Close()
			content, err := io.ReadAll(rc)
			if err != nil {
				return nil, domain.MalformedDocument(contentEntry, "cannot read archive entry: %v", err)
			}
			return content, nil
		case zenEntry:
			hasZen = true
		}
	}

	if hasZen {
		return nil, domain.UnsupportedVersion(zenEntry, "XMind 2020 (Zen) archives are not supported; re-export in XMind 8 format")
	}
	return nil, domain.MalformedDocument("", "archive has no %s entry", contentEntry)
}
