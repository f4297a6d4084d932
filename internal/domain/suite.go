package domain

// Suite is the root of a test-case tree: a named, ordered collection of
// top-level groups. Exactly one Suite exists per conversion.
type Suite struct {
	Name   string
	Groups []*Group
}

// Group is a module/category node. It owns an ordered list of sub-groups and
// an ordered list of cases; sub-groups come before cases in traversal order.
type Group struct {
	Name   string
	Groups []*Group
	Cases  []*Case

	parent *Group // nil for top-level groups
}

// Case is a single test case with ordered steps.
type Case struct {
	Name         string
	Precondition string
	Priority     string
	Steps        []Step

	parent *Group // non-owning, used for path reconstruction
}

// Step is one action/expected-result pair. Its sequence number is implicit:
// position in the Steps slice, 1-indexed for display.
type Step struct {
	Action   string
	Expected string
}

// NewSuite creates an empty suite with the given name.
func NewSuite(name string) *Suite {
	return &Suite{Name: name}
}

// AddGroup appends a new top-level group and returns it.
func (s *Suite) AddGroup(name string) *Group {
	g := &Group{Name: name}
	s.Groups = append(s.Groups, g)
	return g
}

// Group returns the top-level group with the given name, or nil.
func (s *Suite) Group(name string) *Group {
	for _, g := range s.Groups {
		if g.Name == name {
			return g
		}
	}
	return nil
}

// AddGroup appends a new sub-group and returns it.
func (g *Group) AddGroup(name string) *Group {
	child := &Group{Name: name, parent: g}
	g.Groups = append(g.Groups, child)
	return child
}

// Group returns the direct sub-group with the given name, or nil.
func (g *Group) Group(name string) *Group {
	for _, child := range g.Groups {
		if child.Name == name {
			return child
		}
	}
	return nil
}

// AddCase appends a new case to the group and returns it.
func (g *Group) AddCase(name string) *Case {
	c := &Case{Name: name, parent: g}
	g.Cases = append(g.Cases, c)
	return c
}

// Path returns the ancestor group names from the top level down to the
// group itself.
func (g *Group) Path() []string {
	var path []string
	for cur := g; cur != nil; cur = cur.parent {
		path = append(path, cur.Name)
	}
	reverse(path)
	return path
}

// AddStep appends an action/expected-result pair to the case.
func (c *Case) AddStep(action, expected string) {
	c.Steps = append(c.Steps, Step{Action: action, Expected: expected})
}

// Path returns the ancestor group names from the top level down to the
// case's parent group. It is empty only for a case detached from any group,
// which the readers never produce.
func (c *Case) Path() []string {
	if c.parent == nil {
		return nil
	}
	return c.parent.Path()
}

// Stats summarizes the size of a suite.
type Stats struct {
	Groups int
	Cases  int
	Steps  int
}

// Stats counts the groups, cases and steps in the suite.
func (s *Suite) Stats() Stats {
	var st Stats
	for _, g := range s.Groups {
		countGroup(g, &st)
	}
	return st
}

func countGroup(g *Group, st *Stats) {
	st.Groups++
	for _, child := range g.Groups {
		countGroup(child, st)
	}
	for _, c := range g.Cases {
		st.Cases++
		st.Steps += len(c.Steps)
	}
}

func reverse(s []string) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
