package domain

// WalkFunc is called once per case during a walk. path holds the ancestor
// group names from the top level down to the case's parent; callbacks must
// not modify it. Returning an error aborts the walk and surfaces the error
// to the caller.
type WalkFunc func(path []string, c *Case) error

// WalkCases visits every case in the suite depth-first, sub-groups before
// cases within each group, in document order. The walk is finite and
// restartable: each call starts from the root. The tabular writer is built
// on this traversal; groups without cases anywhere beneath them are never
// visited.
func (s *Suite) WalkCases(fn WalkFunc) error {
	for _, g := range s.Groups {
		if err := walkGroup(g, []string{g.Name}, fn); err != nil {
			return err
		}
	}
	return nil
}

func walkGroup(g *Group, path []string, fn WalkFunc) error {
	for _, child := range g.Groups {
		childPath := make([]string, len(path)+1)
		copy(childPath, path)
		childPath[len(path)] = child.Name
		if err := walkGroup(child, childPath, fn); err != nil {
			return err
		}
	}
	for _, c := range g.Cases {
		if err := fn(path, c); err != nil {
			return err
		}
	}
	return nil
}
