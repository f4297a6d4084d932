package domain

import (
	"errors"
	"strings"
	"testing"
)

func collectWalk(t *testing.T, s *Suite) []string {
	t.Helper()
	var visited []string
	err := s.WalkCases(func(path []string, c *Case) error {
		visited = append(visited, strings.Join(path, "/")+":"+c.Name)
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected walk error: %v", err)
	}
	return visited
}

func TestWalkCases_Order(t *testing.T) {
	s := buildSampleSuite()

	visited := collectWalk(t, s)
	expected := []string{
		"Auth/Login:Valid login",
		"Auth:Logout",
		"Payments:Refund",
	}

	if len(visited) != len(expected) {
		t.Fatalf("expected %d cases, got %d: %v", len(expected), len(visited), visited)
	}
	for i := range expected {
		if visited[i] != expected[i] {
			t.Errorf("position %d: expected %q, got %q", i, expected[i], visited[i])
		}
	}
}

func TestWalkCases_Restartable(t *testing.T) {
	s := buildSampleSuite()

	first := collectWalk(t, s)
	second := collectWalk(t, s)

	if len(first) != len(second) {
		t.Fatalf("walks differ in length: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("position %d differs between walks: %q vs %q", i, first[i], second[i])
		}
	}
}

func TestWalkCases_AbortsOnError(t *testing.T) {
	s := buildSampleSuite()
	boom := errors.New("boom")

	count := 0
	err := s.WalkCases(func(path []string, c *Case) error {
		count++
		if count == 2 {
			return boom
		}
		return nil
	})

	if !errors.Is(err, boom) {
		t.Errorf("expected walk to surface the callback error, got %v", err)
	}
	if count != 2 {
		t.Errorf("expected walk to stop after 2 cases, visited %d", count)
	}
}

func TestWalkCases_PathNotAliased(t *testing.T) {
	s := NewSuite("S")
	g := s.AddGroup("A")
	deep := g.AddGroup("B")
	deep.AddCase("deep case")
	g.AddGroup("C").AddCase("other case")

	var paths [][]string
	err := s.WalkCases(func(path []string, c *Case) error {
		paths = append(paths, path)
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected walk error: %v", err)
	}

	if len(paths) != 2 {
		t.Fatalf("expected 2 cases, got %d", len(paths))
	}
	if got := strings.Join(paths[0], "/"); got != "A/B" {
		t.Errorf("retained path for first case changed: %q", got)
	}
	if got := strings.Join(paths[1], "/"); got != "A/C" {
		t.Errorf("retained path for second case changed: %q", got)
	}
}
