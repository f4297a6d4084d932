package domain

import (
	"strings"
	"testing"
)

// buildSampleSuite creates a small suite used across the model tests:
//
//	Auth/
//	  Login/
//	    "Valid login" (2 steps)
//	  "Logout" (1 step)
//	Payments/
//	  "Refund" (0 steps)
func buildSampleSuite() *Suite {
	s := NewSuite("Regression")
	auth := s.AddGroup("Auth")
	login := auth.AddGroup("Login")
	valid := login.AddCase("Valid login")
	valid.Precondition = "User registered"
	valid.Priority = "1"
	valid.AddStep("Enter valid user", "Dashboard shown")
	valid.AddStep("Enter valid pass", "Logs in")
	logout := auth.AddCase("Logout")
	logout.AddStep("Click logout", "Login page shown")
	payments := s.AddGroup("Payments")
	payments.AddCase("Refund")
	return s
}

func TestSuite_Construction(t *testing.T) {
	s := buildSampleSuite()

	if len(s.Groups) != 2 {
		t.Fatalf("expected 2 top-level groups, got %d", len(s.Groups))
	}
	if s.Groups[0].Name != "Auth" || s.Groups[1].Name != "Payments" {
		t.Errorf("unexpected group order: %s, %s", s.Groups[0].Name, s.Groups[1].Name)
	}

	auth := s.Group("Auth")
	if auth == nil {
		t.Fatal("Group(Auth) returned nil")
	}
	if got := auth.Group("Login"); got == nil {
		t.Error("sub-group Login not found")
	}
	if got := auth.Group("Nope"); got != nil {
		t.Errorf("expected nil for unknown sub-group, got %q", got.Name)
	}
	if got := s.Group("Nope"); got != nil {
		t.Errorf("expected nil for unknown top-level group, got %q", got.Name)
	}
}

func TestCase_Path(t *testing.T) {
	s := buildSampleSuite()

	tests := []struct {
		name     string
		findCase func() *Case
		expected string
	}{
		{
			name:     "nested case",
			findCase: func() *Case { return s.Group("Auth").Group("Login").Cases[0] },
			expected: "Auth/Login",
		},
		{
			name:     "case on top-level group",
			findCase: func() *Case { return s.Group("Auth").Cases[0] },
			expected: "Auth",
		},
		{
			name:     "zero-step case",
			findCase: func() *Case { return s.Group("Payments").Cases[0] },
			expected: "Payments",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := strings.Join(tt.findCase().Path(), "/")
			if got != tt.expected {
				t.Errorf("expected path %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestSuite_Stats(t *testing.T) {
	s := buildSampleSuite()
	st := s.Stats()

	if st.Groups != 3 {
		t.Errorf("expected 3 groups, got %d", st.Groups)
	}
	if st.Cases != 3 {
		t.Errorf("expected 3 cases, got %d", st.Cases)
	}
	if st.Steps != 3 {
		t.Errorf("expected 3 steps, got %d", st.Steps)
	}
}

func TestSuite_StatsEmpty(t *testing.T) {
	st := NewSuite("Empty").Stats()
	if st.Groups != 0 || st.Cases != 0 || st.Steps != 0 {
		t.Errorf("expected zero stats, got %+v", st)
	}
}
