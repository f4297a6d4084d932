package spreadsheet

import (
	"bytes"
	"testing"

	"github.com/misldy/testcase-converter/internal/config"
	"github.com/misldy/testcase-converter/internal/domain"
)

func buildLoginSuite() *domain.Suite {
	s := domain.NewSuite("Test Suite")
	auth := s.AddGroup("Auth")
	c := auth.AddCase("Login Flow")
	c.Precondition = "User registered"
	c.Priority = "1"
	c.AddStep("Enter valid user", "Dashboard shown")
	c.AddStep("Enter valid pass", "Logs in")
	return s
}

func TestWriter_LoginFlowScenario(t *testing.T) {
	out, err := NewWriter(config.New()).Write(buildLoginSuite())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "Module,Case,Precondition,Step,Action,Expected,Priority\n" +
		"Auth,Login Flow,User registered,1,Enter valid user,Dashboard shown,1\n" +
		"Auth,Login Flow,User registered,2,Enter valid pass,Logs in,1\n"
	if string(out) != want {
		t.Errorf("unexpected output:\n got: %q\nwant: %q", out, want)
	}
}

func TestWriter_NoRepeatMode(t *testing.T) {
	cfg := config.New()
	cfg.RepeatCaseFields = false

	out, err := NewWriter(cfg).Write(buildLoginSuite())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "Module,Case,Precondition,Step,Action,Expected,Priority\n" +
		"Auth,Login Flow,User registered,1,Enter valid user,Dashboard shown,1\n" +
		",,,2,Enter valid pass,Logs in,\n"
	if string(out) != want {
		t.Errorf("unexpected output:\n got: %q\nwant: %q", out, want)
	}
}

func TestWriter_ZeroStepCaseGetsOneRow(t *testing.T) {
	s := domain.NewSuite("Test Suite")
	c := s.AddGroup("Auth").AddCase("Placeholder")
	c.Priority = "3"

	out, err := NewWriter(config.New()).Write(s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "Module,Case,Precondition,Step,Action,Expected,Priority\n" +
		"Auth,Placeholder,,,,,3\n"
	if string(out) != want {
		t.Errorf("unexpected output:\n got: %q\nwant: %q", out, want)
	}
}

func TestWriter_NestedPathJoined(t *testing.T) {
	s := domain.NewSuite("Test Suite")
	s.AddGroup("Auth").AddGroup("Login").AddGroup("OAuth").AddCase("Token")

	out, err := NewWriter(config.New()).Write(s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "Module,Case,Precondition,Step,Action,Expected,Priority\n" +
		"Auth/Login/OAuth,Token,,,,,\n"
	if string(out) != want {
		t.Errorf("unexpected output:\n got: %q\nwant: %q", out, want)
	}
}

func TestWriter_CustomDelimiter(t *testing.T) {
	cfg := config.New()
	cfg.ModuleDelimiter = "::"

	s := domain.NewSuite("Test Suite")
	s.AddGroup("Auth").AddGroup("Login").AddCase("Token")

	out, err := NewWriter(cfg).Write(s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Contains(out, []byte("Auth::Login,Token")) {
		t.Errorf("expected path joined with custom delimiter, got %q", out)
	}
}

func TestWriter_FieldsNeedingQuotesSurvive(t *testing.T) {
	s := domain.NewSuite("Test Suite")
	c := s.AddGroup("Auth").AddCase("Login, fast")
	c.Precondition = "line one\nline two"
	c.AddStep(`Click "Go"`, "")

	out, err := NewWriter(config.New()).Write(s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	suite, _, err := NewReader(config.New()).Read(out)
	if err != nil {
		t.Fatalf("output did not parse back: %v", err)
	}
	got := suite.Group("Auth").Cases[0]
	if got.Name != "Login, fast" || got.Precondition != "line one\nline two" {
		t.Errorf("quoting mangled fields: %+v", got)
	}
	if got.Steps[0].Action != `Click "Go"` {
		t.Errorf("quoting mangled action: %+v", got.Steps[0])
	}
}

func TestWriter_Deterministic(t *testing.T) {
	w := NewWriter(config.New())
	s := buildLoginSuite()

	first, err := w.Write(s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := w.Write(s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Error("expected identical suites to produce identical output")
	}
}

func TestWriter_EmptyGroupHasNoRows(t *testing.T) {
	s := domain.NewSuite("Test Suite")
	s.AddGroup("Reports")

	out, err := NewWriter(config.New()).Write(s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "Module,Case,Precondition,Step,Action,Expected,Priority\n"
	if string(out) != want {
		t.Errorf("expected header only for a case-less tree, got %q", out)
	}
}
