package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNew(t *testing.T) {
	cfg := New()

	if cfg.ModuleDelimiter != DefaultModuleDelimiter {
		t.Errorf("expected delimiter %q, got %q", DefaultModuleDelimiter, cfg.ModuleDelimiter)
	}
	if !cfg.RepeatCaseFields {
		t.Error("expected RepeatCaseFields to default to true")
	}
	if cfg.CaseDepthThreshold != DefaultCaseDepthThreshold {
		t.Errorf("expected depth threshold %d, got %d", DefaultCaseDepthThreshold, cfg.CaseDepthThreshold)
	}
	if cfg.CaseMarker != "" {
		t.Errorf("expected empty case marker, got %q", cfg.CaseMarker)
	}
	if cfg.SuiteName != DefaultSuiteName {
		t.Errorf("expected suite name %q, got %q", DefaultSuiteName, cfg.SuiteName)
	}
	if len(cfg.IgnoreDirs) != len(DefaultIgnoreDirs) {
		t.Errorf("expected %d ignore dirs, got %d", len(DefaultIgnoreDirs), len(cfg.IgnoreDirs))
	}
	if cfg.Workers != DefaultWorkers {
		t.Errorf("expected %d workers, got %d", DefaultWorkers, cfg.Workers)
	}
}

func TestConfig_ApplyFile(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "tcconvert-config-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	t.Run("missing file is not an error", func(t *testing.T) {
		cfg := New()
		if err := cfg.applyFile(filepath.Join(tmpDir, "absent.yaml")); err != nil {
			t.Errorf("unexpected error for missing file: %v", err)
		}
	})

	t.Run("overrides set fields only", func(t *testing.T) {
		path := filepath.Join(tmpDir, "partial.yaml")
		content := "module_delimiter: \"->\"\nrepeat_case_fields: false\ncase_marker: \"[TC] \"\nworkers: 8\n"
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("failed to write config file: %v", err)
		}

		cfg := New()
		if err := cfg.applyFile(path); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.ModuleDelimiter != "->" {
			t.Errorf("expected delimiter ->, got %q", cfg.ModuleDelimiter)
		}
		if cfg.RepeatCaseFields {
			t.Error("expected RepeatCaseFields false after overlay")
		}
		if cfg.CaseMarker != "[TC] " {
			t.Errorf("expected marker from file, got %q", cfg.CaseMarker)
		}
		if cfg.Workers != 8 {
			t.Errorf("expected 8 workers from file, got %d", cfg.Workers)
		}
		// Untouched fields keep defaults.
		if cfg.CaseDepthThreshold != DefaultCaseDepthThreshold {
			t.Errorf("depth threshold changed unexpectedly: %d", cfg.CaseDepthThreshold)
		}
		if cfg.SuiteName != DefaultSuiteName {
			t.Errorf("suite name changed unexpectedly: %q", cfg.SuiteName)
		}
	})

	t.Run("invalid YAML is an error", func(t *testing.T) {
		path := filepath.Join(tmpDir, "broken.yaml")
		if err := os.WriteFile(path, []byte("module_delimiter: [unclosed"), 0644); err != nil {
			t.Fatalf("failed to write config file: %v", err)
		}

		cfg := New()
		if err := cfg.applyFile(path); err == nil {
			t.Error("expected error for invalid YAML")
		}
	})
}

func TestConfig_ApplyEnv(t *testing.T) {
	t.Setenv("TCC_MODULE_DELIMITER", "::")
	t.Setenv("TCC_REPEAT_CASE_FIELDS", "false")
	t.Setenv("TCC_CASE_DEPTH_THRESHOLD", "2")
	t.Setenv("TCC_SUITE_NAME", "Env Suite")
	t.Setenv("TCC_WORKERS", "6")

	cfg := New()
	cfg.applyEnv()

	if cfg.ModuleDelimiter != "::" {
		t.Errorf("expected delimiter ::, got %q", cfg.ModuleDelimiter)
	}
	if cfg.RepeatCaseFields {
		t.Error("expected RepeatCaseFields false from env")
	}
	if cfg.CaseDepthThreshold != 2 {
		t.Errorf("expected depth threshold 2, got %d", cfg.CaseDepthThreshold)
	}
	if cfg.SuiteName != "Env Suite" {
		t.Errorf("expected suite name from env, got %q", cfg.SuiteName)
	}
	if cfg.Workers != 6 {
		t.Errorf("expected 6 workers from env, got %d", cfg.Workers)
	}
}

func TestConfig_ApplyEnvIgnoresGarbage(t *testing.T) {
	t.Setenv("TCC_REPEAT_CASE_FIELDS", "maybe")
	t.Setenv("TCC_CASE_DEPTH_THRESHOLD", "-3")

	cfg := New()
	cfg.applyEnv()

	if !cfg.RepeatCaseFields {
		t.Error("unparseable bool should leave the default in place")
	}
	if cfg.CaseDepthThreshold != DefaultCaseDepthThreshold {
		t.Errorf("non-positive threshold should be ignored, got %d", cfg.CaseDepthThreshold)
	}
}

func TestConfig_ApplyFlags(t *testing.T) {
	cfg := New()
	cfg.ApplyFlags(Flags{
		Delimiter: ">",
		NoRepeat:  true,
		Depth:     3,
		Marker:    "* ",
		Output:    "out.csv",
		Workers:   2,
	})

	if cfg.ModuleDelimiter != ">" {
		t.Errorf("expected flag delimiter, got %q", cfg.ModuleDelimiter)
	}
	if cfg.RepeatCaseFields {
		t.Error("expected --no-repeat to disable field repetition")
	}
	if cfg.CaseDepthThreshold != 3 {
		t.Errorf("expected depth 3, got %d", cfg.CaseDepthThreshold)
	}
	if cfg.CaseMarker != "* " {
		t.Errorf("expected flag marker, got %q", cfg.CaseMarker)
	}
	if cfg.Workers != 2 {
		t.Errorf("expected 2 workers from flags, got %d", cfg.Workers)
	}
	if cfg.Flags.Output != "out.csv" {
		t.Errorf("expected flags to be recorded, got %+v", cfg.Flags)
	}
}

func TestConfig_ApplyFlagsKeepsUnsetDefaults(t *testing.T) {
	cfg := New()
	cfg.ApplyFlags(Flags{})

	if cfg.ModuleDelimiter != DefaultModuleDelimiter {
		t.Errorf("empty delimiter flag must not override, got %q", cfg.ModuleDelimiter)
	}
	if !cfg.RepeatCaseFields {
		t.Error("unset --no-repeat must keep repetition on")
	}
	if cfg.CaseDepthThreshold != DefaultCaseDepthThreshold {
		t.Errorf("zero depth flag must not override, got %d", cfg.CaseDepthThreshold)
	}
}
