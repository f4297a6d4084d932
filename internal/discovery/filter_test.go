package discovery

import (
	"testing"
)

func TestFilter_ByName(t *testing.T) {
	filter := NewFilter()

	tests := []struct {
		name     string
		files    []string
		pattern  string
		expected int
	}{
		{
			name:     "empty pattern returns all",
			files:    []string{"login.csv", "payments.csv", "orders.xmind"},
			pattern:  "",
			expected: 3,
		},
		{
			name:     "wildcard pattern matches extension",
			files:    []string{"login.csv", "payments.csv", "orders.xmind"},
			pattern:  "*.csv",
			expected: 2,
		},
		{
			name:     "wildcard pattern matches substring",
			files:    []string{"smoke_login.csv", "smoke_payments.csv", "full_orders.csv"},
			pattern:  "*smoke*",
			expected: 2,
		},
		{
			name:     "simple contains match",
			files:    []string{"login.csv", "payments.csv", "orders.xmind"},
			pattern:  "payments",
			expected: 1,
		},
		{
			name:     "no matches",
			files:    []string{"login.csv", "payments.csv"},
			pattern:  "*missing*",
			expected: 0,
		},
		{
			name:     "full path matches on base name",
			files:    []string{"/data/suites/login.csv", "/data/suites/payments.csv"},
			pattern:  "login*",
			expected: 1,
		},
		{
			name:     "question mark wildcard",
			files:    []string{"v1.csv", "v2.csv", "v10.csv"},
			pattern:  "v?.csv",
			expected: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := filter.ByName(tt.files, tt.pattern)
			if len(result) != tt.expected {
				t.Errorf("expected %d matches, got %d", tt.expected, len(result))
			}
		})
	}
}

func TestFilter_ByName_EdgeCases(t *testing.T) {
	filter := NewFilter()

	t.Run("empty file list", func(t *testing.T) {
		result := filter.ByName([]string{}, "*.csv")
		if len(result) != 0 {
			t.Errorf("expected empty result, got %d items", len(result))
		}
	})

	t.Run("pattern with multiple wildcards", func(t *testing.T) {
		files := []string{"smoke_login_v2.csv", "smoke_orders_v2.csv", "full_login.csv"}
		result := filter.ByName(files, "*smoke*v2*")
		if len(result) != 2 {
			t.Errorf("expected 2 matches, got %d", len(result))
		}
	})

	t.Run("repeated stars behave like a single star", func(t *testing.T) {
		files := []string{"login.csv"}
		result := filter.ByName(files, "***")
		if len(result) != 1 {
			t.Errorf("expected 1 match, got %d", len(result))
		}
	})
}
