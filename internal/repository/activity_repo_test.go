package repository

import "testing"

func TestPlaceholders(t *testing.T) {
	tests := []struct {
		n        int
		expected string
	}{
		{1, "?"},
		{2, "?, ?"},
		{4, "?, ?, ?, ?"},
	}

	for _, tt := range tests {
		if got := placeholders(tt.n); got != tt.expected {
			t.Errorf("placeholders(%d) = %q, want %q", tt.n, got, tt.expected)
		}
	}
}

func TestChildIDArgs(t *testing.T) {
	args := childIDArgs([]int64{7, 8, 9})
	if len(args) != 3 {
		t.Fatalf("len = %d, want 3", len(args))
	}
	if args[0].(int64) != 7 || args[2].(int64) != 9 {
		t.Errorf("args = %v", args)
	}
}
