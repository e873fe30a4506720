package render

import "testing"

func TestChangePercent(t *testing.T) {
	tests := []struct {
		name     string
		curr     float64
		prev     float64
		expected float64
	}{
		{"both zero", 0, 0, 0},
		{"from zero to positive", 50, 0, 100},
		{"to zero", 0, 80, -100},
		{"unchanged", 42, 42, 0},
		{"increase", 150, 100, 50},
		{"decrease", 50, 100, -50},
		{"rounds to one decimal", 50, 60, -16.7},
		{"small increase", 120, 100, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ChangePercent(tt.curr, tt.prev); got != tt.expected {
				t.Errorf("ChangePercent(%v, %v) = %v, want %v", tt.curr, tt.prev, got, tt.expected)
			}
		})
	}
}

func TestFormatDelta(t *testing.T) {
	tests := []struct {
		name     string
		curr     float64
		prev     float64
		expected string
	}{
		{"increase", 120, 100, "↑ +20.0%"},
		{"decrease", 50, 60, "↓ -16.7%"},
		{"no change", 10, 10, "0.0%"},
		{"from zero", 5, 0, "↑ +100.0%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatDelta(tt.curr, tt.prev); got != tt.expected {
				t.Errorf("formatDelta(%v, %v) = %q, want %q", tt.curr, tt.prev, got, tt.expected)
			}
		})
	}
}
