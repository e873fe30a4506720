package i18n

import (
	"testing"
	"time"
)

func TestT(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		locale   string
		expected string
	}{
		{
			name:     "english key",
			key:      "report.stars_earned",
			locale:   LocaleEN,
			expected: "Stars Earned",
		},
		{
			name:     "chinese key",
			key:      "report.stars_earned",
			locale:   LocaleZhCN,
			expected: "获得星星",
		},
		{
			name:     "unknown locale falls back to english",
			key:      "report.stars_earned",
			locale:   "fr",
			expected: "Stars Earned",
		},
		{
			name:     "unknown key falls back to the key itself",
			key:      "report.does_not_exist",
			locale:   LocaleZhCN,
			expected: "report.does_not_exist",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := T(tt.key, tt.locale); got != tt.expected {
				t.Errorf("T(%q, %q) = %q, want %q", tt.key, tt.locale, got, tt.expected)
			}
		})
	}
}

func TestLocalizedName(t *testing.T) {
	tests := []struct {
		name     string
		def      string
		zh       string
		locale   string
		expected string
	}{
		{"english locale uses default", "Homework", "作业", LocaleEN, "Homework"},
		{"chinese locale prefers chinese", "Homework", "作业", LocaleZhCN, "作业"},
		{"chinese locale without chinese name", "Homework", "", LocaleZhCN, "Homework"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LocalizedName(tt.def, tt.zh, tt.locale); got != tt.expected {
				t.Errorf("LocalizedName() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	if got := Normalize(""); got != LocaleEN {
		t.Errorf("Normalize(\"\") = %q, want %q", got, LocaleEN)
	}
	if got := Normalize("zh-CN"); got != LocaleZhCN {
		t.Errorf("Normalize(zh-CN) = %q, want %q", got, LocaleZhCN)
	}
	if got := Normalize("de"); got != LocaleEN {
		t.Errorf("Normalize(de) = %q, want %q", got, LocaleEN)
	}
}

func TestFormatDate(t *testing.T) {
	d := time.Date(2026, 2, 15, 12, 0, 0, 0, time.UTC)
	if got := FormatDate(d, LocaleEN); got != "Feb 15, 2026" {
		t.Errorf("FormatDate(en) = %q", got)
	}
	if got := FormatDate(d, LocaleZhCN); got != "2026年2月15日" {
		t.Errorf("FormatDate(zh-CN) = %q", got)
	}
}

func TestAllKeysHaveBothLocales(t *testing.T) {
	for key := range translations[LocaleEN] {
		if _, ok := translations[LocaleZhCN][key]; !ok {
			t.Errorf("key %q missing from zh-CN table", key)
		}
	}
	for key := range translations[LocaleZhCN] {
		if _, ok := translations[LocaleEN][key]; !ok {
			t.Errorf("key %q missing from en table", key)
		}
	}
}
