package database

import "testing"

func TestRewritePlaceholdersToNumbered(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		expected string
	}{
		{
			name:     "no placeholders",
			query:    "SELECT id FROM families",
			expected: "SELECT id FROM families",
		},
		{
			name:     "single placeholder",
			query:    "SELECT id FROM families WHERE id = ?",
			expected: "SELECT id FROM families WHERE id = $1",
		},
		{
			name:     "multiple placeholders",
			query:    "SELECT stars FROM star_transactions WHERE child_id = ? AND created_at >= ? AND created_at <= ?",
			expected: "SELECT stars FROM star_transactions WHERE child_id = $1 AND created_at >= $2 AND created_at <= $3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := rewritePlaceholdersToNumbered(tt.query); got != tt.expected {
				t.Errorf("rewritePlaceholdersToNumbered() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestDialectDriverNames(t *testing.T) {
	if got := NewSQLiteDialect().DriverName(); got != "sqlite3" {
		t.Errorf("sqlite driver name = %q", got)
	}
	if got := NewPostgresDialect().DriverName(); got != "postgres" {
		t.Errorf("postgres driver name = %q", got)
	}
	if got := NewMySQLDialect().DriverName(); got != "mysql" {
		t.Errorf("mysql driver name = %q", got)
	}
}

func TestMySQLDSNEnablesParseTime(t *testing.T) {
	d := NewMySQLDialect()

	got := d.DSN(DialectConfig{URL: "user:pass@tcp(localhost:3306)/starquest"})
	want := "user:pass@tcp(localhost:3306)/starquest?parseTime=true"
	if got != want {
		t.Errorf("DSN() = %q, want %q", got, want)
	}

	// Already configured DSNs pass through untouched
	url := "user:pass@tcp(localhost:3306)/starquest?parseTime=true&loc=UTC"
	if got := d.DSN(DialectConfig{URL: url}); got != url {
		t.Errorf("DSN() = %q, want %q", got, url)
	}
}
