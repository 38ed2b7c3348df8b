package store

import (
	"strings"
	"testing"

	"entgo.io/ent/schema/field"
)

func TestCreateStatements(t *testing.T) {
	stmts, err := createStatements()
	if err != nil {
		t.Fatalf("createStatements: %v", err)
	}
	all := strings.Join(stmts, "\n")

	for _, want := range []string{
		"CREATE TABLE IF NOT EXISTS session_events",
		"CREATE TABLE IF NOT EXISTS attempt_events",
		"sequence INTEGER NOT NULL UNIQUE",
		"theme TEXT NOT NULL DEFAULT ''",
		"best_streak INTEGER NOT NULL DEFAULT 0",
		"correct INTEGER NOT NULL",
		"CREATE INDEX IF NOT EXISTS idx_attempt_events_session_id ON attempt_events (session_id)",
		"CREATE INDEX IF NOT EXISTS idx_attempt_events_correct_prompt ON attempt_events (correct, prompt)",
	} {
		if !strings.Contains(all, want) {
			t.Errorf("statements missing %q", want)
		}
	}
}

func TestJournalColumns(t *testing.T) {
	s := openTestStore(t)

	tests := map[string][]string{
		"session_events": {"id", "sequence", "timestamp", "session_id", "action", "theme", "mode",
			"questions_answered", "correct_answers", "best_streak", "duration_secs"},
		"attempt_events": {"id", "sequence", "timestamp", "session_id", "kind", "prompt",
			"expected", "given", "correct"},
	}
	for table, want := range tests {
		rows, err := s.DB().Query("SELECT name FROM pragma_table_info('" + table + "') ORDER BY cid")
		if err != nil {
			t.Fatalf("table_info %s: %v", table, err)
		}
		var got []string
		for rows.Next() {
			var name string
			if err := rows.Scan(&name); err != nil {
				t.Fatalf("scan: %v", err)
			}
			got = append(got, name)
		}
		rows.Close()

		if strings.Join(got, ",") != strings.Join(want, ",") {
			t.Errorf("%s columns = %v, want %v", table, got, want)
		}
	}
}

func TestColumnDef_UnsupportedType(t *testing.T) {
	_, err := columnDef(field.Time("at").Descriptor())
	if err == nil {
		t.Fatal("expected error for time field")
	}
}

func TestLiteral(t *testing.T) {
	tests := []struct {
		in   any
		want string
	}{
		{"", "''"},
		{"it's", "'it''s'"},
		{true, "1"},
		{false, "0"},
		{int64(42), "42"},
	}
	for _, tt := range tests {
		got, err := literal(tt.in)
		if err != nil {
			t.Errorf("literal(%v): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("literal(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
	if _, err := literal([]int{1}); err == nil {
		t.Error("expected error for slice default")
	}
}
