package store

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"

	"github.com/chemiz/chemiz/ent/schema"
)

// journalTables maps table names to their ent schema declarations.
var journalTables = []struct {
	name   string
	schema ent.Interface
}{
	{"session_events", schema.SessionEvent{}},
	{"attempt_events", schema.AttemptEvent{}},
}

// createStatements renders CREATE TABLE and CREATE INDEX statements for the
// journal tables from their ent schemas. Every table gets an integer
// autoincrement id. Statements are idempotent.
func createStatements() ([]string, error) {
	var stmts []string
	for _, t := range journalTables {
		var (
			fields  []ent.Field
			indexes []ent.Index
		)
		for _, m := range t.schema.Mixin() {
			fields = append(fields, m.Fields()...)
			indexes = append(indexes, m.Indexes()...)
		}
		fields = append(fields, t.schema.Fields()...)
		indexes = append(indexes, t.schema.Indexes()...)

		cols := []string{"id INTEGER PRIMARY KEY AUTOINCREMENT"}
		for _, f := range fields {
			col, err := columnDef(f.Descriptor())
			if err != nil {
				return nil, fmt.Errorf("%s: %w", t.name, err)
			}
			cols = append(cols, col)
		}
		stmts = append(stmts, fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (\n\t%s\n)",
			t.name, strings.Join(cols, ",\n\t")))

		for _, idx := range indexes {
			d := idx.Descriptor()
			kind := "INDEX"
			if d.Unique {
				kind = "UNIQUE INDEX"
			}
			stmts = append(stmts, fmt.Sprintf("CREATE %s IF NOT EXISTS idx_%s_%s ON %s (%s)",
				kind, t.name, strings.Join(d.Fields, "_"), t.name, strings.Join(d.Fields, ", ")))
		}
	}
	return stmts, nil
}

func columnDef(d *field.Descriptor) (string, error) {
	if d.Err != nil {
		return "", fmt.Errorf("field %s: %w", d.Name, d.Err)
	}

	var sqlType string
	switch t := d.Info.Type; {
	case t == field.TypeBool || t.Integer():
		sqlType = "INTEGER"
	case t == field.TypeString || t == field.TypeEnum:
		sqlType = "TEXT"
	case t.Float():
		sqlType = "REAL"
	default:
		return "", fmt.Errorf("field %s: unsupported type %s", d.Name, t)
	}

	name := d.Name
	if d.StorageKey != "" {
		name = d.StorageKey
	}

	var b strings.Builder
	b.WriteString(name + " " + sqlType)
	if !d.Optional {
		b.WriteString(" NOT NULL")
	}
	if d.Unique {
		b.WriteString(" UNIQUE")
	}
	if d.Default != nil {
		lit, err := literal(d.Default)
		if err != nil {
			return "", fmt.Errorf("field %s: %w", d.Name, err)
		}
		b.WriteString(" DEFAULT " + lit)
	}
	return b.String(), nil
}

func literal(v any) (string, error) {
	switch v := v.(type) {
	case string:
		return "'" + strings.ReplaceAll(v, "'", "''") + "'", nil
	case bool:
		if v {
			return "1", nil
		}
		return "0", nil
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		return fmt.Sprint(v), nil
	default:
		return "", fmt.Errorf("unsupported default %T", v)
	}
}
