package render

import (
	"bytes"
	"strings"
	"testing"
)

// splitRow breaks a rendered table line back into trimmed cell values.
func splitRow(line string) []string {
	parts := strings.Split(line, "│")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

func renderToLines(t *testing.T, columns []string, rows []map[string]any) []string {
	t.Helper()
	var buf bytes.Buffer
	if err := New(DefaultPolicy()).Render(&buf, columns, rows); err != nil {
		t.Fatalf("Render() returned error: %v", err)
	}
	out := strings.TrimRight(buf.String(), "\n")
	return strings.Split(out, "\n")
}

func TestRenderNilColumnsFails(t *testing.T) {
	var buf bytes.Buffer
	err := New(DefaultPolicy()).Render(&buf, nil, []map[string]any{{"a": 1}})
	if err == nil {
		t.Fatal("Render() with nil columns should return an error")
	}
	if buf.Len() != 0 {
		t.Errorf("Render() wrote output despite error: %q", buf.String())
	}
}

func TestRenderEmptyRowsShowsPlaceholder(t *testing.T) {
	for _, rows := range [][]map[string]any{nil, {}} {
		var buf bytes.Buffer
		if err := New(DefaultPolicy()).Render(&buf, []string{"Producto"}, rows); err != nil {
			t.Fatalf("Render() returned error: %v", err)
		}
		out := buf.String()
		if strings.TrimSpace(out) != Placeholder {
			t.Errorf("Render() output = %q, want placeholder %q", out, Placeholder)
		}
		if strings.Contains(out, "│") {
			t.Error("Render() produced table markup for empty rows")
		}
	}
}

func TestRenderScenario(t *testing.T) {
	lines := renderToLines(t,
		[]string{"Año", "Ventas"},
		[]map[string]any{{"Año": 2024.0, "Ventas": 100.5}},
	)

	if len(lines) != 3 { // header, rule, one row
		t.Fatalf("Render() produced %d lines, want 3: %q", len(lines), lines)
	}

	header := splitRow(lines[0])
	if header[0] != "Año" || header[1] != "Ventas" {
		t.Errorf("header = %v, want [Año Ventas]", header)
	}

	row := splitRow(lines[2])
	if row[0] != "2024" {
		t.Errorf("Año cell = %q, want 2024", row[0])
	}
	if row[1] != "100.50" {
		t.Errorf("Ventas cell = %q, want 100.50", row[1])
	}
}

func TestRenderColumnOrder(t *testing.T) {
	columns := []string{"Ventas", "Región", "Año"}
	lines := renderToLines(t, columns, []map[string]any{
		{"Año": 2023, "Región": "Sur", "Ventas": 9.0},
	})

	header := splitRow(lines[0])
	for i, col := range columns {
		if header[i] != col {
			t.Errorf("header[%d] = %q, want %q", i, header[i], col)
		}
	}

	row := splitRow(lines[2])
	want := []string{"9.00", "Sur", "2023"}
	for i := range want {
		if row[i] != want[i] {
			t.Errorf("row[%d] = %q, want %q", i, row[i], want[i])
		}
	}
}

func TestRenderMissingKeysAreEmpty(t *testing.T) {
	lines := renderToLines(t,
		[]string{"Producto", "Ventas"},
		[]map[string]any{{"Producto": "Laptop"}},
	)

	row := splitRow(lines[2])
	if row[1] != "" {
		t.Errorf("missing-key cell = %q, want empty", row[1])
	}
}

func TestRenderNilValueIsEmpty(t *testing.T) {
	lines := renderToLines(t,
		[]string{"Producto", "Ventas"},
		[]map[string]any{{"Producto": "Laptop", "Ventas": nil}},
	)

	row := splitRow(lines[2])
	if row[1] != "" {
		t.Errorf("nil cell = %q, want empty", row[1])
	}
}

func TestRenderReplacesPriorOutput(t *testing.T) {
	r := New(DefaultPolicy())

	var first bytes.Buffer
	if err := r.Render(&first, []string{"Año"}, []map[string]any{{"Año": 2023}, {"Año": 2024}}); err != nil {
		t.Fatal(err)
	}

	var second bytes.Buffer
	if err := r.Render(&second, []string{"Año"}, []map[string]any{{"Año": 2025}}); err != nil {
		t.Fatal(err)
	}

	out := second.String()
	if strings.Contains(out, "2023") || strings.Contains(out, "2024") {
		t.Errorf("second render carries rows from the first: %q", out)
	}
	if !strings.Contains(out, "2025") {
		t.Errorf("second render missing its own row: %q", out)
	}
}

func TestPolicyTruncatesIntegerColumns(t *testing.T) {
	p := DefaultPolicy()

	tests := []struct {
		column string
		value  any
		want   string
	}{
		{"Año", 2024.0, "2024"},
		{"año", 4.9, "4"}, // truncated, never rounded
		{"CANTIDAD", 12.99, "12"},
		{"Trimestre", 3, "3"},
		{"Ventas", 3, "3.00"},
		{"Ventas", 100.5, "100.50"},
		{"Ventas", 2.005, "2.00"},
		{"Producto", "Laptop", "Laptop"},
		{"Activo", true, "true"},
	}
	for _, tt := range tests {
		if got := p.Format(tt.column, tt.value); got != tt.want {
			t.Errorf("Format(%q, %v) = %q, want %q", tt.column, tt.value, got, tt.want)
		}
	}
}

func TestPolicyCustomIntegerColumns(t *testing.T) {
	p := NewPolicy([]string{"unidades"}, 2)

	if got := p.Format("Unidades", 7.8); got != "7" {
		t.Errorf("Format(Unidades, 7.8) = %q, want 7", got)
	}
	// The defaults no longer apply once a custom set is given.
	if got := p.Format("Año", 2024.0); got != "2024.00" {
		t.Errorf("Format(Año, 2024.0) = %q, want 2024.00", got)
	}
}
