package cube

import "sort"

// ResultSet is an ordered column list plus row records keyed by column
// name. It is the shape every endpoint returns and the renderer consumes.
// Rows need not share identical key sets; only keys named in Columns are
// ever read.
type ResultSet struct {
	Columns []string         `json:"columns"`
	Data    []map[string]any `json:"data"`
}

// InferColumns derives a column order from a row record when a response
// carries no explicit column list (the named-views endpoint). Known cube
// columns come first in their canonical order, anything else follows
// alphabetically so the result is deterministic.
func InferColumns(row map[string]any) []string {
	var cols []string
	seen := make(map[string]bool, len(row))
	for _, c := range DetailColumns {
		if _, ok := row[c]; ok {
			cols = append(cols, c)
			seen[c] = true
		}
	}
	var rest []string
	for k := range row {
		if !seen[k] {
			rest = append(rest, k)
		}
	}
	sort.Strings(rest)
	return append(cols, rest...)
}
