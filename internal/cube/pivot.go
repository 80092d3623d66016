package cube

import (
	"fmt"
	"sort"
	"strings"
)

// MarginLabel names the OLAP totals row and column of a dynamic pivot.
const MarginLabel = "Total"

const tupleSep = "\x1f"

// Pivot builds the configurable cross-tabulation behind /api/cubo_dinamico:
// sum of metric grouped by the index dimensions (rows) and column
// dimensions, always including the totals row and column.
func Pivot(ds Dataset, index, columns []string, metric string) (ResultSet, error) {
	return pivotTable(ds, index, columns, metric, true)
}

// Slice builds a 2D face of the cube (/api/cara): dimY on rows, dimX on
// columns, sum of metric in the cells. No totals.
func Slice(ds Dataset, dimX, dimY, metric string) (ResultSet, error) {
	if dimX == dimY {
		return ResultSet{}, fmt.Errorf("dim_x and dim_y must differ, got %q twice", dimX)
	}
	return pivotTable(ds, []string{dimY}, []string{dimX}, metric, false)
}

func pivotTable(ds Dataset, index, columns []string, metric string, margins bool) (ResultSet, error) {
	if len(index) == 0 {
		return ResultSet{}, fmt.Errorf("at least one row dimension is required")
	}
	used := make(map[string]bool)
	for _, dim := range append(append([]string{}, index...), columns...) {
		if !IsDimension(dim) {
			return ResultSet{}, fmt.Errorf("unknown dimension %q", dim)
		}
		if used[dim] {
			return ResultSet{}, fmt.Errorf("dimension %q used more than once", dim)
		}
		used[dim] = true
	}
	if !IsMetric(metric) {
		return ResultSet{}, fmt.Errorf("unknown metric %q", metric)
	}

	rowTuples := make(map[string][]any)
	colTuples := make(map[string][]any)
	sums := make(map[string]map[string]float64)
	rowTotals := make(map[string]float64)
	colTotals := make(map[string]float64)
	var grand float64

	for _, rec := range ds {
		rt := dimensionTuple(rec, index)
		ct := dimensionTuple(rec, columns)
		rk, ck := tupleKey(rt), tupleKey(ct)
		rowTuples[rk] = rt
		colTuples[ck] = ct

		v, _ := rec.Metric(metric)
		cells, ok := sums[rk]
		if !ok {
			cells = make(map[string]float64)
			sums[rk] = cells
		}
		cells[ck] += v
		rowTotals[rk] += v
		colTotals[ck] += v
		grand += v
	}

	sortedRows := sortedTuples(rowTuples)
	sortedCols := sortedTuples(colTuples)

	outCols := append([]string{}, index...)
	colLabels := make([]string, len(sortedCols))
	for i, ct := range sortedCols {
		label := flattenColumn(ct)
		if label == "" {
			label = metric
		}
		colLabels[i] = label
		outCols = append(outCols, label)
	}
	withTotalCol := margins && len(columns) > 0
	if withTotalCol {
		outCols = append(outCols, MarginLabel)
	}

	data := make([]map[string]any, 0, len(sortedRows)+1)
	for _, rt := range sortedRows {
		rk := tupleKey(rt)
		row := make(map[string]any, len(outCols))
		for i, dim := range index {
			row[dim] = rt[i]
		}
		for i, ct := range sortedCols {
			row[colLabels[i]] = Round2(sums[rk][tupleKey(ct)])
		}
		if withTotalCol {
			row[MarginLabel] = Round2(rowTotals[rk])
		}
		data = append(data, row)
	}

	if margins {
		total := make(map[string]any, len(outCols))
		total[index[0]] = MarginLabel
		for _, dim := range index[1:] {
			total[dim] = ""
		}
		for i, ct := range sortedCols {
			total[colLabels[i]] = Round2(colTotals[tupleKey(ct)])
		}
		if withTotalCol {
			total[MarginLabel] = Round2(grand)
		}
		data = append(data, total)
	}

	return ResultSet{Columns: outCols, Data: data}, nil
}

func dimensionTuple(rec Record, dims []string) []any {
	t := make([]any, len(dims))
	for i, d := range dims {
		t[i], _ = rec.Dimension(d)
	}
	return t
}

func tupleKey(t []any) string {
	parts := make([]string, len(t))
	for i, v := range t {
		parts[i] = ValueKey(v)
	}
	return strings.Join(parts, tupleSep)
}

func sortedTuples(set map[string][]any) [][]any {
	out := make([][]any, 0, len(set))
	for _, t := range set {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool {
		return compareTuples(out[i], out[j]) < 0
	})
	return out
}

func compareTuples(a, b []any) int {
	for i := range a {
		if i >= len(b) {
			return 1
		}
		if c := compareValues(a[i], b[i]); c != 0 {
			return c
		}
	}
	if len(a) < len(b) {
		return -1
	}
	return 0
}

func compareValues(a, b any) int {
	ai, aok := a.(int)
	bi, bok := b.(int)
	if aok && bok {
		switch {
		case ai < bi:
			return -1
		case ai > bi:
			return 1
		}
		return 0
	}
	return strings.Compare(ValueKey(a), ValueKey(b))
}

// flattenColumn turns a column tuple into a readable label. A two-level
// tuple whose second level is numeric reads "2024-T1"; single values keep
// their plain form.
func flattenColumn(t []any) string {
	switch len(t) {
	case 0:
		return ""
	case 1:
		return ValueKey(t[0])
	default:
		parts := make([]string, len(t))
		for i, v := range t {
			parts[i] = ValueKey(v)
		}
		if isDigits(parts[1]) {
			parts[1] = "T" + parts[1]
		}
		return strings.Join(parts, "-")
	}
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
