package render

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// DefaultIntegerColumns are the column names whose numeric values read as
// whole numbers: a year, a count, a quarter. Matching is case-insensitive.
var DefaultIntegerColumns = []string{"año", "cantidad", "trimestre"}

// Policy decides how a cell value is displayed for a given column.
// Numeric values in integer columns are truncated (4.9 shows as "4");
// every other numeric value gets a fixed number of decimals. Nil values
// show as empty cells, anything non-numeric in its default string form.
type Policy struct {
	integerColumns map[string]bool
	decimals       int
}

// NewPolicy builds a policy from the integer-column list (typically from
// config) and a decimal count for the remaining numeric columns.
func NewPolicy(integerColumns []string, decimals int) Policy {
	set := make(map[string]bool, len(integerColumns))
	for _, c := range integerColumns {
		set[strings.ToLower(c)] = true
	}
	return Policy{integerColumns: set, decimals: decimals}
}

func DefaultPolicy() Policy {
	return NewPolicy(DefaultIntegerColumns, 2)
}

// Format renders one cell value under the policy for the named column.
func (p Policy) Format(column string, v any) string {
	if v == nil {
		return ""
	}
	if f, ok := asFloat(v); ok {
		if p.integerColumns[strings.ToLower(column)] {
			return strconv.FormatInt(int64(math.Trunc(f)), 10)
		}
		return strconv.FormatFloat(f, 'f', p.decimals, 64)
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	}
	return 0, false
}
