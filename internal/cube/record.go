package cube

import (
	"fmt"
	"math"
	"strconv"
)

// Column names of the sales cube. The dataset keeps the Spanish names the
// API exposes, so dimension lookups and JSON keys are the same strings.
const (
	ColAnio      = "Año"
	ColTrimestre = "Trimestre"
	ColMes       = "Mes"
	ColRegion    = "Región"
	ColCanal     = "Canal"
	ColProducto  = "Producto"
	ColCantidad  = "Cantidad"
	ColVentas    = "Ventas"
)

// Dimensions lists the axes a view can be built on, Metrics the values
// that can be aggregated.
var (
	Dimensions = []string{ColAnio, ColTrimestre, ColMes, ColRegion, ColCanal, ColProducto}
	Metrics    = []string{ColVentas, ColCantidad}

	// DetailColumns is the column order for non-aggregated detail rows
	// (dice and cell drill-down).
	DetailColumns = []string{ColAnio, ColTrimestre, ColMes, ColRegion, ColCanal, ColProducto, ColCantidad, ColVentas}
)

// Record is one sales fact.
type Record struct {
	Anio      int
	Trimestre int
	Mes       string
	Region    string
	Canal     string
	Producto  string
	Cantidad  int
	Ventas    float64
}

type Dataset []Record

// Dimension returns the value of a dimension column for this record.
func (r Record) Dimension(name string) (any, bool) {
	switch name {
	case ColAnio:
		return r.Anio, true
	case ColTrimestre:
		return r.Trimestre, true
	case ColMes:
		return r.Mes, true
	case ColRegion:
		return r.Region, true
	case ColCanal:
		return r.Canal, true
	case ColProducto:
		return r.Producto, true
	}
	return nil, false
}

// Metric returns the value of a metric column for this record.
func (r Record) Metric(name string) (float64, bool) {
	switch name {
	case ColVentas:
		return r.Ventas, true
	case ColCantidad:
		return float64(r.Cantidad), true
	}
	return 0, false
}

// asRow converts the record into the map shape detail endpoints return.
func (r Record) asRow() map[string]any {
	return map[string]any{
		ColAnio:      r.Anio,
		ColTrimestre: r.Trimestre,
		ColMes:       r.Mes,
		ColRegion:    r.Region,
		ColCanal:     r.Canal,
		ColProducto:  r.Producto,
		ColCantidad:  r.Cantidad,
		ColVentas:    Round2(r.Ventas),
	}
}

func IsDimension(name string) bool {
	for _, d := range Dimensions {
		if d == name {
			return true
		}
	}
	return false
}

func IsMetric(name string) bool {
	for _, m := range Metrics {
		if m == name {
			return true
		}
	}
	return false
}

// Round2 rounds to two decimal places, the precision every aggregated
// metric is reported with.
func Round2(f float64) float64 {
	return math.Round(f*100) / 100
}

// ValueKey converts a dimension value into the string used as a column
// label or JSON key. Years come out as "2024", not "2024.00".
func ValueKey(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		if val == math.Trunc(val) {
			return strconv.FormatInt(int64(val), 10)
		}
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// CoerceValue parses a query-string dimension value the way the API
// compares it: integers become ints, everything else stays a string.
func CoerceValue(s string) any {
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	return s
}
