package cube

// Predefined views served by /api/cubo, in the order they are documented.
var ViewLabels = []string{
	"producto_region_anio_ventas",
	"anio_region_ventas",
	"producto_anio_cantidad",
}

// Views materializes the predefined pivots of the cube: sales by
// product/region across years, sales by year across regions, and quantity
// by product across years. No totals on these.
func Views(ds Dataset) map[string]ResultSet {
	out := make(map[string]ResultSet, len(ViewLabels))

	v1, _ := pivotTable(ds, []string{ColProducto, ColRegion}, []string{ColAnio}, ColVentas, false)
	out["producto_region_anio_ventas"] = v1

	v2, _ := pivotTable(ds, []string{ColAnio}, []string{ColRegion}, ColVentas, false)
	out["anio_region_ventas"] = v2

	v3, _ := pivotTable(ds, []string{ColProducto}, []string{ColAnio}, ColCantidad, false)
	out["producto_anio_cantidad"] = v3

	return out
}

// Options reports the dimensions and metrics available for building views.
func Options() (dimensions, metrics []string) {
	return append([]string{}, Dimensions...), append([]string{}, Metrics...)
}
