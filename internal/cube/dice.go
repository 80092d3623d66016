package cube

// Filters narrows the cube along several dimensions at once. A nil slice
// leaves that dimension unfiltered.
type Filters struct {
	Anios     []int
	Regiones  []string
	Productos []string
	Canales   []string
}

// Dice returns the filtered, non-aggregated subset of the cube
// (/api/seccion). Rows come back in dataset order with the canonical
// detail columns.
func Dice(ds Dataset, f Filters) ResultSet {
	anios := intSet(f.Anios)
	regiones := stringSet(f.Regiones)
	productos := stringSet(f.Productos)
	canales := stringSet(f.Canales)

	data := make([]map[string]any, 0)
	for _, rec := range ds {
		if anios != nil && !anios[rec.Anio] {
			continue
		}
		if regiones != nil && !regiones[rec.Region] {
			continue
		}
		if productos != nil && !productos[rec.Producto] {
			continue
		}
		if canales != nil && !canales[rec.Canal] {
			continue
		}
		data = append(data, rec.asRow())
	}

	return ResultSet{
		Columns: append([]string{}, DetailColumns...),
		Data:    data,
	}
}

func intSet(vals []int) map[int]bool {
	if vals == nil {
		return nil
	}
	set := make(map[int]bool, len(vals))
	for _, v := range vals {
		set[v] = true
	}
	return set
}

func stringSet(vals []string) map[string]bool {
	if vals == nil {
		return nil
	}
	set := make(map[string]bool, len(vals))
	for _, v := range vals {
		set[v] = true
	}
	return set
}
