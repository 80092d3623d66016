package cube

import "fmt"

// CellDetail returns the detail rows underlying one aggregate cell,
// identified by two dimension/value filters (/api/celda). Values that
// parse as integers are compared as integers, so "2024" matches the Año
// dimension and "Norte" matches Región.
func CellDetail(ds Dataset, dimX, valX, dimY, valY string) (ResultSet, error) {
	if !IsDimension(dimX) {
		return ResultSet{}, fmt.Errorf("unknown dimension %q", dimX)
	}
	if !IsDimension(dimY) {
		return ResultSet{}, fmt.Errorf("unknown dimension %q", dimY)
	}

	wantX := CoerceValue(valX)
	wantY := CoerceValue(valY)

	data := make([]map[string]any, 0)
	for _, rec := range ds {
		vx, _ := rec.Dimension(dimX)
		vy, _ := rec.Dimension(dimY)
		if vx == wantX && vy == wantY {
			data = append(data, rec.asRow())
		}
	}

	return ResultSet{
		Columns: append([]string{}, DetailColumns...),
		Data:    data,
	}, nil
}
