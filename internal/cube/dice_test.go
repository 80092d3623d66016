package cube

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiceUnfiltered(t *testing.T) {
	rs := Dice(testDataset(), Filters{})

	assert.Equal(t, DetailColumns, rs.Columns)
	assert.Len(t, rs.Data, 4)
}

func TestDiceByYear(t *testing.T) {
	rs := Dice(testDataset(), Filters{Anios: []int{2024}})

	require.Len(t, rs.Data, 2)
	for _, row := range rs.Data {
		assert.Equal(t, 2024, row[ColAnio])
	}
}

func TestDiceCombinedFilters(t *testing.T) {
	rs := Dice(testDataset(), Filters{
		Anios:    []int{2024},
		Regiones: []string{"Norte"},
		Canales:  []string{"Online"},
	})

	require.Len(t, rs.Data, 1)
	assert.Equal(t, "Laptop", rs.Data[0][ColProducto])
	assert.Equal(t, 3, rs.Data[0][ColCantidad])
}

func TestDiceNoMatches(t *testing.T) {
	rs := Dice(testDataset(), Filters{Productos: []string{"Nevera"}})

	assert.Equal(t, DetailColumns, rs.Columns)
	assert.Empty(t, rs.Data)
}

func TestDicePreservesInputOrder(t *testing.T) {
	rs := Dice(testDataset(), Filters{Regiones: []string{"Sur"}})

	require.Len(t, rs.Data, 2)
	assert.Equal(t, "Febrero", rs.Data[0][ColMes])
	assert.Equal(t, "Julio", rs.Data[1][ColMes])
}

func TestCellDetail(t *testing.T) {
	rs, err := CellDetail(testDataset(), ColAnio, "2024", ColRegion, "Norte")
	require.NoError(t, err)

	assert.Equal(t, DetailColumns, rs.Columns)
	require.Len(t, rs.Data, 1)
	assert.Equal(t, "Laptop", rs.Data[0][ColProducto])
	assert.Equal(t, 200.0, rs.Data[0][ColVentas])
}

func TestCellDetailStringDimensions(t *testing.T) {
	rs, err := CellDetail(testDataset(), ColProducto, "Tablet", ColCanal, "Online")
	require.NoError(t, err)

	require.Len(t, rs.Data, 1)
	assert.Equal(t, 2024, rs.Data[0][ColAnio])
}

func TestCellDetailNoMatch(t *testing.T) {
	// "2024" coerces to an int and never equals the string values of Región.
	rs, err := CellDetail(testDataset(), ColRegion, "2024", ColAnio, "2024")
	require.NoError(t, err)
	assert.Empty(t, rs.Data)
}

func TestCellDetailUnknownDimension(t *testing.T) {
	_, err := CellDetail(testDataset(), "Bogus", "x", ColRegion, "Norte")
	assert.Error(t, err)
}

func TestGenerateIsDeterministic(t *testing.T) {
	a := Generate(42)
	b := Generate(42)

	require.NotEmpty(t, a)
	assert.Equal(t, a, b)
}

func TestGenerateRanges(t *testing.T) {
	for _, rec := range Generate(7) {
		assert.GreaterOrEqual(t, rec.Trimestre, 1)
		assert.LessOrEqual(t, rec.Trimestre, 4)
		assert.GreaterOrEqual(t, rec.Cantidad, 1)
		assert.LessOrEqual(t, rec.Cantidad, 50)
		assert.Greater(t, rec.Ventas, 0.0)
	}
}

func TestInferColumns(t *testing.T) {
	row := map[string]any{
		"Zeta":     1,
		ColVentas:  10.0,
		ColAnio:    2024,
		"Alfa":     2,
		ColRegion:  "Norte",
	}
	assert.Equal(t, []string{ColAnio, ColRegion, ColVentas, "Alfa", "Zeta"}, InferColumns(row))
}
