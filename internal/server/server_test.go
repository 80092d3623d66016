package server

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"

	"github.com/eduardofuncao/cubo/internal/cube"
)

func testDataset() cube.Dataset {
	return cube.Dataset{
		{Anio: 2023, Trimestre: 1, Mes: "Enero", Region: "Norte", Canal: "Online", Producto: "Laptop", Cantidad: 2, Ventas: 100.0},
		{Anio: 2023, Trimestre: 1, Mes: "Febrero", Region: "Sur", Canal: "Tienda", Producto: "Tablet", Cantidad: 1, Ventas: 50.25},
		{Anio: 2024, Trimestre: 2, Mes: "Abril", Region: "Norte", Canal: "Online", Producto: "Laptop", Cantidad: 3, Ventas: 200.0},
	}
}

func doGet(t *testing.T, s *Server, path string, params url.Values) *fasthttp.RequestCtx {
	t.Helper()
	uri := "http://cubo" + path
	if len(params) > 0 {
		uri += "?" + params.Encode()
	}
	ctx := &fasthttp.RequestCtx{}
	ctx.Request.SetRequestURI(uri)
	ctx.Request.Header.SetMethod(fasthttp.MethodGet)
	s.Handler()(ctx)
	return ctx
}

func TestOpciones(t *testing.T) {
	ctx := doGet(t, New(":0", testDataset()), "/api/opciones", nil)
	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())

	var resp opcionesResponse
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &resp))
	assert.Equal(t, cube.Dimensions, resp.Dimensiones)
	assert.Equal(t, cube.Metrics, resp.Metricas)
}

func TestCaraDefaults(t *testing.T) {
	ctx := doGet(t, New(":0", testDataset()), "/api/cara", nil)
	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())

	var resp caraResponse
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &resp))
	assert.Equal(t, cube.ColAnio, resp.DimX)
	assert.Equal(t, cube.ColRegion, resp.DimY)
	assert.Equal(t, cube.ColVentas, resp.Metric)
	assert.Equal(t, []string{cube.ColRegion, "2023", "2024"}, resp.Columns)
	require.Len(t, resp.Data, 2)
	assert.Equal(t, 100.0, resp.Data[0]["2023"])
}

func TestCaraUnknownDimension(t *testing.T) {
	params := url.Values{"dim_x": {"Bogus"}}
	ctx := doGet(t, New(":0", testDataset()), "/api/cara", params)
	require.Equal(t, fasthttp.StatusBadRequest, ctx.Response.StatusCode())

	var resp errorResponse
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &resp))
	assert.Contains(t, resp.Message, "Bogus")
}

func TestSeccionFilters(t *testing.T) {
	params := url.Values{"anios": {"2023"}, "regiones": {"Sur"}}
	ctx := doGet(t, New(":0", testDataset()), "/api/seccion", params)
	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())

	var resp seccionResponse
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &resp))
	assert.Equal(t, cube.DetailColumns, resp.Columns)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "Tablet", resp.Data[0][cube.ColProducto])
}

func TestSeccionBadYear(t *testing.T) {
	params := url.Values{"anios": {"veinte"}}
	ctx := doGet(t, New(":0", testDataset()), "/api/seccion", params)
	assert.Equal(t, fasthttp.StatusBadRequest, ctx.Response.StatusCode())
}

func TestCuboDinamicoDefaults(t *testing.T) {
	ctx := doGet(t, New(":0", testDataset()), "/api/cubo_dinamico", nil)
	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())

	var resp cuboDinamicoResponse
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &resp))
	assert.Equal(t, []string{"Producto", "Región"}, resp.Index)
	assert.Equal(t, []string{"Año", "Trimestre"}, resp.Columns)
	assert.Equal(t, cube.ColVentas, resp.Metric)
	assert.Contains(t, resp.Cols, cube.MarginLabel)

	// Last row is the totals row.
	total := resp.Data[len(resp.Data)-1]
	assert.Equal(t, cube.MarginLabel, total[cube.ColProducto])
	assert.Equal(t, 350.25, total[cube.MarginLabel])
}

func TestCuboDinamicoCustomAxes(t *testing.T) {
	params := url.Values{"index": {"Región"}, "columns": {"Año"}, "metric": {"Cantidad"}}
	ctx := doGet(t, New(":0", testDataset()), "/api/cubo_dinamico", params)
	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())

	var resp cuboDinamicoResponse
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &resp))
	assert.Equal(t, []string{"Región", "2023", "2024", cube.MarginLabel}, resp.Cols)
	require.Len(t, resp.Data, 3) // Norte, Sur, Total
	assert.Equal(t, 5.0, resp.Data[0][cube.MarginLabel])
}

func TestCuboNamedViews(t *testing.T) {
	ctx := doGet(t, New(":0", testDataset()), "/api/cubo", nil)
	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())

	var resp map[string][]map[string]any
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &resp))
	require.Len(t, resp, len(cube.ViewLabels))
	for _, label := range cube.ViewLabels {
		assert.Contains(t, resp, label)
	}
	assert.NotEmpty(t, resp["anio_region_ventas"])
}

func TestCelda(t *testing.T) {
	params := url.Values{
		"dim_x": {"Año"}, "valor_x": {"2024"},
		"dim_y": {"Región"}, "valor_y": {"Norte"},
	}
	ctx := doGet(t, New(":0", testDataset()), "/api/celda", params)
	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())

	var resp celdaResponse
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &resp))
	assert.Equal(t, "2024", resp.ValorX)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "Laptop", resp.Data[0][cube.ColProducto])
}

func TestUnknownRoute(t *testing.T) {
	ctx := doGet(t, New(":0", testDataset()), "/api/nada", nil)
	assert.Equal(t, fasthttp.StatusNotFound, ctx.Response.StatusCode())
}

func TestRequestIdHeader(t *testing.T) {
	ctx := doGet(t, New(":0", testDataset()), "/api/opciones", nil)
	assert.NotEmpty(t, ctx.Response.Header.Peek("X-Request-Id"))
}
