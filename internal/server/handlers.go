package server

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/valyala/fasthttp"

	"github.com/eduardofuncao/cubo/internal/cube"
)

type opcionesResponse struct {
	Dimensiones []string `json:"dimensiones"`
	Metricas    []string `json:"metricas"`
}

type caraResponse struct {
	DimX    string           `json:"dim_x"`
	DimY    string           `json:"dim_y"`
	Metric  string           `json:"metric"`
	Columns []string         `json:"columns"`
	Data    []map[string]any `json:"data"`
}

type seccionResponse struct {
	Columns []string         `json:"columns"`
	Data    []map[string]any `json:"data"`
}

type cuboDinamicoResponse struct {
	Index   []string         `json:"index"`
	Columns []string         `json:"columns"`
	Metric  string           `json:"metric"`
	Cols    []string         `json:"cols"`
	Data    []map[string]any `json:"data"`
}

type celdaResponse struct {
	DimX    string           `json:"dim_x"`
	ValorX  string           `json:"valor_x"`
	DimY    string           `json:"dim_y"`
	ValorY  string           `json:"valor_y"`
	Columns []string         `json:"columns"`
	Data    []map[string]any `json:"data"`
}

func (s *Server) handleOpciones(ctx *fasthttp.RequestCtx) {
	dims, metrics := cube.Options()
	writeJsonResponse(ctx, opcionesResponse{Dimensiones: dims, Metricas: metrics})
}

func (s *Server) handleCara(ctx *fasthttp.RequestCtx) {
	dimX := queryParam(ctx, "dim_x", cube.ColAnio)
	dimY := queryParam(ctx, "dim_y", cube.ColRegion)
	metric := queryParam(ctx, "metric", cube.ColVentas)

	rs, err := cube.Slice(s.ds, dimX, dimY, metric)
	if err != nil {
		setBadMsg(ctx, err.Error())
		return
	}
	writeJsonResponse(ctx, caraResponse{
		DimX:    dimX,
		DimY:    dimY,
		Metric:  metric,
		Columns: rs.Columns,
		Data:    rs.Data,
	})
}

func (s *Server) handleSeccion(ctx *fasthttp.RequestCtx) {
	anios, err := parseIntList(queryParam(ctx, "anios", ""))
	if err != nil {
		setBadMsg(ctx, fmt.Sprintf("anios: %v", err))
		return
	}

	rs := cube.Dice(s.ds, cube.Filters{
		Anios:     anios,
		Regiones:  parseList(queryParam(ctx, "regiones", "")),
		Productos: parseList(queryParam(ctx, "productos", "")),
		Canales:   parseList(queryParam(ctx, "canales", "")),
	})
	writeJsonResponse(ctx, seccionResponse{Columns: rs.Columns, Data: rs.Data})
}

func (s *Server) handleCuboDinamico(ctx *fasthttp.RequestCtx) {
	index := parseList(queryParam(ctx, "index", "Producto,Región"))
	columns := parseList(queryParam(ctx, "columns", "Año,Trimestre"))
	metric := queryParam(ctx, "metric", cube.ColVentas)

	rs, err := cube.Pivot(s.ds, index, columns, metric)
	if err != nil {
		setBadMsg(ctx, err.Error())
		return
	}
	writeJsonResponse(ctx, cuboDinamicoResponse{
		Index:   index,
		Columns: columns,
		Metric:  metric,
		Cols:    rs.Columns,
		Data:    rs.Data,
	})
}

func (s *Server) handleCubo(ctx *fasthttp.RequestCtx) {
	views := cube.Views(s.ds)
	resp := make(map[string][]map[string]any, len(views))
	for label, rs := range views {
		resp[label] = rs.Data
	}
	writeJsonResponse(ctx, resp)
}

func (s *Server) handleCelda(ctx *fasthttp.RequestCtx) {
	dimX := queryParam(ctx, "dim_x", cube.ColAnio)
	valX := queryParam(ctx, "valor_x", "2024")
	dimY := queryParam(ctx, "dim_y", cube.ColRegion)
	valY := queryParam(ctx, "valor_y", "Norte")

	rs, err := cube.CellDetail(s.ds, dimX, valX, dimY, valY)
	if err != nil {
		setBadMsg(ctx, err.Error())
		return
	}
	writeJsonResponse(ctx, celdaResponse{
		DimX:    dimX,
		ValorX:  valX,
		DimY:    dimY,
		ValorY:  valY,
		Columns: rs.Columns,
		Data:    rs.Data,
	})
}

// parseList splits a comma-joined query value, dropping empty entries.
func parseList(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

func parseIntList(s string) ([]int, error) {
	parts := parseList(s)
	if parts == nil {
		return nil, nil
	}
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("%q is not a year", p)
		}
		out = append(out, n)
	}
	return out, nil
}
