package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/eduardofuncao/cubo/internal/cube"
	"github.com/eduardofuncao/cubo/internal/table"
	"github.com/eduardofuncao/cubo/internal/view"
)

const defaultCellWidth = 16

// handleExplore opens the interactive explorer on a 2D slice of the cube.
// Enter on a cell drills down to the detail records behind it; the ';'
// prompt re-slices without leaving the explorer ("x | y | metric").
func (a *App) handleExplore() {
	x := flagValue("--x", cube.ColAnio)
	y := flagValue("--y", cube.ColRegion)
	metric := flagValue("--metric", cube.ColVentas)

	cellWidth := defaultCellWidth
	if w := flagValue("--width", ""); w != "" {
		parsed, err := strconv.Atoi(w)
		if err != nil || parsed < 4 {
			printError("Invalid cell width: %s", w)
		}
		cellWidth = parsed
	}

	c := a.client()
	renderer := a.renderer()
	policy := a.policy()

	for {
		rs, elapsed := fetch(func() (cube.ResultSet, error) {
			return c.Cara(x, y, metric)
		})

		rows := make([][]string, 0, len(rs.Data))
		for _, record := range rs.Data {
			line := make([]string, len(rs.Columns))
			for i, col := range rs.Columns {
				line[i] = policy.Format(col, record[col])
			}
			rows = append(rows, line)
		}

		dimX, dimY := x, y
		onDrill := func(rowValue, colValue string) (string, error) {
			if colValue == dimY {
				return "", fmt.Errorf("select a %s column to drill down", dimX)
			}
			detail, err := c.Celda(dimX, colValue, dimY, rowValue)
			if err != nil {
				return "", err
			}
			var b strings.Builder
			if err := renderer.Render(&b, detail.Columns, detail.Data); err != nil {
				return "", err
			}
			return b.String(), nil
		}

		v := view.View{
			Kind:   view.KindCara,
			Params: map[string]string{"dim_x": x, "dim_y": y, "metric": metric},
		}

		m, err := table.Explore(v.Describe(), rs.Columns, rows, elapsed, cellWidth, onDrill)
		if err != nil {
			printError("Explorer failed: %v", err)
		}

		a.rememberLastView(v)

		if !m.ShouldReconfigure() {
			return
		}

		x, y, metric = parseSliceSpec(m.ReconfigSpec(), x, y, metric)
	}
}

// parseSliceSpec reads "x | y | metric"; omitted trailing parts keep
// their current value.
func parseSliceSpec(spec, x, y, metric string) (string, string, string) {
	parts := strings.Split(spec, "|")
	if len(parts) > 0 && strings.TrimSpace(parts[0]) != "" {
		x = strings.TrimSpace(parts[0])
	}
	if len(parts) > 1 && strings.TrimSpace(parts[1]) != "" {
		y = strings.TrimSpace(parts[1])
	}
	if len(parts) > 2 && strings.TrimSpace(parts[2]) != "" {
		metric = strings.TrimSpace(parts[2])
	}
	return x, y, metric
}
