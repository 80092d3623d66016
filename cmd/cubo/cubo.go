package main

import (
	"fmt"

	"github.com/eduardofuncao/cubo/internal/cube"
	"github.com/eduardofuncao/cubo/internal/styles"
	"github.com/eduardofuncao/cubo/internal/view"
)

func (a *App) handleCubo() {
	rows := flagValue("--rows", cube.ColProducto+","+cube.ColRegion)
	cols := flagValue("--cols", cube.ColAnio+","+cube.ColTrimestre)
	metric := flagValue("--metric", cube.ColVentas)

	v := view.View{
		Kind: view.KindCubo,
		Params: map[string]string{
			"index":   rows,
			"columns": cols,
			"metric":  metric,
		},
	}
	fmt.Println(styles.Title.Render("◆ " + v.Describe()))

	c := a.client()
	rs, elapsed := fetch(func() (cube.ResultSet, error) {
		return c.CuboDinamico(rows, cols, metric)
	})

	a.showResult(rs, elapsed)
	a.rememberLastView(v)
}
