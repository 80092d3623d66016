package main

import (
	"fmt"

	"github.com/eduardofuncao/cubo/internal/cube"
	"github.com/eduardofuncao/cubo/internal/styles"
	"github.com/eduardofuncao/cubo/internal/view"
)

func (a *App) handleCelda() {
	dimX := flagValue("--dim-x", cube.ColAnio)
	valX := flagValue("--val-x", "2024")
	dimY := flagValue("--dim-y", cube.ColRegion)
	valY := flagValue("--val-y", "Norte")

	v := view.View{
		Kind: view.KindCelda,
		Params: map[string]string{
			"dim_x":   dimX,
			"valor_x": valX,
			"dim_y":   dimY,
			"valor_y": valY,
		},
	}
	fmt.Println(styles.Title.Render("◆ " + v.Describe()))

	c := a.client()
	rs, elapsed := fetch(func() (cube.ResultSet, error) {
		return c.Celda(dimX, valX, dimY, valY)
	})

	a.showResult(rs, elapsed)
	a.rememberLastView(v)
}
