package main

import (
	"fmt"

	"github.com/eduardofuncao/cubo/internal/cube"
	"github.com/eduardofuncao/cubo/internal/styles"
	"github.com/eduardofuncao/cubo/internal/view"
)

func (a *App) handleCara() {
	x := flagValue("--x", cube.ColAnio)
	y := flagValue("--y", cube.ColRegion)
	metric := flagValue("--metric", cube.ColVentas)

	v := view.View{
		Kind: view.KindCara,
		Params: map[string]string{
			"dim_x":  x,
			"dim_y":  y,
			"metric": metric,
		},
	}
	fmt.Println(styles.Title.Render("◆ " + v.Describe()))

	c := a.client()
	rs, elapsed := fetch(func() (cube.ResultSet, error) {
		return c.Cara(x, y, metric)
	})

	a.showResult(rs, elapsed)
	a.rememberLastView(v)
}

func (a *App) rememberLastView(v view.View) {
	if err := a.config.UpdateLastView(a.config.CurrentServer, v); err != nil {
		fmt.Println(styles.Faint.Render(fmt.Sprintf("Warning: could not save last view: %v", err)))
	}
}
