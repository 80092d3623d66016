package main

import (
	"fmt"

	"github.com/eduardofuncao/cubo/internal/cube"
	"github.com/eduardofuncao/cubo/internal/styles"
	"github.com/eduardofuncao/cubo/internal/view"
)

func (a *App) handleSeccion() {
	anios := flagValue("--anios", "")
	regiones := flagValue("--regiones", "")
	productos := flagValue("--productos", "")
	canales := flagValue("--canales", "")

	v := view.View{
		Kind: view.KindSeccion,
		Params: map[string]string{
			"anios":     anios,
			"regiones":  regiones,
			"productos": productos,
			"canales":   canales,
		},
	}
	fmt.Println(styles.Title.Render("◆ " + v.Describe()))

	c := a.client()
	rs, elapsed := fetch(func() (cube.ResultSet, error) {
		return c.Seccion(anios, regiones, productos, canales)
	})

	a.showResult(rs, elapsed)
	a.rememberLastView(v)
}
