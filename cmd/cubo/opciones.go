package main

import (
	"fmt"
	"strings"

	"github.com/eduardofuncao/cubo/internal/styles"
)

func (a *App) handleOpciones() {
	c := a.client()

	opts, err := c.Opciones()
	if err != nil {
		printError("Could not fetch options: %v", err)
	}

	fmt.Println(styles.Title.Render("Dimensiones"))
	fmt.Println("  " + strings.Join(opts.Dimensiones, ", "))
	fmt.Println(styles.Title.Render("Métricas"))
	fmt.Println("  " + strings.Join(opts.Metricas, ", "))
}
