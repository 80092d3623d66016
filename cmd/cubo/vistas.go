package main

import (
	"fmt"
	"os"
	"time"

	"github.com/eduardofuncao/cubo/internal/spinner"
	"github.com/eduardofuncao/cubo/internal/styles"
)

func (a *App) handleVistas() {
	c := a.client()

	start := time.Now()
	done := make(chan struct{})
	go spinner.Wait(done)
	views, err := c.Cubo()
	done <- struct{}{}
	elapsed := time.Since(start)

	if err != nil {
		printError("Could not fetch views: %v", err)
	}

	renderer := a.renderer()
	for _, nv := range views {
		fmt.Println(styles.ViewLabel.Render("\n◆ " + nv.Label))
		if err := renderer.Render(os.Stdout, nv.Result.Columns, nv.Result.Data); err != nil {
			printError("Could not render view '%s': %v", nv.Label, err)
		}
	}
	fmt.Println(styles.Faint.Render(fmt.Sprintf("\n%d views in %.2fs", len(views), elapsed.Seconds())))
}
