package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/eduardofuncao/cubo/internal/cube"
	"github.com/eduardofuncao/cubo/internal/styles"
	"github.com/eduardofuncao/cubo/internal/view"
)

// handleAdd saves a named view against the current server:
//
//	cubo add ventas_norte celda dim_x=Año valor_x=2024 dim_y=Región valor_y=Norte
func (a *App) handleAdd() {
	if len(os.Args) < 4 {
		printError("Usage: cubo add <view-name> <cara|seccion|cubo|celda> [key=value ...]")
	}

	name := os.Args[2]
	kind := os.Args[3]
	if !view.ValidKind(kind) {
		printError("Unknown view kind: %s. Use cara, seccion, cubo or celda", kind)
	}

	params := make(map[string]string)
	for _, arg := range os.Args[4:] {
		key, value, ok := strings.Cut(arg, "=")
		if !ok {
			printError("Parameters must be key=value pairs, got: %s", arg)
		}
		params[key] = value
	}

	a.currentServer()

	saved, err := a.config.SaveViewToServer(a.config.CurrentServer, view.View{
		Name:   name,
		Id:     -1,
		Kind:   kind,
		Params: params,
	})
	if err != nil {
		printError("Could not save view: %v", err)
	}

	fmt.Println(styles.Success.Render(fmt.Sprintf("✓ Added view '%s' with ID %d", saved.Name, saved.Id)))
	fmt.Println(styles.Faint.Render("  " + saved.Describe()))
}

func (a *App) handleRemove() {
	if len(os.Args) < 3 {
		printError("Usage: cubo remove <view-name-or-id>")
	}

	srv := a.currentServer()
	v, found := view.FindWithSelector(srv.Views, os.Args[2])
	if !found {
		printError("View '%s' could not be found", os.Args[2])
	}

	delete(srv.Views, v.Name)

	if err := a.config.Save(); err != nil {
		printError("Could not save configuration file: %v", err)
	}

	fmt.Println(styles.Success.Render(fmt.Sprintf("✓ Removed view '%s'", v.Name)))
}

// handleRun executes a saved view by name or id; with no selector it
// reruns the last view.
func (a *App) handleRun() {
	srv := a.currentServer()

	var v view.View
	if len(os.Args) < 3 {
		v = srv.LastView
		if v.Kind == "" {
			printError("No last view found. Usage: cubo run <view-name-or-id>")
		}
	} else {
		found := false
		v, found = view.FindWithSelector(srv.Views, os.Args[2])
		if !found {
			printError("View '%s' could not be found", os.Args[2])
		}
	}

	fmt.Println(styles.Title.Render("◆ " + v.Describe()))

	c := a.client()
	rs, elapsed := fetch(func() (cube.ResultSet, error) {
		return c.RunView(v)
	})

	a.showResult(rs, elapsed)
	a.rememberLastView(v)
}
