package main

import (
	"fmt"
	"os"

	"github.com/eduardofuncao/cubo/internal/config"
)

type App struct {
	config *config.Config
}

func NewApp(cfg *config.Config) *App {
	return &App{
		config: cfg,
	}
}

func (a *App) Run() {
	if len(os.Args) < 2 {
		a.printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	switch command {
	case "serve":
		a.handleServe()
	case "init":
		a.handleInit()
	case "switch", "use":
		a.handleSwitch()
	case "status":
		a.handleStatus()
	case "list":
		a.handleList()
	case "opciones", "dims":
		a.handleOpciones()
	case "cara", "slice":
		a.handleCara()
	case "seccion", "dice":
		a.handleSeccion()
	case "cubo", "pivot":
		a.handleCubo()
	case "celda", "cell":
		a.handleCelda()
	case "vistas", "views":
		a.handleVistas()
	case "explore":
		a.handleExplore()
	case "add", "save":
		a.handleAdd()
	case "remove", "delete":
		a.handleRemove()
	case "run":
		a.handleRun()
	case "edit":
		a.handleEdit()
	case "help":
		a.handleHelp()
	default:
		printError("Unknown command: %s. Try 'cubo help'", command)
	}
}

func (a *App) printUsage() {
	fmt.Println("Usage:")
	fmt.Println("cubo serve [--addr :5000] [--source synthetic|postgres|mysql|sqlite|oracle]")
	fmt.Println("cubo init <name> <url>")
	fmt.Println("cubo switch <server-name>")
	fmt.Println("cubo cara [--x Año] [--y Región] [--metric Ventas]")
	fmt.Println("cubo explore")
	fmt.Println("cubo help")
}
