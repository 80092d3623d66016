package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/eduardofuncao/cubo/internal/styles"
)

func (a *App) handleHelp() {
	if len(os.Args) == 2 {
		a.PrintGeneralHelp()
	} else {
		a.PrintCommandHelp()
	}
}

func (a *App) PrintGeneralHelp() {
	fmt.Println(
		styles.Title.Render(
			"cubo - OLAP cube explorer for your sales data",
		),
	)
	fmt.Println(
		styles.Faint.Render(
			"Serve, slice, dice and pivot a sales cube from the terminal.",
		),
	)
	fmt.Println()

	fmt.Println(styles.Title.Render("Usage"))
	fmt.Println(styles.Separator.Render("  cubo <command> [arguments]"))
	fmt.Println()

	fmt.Println(styles.Title.Render("Commands"))
	fmt.Println(
		"  serve       " + styles.Faint.Render(
			"Run the cube API server",
		),
	)
	fmt.Println(
		"  init        " + styles.Faint.Render(
			"Register a cube server and make it active",
		),
	)
	fmt.Println(
		"  switch      " + styles.Faint.Render(
			"Switch the active server (alias: use)",
		),
	)
	fmt.Println(
		"  status      " + styles.Faint.Render(
			"Show the current active server",
		),
	)
	fmt.Println(
		"  opciones    " + styles.Faint.Render(
			"List available dimensions and metrics (alias: dims)",
		),
	)
	fmt.Println(
		"  cara        " + styles.Faint.Render(
			"2D slice of the cube (alias: slice)",
		),
	)
	fmt.Println(
		"  seccion     " + styles.Faint.Render(
			"Filtered detail rows (alias: dice)",
		),
	)
	fmt.Println(
		"  cubo        " + styles.Faint.Render(
			"Dynamic pivot with totals (alias: pivot)",
		),
	)
	fmt.Println(
		"  celda       " + styles.Faint.Render(
			"Detail rows behind one aggregate cell (alias: cell)",
		),
	)
	fmt.Println(
		"  vistas      " + styles.Faint.Render(
			"Render the predefined views (alias: views)",
		),
	)
	fmt.Println(
		"  explore     " + styles.Faint.Render(
			"Interactive table with drill-down",
		),
	)
	fmt.Println(
		"  add         " + styles.Faint.Render(
			"Save a named view (alias: save)",
		),
	)
	fmt.Println(
		"  remove      " + styles.Faint.Render(
			"Remove a saved view by name or id (alias: delete)",
		),
	)
	fmt.Println(
		"  run         " + styles.Faint.Render(
			"Run a saved view by name or id",
		),
	)
	fmt.Println(
		"  list        " + styles.Faint.Render("List views or servers"),
	)
	fmt.Println(
		"  edit        " + styles.Faint.Render(
			"Open the config file in your editor",
		),
	)
	fmt.Println(
		"  help        " + styles.Faint.Render(
			"Show help for cubo or a specific command",
		),
	)
	fmt.Println()

	fmt.Println(styles.Title.Render("Examples"))
	fmt.Println("  cubo serve --addr :5000")
	fmt.Println("  cubo init local http://localhost:5000")
	fmt.Println("  cubo cara --x Año --y Región --metric Ventas")
	fmt.Println("  cubo cubo --rows Producto,Región --cols Año,Trimestre")
	fmt.Println("  cubo add norte_2024 celda dim_x=Año valor_x=2024 dim_y=Región valor_y=Norte")
	fmt.Println("  cubo run norte_2024")
	fmt.Println("  cubo explore --x Trimestre --y Producto")
}

func (a *App) PrintCommandHelp() {
	cmd := strings.ToLower(os.Args[2])

	section := func(title string) {
		fmt.Println(styles.Title.Render(title))
	}

	switch cmd {
	case "serve":
		section("Command: serve")
		fmt.Println(styles.Faint.Render("Run the cube API server."))
		fmt.Println()
		section("Usage")
		fmt.Println("  cubo serve [--addr :5000] [--source synthetic] [--seed 42]")
		fmt.Println("  cubo serve --source postgres --conn <dsn> [--table ventas]")
		fmt.Println("  cubo serve --log-file /var/log/cubo.log")
		fmt.Println()
		section("Description")
		fmt.Println("  - 'synthetic' generates a deterministic dataset from the seed.")
		fmt.Println("  - SQL sources (postgres, mysql, sqlite, oracle) read the facts")
		fmt.Println("    from a table with columns anio, trimestre, mes, region, canal,")
		fmt.Println("    producto, cantidad, ventas.")
		fmt.Println("  - With --log-file, logs rotate instead of going to stderr.")

	case "init":
		section("Command: init")
		fmt.Println(styles.Faint.Render("Register a cube server and make it the active one."))
		fmt.Println()
		section("Usage")
		fmt.Println("  cubo init <name> <url>")
		fmt.Println()
		section("Examples")
		fmt.Println("  cubo init local http://localhost:5000")
		fmt.Println("  cubo init prod https://cubo.example.com")

	case "switch", "use":
		section("Command: switch")
		fmt.Println(styles.Faint.Render("Switch the active server used by other commands."))
		fmt.Println()
		section("Usage")
		fmt.Println("  cubo switch/use <server-name>")

	case "cara", "slice":
		section("Command: cara")
		fmt.Println(styles.Faint.Render("2D slice: one dimension down, one across, summed metric."))
		fmt.Println()
		section("Usage")
		fmt.Println("  cubo cara [--x Año] [--y Región] [--metric Ventas]")
		fmt.Println()
		section("Examples")
		fmt.Println("  cubo cara")
		fmt.Println("  cubo slice --x Trimestre --y Producto --metric Cantidad")

	case "seccion", "dice":
		section("Command: seccion")
		fmt.Println(styles.Faint.Render("Filtered detail rows. Every filter is optional, comma-separated."))
		fmt.Println()
		section("Usage")
		fmt.Println("  cubo seccion [--anios 2023,2024] [--regiones Norte,Sur]")
		fmt.Println("               [--productos Laptop] [--canales Online]")

	case "cubo", "pivot":
		section("Command: cubo")
		fmt.Println(styles.Faint.Render("Dynamic pivot with a Total row and column."))
		fmt.Println()
		section("Usage")
		fmt.Println("  cubo cubo [--rows Producto,Región] [--cols Año,Trimestre] [--metric Ventas]")

	case "celda", "cell":
		section("Command: celda")
		fmt.Println(styles.Faint.Render("The detail rows behind one aggregate cell."))
		fmt.Println()
		section("Usage")
		fmt.Println("  cubo celda [--dim-x Año] [--val-x 2024] [--dim-y Región] [--val-y Norte]")

	case "vistas", "views":
		section("Command: vistas")
		fmt.Println(styles.Faint.Render("Fetch and render every predefined view of the cube."))
		fmt.Println()
		section("Usage")
		fmt.Println("  cubo vistas")

	case "explore":
		section("Command: explore")
		fmt.Println(styles.Faint.Render("Interactive table over a 2D slice of the cube."))
		fmt.Println()
		section("Usage")
		fmt.Println("  cubo explore [--x Año] [--y Región] [--metric Ventas] [--width 16]")
		fmt.Println()
		section("Keys")
		fmt.Println("  Arrow keys / h j k l  " + styles.Faint.Render("Move selection around the table"))
		fmt.Println("  PageUp / Ctrl+u       " + styles.Faint.Render("Scroll by a page up"))
		fmt.Println("  PageDown / Ctrl+d     " + styles.Faint.Render("Scroll by a page down"))
		fmt.Println("  Home / 0 / _          " + styles.Faint.Render("Jump to first column"))
		fmt.Println("  End / $               " + styles.Faint.Render("Jump to last column"))
		fmt.Println("  g / G                 " + styles.Faint.Render("Jump to top / bottom"))
		fmt.Println("  Enter                 " + styles.Faint.Render("Drill down into the records behind the cell"))
		fmt.Println("  y                     " + styles.Faint.Render("Copy selection to clipboard"))
		fmt.Println("  v                     " + styles.Faint.Render("Start multi-selection mode"))
		fmt.Println("  ;                     " + styles.Faint.Render("Re-slice: 'x | y | metric'"))
		fmt.Println("  q / Ctrl+c            " + styles.Faint.Render("Quit the explorer"))

	case "add", "save":
		section("Command: add")
		fmt.Println(styles.Faint.Render("Save a named view under the current server."))
		fmt.Println()
		section("Usage")
		fmt.Println("  cubo add <view-name> <cara|seccion|cubo|celda> [key=value ...]")
		fmt.Println()
		section("Examples")
		fmt.Println("  cubo add por_region cara dim_x=Año dim_y=Región metric=Ventas")
		fmt.Println("  cubo add online_2024 seccion anios=2024 canales=Online")

	case "remove", "delete":
		section("Command: remove")
		fmt.Println(styles.Faint.Render("Remove a saved view by name or ID."))
		fmt.Println()
		section("Usage")
		fmt.Println("  cubo remove <view-name-or-id>")

	case "run":
		section("Command: run")
		fmt.Println(styles.Faint.Render("Run a saved view. Without a selector, reruns the last view."))
		fmt.Println()
		section("Usage")
		fmt.Println("  cubo run [view-name-or-id]")

	case "list":
		section("Command: list")
		fmt.Println(styles.Faint.Render("List saved views or configured servers. Defaults to views."))
		fmt.Println()
		section("Usage")
		fmt.Println("  cubo list [views | servers]")

	case "edit":
		section("Command: edit")
		fmt.Println(styles.Faint.Render("Open cubo's configuration file in $EDITOR."))
		fmt.Println()
		section("Usage")
		fmt.Println("  cubo edit")

	case "status":
		section("Command: status")
		fmt.Println(styles.Faint.Render("Show the current active server."))
		fmt.Println()
		section("Usage")
		fmt.Println("  cubo status")

	case "opciones", "dims":
		section("Command: opciones")
		fmt.Println(styles.Faint.Render("List the dimensions and metrics the server exposes."))
		fmt.Println()
		section("Usage")
		fmt.Println("  cubo opciones")

	case "help":
		section("Command: help")
		fmt.Println(styles.Faint.Render("Show general help or detailed help for a specific command."))
		fmt.Println()
		section("Usage")
		fmt.Println("  cubo help [command]")

	default:
		fmt.Printf("%s %q\n\n", styles.Error.Render("Unknown command"), cmd)
		a.PrintGeneralHelp()
	}
}
