package main

import (
	"fmt"
	"os"
	"os/exec"
	"sort"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/eduardofuncao/cubo/internal/client"
	"github.com/eduardofuncao/cubo/internal/config"
	"github.com/eduardofuncao/cubo/internal/cube"
	"github.com/eduardofuncao/cubo/internal/render"
	"github.com/eduardofuncao/cubo/internal/spinner"
	"github.com/eduardofuncao/cubo/internal/styles"
)

func printError(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(os.Stderr, styles.Error.Render("✗ Error:"), msg)
	os.Exit(1)
}

// flagValue scans os.Args for "name value" and returns value, or the
// fallback when the flag is absent.
func flagValue(name, fallback string) string {
	for i := 2; i < len(os.Args)-1; i++ {
		if os.Args[i] == name {
			return os.Args[i+1]
		}
	}
	return fallback
}

func (a *App) currentServer() *config.Server {
	srv, ok := a.config.CurrentServerConfig()
	if !ok {
		printError("No active server. Use 'cubo init <name> <url>' or 'cubo switch <name>' first")
	}
	return srv
}

func (a *App) client() *client.Client {
	return client.New(a.currentServer().URL)
}

func (a *App) policy() render.Policy {
	if len(a.config.IntegerColumns) > 0 {
		return render.NewPolicy(a.config.IntegerColumns, 2)
	}
	return render.DefaultPolicy()
}

func (a *App) renderer() *render.Renderer {
	return render.New(a.policy())
}

// fetch runs a request with the spinner going, and returns the result set
// plus how long the round trip took.
func fetch(call func() (cube.ResultSet, error)) (cube.ResultSet, time.Duration) {
	start := time.Now()
	done := make(chan struct{})
	go spinner.Wait(done)

	rs, err := call()
	done <- struct{}{}
	elapsed := time.Since(start)

	if err != nil {
		printError("Could not complete request: %v", err)
	}
	return rs, elapsed
}

// showResult renders a result set to stdout with the row count footer.
func (a *App) showResult(rs cube.ResultSet, elapsed time.Duration) {
	if err := a.renderer().Render(os.Stdout, rs.Columns, rs.Data); err != nil {
		printError("Could not render table: %v", err)
	}
	fmt.Println(styles.Faint.Render(fmt.Sprintf(
		"%s rows in %.2fs",
		humanize.Comma(int64(len(rs.Data))),
		elapsed.Seconds(),
	)))
}

func (a *App) handleInit() {
	if len(os.Args) < 4 {
		printError("Usage: cubo init <name> <url>")
	}

	name := os.Args[2]
	url := os.Args[3]

	c := client.New(url)
	done := make(chan struct{})
	go spinner.CircleWait(done)
	_, err := c.Opciones()
	done <- struct{}{}
	if err != nil {
		printError("Could not reach cube server at %s: %v", url, err)
	}

	a.config.Servers[name] = &config.Server{
		Name: name,
		URL:  url,
	}
	a.config.CurrentServer = name
	if err := a.config.Save(); err != nil {
		printError("Could not save configuration file: %v", err)
	}

	fmt.Println(styles.Success.Render("✓ Server registered:"), styles.Title.Render(fmt.Sprintf("%s (%s)", name, url)))
}

func (a *App) handleSwitch() {
	if len(os.Args) < 3 {
		printError("Usage: cubo switch/use <server-name>")
	}

	name := os.Args[2]
	srv, ok := a.config.Servers[name]
	if !ok {
		printError("Server '%s' does not exist", name)
	}
	a.config.CurrentServer = name

	if err := a.config.Save(); err != nil {
		printError("Could not save configuration file: %v", err)
	}

	fmt.Println(styles.Success.Render("⇄ Switched to:"), styles.Title.Render(fmt.Sprintf("%s (%s)", name, srv.URL)))
}

func (a *App) handleStatus() {
	if a.config.CurrentServer == "" {
		fmt.Println(styles.Faint.Render("No active server"))
		return
	}
	srv := a.currentServer()
	fmt.Println(styles.Success.Render("● Currently using:"), styles.Title.Render(fmt.Sprintf("%s (%s)", a.config.CurrentServer, srv.URL)))
}

func (a *App) handleList() {
	objectType := "views"
	if len(os.Args) >= 3 {
		objectType = os.Args[2]
	}

	switch objectType {
	case "servers":
		if len(a.config.Servers) == 0 {
			fmt.Println(styles.Faint.Render("No servers configured"))
			return
		}
		names := make([]string, 0, len(a.config.Servers))
		for name := range a.config.Servers {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			marker := styles.Faint.Render("◆")
			if name == a.config.CurrentServer {
				marker = styles.Success.Render("●")
			}
			fmt.Printf("%s %s %s\n", marker, styles.Title.Render(name), styles.Faint.Render(fmt.Sprintf("(%s)", a.config.Servers[name].URL)))
		}

	case "views":
		srv := a.currentServer()
		if len(srv.Views) == 0 {
			fmt.Println(styles.Faint.Render("No views saved"))
			return
		}
		for _, v := range srv.Views {
			fmt.Println(styles.Title.Render(fmt.Sprintf("◆ %d/%s", v.Id, v.Name)))
			fmt.Println(styles.Faint.Render("  " + v.Describe()))
		}

	default:
		printError("Unknown list type: %s. Use 'views' or 'servers'", objectType)
	}
}

func (a *App) handleEdit() {
	editorCmd := os.Getenv("EDITOR")
	if editorCmd == "" {
		editorCmd = "vim"
	}

	cmd := exec.Command(editorCmd, config.CfgFile)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		printError("Failed to open editor: %v", err)
	}
	fmt.Println(styles.Success.Render("✓ Config file edited"))
}
