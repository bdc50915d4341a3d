package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/duml/go-duml"
	"github.com/gdamore/tcell/v2"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:      "duml-view",
		Usage:     "render a duml document in the terminal",
		ArgsUsage: "[path]",
		Action:    run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	path := c.Args().First()
	if path == "" {
		path = defaultDocumentPath()
	}

	document, err := duml.ParseFile(path)
	if err != nil {
		return cli.Exit(fmt.Sprintf("failed to load %s: %v", path, err), 1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return cli.Exit(fmt.Sprintf("unable to create screen: %v", err), 1)
	}

	if err := screen.Init(); err != nil {
		return cli.Exit(fmt.Sprintf("unable to initialize screen: %v", err), 1)
	}

	defer screen.Fini()

	greeter := Greeter{}
	term := duml.NewTermScreen(screen)

	redraw := func() {
		duml.Render(document, term, func(binding string) string {
			return resolveBinding(greeter, binding)
		})

		instructionRow := term.Rows() - 1
		if instructionRow < 0 {
			instructionRow = 0
		}

		term.DrawText(instructionRow, 1, "Press any key to exit")
		term.Refresh()
	}

	redraw()

	for {
		switch screen.PollEvent().(type) {
		case *tcell.EventKey:
			return nil
		case *tcell.EventResize:
			screen.Sync()
			redraw()
		case nil:
			return nil
		}
	}
}

func resolveBinding(greeter Greeter, binding string) string {
	switch binding {
	case "greeter.message":
		return greeter.Message()
	case "greeter.greet", "greeter.greet()":
		return greeter.Greet("")
	}

	return binding
}

// defaultDocumentPath looks for the bundled document next to the
// executable first, then in the parent directory (build tree layout),
// before giving up and returning the plain relative path.
func defaultDocumentPath() string {
	fallback := filepath.Join("ui", "main.duml")

	exe, err := os.Executable()
	if err != nil {
		return fallback
	}

	dir := filepath.Dir(exe)
	candidates := []string{
		filepath.Join(dir, "ui", "main.duml"),
		filepath.Join(dir, "..", "ui", "main.duml"),
	}

	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}

	return fallback
}
