package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"gitfetch/internal/cmd"
	"gitfetch/internal/config"
	"gitfetch/internal/theme"
	"gitfetch/internal/version"
)

func main() {
	// Settings are loaded before parsing so flags can fall back to them
	settings, err := config.LoadSettings()
	if err != nil {
		fail(err)
	}

	var cli cmd.CLI
	cli.SetSettings(settings)
	ctx := kong.Parse(&cli,
		kong.Name("gitfetch"),
		kong.Description(version.Tagline),
		kong.UsageOnError(),
		kong.Vars{"version": version.Info()},
	)

	// Execute the selected command
	if err := ctx.Run(&cli); err != nil {
		fail(err)
	}
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, theme.ErrorStyle().Render(fmt.Sprintf("Error: %v", err)))
	os.Exit(1)
}
