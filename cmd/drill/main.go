package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

// CLI is the drill command line
type CLI struct {
	Version kong.VersionFlag `short:"v" help:"Show version"`
	Play    PlayCmd          `cmd:"" default:"withargs" help:"Answer preflop puzzles with single-key hotkeys"`
	Chart   ChartCmd         `cmd:"" help:"Print the heads-up small blind range chart"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("drill"),
		kong.Description("Preflop decision trainer"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
