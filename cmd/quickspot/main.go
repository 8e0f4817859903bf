package main

import (
	"context"
	"log"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v3"
)

func main() {
	app := &cli.Command{
		Name:  "quickspot",
		Usage: "Typeahead search over JSON datasets",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "Enable debug logging",
				Value: false,
			},
			&cli.StringFlag{
				Name:  "config",
				Usage: "Configuration file path",
				Value: defaultConfigPath(),
			},
			&cli.StringSliceFlag{
				Name:    "data",
				Aliases: []string{"d"},
				Usage:   "Dataset URI (repeatable); replaces the configured sources",
			},
		},
		Commands: []*cli.Command{
			InitCommand(),
			SearchCommand(),
			AllCommand(),
			PromptCommand(),
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func defaultConfigPath() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "quickspot.toml"
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "quickspot", "config.toml")
}
