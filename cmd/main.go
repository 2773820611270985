package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"
	"golang.org/x/term"

	"github.com/smarthome-go/knitscript/knitscript/config"
)

const programName = "knitscript"
const version = "latest"

func fileValidator(ctx *cli.Context) error {
	if ctx.Args().Len() != 1 {
		return fmt.Errorf("Expected exactly one argument <file>")
	}
	return nil
}

// Reads the config file (if any) and applies the global flags on top of it.
func loadConfig(ctx *cli.Context) (config.Config, error) {
	conf := config.Default()

	if path := ctx.String("config"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return config.Config{}, err
		}
		conf = loaded
	}

	if ctx.IsSet("keep-going") {
		conf.KeepGoing = ctx.Bool("keep-going")
	}
	if ctx.IsSet("color") {
		conf.Color = config.ColorMode(ctx.String("color"))
	}
	if ctx.IsSet("base-dir") {
		conf.BaseDir = ctx.String("base-dir")
	}

	if err := conf.Validate(); err != nil {
		return config.Config{}, err
	}

	applyColorMode(conf.Color)
	return conf, nil
}

func applyColorMode(mode config.ColorMode) {
	switch mode {
	case config.ColorAuto:
		color.NoColor = !term.IsTerminal(int(os.Stdout.Fd()))
	case config.ColorAlways:
		color.NoColor = false
	case config.ColorNever:
		color.NoColor = true
	default:
		panic("A new color mode was added without updating this code")
	}
}

func main() {
	// nolint:exhaustruct
	app := &cli.App{
		Name:     programName,
		Usage:    "Transform knitting charts using small scripts",
		Version:  version,
		Compiled: time.Now(),
		Authors: []*cli.Author{
			{
				Name:  "The Smarthome Authors",
				Email: "",
			},
		},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Usage:   "Load settings from a YAML file",
				Aliases: []string{"c"},
			},
			&cli.BoolFlag{
				Name:    "keep-going",
				Usage:   "Continue with the next statement after a failed one",
				Aliases: []string{"k"},
			},
			&cli.StringFlag{
				Name:  "color",
				Usage: "When to color diagnostics: auto, always or never",
				Value: string(config.ColorAuto),
			},
			&cli.StringFlag{
				Name:  "base-dir",
				Usage: "Resolve chart paths relative to this directory instead of the program's",
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "run",
				Aliases:   []string{"r"},
				Usage:     "Run a knitscript file",
				ArgsUsage: "[file]",
				Args:      true,
				Before:    fileValidator,
				Action: func(ctx *cli.Context) error {
					conf, err := loadConfig(ctx)
					if err != nil {
						return err
					}
					return runFile(ctx.Args().First(), conf, os.Stdout)
				},
			},
			{
				Name:      "parse",
				Aliases:   []string{"p"},
				Usage:     "Parse a knitscript file and print its syntax tree",
				ArgsUsage: "[file]",
				Args:      true,
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:    "dump",
						Usage:   "Print the raw tree structure instead of the formatted program",
						Aliases: []string{"d"},
					},
				},
				Before: fileValidator,
				Action: func(ctx *cli.Context) error {
					conf, err := loadConfig(ctx)
					if err != nil {
						return err
					}
					if ctx.IsSet("dump") {
						conf.DumpAST = ctx.Bool("dump")
					}
					return parseFile(ctx.Args().First(), conf, os.Stdout)
				},
			},
			{
				Name:    "builtins",
				Aliases: []string{"b"},
				Usage:   "List the available builtin functions",
				Action: func(ctx *cli.Context) error {
					listBuiltins(os.Stdout)
					return nil
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
