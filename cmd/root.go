package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/urfave/cli/v2"

	"github.com/slidekit/git-slides/internal/output"
)

// App creates the CLI application.
func App() *cli.App {
	return &cli.App{
		Name:    "git-slides",
		Usage:   "Navigate through Git commits like presentation slides",
		Version: "1.0.0",
		Commands: []*cli.Command{
			StartCmd(),
			NextCmd(),
			PrevCmd(),
			GotoCmd(),
			StatusCmd(),
			ListCmd(),
			StopCmd(),
		},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to configuration file",
			},
		},
	}
}

// Common flags shared across commands
func commonFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "repo",
			Aliases: []string{"r"},
			Usage:   "Path to Git repository",
			Value:   ".",
		},
		&cli.StringFlag{
			Name:  "engine",
			Usage: "Version-control engine (gogit, cli)",
		},
		&cli.StringFlag{
			Name:    "format",
			Aliases: []string{"f"},
			Usage:   "Output format (console, json)",
			Value:   "console",
		},
		&cli.BoolFlag{
			Name:  "no-color",
			Usage: "Disable colored output",
		},
	}
}

// getOutputFormat parses the output format flag.
func getOutputFormat(s string) output.Format {
	switch s {
	case "json":
		return output.FormatJSON
	default:
		return output.FormatConsole
	}
}

// stepCount parses the optional slide count argument of next/prev.
func stepCount(c *cli.Context) (int, error) {
	if c.NArg() == 0 {
		return 1, nil
	}
	n, err := strconv.Atoi(c.Args().First())
	if err != nil || n < 1 {
		return 0, fmt.Errorf("invalid slide count %q (expected a positive number)", c.Args().First())
	}
	return n, nil
}

// Run executes the CLI application.
func Run() {
	if err := App().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
