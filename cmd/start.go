package cmd

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/slidekit/git-slides/internal/nav"
)

// StartCmd returns the start command.
func StartCmd() *cli.Command {
	flags := append(commonFlags(),
		&cli.StringSliceFlag{
			Name:  "paths",
			Usage: "Glob patterns; only commits touching a matching path become slides (can be specified multiple times)",
		},
		&cli.BoolFlag{
			Name:  "allow-dirty",
			Usage: "Start even when the working tree has uncommitted changes",
		},
	)

	return &cli.Command{
		Name:      "start",
		Usage:     "Start a presentation from <anchor> to the current branch tip",
		ArgsUsage: "[<anchor>]",
		Flags:     flags,
		Action:    startAction,
	}
}

func startAction(c *cli.Context) error {
	ctx, err := NewCommandContext(c)
	if err != nil {
		return err
	}

	allowDirty := ctx.Config.Checkout.AllowDirtyStart || c.Bool("allow-dirty")

	rep, err := ctx.Controller.Start(c.Context, c.Args().First(), nav.StartOptions{
		Paths:      c.StringSlice("paths"),
		AllowDirty: allowDirty,
	})
	if err != nil {
		return err
	}

	if rep.Stashed {
		fmt.Println("Stashed uncommitted changes.")
	}
	fmt.Printf("Presentation started (%d slides).\n", rep.Session.Len())

	return ctx.Writer(c).WriteStatus(os.Stdout, rep)
}
