package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/urfave/cli/v2"
)

// GotoCmd returns the goto command.
func GotoCmd() *cli.Command {
	return &cli.Command{
		Name:      "goto",
		Aliases:   []string{"go", "g"},
		Usage:     "Go to slide <n>",
		ArgsUsage: "<n>",
		Flags:     commonFlags(),
		Action:    gotoAction,
	}
}

func gotoAction(c *cli.Context) error {
	if c.NArg() == 0 {
		return fmt.Errorf("goto needs a slide number")
	}
	n, err := strconv.Atoi(c.Args().First())
	if err != nil {
		return fmt.Errorf("invalid slide number %q", c.Args().First())
	}

	ctx, err := NewCommandContext(c)
	if err != nil {
		return err
	}

	rep, err := ctx.Controller.Goto(c.Context, n)
	if err != nil {
		return err
	}

	if rep.Stashed {
		fmt.Println("Stashed uncommitted changes.")
	}

	return ctx.Writer(c).WriteStatus(os.Stdout, rep)
}
