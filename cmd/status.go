package cmd

import (
	"os"

	"github.com/urfave/cli/v2"
)

// StatusCmd returns the status command.
func StatusCmd() *cli.Command {
	return &cli.Command{
		Name:    "status",
		Aliases: []string{"st"},
		Usage:   "Show the current position without changing anything",
		Flags:   commonFlags(),
		Action:  statusAction,
	}
}

func statusAction(c *cli.Context) error {
	ctx, err := NewCommandContext(c)
	if err != nil {
		return err
	}

	rep, err := ctx.Controller.Status(c.Context)
	if err != nil {
		return err
	}

	return ctx.Writer(c).WriteStatus(os.Stdout, rep)
}
