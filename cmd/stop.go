package cmd

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

// StopCmd returns the stop command.
func StopCmd() *cli.Command {
	return &cli.Command{
		Name:   "stop",
		Usage:  "End the presentation and go back to where it started",
		Flags:  commonFlags(),
		Action: stopAction,
	}
}

func stopAction(c *cli.Context) error {
	ctx, err := NewCommandContext(c)
	if err != nil {
		return err
	}

	rep, err := ctx.Controller.Stop(c.Context)
	if err != nil {
		return err
	}

	if rep.Stashed {
		fmt.Println("Stashed uncommitted changes.")
	}
	fmt.Println("Presentation stopped.")
	if rep.Session.InitialBranch != "" {
		fmt.Printf("Going back to branch '%s'.\n", rep.Restored)
	} else {
		short := rep.Restored
		if len(short) > 7 {
			short = short[:7]
		}
		fmt.Printf("Going back to commit %s.\n", short)
	}

	return nil
}
