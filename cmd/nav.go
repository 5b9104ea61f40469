package cmd

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

// NextCmd returns the next command.
func NextCmd() *cli.Command {
	return &cli.Command{
		Name:      "next",
		Aliases:   []string{"n"},
		Usage:     "Go forward one or <n> slides",
		ArgsUsage: "[<n>]",
		Flags:     commonFlags(),
		Action:    nextAction,
	}
}

// PrevCmd returns the prev command.
func PrevCmd() *cli.Command {
	return &cli.Command{
		Name:      "prev",
		Aliases:   []string{"previous", "p"},
		Usage:     "Go back one or <n> slides",
		ArgsUsage: "[<n>]",
		Flags:     commonFlags(),
		Action:    prevAction,
	}
}

func nextAction(c *cli.Context) error {
	count, err := stepCount(c)
	if err != nil {
		return err
	}
	ctx, err := NewCommandContext(c)
	if err != nil {
		return err
	}

	rep, err := ctx.Controller.Next(c.Context, count)
	if err != nil {
		return err
	}

	if rep.Stashed {
		fmt.Println("Stashed uncommitted changes.")
	}
	if rep.AtEnd {
		fmt.Println("You've reached the end of the presentation.")
	}

	return ctx.Writer(c).WriteStatus(os.Stdout, rep)
}

func prevAction(c *cli.Context) error {
	count, err := stepCount(c)
	if err != nil {
		return err
	}
	ctx, err := NewCommandContext(c)
	if err != nil {
		return err
	}

	rep, err := ctx.Controller.Prev(c.Context, count)
	if err != nil {
		return err
	}

	if rep.Stashed {
		fmt.Println("Stashed uncommitted changes.")
	}
	if rep.AtStart {
		fmt.Println("You're at the start of the presentation.")
	}

	return ctx.Writer(c).WriteStatus(os.Stdout, rep)
}
