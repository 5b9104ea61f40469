package cmd

import (
	"bytes"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/slidekit/git-slides/internal/output"
)

// ListCmd returns the list command.
func ListCmd() *cli.Command {
	flags := append(commonFlags(),
		&cli.BoolFlag{
			Name:  "no-pager",
			Usage: "Do not pipe output into a pager",
		},
	)

	return &cli.Command{
		Name:    "list",
		Aliases: []string{"ls"},
		Usage:   "List all slides",
		Flags:   flags,
		Action:  listAction,
	}
}

func listAction(c *cli.Context) error {
	ctx, err := NewCommandContext(c)
	if err != nil {
		return err
	}

	rep, err := ctx.Controller.Status(c.Context)
	if err != nil {
		return err
	}

	if getOutputFormat(c.String("format")) == output.FormatJSON {
		return ctx.Writer(c).WriteList(os.Stdout, rep)
	}

	var buf bytes.Buffer
	if err := ctx.Writer(c).WriteList(&buf, rep); err != nil {
		return err
	}

	if ctx.Config.Pager && !c.Bool("no-pager") {
		return output.Page(buf.String())
	}
	_, err = os.Stdout.Write(buf.Bytes())
	return err
}
