package cmd

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/slidekit/git-slides/config"
	"github.com/slidekit/git-slides/internal/git"
	"github.com/slidekit/git-slides/internal/nav"
	"github.com/slidekit/git-slides/internal/output"
	"github.com/slidekit/git-slides/internal/store"
)

// CommandContext holds common state for command execution.
// It encapsulates the shared setup logic across all navigation commands.
type CommandContext struct {
	Config     *config.Config
	Backend    git.Backend
	Store      *store.FileStore
	Controller *nav.Controller
}

// NewCommandContext creates a context from CLI flags.
// It loads configuration, opens the repository backend, and wires the
// session store and navigation controller.
func NewCommandContext(c *cli.Context) (*CommandContext, error) {
	cfg, err := config.LoadConfig(c.String("config"))
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	engine := cfg.Engine
	if c.IsSet("engine") {
		engine = c.String("engine")
	}

	backend, err := newBackend(engine, c.String("repo"))
	if err != nil {
		return nil, err
	}

	st := store.New(backend.GitDir())
	ctrl := nav.NewController(backend, st, nav.Options{
		StashBeforeCheckout: cfg.Checkout.StashBeforeCheckout,
	})

	return &CommandContext{
		Config:     cfg,
		Backend:    backend,
		Store:      st,
		Controller: ctrl,
	}, nil
}

func newBackend(engine, repoPath string) (git.Backend, error) {
	switch engine {
	case config.EngineCLI:
		return git.NewCLIBackend(repoPath)
	case config.EngineGoGit, "":
		return git.NewGoGitBackend(repoPath)
	default:
		return nil, fmt.Errorf("unknown engine %q (expected %q or %q)", engine, config.EngineGoGit, config.EngineCLI)
	}
}

// Writer creates the report writer selected by the format flag.
func (ctx *CommandContext) Writer(c *cli.Context) output.ReportWriter {
	return output.NewReportWriter(getOutputFormat(c.String("format")), output.Options{
		Before:  ctx.Config.Status.Before,
		After:   ctx.Config.Status.After,
		NoColor: c.Bool("no-color"),
	})
}
