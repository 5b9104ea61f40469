package git

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// CLIBackend implements Backend by shelling out to the git executable.
// Selected with --engine cli; useful where go-git and the installed git
// disagree (sparse checkouts, exotic repository layouts).
type CLIBackend struct {
	workdir string
	gitdir  string
}

// NewCLIBackend verifies the git executable is available and that repoPath
// is inside a repository.
func NewCLIBackend(repoPath string) (*CLIBackend, error) {
	if _, err := exec.LookPath("git"); err != nil {
		return nil, fmt.Errorf("git executable not found in PATH: %w", err)
	}

	workdir, err := runGit(repoPath, "rev-parse", "--show-toplevel")
	if err != nil {
		return nil, fmt.Errorf("not a git repository: %s", repoPath)
	}
	gitdir, err := runGit(repoPath, "rev-parse", "--absolute-git-dir")
	if err != nil {
		return nil, fmt.Errorf("locate git directory: %w", err)
	}

	return &CLIBackend{workdir: workdir, gitdir: gitdir}, nil
}

func runGit(dir string, args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	out, err := cmd.Output()
	if err != nil {
		if ee, ok := err.(*exec.ExitError); ok && len(ee.Stderr) > 0 {
			return "", fmt.Errorf("git %s: %w: %s", args[0], err, strings.TrimSpace(string(ee.Stderr)))
		}
		return "", fmt.Errorf("git %s: %w", args[0], err)
	}
	return strings.TrimSpace(string(out)), nil
}

func (b *CLIBackend) run(ctx context.Context, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = b.workdir
	out, err := cmd.Output()
	if err != nil {
		if ee, ok := err.(*exec.ExitError); ok && len(ee.Stderr) > 0 {
			return "", fmt.Errorf("git %s: %w: %s", args[0], err, strings.TrimSpace(string(ee.Stderr)))
		}
		return "", fmt.Errorf("git %s: %w", args[0], err)
	}
	return strings.TrimSpace(string(out)), nil
}

func (b *CLIBackend) BranchTip(ctx context.Context) (Commit, error) {
	out, err := b.run(ctx, "rev-list", "--max-count=1", "--no-commit-header", "--format=%H%x00%s", "HEAD")
	if err != nil {
		return Commit{}, fmt.Errorf("resolve HEAD: %w", err)
	}
	hash, subject, ok := strings.Cut(out, "\x00")
	if !ok {
		return Commit{}, fmt.Errorf("unexpected rev-list output: %q", out)
	}
	return Commit{Hash: hash, Subject: subject}, nil
}

func (b *CLIBackend) AncestryChain(ctx context.Context, anchor, tip string, opts ChainOptions) ([]Commit, error) {
	var anchorHash string
	if anchor != "" {
		h, err := b.run(ctx, "rev-parse", "--verify", "--quiet", "--end-of-options", anchor+"^{commit}")
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidAnchor, anchor)
		}
		anchorHash = h
	}

	chain, touched, err := b.logChain(ctx, tip, len(opts.Paths) > 0)
	if err != nil {
		return nil, err
	}

	if anchorHash != "" {
		idx := -1
		for i, c := range chain {
			if c.Hash == anchorHash {
				idx = i
				break
			}
		}
		if idx == -1 {
			return nil, fmt.Errorf("%w: %q", ErrDisjointHistory, anchor)
		}
		chain = chain[idx:]
	}

	return filterChain(chain, touched, opts.Paths), nil
}

// logChain reads the first-parent history of tip, oldest first. With
// withNames it also collects the file paths each commit touches.
//
// Each commit record is prefixed by 0x1e (record separator); the header
// holds NUL-separated hash and subject, and with --name-only the touched
// paths follow one per line.
func (b *CLIBackend) logChain(ctx context.Context, tip string, withNames bool) ([]Commit, map[string][]string, error) {
	args := []string{
		"log",
		"--no-color",
		"--first-parent",
		"--reverse",
		"--format=%x1e%H%x00%s",
	}
	if withNames {
		args = append(args, "--name-only")
	}
	args = append(args, tip)

	out, err := b.run(ctx, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("read history: %w", err)
	}

	var chain []Commit
	touched := make(map[string][]string)

	for _, record := range strings.Split(out, "\x1e") {
		record = strings.TrimSpace(record)
		if record == "" {
			continue
		}
		header, body, _ := strings.Cut(record, "\n")
		hash, subject, ok := strings.Cut(header, "\x00")
		if !ok {
			return nil, nil, fmt.Errorf("unexpected git log header: %q", header)
		}
		chain = append(chain, Commit{Hash: hash, Subject: subject})

		if withNames {
			var paths []string
			for _, line := range strings.Split(body, "\n") {
				if line = strings.TrimSpace(line); line != "" {
					paths = append(paths, line)
				}
			}
			touched[hash] = paths
		}
	}

	return chain, touched, nil
}

func (b *CLIBackend) CheckedOut(ctx context.Context) (string, error) {
	out, err := b.run(ctx, "rev-parse", "--verify", "--quiet", "HEAD^{commit}")
	if err != nil {
		return "", fmt.Errorf("resolve HEAD: %w", err)
	}
	return out, nil
}

func (b *CLIBackend) Checkout(ctx context.Context, rev string) error {
	if _, err := b.run(ctx, "checkout", "--quiet", rev); err != nil {
		return fmt.Errorf("checkout %s: %w", rev, err)
	}
	return nil
}

func (b *CLIBackend) CurrentBranch(ctx context.Context) (string, error) {
	out, err := b.run(ctx, "symbolic-ref", "--short", "--quiet", "HEAD")
	if err != nil {
		// Detached HEAD.
		return "", nil
	}
	return out, nil
}

func (b *CLIBackend) IsClean(ctx context.Context) (bool, error) {
	out, err := b.run(ctx, "status", "--untracked-files=no", "--porcelain")
	if err != nil {
		return false, fmt.Errorf("read worktree status: %w", err)
	}
	return out == "", nil
}

func (b *CLIBackend) Stash(ctx context.Context) error {
	if _, err := b.run(ctx, "stash"); err != nil {
		return fmt.Errorf("stash changes: %w", err)
	}
	return nil
}

func (b *CLIBackend) GitDir() string {
	return b.gitdir
}

// Compile-time interface conformance check.
var _ Backend = (*CLIBackend)(nil)
