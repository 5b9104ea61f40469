package git

import (
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/storage/filesystem"
)

// GoGitBackend implements Backend on top of go-git. It is the default
// engine and needs no git executable, except for stashing, which go-git
// does not implement.
type GoGitBackend struct {
	repo    *gogit.Repository
	workdir string
	gitdir  string
}

// NewGoGitBackend opens the repository at or above repoPath.
func NewGoGitBackend(repoPath string) (*GoGitBackend, error) {
	repo, err := gogit.PlainOpenWithOptions(repoPath, &gogit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("open repository %s: %w", repoPath, err)
	}
	wt, err := repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("open worktree: %w", err)
	}

	b := &GoGitBackend{repo: repo, workdir: wt.Filesystem.Root()}
	if st, ok := repo.Storer.(*filesystem.Storage); ok {
		b.gitdir = st.Filesystem().Root()
	} else {
		b.gitdir = filepath.Join(b.workdir, ".git")
	}
	return b, nil
}

func (b *GoGitBackend) BranchTip(_ context.Context) (Commit, error) {
	head, err := b.repo.Head()
	if err != nil {
		return Commit{}, fmt.Errorf("resolve HEAD: %w", err)
	}
	c, err := b.repo.CommitObject(head.Hash())
	if err != nil {
		return Commit{}, fmt.Errorf("read HEAD commit: %w", err)
	}
	return Commit{Hash: c.Hash.String(), Subject: firstLine(c.Message)}, nil
}

func (b *GoGitBackend) AncestryChain(ctx context.Context, anchor, tip string, opts ChainOptions) ([]Commit, error) {
	var anchorHash plumbing.Hash
	if anchor != "" {
		h, err := b.repo.ResolveRevision(plumbing.Revision(anchor))
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidAnchor, anchor)
		}
		anchorHash = *h
	}

	c, err := b.repo.CommitObject(plumbing.NewHash(tip))
	if err != nil {
		return nil, fmt.Errorf("read tip commit %s: %w", tip, err)
	}

	// Walk the first-parent chain from the tip back to the anchor
	// (or the root commit when no anchor was given).
	var reversed []*object.Commit
	found := anchor == ""
	for {
		reversed = append(reversed, c)
		if anchor != "" && c.Hash == anchorHash {
			found = true
			break
		}
		if c.NumParents() == 0 {
			break
		}
		if c, err = c.Parent(0); err != nil {
			return nil, fmt.Errorf("walk history: %w", err)
		}
	}
	if !found {
		return nil, fmt.Errorf("%w: %q", ErrDisjointHistory, anchor)
	}

	chain := make([]Commit, 0, len(reversed))
	for i := len(reversed) - 1; i >= 0; i-- {
		chain = append(chain, Commit{
			Hash:    reversed[i].Hash.String(),
			Subject: firstLine(reversed[i].Message),
		})
	}

	if len(opts.Paths) > 0 {
		touched, err := b.touchedPaths(ctx, reversed)
		if err != nil {
			return nil, err
		}
		chain = filterChain(chain, touched, opts.Paths)
	}

	return chain, nil
}

// touchedPaths maps each commit hash to the file paths its patch touches.
func (b *GoGitBackend) touchedPaths(ctx context.Context, commits []*object.Commit) (map[string][]string, error) {
	touched := make(map[string][]string, len(commits))
	for _, c := range commits {
		if c.NumParents() == 0 {
			continue
		}
		parent, err := c.Parent(0)
		if err != nil {
			return nil, fmt.Errorf("read parent of %s: %w", c.Hash, err)
		}
		patch, err := parent.PatchContext(ctx, c)
		if err != nil {
			return nil, fmt.Errorf("diff %s: %w", c.Hash, err)
		}
		var paths []string
		for _, fp := range patch.FilePatches() {
			from, to := fp.Files()
			if to != nil {
				paths = append(paths, to.Path())
			} else if from != nil {
				paths = append(paths, from.Path())
			}
		}
		touched[c.Hash.String()] = paths
	}
	return touched, nil
}

func (b *GoGitBackend) CheckedOut(_ context.Context) (string, error) {
	head, err := b.repo.Head()
	if err != nil {
		return "", fmt.Errorf("resolve HEAD: %w", err)
	}
	return head.Hash().String(), nil
}

func (b *GoGitBackend) Checkout(_ context.Context, rev string) error {
	wt, err := b.repo.Worktree()
	if err != nil {
		return fmt.Errorf("open worktree: %w", err)
	}

	// Prefer attaching to a branch when rev names one, so a later commit
	// lands on the branch instead of a detached HEAD.
	branchRef := plumbing.NewBranchReferenceName(rev)
	if _, err := b.repo.Reference(branchRef, true); err == nil {
		if err := wt.Checkout(&gogit.CheckoutOptions{Branch: branchRef}); err != nil {
			return fmt.Errorf("checkout %s: %w", rev, err)
		}
		return nil
	}

	h, err := b.repo.ResolveRevision(plumbing.Revision(rev))
	if err != nil {
		return fmt.Errorf("resolve %s: %w", rev, err)
	}
	if err := wt.Checkout(&gogit.CheckoutOptions{Hash: *h}); err != nil {
		return fmt.Errorf("checkout %s: %w", rev, err)
	}
	return nil
}

func (b *GoGitBackend) CurrentBranch(_ context.Context) (string, error) {
	head, err := b.repo.Head()
	if err != nil {
		return "", fmt.Errorf("resolve HEAD: %w", err)
	}
	if !head.Name().IsBranch() {
		return "", nil
	}
	return head.Name().Short(), nil
}

func (b *GoGitBackend) IsClean(_ context.Context) (bool, error) {
	wt, err := b.repo.Worktree()
	if err != nil {
		return false, fmt.Errorf("open worktree: %w", err)
	}
	status, err := wt.Status()
	if err != nil {
		return false, fmt.Errorf("read worktree status: %w", err)
	}
	// Untracked files never block a checkout, so they don't count.
	for _, s := range status {
		if s.Worktree == gogit.Untracked {
			continue
		}
		if s.Worktree != gogit.Unmodified || s.Staging != gogit.Unmodified {
			return false, nil
		}
	}
	return true, nil
}

// Stash shells out to the git executable: go-git has no stash support.
func (b *GoGitBackend) Stash(ctx context.Context) error {
	out, err := exec.CommandContext(ctx, "git", "-C", b.workdir, "stash").CombinedOutput()
	if err != nil {
		return fmt.Errorf("git stash failed: %w: %s", err, strings.TrimSpace(string(out)))
	}
	return nil
}

func (b *GoGitBackend) GitDir() string {
	return b.gitdir
}

// Compile-time interface conformance check.
var _ Backend = (*GoGitBackend)(nil)
