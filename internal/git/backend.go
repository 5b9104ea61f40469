package git

import (
	"context"
	"errors"
)

// Resolution errors reported by backends.
var (
	// ErrInvalidAnchor indicates the anchor expression does not resolve to a commit.
	ErrInvalidAnchor = errors.New("anchor does not resolve to a commit")

	// ErrDisjointHistory indicates the anchor is not on the first-parent
	// ancestry of the branch tip, so no linear slide chain exists.
	ErrDisjointHistory = errors.New("anchor is not an ancestor of the branch tip")
)

// Backend defines the version-control operations the navigation engine needs.
// This abstraction keeps the engine testable with a fake backend and allows
// alternative implementations (go-git or the git executable) without changing
// callers.
type Backend interface {
	// BranchTip returns the commit currently at HEAD.
	BranchTip(ctx context.Context) (Commit, error)

	// AncestryChain returns the first-parent chain from anchor to tip,
	// oldest first, inclusive of both endpoints. An empty anchor means the
	// root commit, i.e. the full first-parent history of tip.
	AncestryChain(ctx context.Context, anchor, tip string, opts ChainOptions) ([]Commit, error)

	// CheckedOut returns the hash of the currently checked-out commit.
	CheckedOut(ctx context.Context) (string, error)

	// Checkout checks out the given revision (commit hash or branch name).
	Checkout(ctx context.Context, rev string) error

	// CurrentBranch returns the checked-out branch name, or "" when HEAD
	// is detached.
	CurrentBranch(ctx context.Context) (string, error)

	// IsClean reports whether the working tree has no uncommitted changes
	// to tracked files.
	IsClean(ctx context.Context) (bool, error)

	// Stash stashes uncommitted changes.
	Stash(ctx context.Context) error

	// GitDir returns the absolute path of the repository's git directory.
	GitDir() string
}
