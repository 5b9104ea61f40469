package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/slidekit/git-slides/internal/git"
)

// ErrEmptyRange indicates the resolved chain contains no commits. The
// chain includes the anchor itself, so this only fires on a broken backend.
var ErrEmptyRange = errors.New("resolved slide range is empty")

// Resolver turns a user-supplied starting point into the fixed, ordered
// slide list for a presentation.
type Resolver struct {
	backend git.Backend
}

// NewResolver creates a resolver over the given backend.
func NewResolver(backend git.Backend) *Resolver {
	return &Resolver{backend: backend}
}

// ResolveOptions configures chain resolution.
type ResolveOptions struct {
	// Paths limits interior slides to commits touching a matching path.
	Paths []string
}

// Resolve builds a new session covering the chain from anchor (inclusive)
// to the current branch tip (inclusive), oldest first. An empty anchor
// selects the full first-parent history of the tip.
//
// The initial index selects the slide matching the current checkout when
// it appears in the chain, and slide 0 otherwise. Resolve performs no
// checkout; that is the navigation controller's job.
func (r *Resolver) Resolve(ctx context.Context, anchor string, opts ResolveOptions) (*Session, error) {
	tip, err := r.backend.BranchTip(ctx)
	if err != nil {
		return nil, fmt.Errorf("resolve branch tip: %w", err)
	}

	chain, err := r.backend.AncestryChain(ctx, anchor, tip.Hash, git.ChainOptions{Paths: opts.Paths})
	if err != nil {
		return nil, err
	}
	if len(chain) == 0 {
		return nil, ErrEmptyRange
	}

	slides := make([]Slide, len(chain))
	for i, c := range chain {
		slides[i] = Slide{Hash: c.Hash, Subject: c.Subject}
	}

	index := 0
	if head, err := r.backend.CheckedOut(ctx); err == nil {
		for i, slide := range slides {
			if slide.Hash == head {
				index = i
				break
			}
		}
	}

	// Branch name recorded only for stop; a resolution failure here must
	// not fail the start.
	branch, _ := r.backend.CurrentBranch(ctx)

	return &Session{
		Anchor:        anchor,
		InitialBranch: branch,
		StartedAt:     time.Now(),
		Slides:        slides,
		CurrentIndex:  index,
	}, nil
}
