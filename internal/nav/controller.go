// Package nav owns the navigation semantics: a small deterministic state
// machine over the persisted slide index. Every mutation persists the new
// index before requesting the checkout, so the record always reflects
// intent and status can detect a working tree left behind by a failed
// checkout.
package nav

import (
	"context"
	"fmt"

	"github.com/slidekit/git-slides/internal/git"
	"github.com/slidekit/git-slides/internal/session"
)

// SessionStore is the persistence capability the controller needs.
type SessionStore interface {
	// Load returns the persisted session, or (nil, nil) when absent.
	Load() (*session.Session, error)
	Save(*session.Session) error
	Clear() error
}

// Options configures controller behavior.
type Options struct {
	// StashBeforeCheckout stashes uncommitted changes before navigating
	// instead of letting the checkout fail.
	StashBeforeCheckout bool
}

// Controller executes navigation commands against the persisted session.
type Controller struct {
	backend  git.Backend
	resolver *session.Resolver
	store    SessionStore
	stash    bool
}

// NewController wires a controller over the given backend and store.
func NewController(backend git.Backend, store SessionStore, opts Options) *Controller {
	return &Controller{
		backend:  backend,
		resolver: session.NewResolver(backend),
		store:    store,
		stash:    opts.StashBeforeCheckout,
	}
}

// Report describes the outcome of a navigation command.
type Report struct {
	Session *session.Session

	// Moved reports whether the current index changed.
	Moved bool
	// AtStart and AtEnd report that the requested step was clamped at a
	// boundary. Boundary hits are successful no-ops, not errors.
	AtStart bool
	AtEnd   bool

	// Stashed reports that uncommitted changes were stashed before the
	// checkout.
	Stashed bool

	// InSync reports whether the working tree matches the current slide.
	InSync bool

	// Restored names the branch or commit stop returned to.
	Restored string
}

// StartOptions configures Start.
type StartOptions struct {
	// Paths limits slides to commits touching a matching path.
	Paths []string
	// AllowDirty starts the presentation over uncommitted changes.
	AllowDirty bool
}

// Start begins a new presentation from anchor to the current branch tip,
// overwriting any prior session, and checks out the resolved slide.
func (c *Controller) Start(ctx context.Context, anchor string, opts StartOptions) (*Report, error) {
	if !opts.AllowDirty {
		clean, err := c.backend.IsClean(ctx)
		if err != nil {
			return nil, fmt.Errorf("inspect working tree: %w", err)
		}
		if !clean {
			return nil, ErrDirtyWorktree
		}
	}

	sess, err := c.resolver.Resolve(ctx, anchor, session.ResolveOptions{Paths: opts.Paths})
	if err != nil {
		return nil, err
	}

	if err := c.store.Save(sess); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistenceFailed, err)
	}

	stashed, err := c.checkout(ctx, sess.Current().Hash)
	if err != nil {
		return nil, err
	}

	return &Report{Session: sess, Moved: true, Stashed: stashed, InSync: true}, nil
}

// Next advances n slides, clamped at the last slide. Hitting the end is a
// successful no-op.
func (c *Controller) Next(ctx context.Context, n int) (*Report, error) {
	if n < 1 {
		return nil, fmt.Errorf("step count must be positive, got %d", n)
	}
	sess, err := c.load()
	if err != nil {
		return nil, err
	}

	requested := sess.CurrentIndex + n
	target := min(requested, sess.Len()-1)
	atEnd := requested > sess.Len()-1

	if target == sess.CurrentIndex {
		return &Report{Session: sess, AtEnd: atEnd, InSync: true}, nil
	}

	rep, err := c.moveTo(ctx, sess, target)
	if err != nil {
		return nil, err
	}
	rep.AtEnd = atEnd
	return rep, nil
}

// Prev goes back n slides, clamped at the first slide. Hitting the start
// is a successful no-op.
func (c *Controller) Prev(ctx context.Context, n int) (*Report, error) {
	if n < 1 {
		return nil, fmt.Errorf("step count must be positive, got %d", n)
	}
	sess, err := c.load()
	if err != nil {
		return nil, err
	}

	requested := sess.CurrentIndex - n
	target := max(requested, 0)
	atStart := requested < 0

	if target == sess.CurrentIndex {
		return &Report{Session: sess, AtStart: atStart, InSync: true}, nil
	}

	rep, err := c.moveTo(ctx, sess, target)
	if err != nil {
		return nil, err
	}
	rep.AtStart = atStart
	return rep, nil
}

// Goto jumps to the 1-based slide n. An out-of-range n fails without
// touching the session. The checkout runs even when n is the current
// slide, restoring a working tree the presenter wandered away from.
func (c *Controller) Goto(ctx context.Context, n int) (*Report, error) {
	sess, err := c.load()
	if err != nil {
		return nil, err
	}

	if n < 1 || n > sess.Len() {
		return nil, fmt.Errorf("%w: slide %d does not exist (valid range 1..%d)", ErrOutOfRange, n, sess.Len())
	}

	return c.moveTo(ctx, sess, n-1)
}

// Status reports the current position without mutating anything and
// without checking out.
func (c *Controller) Status(ctx context.Context) (*Report, error) {
	sess, err := c.load()
	if err != nil {
		return nil, err
	}

	inSync := false
	if head, err := c.backend.CheckedOut(ctx); err == nil {
		inSync = head == sess.Current().Hash
	}

	return &Report{Session: sess, InSync: inSync}, nil
}

// Stop ends the presentation: the working tree returns to the branch the
// presentation started from (or its final slide when started detached),
// and the session record is deleted.
func (c *Controller) Stop(ctx context.Context) (*Report, error) {
	sess, err := c.load()
	if err != nil {
		return nil, err
	}

	target := sess.InitialBranch
	if target == "" {
		// Started on a detached HEAD; return to the presentation head.
		target = sess.Slides[sess.Len()-1].Hash
	}

	stashed, err := c.checkout(ctx, target)
	if err != nil {
		return nil, err
	}

	if err := c.store.Clear(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistenceFailed, err)
	}

	return &Report{Session: sess, Stashed: stashed, Restored: target}, nil
}

// load reads and validates the persisted session.
func (c *Controller) load() (*session.Session, error) {
	sess, err := c.store.Load()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistenceFailed, err)
	}
	if sess == nil {
		return nil, ErrNoActiveSession
	}
	if err := sess.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistenceFailed, err)
	}
	return sess, nil
}

// moveTo persists the new index, then checks out the slide. Persistence
// strictly precedes the checkout.
func (c *Controller) moveTo(ctx context.Context, sess *session.Session, target int) (*Report, error) {
	moved := target != sess.CurrentIndex
	sess.CurrentIndex = target

	if err := c.store.Save(sess); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistenceFailed, err)
	}

	stashed, err := c.checkout(ctx, sess.Current().Hash)
	if err != nil {
		return nil, err
	}

	return &Report{Session: sess, Moved: moved, Stashed: stashed, InSync: true}, nil
}

// checkout stashes a dirty working tree when configured to, then checks
// out the revision.
func (c *Controller) checkout(ctx context.Context, rev string) (stashed bool, err error) {
	if c.stash {
		clean, err := c.backend.IsClean(ctx)
		if err != nil {
			return false, fmt.Errorf("%w: %v", ErrCheckoutFailed, err)
		}
		if !clean {
			if err := c.backend.Stash(ctx); err != nil {
				return false, fmt.Errorf("%w: %v", ErrCheckoutFailed, err)
			}
			stashed = true
		}
	}

	if err := c.backend.Checkout(ctx, rev); err != nil {
		return stashed, fmt.Errorf("%w: %v", ErrCheckoutFailed, err)
	}
	return stashed, nil
}
