package nav

import "errors"

// Navigation error kinds. All are terminal for the invocation; the CLI
// surfaces them with the failing command and exits non-zero.
var (
	// ErrNoActiveSession indicates a navigation command ran before start.
	ErrNoActiveSession = errors.New("no active presentation (run 'git-slides start' first)")

	// ErrOutOfRange indicates a goto target outside [1, len]. The session
	// is left untouched.
	ErrOutOfRange = errors.New("slide number out of range")

	// ErrCheckoutFailed indicates the backend could not check out the
	// target commit. The persisted index is already advanced; status
	// surfaces the divergence.
	ErrCheckoutFailed = errors.New("checkout failed")

	// ErrPersistenceFailed indicates the session record could not be read
	// or written.
	ErrPersistenceFailed = errors.New("cannot persist session")

	// ErrDirtyWorktree indicates start refused to run over uncommitted
	// changes.
	ErrDirtyWorktree = errors.New("working tree contains uncommitted changes")
)
