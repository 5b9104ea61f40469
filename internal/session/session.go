// Package session defines the persisted presentation state and the
// resolver that builds the ordered slide chain for a new presentation.
package session

import (
	"fmt"
	"time"
)

// Slide is one commit in the presentation sequence. The hash is its
// identity; the subject is display-only.
type Slide struct {
	Hash    string `json:"hash"`
	Subject string `json:"subject"`
}

// ShortHash returns the abbreviated commit hash used for display.
func (s Slide) ShortHash() string {
	if len(s.Hash) < 7 {
		return s.Hash
	}
	return s.Hash[:7]
}

// Session is the persisted state of one presentation. Slides are ordered
// oldest first with the branch tip last and never change after Resolve;
// CurrentIndex is the only mutable field.
type Session struct {
	// Anchor is the expression given to start, kept for display only.
	Anchor string `json:"anchor"`

	// InitialBranch is the branch checked out when the presentation
	// started, or "" when it started on a detached HEAD. stop returns here.
	InitialBranch string `json:"initial_branch,omitempty"`

	StartedAt    time.Time `json:"started_at"`
	Slides       []Slide   `json:"slides"`
	CurrentIndex int       `json:"current_index"`
}

// Len returns the number of slides.
func (s *Session) Len() int {
	return len(s.Slides)
}

// Current returns the slide at the current index.
func (s *Session) Current() Slide {
	return s.Slides[s.CurrentIndex]
}

// ValidIndex reports whether i is a valid slide index.
func (s *Session) ValidIndex(i int) bool {
	return i >= 0 && i < len(s.Slides)
}

// Validate guards against corrupt or hand-edited session records.
func (s *Session) Validate() error {
	if len(s.Slides) == 0 {
		return fmt.Errorf("session has no slides")
	}
	if !s.ValidIndex(s.CurrentIndex) {
		return fmt.Errorf("current index %d out of range [0, %d)", s.CurrentIndex, len(s.Slides))
	}
	for i, slide := range s.Slides {
		if slide.Hash == "" {
			return fmt.Errorf("slide %d has no commit hash", i+1)
		}
	}
	return nil
}
