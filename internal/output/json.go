package output

import (
	"encoding/json"
	"io"

	"github.com/slidekit/git-slides/internal/nav"
	"github.com/slidekit/git-slides/internal/session"
)

// JSONWriter renders reports as indented JSON for scripting.
type JSONWriter struct{}

type statusPayload struct {
	Anchor  string `json:"anchor,omitempty"`
	Slide   int    `json:"slide"` // 1-based
	Total   int    `json:"total"`
	Hash    string `json:"hash"`
	Subject string `json:"subject"`
	InSync  bool   `json:"in_sync"`
	AtStart bool   `json:"at_start,omitempty"`
	AtEnd   bool   `json:"at_end,omitempty"`
}

func (w *JSONWriter) WriteStatus(out io.Writer, rep *nav.Report) error {
	sess := rep.Session
	current := sess.Current()

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(statusPayload{
		Anchor:  sess.Anchor,
		Slide:   sess.CurrentIndex + 1,
		Total:   sess.Len(),
		Hash:    current.Hash,
		Subject: current.Subject,
		InSync:  rep.InSync,
		AtStart: rep.AtStart,
		AtEnd:   rep.AtEnd,
	})
}

type listPayload struct {
	Anchor string          `json:"anchor,omitempty"`
	Slide  int             `json:"slide"` // 1-based
	Total  int             `json:"total"`
	Slides []session.Slide `json:"slides"`
}

func (w *JSONWriter) WriteList(out io.Writer, rep *nav.Report) error {
	sess := rep.Session

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(listPayload{
		Anchor: sess.Anchor,
		Slide:  sess.CurrentIndex + 1,
		Total:  sess.Len(),
		Slides: sess.Slides,
	})
}
