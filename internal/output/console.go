package output

import (
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"

	"github.com/slidekit/git-slides/internal/nav"
)

// ConsoleWriter renders slide reports for a terminal: past slides faint,
// the current slide marked and its hash highlighted.
type ConsoleWriter struct {
	opts Options
}

func (w *ConsoleWriter) styles() (faint, yellow *color.Color) {
	faint = color.New(color.Faint)
	yellow = color.New(color.FgYellow)
	if w.opts.NoColor {
		faint.DisableColor()
		yellow.DisableColor()
	}
	return faint, yellow
}

// WriteStatus prints the current slide with a window of surrounding slides.
func (w *ConsoleWriter) WriteStatus(out io.Writer, rep *nav.Report) error {
	sess := rep.Session
	n := sess.CurrentIndex
	from := max(n-w.opts.Before, 0)
	to := min(n+w.opts.After, sess.Len()-1)
	pad := len(strconv.Itoa(sess.Len()))
	faint, yellow := w.styles()

	if n-w.opts.Before < 0 {
		fmt.Fprintf(out, "  %s\n", faint.Sprint("(Start)"))
	}

	for i := from; i <= to; i++ {
		slide := sess.Slides[i]

		marker := "  "
		if i == n {
			marker = "* "
		}

		if i < n {
			fmt.Fprintf(out, "%s%s\n", marker, faint.Sprintf("%*d/%d %s %s",
				pad, i+1, sess.Len(), slide.ShortHash(), slide.Subject))
		} else {
			fmt.Fprintf(out, "%s%*d/%d %s %s\n", marker,
				pad, i+1, sess.Len(), yellow.Sprint(slide.ShortHash()), slide.Subject)
		}
	}

	if n+w.opts.After > sess.Len()-1 {
		fmt.Fprintf(out, "  %s\n", faint.Sprint("(End)"))
	}

	if !rep.InSync {
		fmt.Fprintf(out, "\nnote: the working tree is not on slide %d; run 'git-slides goto %d' to re-sync.\n",
			n+1, n+1)
	}

	return nil
}

// WriteList prints every slide with the current one marked.
func (w *ConsoleWriter) WriteList(out io.Writer, rep *nav.Report) error {
	sess := rep.Session
	pad := len(strconv.Itoa(sess.Len()))
	_, yellow := w.styles()

	for i, slide := range sess.Slides {
		marker := "  "
		if i == sess.CurrentIndex {
			marker = "* "
		}
		fmt.Fprintf(out, "%s%*d/%d %s %s\n", marker,
			pad, i+1, sess.Len(), yellow.Sprint(slide.ShortHash()), slide.Subject)
	}

	return nil
}
