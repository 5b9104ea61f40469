// Package output renders navigation reports for the terminal or as JSON.
package output

import (
	"io"

	"github.com/slidekit/git-slides/internal/nav"
)

// Format identifies the output format.
type Format int

const (
	FormatConsole Format = iota
	FormatJSON
)

// Options configures report rendering.
type Options struct {
	// Before and After bound the context window around the current slide
	// in status output.
	Before int
	After  int
	// NoColor disables ANSI styling.
	NoColor bool
}

// ReportWriter renders status and list reports.
type ReportWriter interface {
	WriteStatus(w io.Writer, rep *nav.Report) error
	WriteList(w io.Writer, rep *nav.Report) error
}

// NewReportWriter returns the writer for the requested format.
func NewReportWriter(format Format, opts Options) ReportWriter {
	switch format {
	case FormatJSON:
		return &JSONWriter{}
	default:
		return &ConsoleWriter{opts: opts}
	}
}
