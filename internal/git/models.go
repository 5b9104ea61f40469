package git

import "strings"

// Commit represents minimal information about a Git commit.
type Commit struct {
	Hash    string
	Subject string
}

// ShortHash returns the abbreviated commit hash used for display.
func (c Commit) ShortHash() string {
	if len(c.Hash) < 7 {
		return c.Hash
	}
	return c.Hash[:7]
}

// ChainOptions configures ancestry chain resolution.
type ChainOptions struct {
	// Paths holds glob patterns; when non-empty, interior commits that touch
	// no matching path are dropped from the chain. The chain endpoints are
	// always kept.
	Paths []string
}

// firstLine extracts the subject from a full commit message.
func firstLine(message string) string {
	if idx := strings.IndexByte(message, '\n'); idx != -1 {
		message = message[:idx]
	}
	return strings.TrimSpace(message)
}
