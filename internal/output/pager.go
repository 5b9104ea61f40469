package output

import (
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/mattn/go-isatty"
)

// Page pipes content through the user's pager when stdout is a terminal,
// and prints it directly otherwise. Pager failures fall back to printing.
func Page(content string) error {
	fd := os.Stdout.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		_, err := io.WriteString(os.Stdout, content)
		return err
	}

	pager := strings.Fields(os.Getenv("PAGER"))
	if len(pager) == 0 {
		// -F quits immediately when the content fits one screen.
		pager = []string{"less", "-FRX"}
	}

	cmd := exec.Command(pager[0], pager[1:]...)
	cmd.Stdin = strings.NewReader(content)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		_, werr := io.WriteString(os.Stdout, content)
		return werr
	}
	return nil
}
