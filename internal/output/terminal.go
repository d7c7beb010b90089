package output

import (
	"os"

	"golang.org/x/term"
)

// IsTTY reports whether stdin and stdout are both interactive terminals.
func IsTTY() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}
