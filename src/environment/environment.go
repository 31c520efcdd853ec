package environment

import (
	"os"

	"github.com/mattn/go-isatty"
)

var interactiveOverride *bool

// ForceSetIsInteractive overrides the terminal check, used by the --force
// flag of the repl command and by tests.
func ForceSetIsInteractive(value bool) {
	interactiveOverride = &value
}

// ResetIsInteractive removes any override set with ForceSetIsInteractive.
func ResetIsInteractive() {
	interactiveOverride = nil
}

// IsInteractive returns true if expressions are typed by a user at a
// terminal, false when stdin is a pipe or a file.
func IsInteractive() bool {
	if interactiveOverride != nil {
		return *interactiveOverride
	}
	return IsTerminal(os.Stdin)
}

func IsTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
