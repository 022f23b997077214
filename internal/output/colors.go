package output

import (
	"os"
	"sync"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

var (
	profileOnce sync.Once
	profile     termenv.Profile
)

// colorProfile returns the terminal color profile, downgrading to Ascii
// when stdout is not a TTY so piped output stays clean.
func colorProfile() termenv.Profile {
	profileOnce.Do(func() {
		if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
			profile = termenv.Ascii
			return
		}
		profile = termenv.ColorProfile()
	})
	return profile
}

// ColorBranchName styles a branch name for display, highlighting the
// current branch.
func ColorBranchName(name string, current bool) string {
	p := colorProfile()
	if p == termenv.Ascii {
		return name
	}
	s := termenv.String(name)
	if current {
		return s.Foreground(p.Color("2")).Bold().String()
	}
	return s.Foreground(p.Color("6")).String()
}

// Emphasize styles auxiliary text such as menu headers.
func Emphasize(text string) string {
	if colorProfile() == termenv.Ascii {
		return text
	}
	return termenv.String(text).Bold().String()
}
