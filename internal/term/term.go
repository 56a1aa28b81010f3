// Package term provides color state and terminal detection.
//
// Colors are package-level values because multiple packages (logging,
// display) need them for output formatting. [Configure] resolves the color
// mode once during startup; when colors are disabled every Sprint call
// returns its input unchanged.
package term

import (
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/backmassage/bulkrename/internal/config"
)

// Shared styles.
var (
	Red     = color.New(color.FgHiRed, color.Bold)
	Green   = color.New(color.FgHiGreen, color.Bold)
	Yellow  = color.New(color.FgHiYellow, color.Bold)
	Blue    = color.New(color.FgHiBlue, color.Bold)
	Cyan    = color.New(color.FgHiCyan, color.Bold)
	Magenta = color.New(color.FgHiMagenta, color.Bold)
)

// Configure resolves the color mode and sets color.NoColor accordingly.
// ColorAuto keeps fatih/color's own detection, which honors NO_COLOR
// (https://no-color.org), TERM=dumb, and whether stdout is a TTY.
func Configure(mode config.ColorMode) {
	switch mode {
	case config.ColorAlways:
		color.NoColor = false
	case config.ColorNever:
		color.NoColor = true
	default: // ColorAuto
		color.NoColor = os.Getenv("NO_COLOR") != "" ||
			os.Getenv("TERM") == "dumb" ||
			!IsTerminal(os.Stdout)
	}
}

// Enabled reports whether colors are currently active.
func Enabled() bool { return !color.NoColor }

// IsTerminal reports whether f is attached to a TTY.
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
