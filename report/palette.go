// Package report renders sync results for terminals.
package report

import (
	"fmt"

	"github.com/fatih/color"
)

// Palette maps result categories to sprintf style renderers.
type Palette struct {
	Locale  func(format string, a ...any) string
	Added   func(format string, a ...any) string
	Removed func(format string, a ...any) string
	Skipped func(format string, a ...any) string
	Note    func(format string, a ...any) string
}

// ColorPalette renders with ANSI colors.
func ColorPalette() *Palette {
	return &Palette{
		Locale:  color.New(color.FgCyan, color.Bold).SprintfFunc(),
		Added:   color.New(color.FgGreen).SprintfFunc(),
		Removed: color.New(color.FgRed).SprintfFunc(),
		Skipped: color.New(color.FgYellow).SprintfFunc(),
		Note:    color.New(color.Faint).SprintfFunc(),
	}
}

// MonoPalette renders plain text, for pipes and dumb terminals.
func MonoPalette() *Palette {
	return &Palette{
		Locale:  fmt.Sprintf,
		Added:   fmt.Sprintf,
		Removed: fmt.Sprintf,
		Skipped: fmt.Sprintf,
		Note:    fmt.Sprintf,
	}
}
