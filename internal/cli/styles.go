// SPDX-License-Identifier: EPL-2.0

// Package cli holds the terminal presentation of the zenify command.
package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Color palette
var (
	primaryColor = lipgloss.Color("#5F87AF") // dusk blue
	accentColor  = lipgloss.Color("#87AF87") // sage
	errorColor   = lipgloss.Color("#AF5F5F")
	mutedColor   = lipgloss.Color("#888888")
	textColor    = lipgloss.Color("#FFFFFF")
)

// Styles
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			MarginBottom(1)

	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(errorColor)

	SuccessStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accentColor)

	KeyStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	ValueStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(textColor)
)

// Summary is what PrintSummary shows after a successful run.
type Summary struct {
	Input      string
	Output     string
	Format     string
	SampleRate int
	Duration   float64
	Bytes      int64
	Seed       uint64
}

// PrintVersion prints version information
func PrintVersion(w io.Writer, version string) {
	fmt.Fprintln(w, TitleStyle.Render("Zenify"))
	fmt.Fprintf(w, "%s %s\n", KeyStyle.Render("Version:"), ValueStyle.Render(version))
	fmt.Fprintln(w)
}

// PrintError prints an error message
func PrintError(w io.Writer, message string) {
	fmt.Fprintf(w, "%s %s\n", ErrorStyle.Render("Error:"), message)
}

// PrintSummary prints one line per property of a finished run.
func PrintSummary(w io.Writer, s Summary) {
	fmt.Fprintln(w, SuccessStyle.Render("Done"))
	row := func(key, value string) {
		fmt.Fprintf(w, "  %s %s\n", KeyStyle.Render(fmt.Sprintf("%-12s", key+":")), ValueStyle.Render(value))
	}
	row("Input", s.Input)
	row("Output", s.Output)
	row("Format", s.Format)
	row("Sample rate", fmt.Sprintf("%d Hz", s.SampleRate))
	row("Duration", fmt.Sprintf("%.2f s", s.Duration))
	row("Size", formatBytes(s.Bytes))
	row("Seed", fmt.Sprintf("%d", s.Seed))
}

func formatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
