// Package style holds the lipgloss styles of patc output.
package style

import (
	"os"
	"regexp"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Palette
var (
	HeadingColor = lipgloss.AdaptiveColor{Light: "#1F4E79", Dark: "#7FB2E5"}
	OKColor      = lipgloss.AdaptiveColor{Light: "#2E7D32", Dark: "#81C784"}
	ErrorColor   = lipgloss.AdaptiveColor{Light: "#C62828", Dark: "#EF9A9A"}
	WarningColor = lipgloss.AdaptiveColor{Light: "#E65100", Dark: "#FFB74D"}
	MutedColor   = lipgloss.AdaptiveColor{Light: "#757575", Dark: "#9E9E9E"}
	AccentColor  = lipgloss.AdaptiveColor{Light: "#6A1B9A", Dark: "#CE93D8"}
)

// Base styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(HeadingColor).
			Bold(true)

	OKStyle = lipgloss.NewStyle().
		Foreground(OKColor).
		Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(WarningColor)

	MutedStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	ConstructorStyle = lipgloss.NewStyle().
				Foreground(AccentColor)
)

// ColorEnabled resolves a colour mode ("auto", "always", "never") for f.
// Auto colours only terminals.
func ColorEnabled(mode string, f *os.File) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	if f == nil {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Printer applies styles when colour is enabled and returns text unchanged
// otherwise, so piped output stays byte-identical to the plain renderings.
type Printer struct {
	enabled bool
}

// NewPrinter returns a Printer.
func NewPrinter(enabled bool) Printer { return Printer{enabled: enabled} }

// Enabled reports whether styles are applied.
func (p Printer) Enabled() bool { return p.enabled }

func (p Printer) apply(s lipgloss.Style, text string) string {
	if !p.enabled {
		return text
	}

	return s.Render(text)
}

// Title styles a heading.
func (p Printer) Title(text string) string { return p.apply(TitleStyle, text) }

// OK styles a success verdict.
func (p Printer) OK(text string) string { return p.apply(OKStyle, text) }

// Error styles a failure verdict.
func (p Printer) Error(text string) string { return p.apply(ErrorStyle, text) }

// Warning styles a warning.
func (p Printer) Warning(text string) string { return p.apply(WarningStyle, text) }

// Muted styles secondary text.
func (p Printer) Muted(text string) string { return p.apply(MutedStyle, text) }

var (
	leafToken = regexp.MustCompile(`Leaf\(-?\d+\)`)
	failToken = regexp.MustCompile(`\bFail\b`)
	conToken  = regexp.MustCompile(`[A-Za-z][A-Za-z0-9_]*/\d+`)
)

// Tree highlights a rendered decision tree: leaves, Fail and case labels.
func (p Printer) Tree(text string) string {
	if !p.enabled {
		return text
	}
	text = conToken.ReplaceAllStringFunc(text, func(s string) string { return ConstructorStyle.Render(s) })
	text = leafToken.ReplaceAllStringFunc(text, func(s string) string { return OKStyle.Render(s) })

	return failToken.ReplaceAllStringFunc(text, func(s string) string { return ErrorStyle.Render(s) })
}
