package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// ColorMode selects when ANSI styling is emitted.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// ParseColorMode accepts auto, always, or never, ignoring case.
func ParseColorMode(s string) (ColorMode, error) {
	switch m := ColorMode(strings.ToLower(strings.TrimSpace(s))); m {
	case ColorAuto, ColorAlways, ColorNever:
		return m, nil
	default:
		return "", fmt.Errorf("invalid color mode %q (want auto, always, or never)", s)
	}
}

type fdWriter interface {
	Fd() uintptr
}

// newRenderer builds a lipgloss renderer for w. Auto mode styles only real
// terminals and honors NO_COLOR through termenv.
func newRenderer(w io.Writer, mode ColorMode) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(w)
	switch mode {
	case ColorAlways:
		r.SetColorProfile(termenv.ANSI)
	case ColorNever:
		r.SetColorProfile(termenv.Ascii)
	default:
		if !isTerminal(w) || termenv.EnvNoColor() {
			r.SetColorProfile(termenv.Ascii)
		}
	}
	return r
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(fdWriter)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// palette holds the styles used by the text report, mirroring the
// terminal colors the dashboard runners have always printed.
type palette struct {
	bold    lipgloss.Style
	pass    lipgloss.Style
	fail    lipgloss.Style
	suite   lipgloss.Style
	banner  lipgloss.Style
	note    lipgloss.Style
	okBold  lipgloss.Style
	errBold lipgloss.Style
}

func newPalette(r *lipgloss.Renderer) palette {
	green := lipgloss.Color("2")
	red := lipgloss.Color("1")
	return palette{
		bold:    r.NewStyle().Bold(true),
		pass:    r.NewStyle().Foreground(green),
		fail:    r.NewStyle().Foreground(red),
		suite:   r.NewStyle().Foreground(lipgloss.Color("4")),
		banner:  r.NewStyle().Foreground(lipgloss.Color("6")),
		note:    r.NewStyle().Foreground(lipgloss.Color("3")),
		okBold:  r.NewStyle().Foreground(green).Bold(true),
		errBold: r.NewStyle().Foreground(red).Bold(true),
	}
}
