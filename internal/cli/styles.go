package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/katalvlaran/recurse/internal/config"
)

// outputStyles renders headers, results and errors. The plain variant
// returns text unchanged, for pipes and tests.
type outputStyles struct {
	plain  bool
	title  lipgloss.Style
	label  lipgloss.Style
	result lipgloss.Style
	err    lipgloss.Style
}

func plainStyles() outputStyles {
	return outputStyles{plain: true}
}

func newStyles(w io.Writer, mode string) outputStyles {
	switch mode {
	case config.ColorNever:
		return plainStyles()
	case config.ColorAuto:
		f, ok := w.(*os.File)
		if !ok || !term.IsTerminal(int(f.Fd())) {
			return plainStyles()
		}
	}

	return outputStyles{
		title:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205")),
		label:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		result: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42")),
		err:    lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	}
}

func (s outputStyles) render(st lipgloss.Style, text string) string {
	if s.plain {
		return text
	}

	return st.Render(text)
}

func (s outputStyles) Title(text string) string { return s.render(s.title, text) }
func (s outputStyles) Label(text string) string { return s.render(s.label, text) }
func (s outputStyles) Result(text string) string { return s.render(s.result, text) }
func (s outputStyles) Error(text string) string { return s.render(s.err, text) }
