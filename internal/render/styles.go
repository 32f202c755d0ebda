package render

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

type Styles struct {
	Title lipgloss.Style
	Label lipgloss.Style
	Cell  lipgloss.Style
	Block lipgloss.Style
	Empty lipgloss.Style
	Dim   lipgloss.Style

	color bool
}

// NewStyles returns colored styles, or pass-through styles when color is off.
func NewStyles(colorEnabled bool) *Styles {
	if !colorEnabled {
		plain := lipgloss.NewStyle()
		return &Styles{Title: plain, Label: plain, Cell: plain, Block: plain, Empty: plain, Dim: plain}
	}
	base := lipgloss.NewStyle().TabWidth(lipgloss.NoTabConversion)
	return &Styles{
		Title: base.Bold(true),
		Label: base.Foreground(lipgloss.Color("12")).Bold(true),
		Cell:  base.Foreground(lipgloss.Color("15")),
		Block: base.Foreground(lipgloss.Color("0")).Background(lipgloss.Color("8")),
		Empty: base.Foreground(lipgloss.Color("8")),
		Dim:   base.Foreground(lipgloss.Color("8")).Italic(true),
		color: true,
	}
}

// IsColorEnabled resolves a --color mode ("auto", "always", "never") for w.
// Auto means color only on a terminal and only when NO_COLOR is unset.
func IsColorEnabled(mode string, w io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		if os.Getenv("NO_COLOR") != "" {
			return false
		}
		if f, ok := w.(*os.File); ok {
			return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		}
		return false
	}
}
