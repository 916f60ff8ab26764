// Package pretty provides Lipgloss-based styled output utilities.
package pretty

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Styles contains all styled renderers for CLI output.
type Styles struct {
	// Token kind styles
	Identifier lipgloss.Style
	Comment    lipgloss.Style
	Literal    lipgloss.Style
	Invalid    lipgloss.Style
	Operator   lipgloss.Style
	Separator  lipgloss.Style
	TagName    lipgloss.Style
	TagAttr    lipgloss.Style

	// Fold components
	FoldCode      lipgloss.Style
	FoldComment   lipgloss.Style
	FoldCollapsed lipgloss.Style
	FoldRange     lipgloss.Style

	// Page components
	PageHeader lipgloss.Style
	LineNumber lipgloss.Style

	// Table styles
	TableHeader    lipgloss.Style
	TableSeparator lipgloss.Style
	TableLegend    lipgloss.Style

	// Status styles
	Success lipgloss.Style
	Failure lipgloss.Style

	// Misc
	FilePath lipgloss.Style
	Dim      lipgloss.Style
	Bold     lipgloss.Style
}

// NewStyles creates a new Styles with the given color mode.
func NewStyles(colorEnabled bool) *Styles {
	if !colorEnabled {
		return newNoColorStyles()
	}
	return newColorStyles()
}

// newColorStyles creates styles with ANSI 256 colors.
func newColorStyles() *Styles {
	return &Styles{
		// Token kinds
		Identifier: lipgloss.NewStyle(),
		Comment:    lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Italic(true),
		Literal:    lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		Invalid:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Operator:   lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		Separator:  lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		TagName:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true),
		TagAttr:    lipgloss.NewStyle().Foreground(lipgloss.Color("13")),

		// Fold components
		FoldCode:      lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		FoldComment:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		FoldCollapsed: lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
		FoldRange:     lipgloss.NewStyle().Foreground(lipgloss.Color("8")),

		// Page components
		PageHeader: lipgloss.NewStyle().Bold(true),
		LineNumber: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),

		// Table styles
		TableHeader:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7")),
		TableSeparator: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		TableLegend:    lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Italic(true),

		// Status styles
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		Failure: lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),

		// Misc
		FilePath: lipgloss.NewStyle().Bold(true),
		Dim:      lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Bold:     lipgloss.NewStyle().Bold(true),
	}
}

// newNoColorStyles creates styles with no color formatting.
func newNoColorStyles() *Styles {
	plain := lipgloss.NewStyle()
	return &Styles{
		Identifier:     plain,
		Comment:        plain,
		Literal:        plain,
		Invalid:        plain,
		Operator:       plain,
		Separator:      plain,
		TagName:        plain,
		TagAttr:        plain,
		FoldCode:       plain,
		FoldComment:    plain,
		FoldCollapsed:  plain,
		FoldRange:      plain,
		PageHeader:     plain,
		LineNumber:     plain,
		TableHeader:    plain,
		TableSeparator: plain,
		TableLegend:    plain,
		Success:        plain,
		Failure:        plain,
		FilePath:       plain,
		Dim:            plain,
		Bold:           plain,
	}
}

// IsColorEnabled determines if color should be enabled based on mode and writer.
// Mode values: "auto" (default), "always", "never".
// In auto mode, color is enabled only if the writer is a TTY and NO_COLOR is not set.
func IsColorEnabled(mode string, writer io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default: // "auto"
		// Check NO_COLOR environment variable (https://no-color.org/)
		if os.Getenv("NO_COLOR") != "" {
			return false
		}
		// Check if output is a TTY
		if f, ok := writer.(*os.File); ok {
			return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		}
		return false
	}
}
