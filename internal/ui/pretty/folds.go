package pretty

import (
	"fmt"
	"strings"

	"github.com/yaklabco/textkit/pkg/fold"
)

const foldIndent = "  "

// FoldRenderer renders a fold tree as an indented listing.
type FoldRenderer struct {
	styles *Styles
}

// NewFoldRenderer creates a new fold renderer.
func NewFoldRenderer(styles *Styles) *FoldRenderer {
	return &FoldRenderer{styles: styles}
}

// Render formats every top-level fold and its children, one fold per
// line, children indented under their parent. Line numbers are 1-based
// for display.
func (r *FoldRenderer) Render(m *fold.Manager) string {
	var builder strings.Builder
	for i := 0; i < m.FoldCount(); i++ {
		r.renderFold(&builder, m.Fold(i), 0)
	}
	if builder.Len() == 0 {
		return r.styles.Dim.Render("no folds") + "\n"
	}
	return builder.String()
}

func (r *FoldRenderer) renderFold(builder *strings.Builder, f *fold.Fold, depth int) {
	builder.WriteString(strings.Repeat(foldIndent, depth))

	label := r.styles.FoldCode.Render("code")
	if f.Type == fold.TypeComment {
		label = r.styles.FoldComment.Render("comment")
	}
	builder.WriteString(label)

	builder.WriteString(" ")
	builder.WriteString(r.styles.FoldRange.Render(
		fmt.Sprintf("lines %d-%d", f.StartLine+1, f.EndLine+1)))

	if f.Collapsed {
		builder.WriteString(" ")
		builder.WriteString(r.styles.FoldCollapsed.Render("[collapsed]"))
	}
	builder.WriteString("\n")

	for _, child := range f.Children {
		r.renderFold(builder, child, depth+1)
	}
}
