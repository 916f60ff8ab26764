// Package fold builds and queries the fold tree: nested collapsible
// regions derived from a document's token streams. Brace-block
// languages fold on curly braces; block comments spanning multiple
// lines fold regardless of language.
package fold

import (
	"sort"

	"github.com/yaklabco/textkit/pkg/lang"
	"github.com/yaklabco/textkit/pkg/token"
)

// Type classifies what a fold region represents.
type Type int

const (
	TypeCode    Type = iota // brace-delimited block
	TypeComment             // multiline comment
)

// Fold is one collapsible region. Its first line stays visible when
// collapsed; lines StartLine+1 through EndLine hide. Children nest
// strictly inside the parent's line range.
type Fold struct {
	Type      Type
	StartLine int
	EndLine   int
	Collapsed bool
	Children  []*Fold

	parent *Fold
}

// ContainsLine reports whether line falls inside the fold, first line
// included.
func (f *Fold) ContainsLine(line int) bool {
	return line >= f.StartLine && line <= f.EndLine
}

// HiddenLineCount returns how many lines this fold hides when collapsed.
func (f *Fold) HiddenLineCount() int {
	return f.EndLine - f.StartLine
}

// Parent returns the enclosing fold, or nil for top-level folds.
func (f *Fold) Parent() *Fold {
	return f.parent
}

// ToggleCollapsed flips the fold's collapsed state.
func (f *Fold) ToggleCollapsed() {
	f.Collapsed = !f.Collapsed
}

// Manager owns the fold tree for one document. Rebuild derives the tree
// from token streams after every edit; collapse state survives rebuilds
// for folds whose start line is unchanged.
type Manager struct {
	lang  *lang.Language
	folds []*Fold
}

// NewManager creates a fold manager for documents in the given language.
func NewManager(language *lang.Language) *Manager {
	return &Manager{lang: language}
}

// Rebuild recomputes the fold tree from per-line token streams. content
// is the document text the token offsets index into; carry holds the
// lexer state carried out of each line (see token.Cache.CarryStates).
func (m *Manager) Rebuild(content []byte, lines [][]token.Token, carry []token.LexState) {
	collapsed := map[int]bool{}
	m.walk(func(f *Fold) {
		if f.Collapsed {
			collapsed[f.StartLine] = true
		}
	})

	b := &treeBuilder{}
	m.scanComments(b, lines, carry)
	m.scanBraces(b, content, lines)
	m.folds = b.finish()

	m.walk(func(f *Fold) {
		if collapsed[f.StartLine] {
			f.Collapsed = true
		}
	})
}

// scanComments adds a fold for every block comment spanning two or more
// lines. A comment crosses a line boundary when the lexer carries state
// out of the line and the line's final token is a multiline comment.
func (m *Manager) scanComments(b *treeBuilder, lines [][]token.Token, carry []token.LexState) {
	start := -1
	for i, toks := range lines {
		open := i < len(carry) && carry[i] != 0 &&
			len(toks) > 0 && toks[len(toks)-1].Kind == token.KindCommentMultiline
		if start < 0 {
			if open {
				start = i
			}
			continue
		}
		if !open {
			b.add(&Fold{Type: TypeComment, StartLine: start, EndLine: i})
			start = -1
		}
	}
	if start >= 0 && start < len(lines)-1 {
		b.add(&Fold{Type: TypeComment, StartLine: start, EndLine: len(lines) - 1})
	}
}

// scanBraces adds code folds for curly-brace blocks, honoring each
// token's sub-language: braces only fold where that sub-language uses
// curly braces as code blocks.
func (m *Manager) scanBraces(b *treeBuilder, content []byte, lines [][]token.Token) {
	var stack []int
	for i, toks := range lines {
		for _, t := range toks {
			if t.Kind != token.KindSeparator || t.Len() != 1 {
				continue
			}
			if !m.lang.At(t.Lang).CurlyBracesDenoteCodeBlocks {
				continue
			}
			switch content[t.Start] {
			case '{':
				stack = append(stack, i)
			case '}':
				if len(stack) == 0 {
					continue
				}
				open := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				if i > open {
					b.add(&Fold{Type: TypeCode, StartLine: open, EndLine: i})
				}
			}
		}
	}
}

// walk visits every fold in the tree, parents before children.
func (m *Manager) walk(visit func(*Fold)) {
	var rec func([]*Fold)
	rec = func(folds []*Fold) {
		for _, f := range folds {
			visit(f)
			rec(f.Children)
		}
	}
	rec(m.folds)
}

// FoldCount returns the number of top-level folds.
func (m *Manager) FoldCount() int {
	return len(m.folds)
}

// Fold returns the i'th top-level fold, or nil when out of range.
func (m *Manager) Fold(i int) *Fold {
	if i < 0 || i >= len(m.folds) {
		return nil
	}
	return m.folds[i]
}

// FoldForLine returns the deepest fold whose first line is the given
// line, or nil. This is the fold a gutter click on that line toggles.
func (m *Manager) FoldForLine(line int) *Fold {
	var found *Fold
	m.walk(func(f *Fold) {
		if f.StartLine == line {
			found = f
		}
	})
	return found
}

// DeepestFoldContainingLine returns the innermost fold containing line,
// or nil when the line is outside every fold.
func (m *Manager) DeepestFoldContainingLine(line int) *Fold {
	return deepest(m.folds, line, false)
}

// DeepestOpenFoldContainingLine returns the innermost expanded fold
// containing line. A collapsed fold never qualifies; the nearest open
// ancestor does, or nil when even the outermost containing fold is
// collapsed.
func (m *Manager) DeepestOpenFoldContainingLine(line int) *Fold {
	return deepest(m.folds, line, true)
}

func deepest(folds []*Fold, line int, openOnly bool) *Fold {
	for _, f := range folds {
		if !f.ContainsLine(line) {
			continue
		}
		if openOnly && f.Collapsed {
			return nil
		}
		if child := deepest(f.Children, line, openOnly); child != nil {
			return child
		}
		return f
	}
	return nil
}

// LineIndex resolves document offsets to line numbers. Implemented by
// document.Document.
type LineIndex interface {
	LineOfOffset(offset int) (int, error)
}

// DeepestFoldContaining returns the innermost fold containing the line
// holding offset, or nil.
func (m *Manager) DeepestFoldContaining(src LineIndex, offset int) *Fold {
	line, err := src.LineOfOffset(offset)
	if err != nil {
		return nil
	}
	return m.DeepestFoldContainingLine(line)
}

// DeepestOpenFoldContaining is DeepestFoldContaining restricted to
// expanded folds, as DeepestOpenFoldContainingLine.
func (m *Manager) DeepestOpenFoldContaining(src LineIndex, offset int) *Fold {
	line, err := src.LineOfOffset(offset)
	if err != nil {
		return nil
	}
	return m.DeepestOpenFoldContainingLine(line)
}

// IsLineHidden reports whether a collapsed fold hides the line. A fold's
// first line is never hidden by that fold itself.
func (m *Manager) IsLineHidden(line int) bool {
	hidden := false
	m.walk(func(f *Fold) {
		if f.Collapsed && line > f.StartLine && line <= f.EndLine {
			hidden = true
		}
	})
	return hidden
}

// CollapseAll collapses every fold matched by keep, or every fold when
// keep is nil.
func (m *Manager) CollapseAll(keep func(*Fold) bool) {
	m.walk(func(f *Fold) {
		if keep == nil || keep(f) {
			f.Collapsed = true
		}
	})
}

// ExpandAll expands every fold.
func (m *Manager) ExpandAll() {
	m.walk(func(f *Fold) { f.Collapsed = false })
}

// treeBuilder assembles added folds into a nesting hierarchy. Folds may
// arrive in any order; finish sorts each level by start line.
type treeBuilder struct {
	folds []*Fold
}

func (b *treeBuilder) add(f *Fold) {
	b.folds = append(b.folds, f)
}

func (b *treeBuilder) finish() []*Fold {
	// Sort by start line, wider region first on ties, so every fold's
	// enclosing parent precedes it.
	sort.SliceStable(b.folds, func(i, j int) bool {
		if b.folds[i].StartLine != b.folds[j].StartLine {
			return b.folds[i].StartLine < b.folds[j].StartLine
		}
		return b.folds[i].EndLine > b.folds[j].EndLine
	})

	var roots []*Fold
	var stack []*Fold
	for _, f := range b.folds {
		for len(stack) > 0 && f.StartLine > stack[len(stack)-1].EndLine {
			stack = stack[:len(stack)-1]
		}

		// Folds nest or stay disjoint. A later-starting fold reaching
		// past its would-be parent is clipped to begin below it, and
		// dropped when nothing is left to hide.
		dropped := false
		for len(stack) > 0 && f.EndLine > stack[len(stack)-1].EndLine {
			f.StartLine = stack[len(stack)-1].EndLine + 1
			if f.StartLine >= f.EndLine {
				dropped = true
				break
			}
			for len(stack) > 0 && f.StartLine > stack[len(stack)-1].EndLine {
				stack = stack[:len(stack)-1]
			}
		}
		if dropped {
			continue
		}

		if len(stack) == 0 {
			roots = append(roots, f)
		} else {
			parent := stack[len(stack)-1]
			f.parent = parent
			parent.Children = append(parent.Children, f)
		}
		stack = append(stack, f)
	}
	return roots
}
