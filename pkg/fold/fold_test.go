package fold_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/textkit/pkg/document"
	"github.com/yaklabco/textkit/pkg/fold"
	"github.com/yaklabco/textkit/pkg/lang"
	"github.com/yaklabco/textkit/pkg/token"
)

// buildFolds lexes src as a C-like document and computes its fold tree.
func buildFolds(t *testing.T, src string) (*fold.Manager, *document.Document) {
	t.Helper()
	doc := document.New(src)
	cache := token.NewCache(doc, lang.CLike.NewLexer())
	m := fold.NewManager(lang.CLike)
	m.Rebuild(doc.Bytes(), cache.All(), cache.CarryStates())
	return m, doc
}

const nestedSrc = `func outer() {
	if x {
		work()
	}
}
func other() {
}`

func TestBraceFolds(t *testing.T) {
	t.Parallel()

	m, _ := buildFolds(t, nestedSrc)

	require.Equal(t, 2, m.FoldCount())

	outer := m.Fold(0)
	assert.Equal(t, 0, outer.StartLine)
	assert.Equal(t, 4, outer.EndLine)
	require.Len(t, outer.Children, 1)

	inner := outer.Children[0]
	assert.Equal(t, 1, inner.StartLine)
	assert.Equal(t, 3, inner.EndLine)
	assert.Same(t, outer, inner.Parent())

	second := m.Fold(1)
	assert.Equal(t, 5, second.StartLine)
	assert.Equal(t, 6, second.EndLine)
}

func TestCommentFolds(t *testing.T) {
	t.Parallel()

	m, _ := buildFolds(t, "/*\n * docs\n */\nfunc f() {\n}")

	require.Equal(t, 2, m.FoldCount())
	comment := m.Fold(0)
	assert.Equal(t, fold.TypeComment, comment.Type)
	assert.Equal(t, 0, comment.StartLine)
	assert.Equal(t, 2, comment.EndLine)
	assert.Equal(t, fold.TypeCode, m.Fold(1).Type)
}

func TestSingleLineBlocksDoNotFold(t *testing.T) {
	t.Parallel()

	m, _ := buildFolds(t, "f(x) { g() }\n/* one line */")
	assert.Equal(t, 0, m.FoldCount())
}

func TestBracesInStringsIgnored(t *testing.T) {
	t.Parallel()

	m, _ := buildFolds(t, "s := \"{\"\nx()\n// }\ny()")
	assert.Equal(t, 0, m.FoldCount())
}

func TestHiddenLines(t *testing.T) {
	t.Parallel()

	m, _ := buildFolds(t, nestedSrc)

	outer := m.Fold(0)
	assert.False(t, m.IsLineHidden(1), "expanded folds hide nothing")

	outer.Collapsed = true
	assert.False(t, m.IsLineHidden(0), "a fold's first line stays visible")
	assert.True(t, m.IsLineHidden(1))
	assert.True(t, m.IsLineHidden(4))
	assert.False(t, m.IsLineHidden(5))
}

func TestDeepestFoldQueries(t *testing.T) {
	t.Parallel()

	m, _ := buildFolds(t, nestedSrc)

	deepest := m.DeepestFoldContainingLine(2)
	require.NotNil(t, deepest)
	assert.Equal(t, 1, deepest.StartLine)

	// A collapsed fold is never the answer to the open query; its
	// nearest open ancestor is.
	m.Fold(0).Children[0].Collapsed = true
	open := m.DeepestOpenFoldContainingLine(2)
	require.NotNil(t, open)
	assert.Equal(t, 0, open.StartLine)

	m.Fold(0).Collapsed = true
	assert.Nil(t, m.DeepestOpenFoldContainingLine(2),
		"no open fold contains the line")

	assert.Nil(t, m.DeepestFoldContainingLine(5+10))
}

func TestDeepestFoldAtOffset(t *testing.T) {
	t.Parallel()

	m, doc := buildFolds(t, nestedSrc)

	off, err := doc.LineStartOffset(2)
	require.NoError(t, err)

	f := m.DeepestFoldContaining(doc, off)
	require.NotNil(t, f)
	assert.Equal(t, 1, f.StartLine)

	m.Fold(0).Children[0].Collapsed = true
	open := m.DeepestOpenFoldContaining(doc, off)
	require.NotNil(t, open)
	assert.Equal(t, 0, open.StartLine)

	assert.Nil(t, m.DeepestFoldContaining(doc, doc.Len()+5))
}

func TestFoldForLine(t *testing.T) {
	t.Parallel()

	m, _ := buildFolds(t, nestedSrc)

	f := m.FoldForLine(1)
	require.NotNil(t, f)
	assert.Equal(t, 3, f.EndLine)
	assert.Nil(t, m.FoldForLine(2))
}

func TestCollapseExpandAll(t *testing.T) {
	t.Parallel()

	m, _ := buildFolds(t, nestedSrc)

	m.CollapseAll(nil)
	assert.True(t, m.Fold(0).Collapsed)
	assert.True(t, m.Fold(0).Children[0].Collapsed)

	m.ExpandAll()
	assert.False(t, m.Fold(0).Collapsed)

	m.CollapseAll(func(f *fold.Fold) bool { return f.Type == fold.TypeComment })
	assert.False(t, m.Fold(0).Collapsed)
}

func TestRebuildKeepsCollapseState(t *testing.T) {
	t.Parallel()

	doc := document.New(nestedSrc)
	cache := token.NewCache(doc, lang.CLike.NewLexer())
	m := fold.NewManager(lang.CLike)
	m.Rebuild(doc.Bytes(), cache.All(), cache.CarryStates())

	m.Fold(0).Collapsed = true

	// An edit below the fold must not expand it.
	require.NoError(t, doc.Insert(doc.Len(), "\n"))
	m.Rebuild(doc.Bytes(), cache.All(), cache.CarryStates())

	require.GreaterOrEqual(t, m.FoldCount(), 1)
	assert.True(t, m.Fold(0).Collapsed)
}

func TestOverlappingFoldsClipped(t *testing.T) {
	t.Parallel()

	// A block comment opening on the brace block's closing line would
	// straddle the code fold; it gets clipped to start below it.
	m, _ := buildFolds(t, "a = {\nb\n} /* start\nmore\nmore2\n*/ end")

	require.Equal(t, 2, m.FoldCount())
	code := m.Fold(0)
	assert.Equal(t, fold.TypeCode, code.Type)
	assert.Equal(t, 0, code.StartLine)
	assert.Equal(t, 2, code.EndLine)

	comment := m.Fold(1)
	assert.Equal(t, fold.TypeComment, comment.Type)
	assert.Equal(t, 3, comment.StartLine)
	assert.Equal(t, 5, comment.EndLine)

	got := m.DeepestFoldContainingLine(3)
	require.NotNil(t, got)
	assert.Equal(t, fold.TypeComment, got.Type)
}

func TestFoldsNestOrAreDisjoint(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
	}{
		{"nested braces", nestedSrc},
		{"comment straddling a block", "a = {\nb\n} /* start\nmore\nmore2\n*/ end"},
		{"block opening inside a comment", "/* start\nx = {\n*/ more\ny\n}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m, _ := buildFolds(t, tt.src)

			var all []*fold.Fold
			var collect func(f *fold.Fold)
			collect = func(f *fold.Fold) {
				all = append(all, f)
				for _, c := range f.Children {
					collect(c)
				}
			}
			for i := 0; i < m.FoldCount(); i++ {
				collect(m.Fold(i))
			}

			for i, a := range all {
				for _, b := range all[i+1:] {
					nested := (a.StartLine <= b.StartLine && b.EndLine <= a.EndLine) ||
						(b.StartLine <= a.StartLine && a.EndLine <= b.EndLine)
					disjoint := a.EndLine < b.StartLine || b.EndLine < a.StartLine
					assert.True(t, nested || disjoint,
						"folds [%d,%d] and [%d,%d] partially overlap",
						a.StartLine, a.EndLine, b.StartLine, b.EndLine)
				}
			}
		})
	}
}
