// Package edit implements the discrete editing actions of the engine:
// auto-indenting line breaks, bracket/quote/tag pairing, block indent
// and unindent, comment toggling, and bracket-match navigation. Every
// action is atomic: its buffer mutations coalesce into one undoable
// unit, and the atomic scope is released on every exit path.
package edit

import (
	"fmt"

	"github.com/yaklabco/textkit/pkg/config"
	"github.com/yaklabco/textkit/pkg/document"
	"github.com/yaklabco/textkit/pkg/fold"
	"github.com/yaklabco/textkit/pkg/lang"
	"github.com/yaklabco/textkit/pkg/nav"
	"github.com/yaklabco/textkit/pkg/token"
)

// Action identifiers, recorded into macros and dispatched on playback.
const (
	ActionDefaultTyped        = "default-typed"
	ActionInsertBreak         = "insert-break"
	ActionInsertTab           = "insert-tab"
	ActionDecreaseIndent      = "decrease-indent"
	ActionToggleComment       = "toggle-comment"
	ActionCloseCurlyBrace     = "close-curly-brace"
	ActionCloseMarkupTag      = "close-markup-tag"
	ActionInsertPair          = "insert-pair"
	ActionInsertQuote         = "insert-quote"
	ActionGoToMatchingBracket = "goto-matching-bracket"
	ActionDeletePrevWord      = "delete-prev-word"
	ActionSelectWord          = "select-word"
)

// Feedback receives the error-feedback signal for rejected or failed
// actions (a terminal bell, a flash). Implementations must not mutate
// the editor.
type Feedback interface {
	ErrorFeedback()
}

// RecordFunc receives each performed action for macro recording.
type RecordFunc func(id, command string)

// Editor binds a document to a language and drives the editing actions.
// It owns the caret: dot is the moving end of the selection, mark the
// anchor; dot == mark means no selection.
type Editor struct {
	doc   *document.Document
	lang  *lang.Language
	opts  *config.Options
	cache *token.Cache
	folds *fold.Manager

	foldsRev   uint64
	foldsBuilt bool

	fb     Feedback
	record RecordFunc

	dot, mark int
	readOnly  bool
}

// New creates an editor over doc for the given language. A nil opts
// uses config.Default().
func New(doc *document.Document, language *lang.Language, opts *config.Options) *Editor {
	if opts == nil {
		opts = config.Default()
	}
	return &Editor{
		doc:   doc,
		lang:  language,
		opts:  opts,
		cache: token.NewCache(doc, language.NewLexer()),
		folds: fold.NewManager(language),
	}
}

// Document returns the underlying document.
func (e *Editor) Document() *document.Document { return e.doc }

// Language returns the editor's language descriptor.
func (e *Editor) Language() *lang.Language { return e.lang }

// Options returns the live options; changes apply to the next action.
func (e *Editor) Options() *config.Options { return e.opts }

// Tokens returns the document's token cache.
func (e *Editor) Tokens() *token.Cache { return e.cache }

// Folds returns the fold manager, rebuilt for the current revision.
func (e *Editor) Folds() *fold.Manager {
	e.refreshFolds()
	return e.folds
}

func (e *Editor) refreshFolds() {
	if !e.opts.CodeFolding {
		return
	}
	if e.foldsBuilt && e.foldsRev == e.doc.Revision() {
		return
	}
	e.folds.Rebuild(e.doc.Bytes(), e.cache.All(), e.cache.CarryStates())
	e.foldsRev = e.doc.Revision()
	e.foldsBuilt = true
}

// SetFeedback installs the error-feedback sink.
func (e *Editor) SetFeedback(fb Feedback) { e.fb = fb }

// SetRecordFunc installs the macro recording hook. Pass nil to detach.
func (e *Editor) SetRecordFunc(fn RecordFunc) { e.record = fn }

// SetReadOnly toggles whether mutating actions are accepted.
func (e *Editor) SetReadOnly(readOnly bool) { e.readOnly = readOnly }

// Dot returns the caret position.
func (e *Editor) Dot() int { return e.dot }

// Mark returns the selection anchor.
func (e *Editor) Mark() int { return e.mark }

// SetCaret moves the caret, collapsing any selection.
func (e *Editor) SetCaret(offs int) {
	e.dot = e.clamp(offs)
	e.mark = e.dot
}

// Select sets the selection anchor and caret.
func (e *Editor) Select(mark, dot int) {
	e.mark = e.clamp(mark)
	e.dot = e.clamp(dot)
}

// Selection returns the selection bounds in ascending order.
func (e *Editor) Selection() (start, end int) {
	if e.dot < e.mark {
		return e.dot, e.mark
	}
	return e.mark, e.dot
}

// SelectedText returns the selected text, "" without a selection.
func (e *Editor) SelectedText() string {
	start, end := e.Selection()
	text, err := e.doc.Text(start, end-start)
	if err != nil {
		return ""
	}
	return text
}

func (e *Editor) clamp(offs int) int {
	if offs < 0 {
		return 0
	}
	if offs > e.doc.Len() {
		return e.doc.Len()
	}
	return offs
}

// fail raises error feedback.
func (e *Editor) fail() {
	if e.fb != nil {
		e.fb.ErrorFeedback()
	}
}

// rejected reports (and signals) a mutating action on a read-only
// editor.
func (e *Editor) rejected() bool {
	if e.readOnly {
		e.fail()
		return true
	}
	return false
}

func (e *Editor) recordAction(id, command string) {
	if e.record != nil {
		e.record(id, command)
	}
}

// surface wraps an internal fault with the failing operation and raises
// error feedback. Position errors here mean a bug upstream, not user
// input; they are reported, never panicked on.
func (e *Editor) surface(op string, err error) error {
	if err == nil {
		return nil
	}
	e.fail()
	return fmt.Errorf("%s: %w", op, err)
}

// replaceSelection replaces the selection (or inserts at the caret)
// and leaves the caret after the inserted text.
func (e *Editor) replaceSelection(text string) error {
	start, end := e.Selection()
	if err := e.doc.Replace(start, end, text); err != nil {
		return err
	}
	e.dot = start + len(text)
	e.mark = e.dot
	return nil
}

// navContext builds the navigation context for the sub-language at the
// given offset.
func (e *Editor) navContext(offs int) *nav.Context {
	idx := e.langIndexAt(offs)
	return &nav.Context{
		Doc: e.doc,
		IsIdentifierChar: func(ch byte) bool {
			return e.lang.IsIdentifierChar(idx, ch)
		},
		Folds:          e.Folds(),
		FoldingEnabled: e.opts.CodeFolding,
	}
}

func (e *Editor) langIndexAt(offs int) int {
	if t, ok := e.cache.AtOffset(offs); ok {
		return t.Lang
	}
	return 0
}

// lineTextBounds returns a line's start offset and its text (terminator
// excluded).
func (e *Editor) lineTextBounds(line int) (start int, text string, err error) {
	start, err = e.doc.LineStartOffset(line)
	if err != nil {
		return 0, "", err
	}
	text, err = e.doc.LineText(line)
	if err != nil {
		return 0, "", err
	}
	return start, text, nil
}

// InsertText replaces the selection with typed text. This is the
// default key-typed action; a typed tab honors tab emulation.
func (e *Editor) InsertText(text string) error {
	if e.rejected() {
		return nil
	}
	e.recordAction(ActionDefaultTyped, text)
	if text == "\t" {
		text = e.opts.SoftTab()
	}
	return e.surface("insert text", e.replaceSelection(text))
}

// Perform dispatches a recorded action by identifier, for macro
// playback. Unknown identifiers are an error.
func (e *Editor) Perform(id, command string) error {
	switch id {
	case ActionDefaultTyped:
		return e.InsertText(command)
	case ActionInsertBreak:
		return e.InsertBreak()
	case ActionInsertTab:
		return e.InsertTab()
	case ActionDecreaseIndent:
		return e.DecreaseIndent()
	case ActionToggleComment:
		return e.ToggleComment()
	case ActionCloseCurlyBrace:
		return e.CloseCurlyBrace()
	case ActionCloseMarkupTag:
		return e.CloseMarkupTag()
	case ActionInsertPair:
		if len(command) != 2 {
			return fmt.Errorf("insert-pair: want 2-char command, got %q", command)
		}
		return e.InsertPairedCharacter(command[0], command[1])
	case ActionInsertQuote:
		if len(command) != 1 {
			return fmt.Errorf("insert-quote: want 1-char command, got %q", command)
		}
		q, ok := QuoteTypeFor(command[0])
		if !ok {
			return fmt.Errorf("insert-quote: unsupported quote char %q", command)
		}
		return e.InsertQuote(q)
	case ActionGoToMatchingBracket:
		return e.GoToMatchingBracket()
	case ActionDeletePrevWord:
		return e.DeletePrevWord()
	case ActionSelectWord:
		return e.SelectWord()
	default:
		return fmt.Errorf("unknown action %q", id)
	}
}
