package edit

import (
	"github.com/yaklabco/textkit/pkg/token"
)

// InsertPairedCharacter handles a typed opening character with a known
// partner ('(', '[', '{'). With a selection and pairing enabled, the
// selection is wrapped and stays selected between the pair; otherwise
// only the typed character is inserted.
func (e *Editor) InsertPairedCharacter(open, close byte) error {
	if e.rejected() {
		return nil
	}
	e.recordAction(ActionInsertPair, string([]byte{open, close}))
	return e.surface("insert pair", e.insertPaired(open, close))
}

func (e *Editor) insertPaired(open, close byte) error {
	start, end := e.Selection()
	if start == end || !e.opts.InsertPairedCharacters {
		return e.replaceSelection(string(open))
	}

	sel, err := e.doc.Text(start, end-start)
	if err != nil {
		return err
	}
	if err := e.doc.Replace(start, end, string(open)+sel+string(close)); err != nil {
		return err
	}
	e.Select(start+1, end+1)
	return nil
}

// QuoteType describes one quote character and the token kinds its
// terminated and unterminated literals lex as. InvalidKind is KindNull
// when the language never marks the literal invalid (backticks).
type QuoteType struct {
	Char        byte
	ValidKind   token.Kind
	InvalidKind token.Kind
}

// The three quote flavors the engine pairs.
var (
	DoubleQuote = QuoteType{'"', token.KindLiteralStringDouble, token.KindErrorStringDouble}
	SingleQuote = QuoteType{'\'', token.KindLiteralChar, token.KindErrorChar}
	Backtick    = QuoteType{'`', token.KindLiteralBackquote, token.KindNull}
)

// QuoteTypeFor maps a quote character to its descriptor.
func QuoteTypeFor(ch byte) (QuoteType, bool) {
	switch ch {
	case '"':
		return DoubleQuote, true
	case '\'':
		return SingleQuote, true
	case '`':
		return Backtick, true
	default:
		return QuoteType{}, false
	}
}

// InsertQuote handles a typed quote character:
//   - selection or pairing disabled: behave like InsertPairedCharacter
//     (wrap or plain insert);
//   - caret just before the closing quote of a valid literal of the
//     same flavor: step over it, buffer unchanged;
//   - caret inside a comment or any string/char literal: insert the one
//     character literally;
//   - anywhere else: insert an empty pair with the caret between.
func (e *Editor) InsertQuote(q QuoteType) error {
	if e.rejected() {
		return nil
	}
	e.recordAction(ActionInsertQuote, string(q.Char))

	if e.dot != e.mark || !e.opts.InsertPairedCharacters {
		return e.surface("insert quote", e.insertPaired(q.Char, q.Char))
	}
	return e.surface("insert quote", e.insertQuoteAtCaret(q))
}

func (e *Editor) insertQuoteAtCaret(q QuoteType) error {
	offs := e.dot
	content := e.doc.Bytes()

	if t, ok := e.cache.AtOffset(offs); ok {
		// Typing the quote the literal already ends with overwrites it.
		if t.Kind == q.ValidKind && t.Len() > 1 &&
			offs == t.End-1 && t.EndsWith(content, q.Char) {
			e.SetCaret(offs + 1)
			return nil
		}
		// Inside a comment or literal the quote inserts literally. A
		// caret at the line end resolves to the line's last token;
		// that still counts as inside when the construct runs open to
		// the end of the line.
		if t.Kind.IsComment() || t.Kind.IsStringLiteral() {
			if t.Contains(offs) || (offs == t.End && !closedAtEnd(t, content)) {
				if err := e.doc.Insert(offs, string(q.Char)); err != nil {
					return err
				}
				e.SetCaret(offs + 1)
				return nil
			}
		}
	}

	pair := string([]byte{q.Char, q.Char})
	if err := e.doc.Insert(offs, pair); err != nil {
		return err
	}
	e.SetCaret(offs + 1)
	return nil
}

// closedAtEnd reports whether a comment or literal token is properly
// terminated at its own end, so that a caret sitting just past it is
// outside the construct.
func closedAtEnd(t token.Token, content []byte) bool {
	switch t.Kind {
	case token.KindLiteralStringDouble, token.KindLiteralChar:
		return true
	case token.KindLiteralBackquote:
		return t.Len() > 1 && t.EndsWith(content, '`')
	case token.KindCommentMultiline:
		return t.Len() >= 4 && content[t.End-2] == '*' && content[t.End-1] == '/'
	default:
		return false
	}
}

// CloseMarkupTag handles a typed '/'. In a markup language with tag
// completion on, a '/' completing a closing-tag opener ("</" or "[/")
// also inserts the matching open tag's name and the closing delimiter.
func (e *Editor) CloseMarkupTag() error {
	if e.rejected() {
		return nil
	}
	e.recordAction(ActionCloseMarkupTag, "")

	e.doc.BeginAtomicEdit()
	defer e.doc.EndAtomicEdit()

	hadSelection := e.dot != e.mark
	if err := e.replaceSelection("/"); err != nil {
		return e.surface("close markup tag", err)
	}
	if hadSelection || !e.lang.IsMarkup ||
		!e.lang.CompleteMarkupCloseTags || !e.opts.CloseMarkupTags {
		return nil
	}

	dot := e.dot
	content := e.doc.Bytes()
	t, ok := e.cache.AtOffset(dot - 1)
	if !ok || t.Kind != token.KindMarkupTagDelimiter || t.Len() != 2 {
		return nil
	}
	open := content[t.Start]
	if content[t.Start+1] != '/' || (open != '<' && open != '[') {
		return nil
	}

	name, found := e.discoverTagName(dot)
	if !found {
		return nil
	}
	// The closing delimiter is two code points past the opener in
	// ASCII: '<' pairs with '>', '[' with ']'.
	if err := e.doc.Insert(dot, name+string(open+2)); err != nil {
		return e.surface("close markup tag", err)
	}
	e.SetCaret(dot + len(name) + 1)
	return nil
}

// discoverTagName walks the token stream from the document start,
// pushing open tag names and popping on closers, to find the tag the
// "</" ending at dot should close.
func (e *Editor) discoverTagName(dot int) (string, bool) {
	content := e.doc.Bytes()
	lastLine, err := e.doc.LineOfOffset(dot - 1)
	if err != nil {
		return "", false
	}

	var stack []string
	for i := 0; i <= lastLine; i++ {
		toks := e.cache.Line(i)
		for j := 0; j < len(toks); j++ {
			t := toks[j]
			if t.Kind != token.KindMarkupTagDelimiter {
				continue
			}
			switch {
			case t.Len() == 1 && (content[t.Start] == '<' || content[t.Start] == '['):
				// Opening delimiter: the next name-like token is the
				// tag name. Attributes are accepted too, in case of
				// stray whitespace after the opener.
				for k := j + 1; k < len(toks); k++ {
					next := toks[k]
					if next.Kind == token.KindMarkupTagName ||
						next.Kind == token.KindMarkupTagAttribute {
						stack = append(stack, next.Text(content))
						break
					}
					if next.Kind == token.KindMarkupTagDelimiter {
						break
					}
				}
			case t.Len() == 2 && content[t.Start] == '/':
				// Self-closing "/>" or "/]".
				if len(stack) > 0 {
					stack = stack[:len(stack)-1]
				}
			case t.Len() == 2 && content[t.Start+1] == '/':
				// Closing-tag opener "</" or "[/".
				var name string
				if len(stack) > 0 {
					name = stack[len(stack)-1]
					stack = stack[:len(stack)-1]
				}
				if t.End >= dot {
					return name, name != ""
				}
			}
		}
	}
	return "", false
}

// CloseCurlyBrace handles a typed '}'. With auto-indent in a
// brace-block language and nothing but whitespace before the caret,
// the line re-indents to match the line of the matching '{'.
func (e *Editor) CloseCurlyBrace() error {
	if e.rejected() {
		return nil
	}
	e.recordAction(ActionCloseCurlyBrace, "")

	align := e.opts.AutoIndent && e.lang.CurlyBracesDenoteCodeBlocks
	e.doc.BeginAtomicEdit()
	defer e.doc.EndAtomicEdit()

	if err := e.replaceSelection("}"); err != nil {
		return e.surface("close curly brace", err)
	}
	if !align {
		return nil
	}
	return e.surface("close curly brace", e.alignCloseCurly())
}

func (e *Editor) alignCloseCurly() error {
	line, err := e.doc.LineOfOffset(e.dot)
	if err != nil {
		return err
	}
	start, text, err := e.lineTextBounds(line)
	if err != nil {
		return err
	}

	// Only re-indent when the '}' is the line's first non-whitespace.
	prefix := text[:e.dot-1-start]
	if leadingWhitespace(prefix) != prefix {
		return nil
	}

	match := e.MatchingBracket(e.dot - 1)
	if match < 0 {
		return nil
	}
	matchLine, err := e.doc.LineOfOffset(match)
	if err != nil {
		return err
	}
	_, matchText, err := e.lineTextBounds(matchLine)
	if err != nil {
		return err
	}
	ws := leadingWhitespace(matchText)

	if err := e.doc.Replace(start, e.dot-1, ws); err != nil {
		return err
	}
	e.SetCaret(start + len(ws) + 1)
	return nil
}
