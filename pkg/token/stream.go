package token

// LexState carries lexer state across line boundaries (multiline
// comments, raw strings). Zero is the initial state; values beyond that
// are lexer-private.
type LexState int

// Lexer produces a line's token stream. Implementations live with the
// language descriptors; this package only defines the contract.
type Lexer interface {
	// TokenizeLine lexes one line of text (terminator excluded),
	// producing tokens with document-absolute offsets, and returns the
	// carry state for the following line.
	TokenizeLine(line []byte, lineStart int, st LexState) ([]Token, LexState)
}

// Source is the document surface the token cache reads. *document.Document
// satisfies it.
type Source interface {
	Revision() uint64
	LineCount() int
	LineText(line int) (string, error)
	LineStartOffset(line int) (int, error)
	LineOfOffset(offset int) (int, error)
}

// Cache lazily tokenizes a document and keeps the result until the
// document's revision changes. Lines are lexed in order because lexer
// state carries across line boundaries; the whole stream is rebuilt on
// any edit (per-keystroke linear scan is the access pattern the engine
// is designed for).
type Cache struct {
	src   Source
	lexer Lexer

	revision uint64
	fresh    bool
	lines    [][]Token
	states   []LexState
}

// NewCache creates a token cache over src using the given lexer.
func NewCache(src Source, lexer Lexer) *Cache {
	return &Cache{src: src, lexer: lexer}
}

// refresh re-lexes the document if the cached stream is stale.
func (c *Cache) refresh() {
	if c.fresh && c.revision == c.src.Revision() {
		return
	}

	count := c.src.LineCount()
	c.lines = make([][]Token, count)
	c.states = make([]LexState, count)
	st := LexState(0)
	for i := 0; i < count; i++ {
		text, err := c.src.LineText(i)
		if err != nil {
			break // can't happen for i < LineCount
		}
		start, err := c.src.LineStartOffset(i)
		if err != nil {
			break
		}
		c.lines[i], st = c.lexer.TokenizeLine([]byte(text), start, st)
		c.states[i] = st
	}

	c.revision = c.src.Revision()
	c.fresh = true
}

// Line returns the token stream for a 0-based line, or nil when the line
// is out of range.
func (c *Cache) Line(line int) []Token {
	c.refresh()
	if line < 0 || line >= len(c.lines) {
		return nil
	}
	return c.lines[line]
}

// All returns the per-line token streams for the whole document.
func (c *Cache) All() [][]Token {
	c.refresh()
	return c.lines
}

// CarryStates returns the lexer state carried out of each line. A
// nonzero state means a multiline construct is still open at the line
// break; the final token's kind says which construct.
func (c *Cache) CarryStates() []LexState {
	c.refresh()
	return c.states
}

// AtOffset locates the token covering a document offset, applying the
// end-of-line rule of At for offsets at a line's text end.
func (c *Cache) AtOffset(offset int) (Token, bool) {
	line, err := c.src.LineOfOffset(offset)
	if err != nil {
		return Token{}, false
	}
	return At(c.Line(line), offset)
}
