// Package document provides the mutable text buffer underlying an editor:
// offset/line queries, primitive edits, and atomic edit scopes that
// coalesce multiple mutations into single undoable units.
package document

import (
	"errors"
	"sort"
)

// ErrBadPosition reports an offset or length outside the document bounds.
// Callers treat it as an internal fault: log it and surface error feedback,
// never a crash.
var ErrBadPosition = errors.New("document: position out of bounds")

// lineInfo describes one line of the document.
// Lines partition [0, len(content)) with no gaps or overlaps:
// lines[i].end == lines[i+1].start.
type lineInfo struct {
	// start is the byte index where the line begins (inclusive).
	start int

	// newlineStart is the byte index of the line terminator, or end
	// for the last line.
	newlineStart int

	// end is the byte index one past the line terminator (exclusive).
	end int
}

// Document is a mutable text buffer with a cached line table.
// It is not safe for concurrent use; all editing happens on a single
// event-handling goroutine.
type Document struct {
	content []byte
	lines   []lineInfo

	revision uint64

	atomicDepth int
	pending     []change
	undoStack   [][]change
	redoStack   [][]change
}

// change records a single primitive edit for undo purposes.
type change struct {
	offset   int
	inserted string
	removed  string
}

// New creates a document with the given initial content.
func New(content string) *Document {
	d := &Document{content: []byte(content)}
	d.rebuildLines()
	return d
}

// rebuildLines reconstructs line metadata from the current content.
// Handles both LF and CRLF line endings.
func (d *Document) rebuildLines() {
	d.lines = d.lines[:0]
	lineStart := 0

	for idx, ch := range d.content {
		if ch == '\n' {
			newlineStart := idx
			if idx > 0 && d.content[idx-1] == '\r' {
				newlineStart = idx - 1
			}
			d.lines = append(d.lines, lineInfo{
				start:        lineStart,
				newlineStart: newlineStart,
				end:          idx + 1,
			})
			lineStart = idx + 1
		}
	}

	// Last line, with or without trailing newline. An empty document
	// still has one (empty) line.
	d.lines = append(d.lines, lineInfo{
		start:        lineStart,
		newlineStart: len(d.content),
		end:          len(d.content),
	})
}

// Len returns the document length in bytes.
func (d *Document) Len() int {
	return len(d.content)
}

// Revision returns a counter incremented on every mutation. Downstream
// caches (token streams, fold trees) key off it.
func (d *Document) Revision() uint64 {
	return d.revision
}

// Bytes returns the document content. The slice must not be modified.
func (d *Document) Bytes() []byte {
	return d.content
}

// CharAt returns the byte at the given offset.
func (d *Document) CharAt(offset int) (byte, error) {
	if offset < 0 || offset >= len(d.content) {
		return 0, ErrBadPosition
	}
	return d.content[offset], nil
}

// Text returns the text in [start, start+length).
func (d *Document) Text(start, length int) (string, error) {
	if start < 0 || length < 0 || start+length > len(d.content) {
		return "", ErrBadPosition
	}
	return string(d.content[start : start+length]), nil
}

// LineCount returns the number of lines. Never less than 1.
func (d *Document) LineCount() int {
	return len(d.lines)
}

// LineOfOffset returns the 0-based line containing the offset.
// An offset equal to Len() resolves to the last line.
func (d *Document) LineOfOffset(offset int) (int, error) {
	if offset < 0 || offset > len(d.content) {
		return 0, ErrBadPosition
	}
	if offset == len(d.content) {
		return len(d.lines) - 1, nil
	}
	idx := sort.Search(len(d.lines), func(i int) bool {
		return d.lines[i].end > offset
	})
	return idx, nil
}

// LineStartOffset returns the offset of the first character of a line.
func (d *Document) LineStartOffset(line int) (int, error) {
	if line < 0 || line >= len(d.lines) {
		return 0, ErrBadPosition
	}
	return d.lines[line].start, nil
}

// LineEndOffset returns the offset one past the line's terminator, so
// that LineEndOffset(i) == LineStartOffset(i+1). For the last line it
// equals Len().
func (d *Document) LineEndOffset(line int) (int, error) {
	if line < 0 || line >= len(d.lines) {
		return 0, ErrBadPosition
	}
	return d.lines[line].end, nil
}

// LineText returns a line's text excluding its terminator.
func (d *Document) LineText(line int) (string, error) {
	if line < 0 || line >= len(d.lines) {
		return "", ErrBadPosition
	}
	info := d.lines[line]
	return string(d.content[info.start:info.newlineStart]), nil
}

// Insert inserts text at the given offset.
func (d *Document) Insert(offset int, text string) error {
	if offset < 0 || offset > len(d.content) {
		return ErrBadPosition
	}
	if text == "" {
		return nil
	}
	d.apply(change{offset: offset, inserted: text}, true)
	return nil
}

// Remove deletes length bytes starting at offset.
func (d *Document) Remove(offset, length int) error {
	if offset < 0 || length < 0 || offset+length > len(d.content) {
		return ErrBadPosition
	}
	if length == 0 {
		return nil
	}
	removed := string(d.content[offset : offset+length])
	d.apply(change{offset: offset, removed: removed}, true)
	return nil
}

// Replace replaces the text in [start, end) with the given text.
func (d *Document) Replace(start, end int, text string) error {
	if start < 0 || end < start || end > len(d.content) {
		return ErrBadPosition
	}
	if start == end && text == "" {
		return nil
	}
	removed := string(d.content[start:end])
	d.apply(change{offset: start, inserted: text, removed: removed}, true)
	return nil
}

// apply performs a change against the buffer. When record is true the
// change is captured for undo and the redo stack is invalidated.
func (d *Document) apply(c change, record bool) {
	if c.removed != "" {
		d.content = append(d.content[:c.offset], d.content[c.offset+len(c.removed):]...)
	}
	if c.inserted != "" {
		d.content = append(d.content[:c.offset], append([]byte(c.inserted), d.content[c.offset:]...)...)
	}
	d.rebuildLines()
	d.revision++

	if record {
		d.redoStack = nil
		if d.atomicDepth > 0 {
			d.pending = append(d.pending, c)
		} else {
			d.undoStack = append(d.undoStack, []change{c})
		}
	}
}

// BeginAtomicEdit opens a coalescing scope: until the matching
// EndAtomicEdit, all mutations form a single undo unit. Scopes nest;
// only the outermost close commits the group. Callers pair the two with
// defer so the scope is released on every exit path.
func (d *Document) BeginAtomicEdit() {
	d.atomicDepth++
}

// EndAtomicEdit closes the innermost atomic edit scope.
func (d *Document) EndAtomicEdit() {
	if d.atomicDepth == 0 {
		return
	}
	d.atomicDepth--
	if d.atomicDepth == 0 && len(d.pending) > 0 {
		group := make([]change, len(d.pending))
		copy(group, d.pending)
		d.pending = d.pending[:0]
		d.undoStack = append(d.undoStack, group)
	}
}

// CanUndo reports whether an undo unit is available.
func (d *Document) CanUndo() bool {
	return len(d.undoStack) > 0
}

// CanRedo reports whether a redone unit is available.
func (d *Document) CanRedo() bool {
	return len(d.redoStack) > 0
}

// Undo reverts the most recent edit group. Returns false if there is
// nothing to undo.
func (d *Document) Undo() bool {
	if len(d.undoStack) == 0 {
		return false
	}
	group := d.undoStack[len(d.undoStack)-1]
	d.undoStack = d.undoStack[:len(d.undoStack)-1]

	// Invert in reverse order so offsets line up.
	for i := len(group) - 1; i >= 0; i-- {
		c := group[i]
		d.apply(change{offset: c.offset, inserted: c.removed, removed: c.inserted}, false)
	}
	d.redoStack = append(d.redoStack, group)
	return true
}

// Redo re-applies the most recently undone edit group.
func (d *Document) Redo() bool {
	if len(d.redoStack) == 0 {
		return false
	}
	group := d.redoStack[len(d.redoStack)-1]
	d.redoStack = d.redoStack[:len(d.redoStack)-1]

	for _, c := range group {
		d.apply(c, false)
	}
	d.undoStack = append(d.undoStack, group)
	return true
}
