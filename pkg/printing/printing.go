// Package printing paginates document text into fixed-size pages of
// drawn lines. Widths are terminal display cells (wide runes count
// twice), tabs expand to the next tab stop, and the word-wrap mode
// breaks lines at natural boundaries before the width limit.
package printing

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Source is the document surface pagination reads. *document.Document
// satisfies it.
type Source interface {
	LineCount() int
	LineText(line int) (string, error)
}

// Paginator renders pages of MaxLinesPerPage drawn lines, each at most
// MaxCharsPerLine cells wide.
type Paginator struct {
	MaxCharsPerLine int
	MaxLinesPerPage int
	TabSize         int
	WordWrap        bool
}

// breakChars are the characters word-wrap prefers to break after.
const breakChars = " \t,.;?!"

// Page returns the drawn lines of one 0-based page and whether that
// page exists. Asking for a page past the document's end returns
// (nil, false); the boolean is the pagination loop's stop signal.
func (p *Paginator) Page(doc Source, page int) ([]string, bool) {
	if page < 0 || p.MaxLinesPerPage <= 0 {
		return nil, false
	}

	need := (page + 1) * p.MaxLinesPerPage
	var drawn []string
	for i := 0; i < doc.LineCount() && len(drawn) < need; i++ {
		text, err := doc.LineText(i)
		if err != nil {
			return nil, false
		}
		drawn = append(drawn, p.wrap(p.expandTabs(text))...)
	}

	start := page * p.MaxLinesPerPage
	if start >= len(drawn) {
		return nil, false
	}
	end := start + p.MaxLinesPerPage
	if end > len(drawn) {
		end = len(drawn)
	}
	return drawn[start:end], true
}

// PageCount returns the total number of pages the document paginates
// into. Never less than 1: an empty document prints one empty page.
func (p *Paginator) PageCount(doc Source) int {
	if p.MaxLinesPerPage <= 0 {
		return 1
	}
	total := 0
	for i := 0; i < doc.LineCount(); i++ {
		text, err := doc.LineText(i)
		if err != nil {
			break
		}
		total += len(p.wrap(p.expandTabs(text)))
	}
	pages := (total + p.MaxLinesPerPage - 1) / p.MaxLinesPerPage
	if pages < 1 {
		pages = 1
	}
	return pages
}

// expandTabs replaces tabs with spaces out to the next tab stop,
// tracking the display column in cells. A tab size of zero or less
// deletes tabs outright.
func (p *Paginator) expandTabs(line string) string {
	if !strings.ContainsRune(line, '\t') {
		return line
	}
	tabSize := p.TabSize
	if tabSize < 1 {
		return strings.ReplaceAll(line, "\t", "")
	}

	var sb strings.Builder
	col := 0
	for _, r := range line {
		if r == '\t' {
			spaces := tabSize - col%tabSize
			sb.WriteString(strings.Repeat(" ", spaces))
			col += spaces
			continue
		}
		sb.WriteRune(r)
		col += runewidth.RuneWidth(r)
	}
	return sb.String()
}

// wrap splits one expanded line into drawn lines of at most
// MaxCharsPerLine cells. Word-wrap breaks after the last break
// character that fits; without one, or in monospaced mode, the cut is a
// hard one at the width limit.
func (p *Paginator) wrap(line string) []string {
	if p.MaxCharsPerLine <= 0 || line == "" {
		return []string{line}
	}

	var out []string
	runes := []rune(line)
	for len(runes) > 0 {
		width, cut := 0, 0
		for cut < len(runes) {
			w := runewidth.RuneWidth(runes[cut])
			if width+w > p.MaxCharsPerLine {
				break
			}
			width += w
			cut++
		}
		if cut == len(runes) {
			out = append(out, string(runes))
			break
		}
		if p.WordWrap {
			if b := lastBreak(runes[:cut]); b >= 0 {
				cut = b + 1
			}
		}
		if cut == 0 {
			cut = 1 // a page narrower than one rune still advances
		}
		out = append(out, string(runes[:cut]))
		runes = runes[cut:]
	}
	if len(out) == 0 {
		out = []string{""}
	}
	return out
}

func lastBreak(runes []rune) int {
	for i := len(runes) - 1; i >= 0; i-- {
		if strings.ContainsRune(breakChars, runes[i]) {
			return i
		}
	}
	return -1
}
