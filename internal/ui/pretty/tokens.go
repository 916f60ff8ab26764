package pretty

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/yaklabco/textkit/pkg/token"
)

// Table formatting constants.
const (
	tablePadding     = 2
	tableColumnCount = 4 // LINE, SPAN, KIND, TEXT
	minLineWidth     = 4
	minSpanWidth     = 9
	minKindWidth     = 10
	minTextWidth     = 20
	heavySeparator   = "="
	defaultTermWidth = 100
)

// TokenRow represents a single token in the listing.
type TokenRow struct {
	Line int
	Span string
	Kind token.Kind
	Text string
}

// TokenTableFormatter formats a lexed document as a styled token table.
type TokenTableFormatter struct {
	styles    *Styles
	termWidth int
}

// NewTokenTableFormatter creates a new token table formatter.
func NewTokenTableFormatter(styles *Styles, termWidth int) *TokenTableFormatter {
	if termWidth <= 0 {
		termWidth = defaultTermWidth
	}
	return &TokenTableFormatter{
		styles:    styles,
		termWidth: termWidth,
	}
}

// Format renders the per-line token streams as a table. Whitespace
// tokens are elided; they carry no information the SPAN column gaps
// don't already show.
func (f *TokenTableFormatter) Format(content []byte, lines [][]token.Token) string {
	rows := collectTokenRows(content, lines)
	if len(rows) == 0 {
		return ""
	}

	widths := f.calculateColumnWidths(rows)

	var builder strings.Builder
	builder.WriteString(f.formatHeader(widths))
	builder.WriteString("\n")
	builder.WriteString(f.formatSeparator(widths))
	builder.WriteString("\n")

	for _, row := range rows {
		builder.WriteString(f.formatRow(row, widths))
		builder.WriteString("\n")
	}

	builder.WriteString(f.formatSeparator(widths))
	builder.WriteString("\n")
	builder.WriteString(f.styles.TableLegend.Render(
		fmt.Sprintf(" %d tokens", len(rows))))
	builder.WriteString("\n")

	return builder.String()
}

// collectTokenRows flattens the per-line streams into display rows.
func collectTokenRows(content []byte, lines [][]token.Token) []TokenRow {
	var rows []TokenRow
	for i, toks := range lines {
		for _, t := range toks {
			if t.Kind == token.KindWhitespace {
				continue
			}
			rows = append(rows, TokenRow{
				Line: i + 1,
				Span: fmt.Sprintf("%d-%d", t.Start, t.End),
				Kind: t.Kind,
				Text: strconv.Quote(t.Text(content)),
			})
		}
	}
	return rows
}

type columnWidths struct {
	line int
	span int
	kind int
	text int
}

// calculateColumnWidths determines optimal column widths based on content.
func (f *TokenTableFormatter) calculateColumnWidths(rows []TokenRow) columnWidths {
	widths := columnWidths{
		line: minLineWidth,
		span: minSpanWidth,
		kind: minKindWidth,
		text: minTextWidth,
	}

	for _, row := range rows {
		if n := len(strconv.Itoa(row.Line)); n > widths.line {
			widths.line = n
		}
		if len(row.Span) > widths.span {
			widths.span = len(row.Span)
		}
		if n := len(row.Kind.String()); n > widths.kind {
			widths.kind = n
		}
		if len(row.Text) > widths.text {
			widths.text = len(row.Text)
		}
	}

	// Constrain to terminal width; the text column gives way first.
	totalWidth := f.totalWidth(widths)
	if totalWidth > f.termWidth {
		excess := totalWidth - f.termWidth
		widths.text = max(minTextWidth, widths.text-excess)
	}

	return widths
}

func (f *TokenTableFormatter) totalWidth(widths columnWidths) int {
	return widths.line + widths.span + widths.kind + widths.text +
		tablePadding*tableColumnCount
}

func (f *TokenTableFormatter) formatHeader(widths columnWidths) string {
	header := fmt.Sprintf(" %-*s  %-*s  %-*s  %-*s",
		widths.line, "LINE",
		widths.span, "SPAN",
		widths.kind, "KIND",
		widths.text, "TEXT",
	)
	return f.styles.TableHeader.Render(header)
}

func (f *TokenTableFormatter) formatSeparator(widths columnWidths) string {
	sep := strings.Repeat(heavySeparator, f.totalWidth(widths))
	return f.styles.TableSeparator.Render(sep)
}

func (f *TokenTableFormatter) formatRow(row TokenRow, widths columnWidths) string {
	kindStyle := f.styles.KindStyle(row.Kind)
	return fmt.Sprintf(" %-*d  %-*s  %s  %s",
		widths.line, row.Line,
		widths.span, row.Span,
		kindStyle.Render(fmt.Sprintf("%-*s", widths.kind, row.Kind.String())),
		truncateString(row.Text, widths.text),
	)
}

// KindStyle returns the style a token kind renders with.
func (s *Styles) KindStyle(k token.Kind) lipgloss.Style {
	switch k {
	case token.KindCommentEOL, token.KindCommentMultiline:
		return s.Comment
	case token.KindLiteralStringDouble, token.KindLiteralChar, token.KindLiteralBackquote:
		return s.Literal
	case token.KindErrorStringDouble, token.KindErrorChar:
		return s.Invalid
	case token.KindOperator:
		return s.Operator
	case token.KindSeparator, token.KindMarkupTagDelimiter:
		return s.Separator
	case token.KindMarkupTagName:
		return s.TagName
	case token.KindMarkupTagAttribute:
		return s.TagAttr
	default:
		return s.Identifier
	}
}

// truncateString truncates a string to maxLen, adding "..." if truncated.
func truncateString(str string, maxLen int) string {
	if len(str) <= maxLen {
		return str
	}
	if maxLen <= 3 {
		return str[:maxLen]
	}
	return str[:maxLen-3] + "..."
}
