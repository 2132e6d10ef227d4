package woflang

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/width"
)

type Diagnostic struct {
	Err     error
	Span    Span
	HasSpan bool
}

func Diagnose(err error) Diagnostic {
	span, ok := SpanOf(err)
	return Diagnostic{
		Err:     err,
		Span:    span,
		HasSpan: ok,
	}
}

// Message returns the error text without the location suffix.
func (d Diagnostic) Message() string {
	var spanErr SpanError
	if errors.As(d.Err, &spanErr) {
		return spanErr.Err.Error()
	}
	return d.Err.Error()
}

const (
	ansiReset = "\x1b[0m"
	ansiBold  = "\x1b[1m"
	ansiRed   = "\x1b[31m"
	ansiBlue  = "\x1b[34m"
)

func (d Diagnostic) Render(color bool) string {
	paint := func(code string, s string) string {
		if !color {
			return s
		}
		return code + s + ansiReset
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s\n", paint(ansiBold+ansiRed, "error"), paint(ansiBold, d.Message()))
	if !d.HasSpan {
		return b.String()
	}

	name := "<input>"
	if d.Span.Source != nil && d.Span.Source.Name != "" {
		name = d.Span.Source.Name
	}
	number := strconv.Itoa(d.Span.Line)
	gutter := strings.Repeat(" ", len(number)+2)
	fmt.Fprintf(&b, "%s%s %s:%d:%d\n", gutter[1:], paint(ansiBlue, "-->"), name, d.Span.Line, d.Span.Column)

	line, ok := d.Span.Source.Line(d.Span.Line)
	if !ok {
		return b.String()
	}
	fmt.Fprintf(&b, "%s%s\n", gutter, paint(ansiBlue, "|"))
	fmt.Fprintf(&b, "%s %s\n", paint(ansiBlue, " "+number+" |"), line)

	prefix, marked := splitAtColumn(line, d.Span.Column)
	if d.Span.Length > 0 && d.Span.Length < len(marked) {
		marked = marked[:d.Span.Length]
	}
	var pad strings.Builder
	for _, r := range prefix {
		if r == '\t' {
			pad.WriteByte('\t')
			continue
		}
		pad.WriteString(strings.Repeat(" ", runeWidth(r)))
	}
	carets := max(textWidth(marked), 1)
	fmt.Fprintf(&b, "%s%s %s%s\n",
		gutter,
		paint(ansiBlue, "|"),
		pad.String(),
		paint(ansiRed, strings.Repeat("^", carets)+" here"),
	)
	return b.String()
}

// splitAtColumn splits line before the 1-based rune column.
func splitAtColumn(line string, column int) (string, string) {
	offset := 0
	for i := 1; i < column && offset < len(line); i++ {
		_, size := utf8.DecodeRuneInString(line[offset:])
		offset += size
	}
	return line[:offset], line[offset:]
}

func runeWidth(r rune) int {
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return 2
	}
	return 1
}

func textWidth(s string) int {
	n := 0
	for _, r := range s {
		n += runeWidth(r)
	}
	return n
}
