package woflang

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

type Tokenizer struct {
	source  *Source
	content string
	offset  int
	line    int
	column  int
}

func NewTokenizer(source *Source) *Tokenizer {
	return &Tokenizer{
		source:  source,
		content: source.Content,
		line:    1,
		column:  1,
	}
}

func Tokenize(source *Source) []Token {
	t := NewTokenizer(source)
	var tokens []Token
	for {
		tok := t.Next()
		tokens = append(tokens, tok)
		if tok.Kind == TokenEOF {
			return tokens
		}
	}
}

func (t *Tokenizer) peekRune() (rune, bool) {
	if t.offset >= len(t.content) {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(t.content[t.offset:])
	return r, true
}

// peekSecond returns the rune after the current one.
func (t *Tokenizer) peekSecond() (rune, bool) {
	if t.offset >= len(t.content) {
		return 0, false
	}
	_, size := utf8.DecodeRuneInString(t.content[t.offset:])
	if t.offset+size >= len(t.content) {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(t.content[t.offset+size:])
	return r, true
}

func (t *Tokenizer) readRune() rune {
	r, size := utf8.DecodeRuneInString(t.content[t.offset:])
	t.offset += size
	if r == '\n' {
		t.line++
		t.column = 1
	} else {
		t.column++
	}
	return r
}

func (t *Tokenizer) span() Span {
	return Span{
		Source: t.source,
		Line:   t.line,
		Column: t.column,
		Offset: t.offset,
	}
}

func (t *Tokenizer) Next() Token {
	t.skipWhitespace()
	span := t.span()

	r, ok := t.peekRune()
	if !ok {
		return Token{
			Kind: TokenEOF,
			Span: span,
		}
	}

	var kind TokenKind
	switch {
	case t.isNumberStart(r):
		kind = t.scanNumber()
	case r == '"':
		t.scanString()
		kind = TokenString
	default:
		t.scanSymbol()
		kind = TokenSymbol
	}

	span.Length = t.offset - span.Offset
	text := t.content[span.Offset:t.offset]
	if kind == TokenSymbol {
		text = norm.NFC.String(text)
		switch {
		case strings.HasPrefix(text, ":"):
			kind = TokenLabel
		case strings.HasPrefix(text, "@"):
			kind = TokenLabelRef
		}
	}

	return Token{
		Kind: kind,
		Text: text,
		Span: span,
	}
}

func (t *Tokenizer) skipWhitespace() {
	for {
		r, ok := t.peekRune()
		if !ok {
			return
		}
		switch {
		case unicode.IsSpace(r):
			t.readRune()
		case r == '#':
			t.skipComment()
		default:
			return
		}
	}
}

func (t *Tokenizer) skipComment() {
	for {
		r, ok := t.peekRune()
		if !ok || r == '\n' {
			return
		}
		t.readRune()
	}
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func (t *Tokenizer) isNumberStart(r rune) bool {
	if isDigit(r) {
		return true
	}
	if r == '-' {
		next, ok := t.peekSecond()
		return ok && (isDigit(next) || next == '.')
	}
	return false
}

func (t *Tokenizer) scanNumber() TokenKind {
	kind := TokenInteger
	if r, _ := t.peekRune(); r == '-' {
		t.readRune()
	}
	t.scanDigits()
	if r, ok := t.peekRune(); ok && r == '.' {
		if next, ok := t.peekSecond(); ok && isDigit(next) {
			t.readRune()
			t.scanDigits()
			kind = TokenFloat
		}
	}
	return kind
}

func (t *Tokenizer) scanDigits() {
	for {
		r, ok := t.peekRune()
		if !ok || !isDigit(r) {
			return
		}
		t.readRune()
	}
}

func (t *Tokenizer) scanString() {
	t.readRune() // opening quote
	for {
		if _, ok := t.peekRune(); !ok {
			return
		}
		r := t.readRune()
		switch r {
		case '\\':
			if _, ok := t.peekRune(); ok {
				t.readRune()
			}
		case '"':
			return
		}
	}
}

func (t *Tokenizer) scanSymbol() {
	for {
		r, ok := t.peekRune()
		if !ok || unicode.IsSpace(r) || r == '"' {
			return
		}
		t.readRune()
	}
}

// Unescape converts the raw text of a string token into its value.
func Unescape(text string) string {
	inner := strings.TrimPrefix(text, `"`)
	if strings.HasSuffix(inner, `"`) {
		backslashes := 0
		for i := len(inner) - 2; i >= 0 && inner[i] == '\\'; i-- {
			backslashes++
		}
		if backslashes%2 == 0 {
			inner = inner[:len(inner)-1]
		}
	}

	var b strings.Builder
	b.Grow(len(inner))
	for i := 0; i < len(inner); {
		c := inner[i]
		if c != '\\' {
			b.WriteByte(c)
			i++
			continue
		}
		if i+1 >= len(inner) {
			b.WriteByte('\\')
			i++
			continue
		}
		r, size := utf8.DecodeRuneInString(inner[i+1:])
		switch r {
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		case 't':
			b.WriteByte('\t')
		case '\\':
			b.WriteByte('\\')
		case '"':
			b.WriteByte('"')
		default:
			b.WriteByte('\\')
			b.WriteRune(r)
		}
		i += 1 + size
	}
	return b.String()
}
