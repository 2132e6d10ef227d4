package woflang

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestDiagnosticRender(t *testing.T) {
	engine, _ := newTestEngine(t)
	err := engine.ExecLine("1 2 fail")
	d := Diagnose(err)
	if !d.HasSpan {
		t.Fatal("no span")
	}
	if d.Message() != "failed" {
		t.Fatalf("got %v", d.Message())
	}
	expected := "error: failed\n" +
		"  --> <line>:1:5\n" +
		"   |\n" +
		" 1 | 1 2 fail\n" +
		"   |     ^^^^ here\n"
	if got := d.Render(false); got != expected {
		t.Fatalf("got\n%s", got)
	}
	if got := d.Render(true); !strings.Contains(got, ansiRed) || !strings.Contains(got, "^^^^ here") {
		t.Fatalf("got %q", got)
	}
}

func TestDiagnosticWideRunes(t *testing.T) {
	src := NewSource("wide", "漢字 bad\n")
	d := Diagnose(WithSpan(errors.New("boom"), Span{
		Source: src,
		Line:   1,
		Column: 4,
		Offset: 7,
		Length: 3,
	}))
	lines := strings.Split(d.Render(false), "\n")
	if lines[3] != " 1 | 漢字 bad" {
		t.Fatalf("got %q", lines[3])
	}
	if lines[4] != "   |      ^^^ here" {
		t.Fatalf("got %q", lines[4])
	}
}

func TestDiagnosticWithoutSpan(t *testing.T) {
	d := Diagnose(fmt.Errorf("read: %w", errors.New("gone")))
	if d.HasSpan {
		t.Fatal("unexpected span")
	}
	if got := d.Render(false); got != "error: read: gone\n" {
		t.Fatalf("got %q", got)
	}
}

func TestDiagnosticParseError(t *testing.T) {
	span := Span{
		Source: NewSource("x", "99999999999999999999"),
		Line:   1,
		Column: 1,
		Length: 20,
	}
	d := Diagnose(ParseError{
		Message: "invalid integer",
		Span:    span,
	})
	if !d.HasSpan || d.Span != span {
		t.Fatalf("got %+v", d)
	}

	engine, _ := newTestEngine(t)
	err := engine.ExecLine("99999999999999999999")
	var parseErr ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("got %v", err)
	}
	if !strings.Contains(Diagnose(err).Render(false), strings.Repeat("^", 20)) {
		t.Fatalf("got %v", Diagnose(err).Render(false))
	}
}

func TestWithSpan(t *testing.T) {
	first := Span{Line: 1, Column: 1}
	second := Span{Line: 2, Column: 2}
	err := WithSpan(WithSpan(RuntimeError{Message: "x"}, first), second)
	span, ok := SpanOf(err)
	if !ok || span != first {
		t.Fatalf("got %+v", span)
	}
	if WithSpan(nil, first) != nil {
		t.Fatal("nil")
	}
	plain := errors.New("plain")
	if WithSpan(plain, Span{}) != plain {
		t.Fatal("zero span")
	}
	if err.Error() != "x at 1:1" {
		t.Fatalf("got %v", err)
	}
}

func TestErrorMessages(t *testing.T) {
	for err, expected := range map[error]string{
		StackUnderflow{Expected: 2, Found: 1}:             "stack underflow: expected 2 value(s), found 1",
		TypeMismatch{Expected: "number", Actual: KindNil}: "type mismatch: expected number, got nil",
		UndefinedLabel{Name: "l"}:                         "undefined label: l",
		UndefinedVariable{Name: "v"}:                      "undefined variable: v",
		UndefinedFunction{Name: "f"}:                      "undefined function: f",
		InvalidArgument{Message: "m"}:                     "invalid argument: m",
	} {
		if err.Error() != expected {
			t.Fatalf("got %v", err)
		}
	}
}
