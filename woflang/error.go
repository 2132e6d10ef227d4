package woflang

import (
	"errors"
	"fmt"
)

type StackUnderflow struct {
	Expected int
	Found    int
}

func (s StackUnderflow) Error() string {
	return fmt.Sprintf("stack underflow: expected %d value(s), found %d", s.Expected, s.Found)
}

type TypeMismatch struct {
	Expected string
	Actual   Kind
}

func (t TypeMismatch) Error() string {
	return fmt.Sprintf("type mismatch: expected %s, got %s", t.Expected, t.Actual)
}

type ParseError struct {
	Message string
	Span    Span
}

func (p ParseError) Error() string {
	return "parse error: " + p.Message
}

type RuntimeError struct {
	Message string
}

func (r RuntimeError) Error() string {
	return r.Message
}

func runtimeErrorf(format string, args ...any) error {
	return RuntimeError{
		Message: fmt.Sprintf(format, args...),
	}
}

type UndefinedLabel struct {
	Name string
}

func (u UndefinedLabel) Error() string {
	return "undefined label: " + u.Name
}

type UndefinedVariable struct {
	Name string
}

func (u UndefinedVariable) Error() string {
	return "undefined variable: " + u.Name
}

type UndefinedFunction struct {
	Name string
}

func (u UndefinedFunction) Error() string {
	return "undefined function: " + u.Name
}

type OverflowError struct {
	Message string
}

func (o OverflowError) Error() string {
	return "overflow: " + o.Message
}

type InvalidArgument struct {
	Message string
}

func (i InvalidArgument) Error() string {
	return "invalid argument: " + i.Message
}

type SpanError struct {
	Err  error
	Span Span
}

func (s SpanError) Error() string {
	if s.Span.IsZero() {
		return s.Err.Error()
	}
	return fmt.Sprintf("%s at %s", s.Err.Error(), s.Span)
}

func (s SpanError) Unwrap() error {
	return s.Err
}

// WithSpan attaches span to err unless err already carries one.
func WithSpan(err error, span Span) error {
	if err == nil {
		return nil
	}
	if span.IsZero() {
		return err
	}
	if _, ok := SpanOf(err); ok {
		return err
	}
	return SpanError{
		Err:  err,
		Span: span,
	}
}

func SpanOf(err error) (Span, bool) {
	var spanErr SpanError
	if errors.As(err, &spanErr) && !spanErr.Span.IsZero() {
		return spanErr.Span, true
	}
	var parseErr ParseError
	if errors.As(err, &parseErr) && !parseErr.Span.IsZero() {
		return parseErr.Span, true
	}
	return Span{}, false
}
