package woflang

import (
	"fmt"
	"math"
	"strconv"
)

type Kind uint8

const (
	KindNil Kind = iota
	KindInteger
	KindFloat
	KindString
	KindSymbol
)

func (k Kind) String() string {
	switch k {
	case KindNil:
		return "nil"
	case KindInteger:
		return "integer"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindSymbol:
		return "symbol"
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// Value is a stack or variable slot. The zero Value is nil.
type Value struct {
	kind Kind
	i    int64
	f    float64
	s    string
}

func Nil() Value {
	return Value{}
}

func Integer(i int64) Value {
	return Value{kind: KindInteger, i: i}
}

func Float(f float64) Value {
	return Value{kind: KindFloat, f: f}
}

func String(s string) Value {
	return Value{kind: KindString, s: s}
}

func Symbol(s string) Value {
	return Value{kind: KindSymbol, s: s}
}

func (v Value) Kind() Kind {
	return v.kind
}

func (v Value) IsNil() bool {
	return v.kind == KindNil
}

func (v Value) IsNumeric() bool {
	return v.kind == KindInteger || v.kind == KindFloat
}

func (v Value) AsInteger() (int64, error) {
	switch v.kind {
	case KindInteger:
		return v.i, nil
	case KindFloat:
		if math.IsNaN(v.f) || v.f >= math.MaxInt64 || v.f < math.MinInt64 {
			return 0, OverflowError{
				Message: fmt.Sprintf("%s does not fit in an integer", v),
			}
		}
		return int64(v.f), nil
	}
	return 0, TypeMismatch{
		Expected: "integer",
		Actual:   v.kind,
	}
}

func (v Value) AsFloat() (float64, error) {
	switch v.kind {
	case KindInteger:
		return float64(v.i), nil
	case KindFloat:
		return v.f, nil
	}
	return 0, TypeMismatch{
		Expected: "number",
		Actual:   v.kind,
	}
}

func (v Value) AsText() (string, error) {
	switch v.kind {
	case KindString, KindSymbol:
		return v.s, nil
	}
	return "", TypeMismatch{
		Expected: "string",
		Actual:   v.kind,
	}
}

func (v Value) Truthy() bool {
	switch v.kind {
	case KindInteger:
		return v.i != 0
	case KindFloat:
		return v.f != 0 && !math.IsNaN(v.f)
	case KindString, KindSymbol:
		return v.s != ""
	}
	return false
}

// Equal compares kind and payload. NaN equals NaN.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindInteger:
		return v.i == other.i
	case KindFloat:
		if math.IsNaN(v.f) && math.IsNaN(other.f) {
			return true
		}
		return v.f == other.f
	case KindString, KindSymbol:
		return v.s == other.s
	}
	return true
}

func (v Value) String() string {
	switch v.kind {
	case KindInteger:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		if v.f == math.Trunc(v.f) && !math.IsInf(v.f, 0) {
			return strconv.FormatFloat(v.f, 'f', 1, 64)
		}
		return strconv.FormatFloat(v.f, 'f', -1, 64)
	case KindString, KindSymbol:
		return v.s
	}
	return "<nil>"
}

// Any returns the Go representation of the payload.
func (v Value) Any() any {
	switch v.kind {
	case KindInteger:
		return v.i
	case KindFloat:
		return v.f
	case KindString, KindSymbol:
		return v.s
	}
	return nil
}
