package ops

import (
	"bytes"
	"errors"
	"math"
	"testing"

	"github.com/reusee/wof/woflang"
)

func newEngine(t *testing.T) (*woflang.Engine, *bytes.Buffer) {
	t.Helper()
	buf := new(bytes.Buffer)
	return woflang.New(
		woflang.WithPlugins(Register),
		woflang.WithOutput(buf),
	), buf
}

func run(t *testing.T, lines ...string) *woflang.Engine {
	t.Helper()
	engine, _ := newEngine(t)
	for _, line := range lines {
		if err := engine.ExecLine(line); err != nil {
			t.Fatal(err)
		}
	}
	return engine
}

func TestArithmetic(t *testing.T) {
	for src, expected := range map[string]string{
		"5 3 +":     "[8]",
		"5 3 -":     "[2]",
		"5 3 *":     "[15]",
		"5 3 ×":     "[15]",
		"7 2 /":     "[3]",
		"7 2 ÷":     "[3]",
		"7 2 %":     "[1]",
		"7.0 2 /":   "[3.5]",
		"1.5 1 +":   "[2.5]",
		"2 3 neg +": "[-1]",
		"2.5 neg":   "[-2.5]",
		"-7 2 %":    "[-1]",
	} {
		engine := run(t, src)
		if got := engine.Stack().String(); got != expected {
			t.Fatalf("%s: got %s", src, got)
		}
	}
}

func TestDivisionByZero(t *testing.T) {
	for _, src := range []string{"1 0 /", "1.0 0 /", "1 0 %"} {
		engine, _ := newEngine(t)
		err := engine.ExecLine(src)
		var invalid woflang.InvalidArgument
		if !errors.As(err, &invalid) {
			t.Fatalf("%s: got %v", src, err)
		}
		if _, ok := woflang.SpanOf(err); !ok {
			t.Fatalf("%s: no span", src)
		}
	}
}

func TestIntegerOverflow(t *testing.T) {
	if _, err := Plus(math.MaxInt64, 1); err == nil {
		t.Fatal("should overflow")
	}
	if _, err := Minus(math.MinInt64, 1); err == nil {
		t.Fatal("should overflow")
	}
	if _, err := Multiply(math.MaxInt64/2+1, 2); err == nil {
		t.Fatal("should overflow")
	}
	if _, err := Multiply(-1, math.MinInt64); err == nil {
		t.Fatal("should overflow")
	}
	if _, err := Divide(math.MinInt64, -1); err == nil {
		t.Fatal("should overflow")
	}
	if v, err := Multiply(-3, 4); err != nil || v != -12 {
		t.Fatalf("got %v %v", v, err)
	}
	if v, err := Mod(math.MinInt64, -1); err != nil || v != 0 {
		t.Fatalf("got %v %v", v, err)
	}
	engine, _ := newEngine(t)
	err := engine.ExecLine("9223372036854775807 1 +")
	var overflow woflang.OverflowError
	if !errors.As(err, &overflow) {
		t.Fatalf("got %v", err)
	}
}

func TestArithmeticTypeMismatch(t *testing.T) {
	engine, _ := newEngine(t)
	err := engine.ExecLine(`1 "a" +`)
	var mismatch woflang.TypeMismatch
	if !errors.As(err, &mismatch) {
		t.Fatalf("got %v", err)
	}
	if mismatch.Actual != woflang.KindString {
		t.Fatalf("got %v", mismatch.Actual)
	}
}

func TestUnderflow(t *testing.T) {
	engine, _ := newEngine(t)
	err := engine.ExecLine("1 +")
	var underflow woflang.StackUnderflow
	if !errors.As(err, &underflow) {
		t.Fatalf("got %v", err)
	}
	if underflow.Expected != 2 || underflow.Found != 1 {
		t.Fatalf("got %+v", underflow)
	}
	// no partial pops
	if engine.Stack().Len() != 1 {
		t.Fatalf("got %v", engine.Stack())
	}
}

func TestStackOps(t *testing.T) {
	for src, expected := range map[string]string{
		"1 dup":       "[1 1]",
		"1 2 drop":    "[1]",
		"1 2 swap":    "[2 1]",
		"1 2 over":    "[1 2 1]",
		"1 2 3 rot":   "[2 3 1]",
		"1 2 3 clear": "[]",
		"1 2 depth":   "[1 2 2]",
	} {
		engine := run(t, src)
		if got := engine.Stack().String(); got != expected {
			t.Fatalf("%s: got %s", src, got)
		}
	}
}

func TestComparison(t *testing.T) {
	for src, expected := range map[string]string{
		"1 2 <":         "[1]",
		"1 2 >":         "[0]",
		"2 2 ≤":         "[1]",
		"1 2 ≥":         "[0]",
		"2 2.0 =":       "[1]",
		"2 3 ≠":         "[1]",
		"1 2 lt":        "[1]",
		"1 2 gt":        "[0]",
		"3 3 eq":        "[1]",
		`"a" "b" <`:     "[1]",
		`"a" "a" =`:     "[1]",
		`"a" 1 =`:       "[0]",
		"1 2 ＜ 2 2 ＝": "[1 1]",
	} {
		engine := run(t, src)
		if got := engine.Stack().String(); got != expected {
			t.Fatalf("%s: got %s", src, got)
		}
	}

	engine, _ := newEngine(t)
	var mismatch woflang.TypeMismatch
	if err := engine.ExecLine(`1 "a" <`); !errors.As(err, &mismatch) {
		t.Fatalf("got %v", err)
	}
}

func TestLogic(t *testing.T) {
	for src, expected := range map[string]string{
		"1 0 ∧":   "[0]",
		"1 2 and": "[1]",
		"0 0 ∨":   "[0]",
		"0 1 or":  "[1]",
		"0 ¬":     "[1]",
		`"" not`:  "[1]",
		"1 1 xor": "[0]",
		"1 0 ⊻":   "[1]",
	} {
		engine := run(t, src)
		if got := engine.Stack().String(); got != expected {
			t.Fatalf("%s: got %s", src, got)
		}
	}
}

func TestOutput(t *testing.T) {
	engine, buf := newEngine(t)
	if err := engine.ExecLine(`1 2.0 "three" .s . . print`); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "[1 2.0 \"three\"]\nthree\n2.0\n1\n" {
		t.Fatalf("got %q", got)
	}
	if engine.Stack().Len() != 0 {
		t.Fatalf("got %v", engine.Stack())
	}
}

func TestLoopsWithOps(t *testing.T) {
	engine := run(t,
		"0 字 n",
		"⟳ ⺆ 読 n 1 + 支 n 読 n 5 ≥ 若 🛑 ⺘ ⺘",
		"読 n",
	)
	if got := engine.Stack().String(); got != "[5]" {
		t.Fatalf("got %s", got)
	}

	engine = run(t,
		"⊕ fact ⺆ dup 1 ≤ 若 至 ⺘ dup 1 - fact * ⺘",
		"5 fact",
	)
	if got := engine.Stack().String(); got != "[120]" {
		t.Fatalf("got %s", got)
	}

	engine = run(t,
		"0 字 i",
		"0 字 acc",
		"1 ⥁ ⺆ 読 acc 読 i + 支 acc 読 i 1 + 支 i 読 i 4 < ⺘",
		"読 acc",
	)
	if got := engine.Stack().String(); got != "[6]" {
		t.Fatalf("got %s", got)
	}
}
