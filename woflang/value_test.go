package woflang

import (
	"errors"
	"math"
	"testing"
)

func TestValueConversions(t *testing.T) {
	if i, err := Float(3.9).AsInteger(); err != nil || i != 3 {
		t.Fatalf("got %v %v", i, err)
	}
	if i, err := Float(-3.9).AsInteger(); err != nil || i != -3 {
		t.Fatalf("got %v %v", i, err)
	}
	var overflow OverflowError
	for _, f := range []float64{math.NaN(), 1e19, -1e19, math.Inf(1)} {
		if _, err := Float(f).AsInteger(); !errors.As(err, &overflow) {
			t.Fatalf("%v: got %v", f, err)
		}
	}
	var mismatch TypeMismatch
	if _, err := String("1").AsInteger(); !errors.As(err, &mismatch) || mismatch.Actual != KindString {
		t.Fatalf("got %v", err)
	}
	if _, err := Nil().AsFloat(); !errors.As(err, &mismatch) || mismatch.Actual != KindNil {
		t.Fatalf("got %v", err)
	}
	if f, err := Integer(2).AsFloat(); err != nil || f != 2 {
		t.Fatalf("got %v %v", f, err)
	}
	if s, err := Symbol("foo").AsText(); err != nil || s != "foo" {
		t.Fatalf("got %v %v", s, err)
	}
	if _, err := Integer(1).AsText(); !errors.As(err, &mismatch) {
		t.Fatalf("got %v", err)
	}
}

func TestValueTruthy(t *testing.T) {
	for v, expected := range map[Value]bool{
		Integer(0):          false,
		Integer(-1):         true,
		Float(0):            false,
		Float(0.1):          true,
		Float(math.NaN()):   false,
		String(""):          false,
		String("0"):         true,
		Symbol("x"):         true,
		Nil():               false,
	} {
		if v.Truthy() != expected {
			t.Fatalf("%v: got %v", v, v.Truthy())
		}
	}
}

func TestValueEqual(t *testing.T) {
	if !Float(math.NaN()).Equal(Float(math.NaN())) {
		t.Fatal("NaN")
	}
	if Integer(1).Equal(Float(1)) {
		t.Fatal("kinds differ")
	}
	if String("a").Equal(Symbol("a")) {
		t.Fatal("kinds differ")
	}
	if !Nil().Equal(Value{}) {
		t.Fatal("nil")
	}
}

func TestValueString(t *testing.T) {
	for v, expected := range map[Value]string{
		Integer(-3):      "-3",
		Float(4):         "4.0",
		Float(2.5):       "2.5",
		Float(-0.125):    "-0.125",
		String("hi"):     "hi",
		Symbol("⊕"):      "⊕",
		Nil():            "<nil>",
	} {
		if got := v.String(); got != expected {
			t.Fatalf("got %v, expected %v", got, expected)
		}
	}
	if got := Float(math.Inf(1)).String(); got != "+Inf" {
		t.Fatalf("got %v", got)
	}
	if Integer(1).Kind().String() != "integer" || Nil().Kind().String() != "nil" {
		t.Fatal("kind names")
	}
}

func TestValueAny(t *testing.T) {
	if Integer(1).Any() != int64(1) {
		t.Fatal()
	}
	if Float(1.5).Any() != 1.5 {
		t.Fatal()
	}
	if Symbol("s").Any() != "s" {
		t.Fatal()
	}
	if Nil().Any() != nil {
		t.Fatal()
	}
}
