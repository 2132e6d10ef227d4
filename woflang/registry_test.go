package woflang

import (
	"errors"
	"slices"
	"testing"
)

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	push := func(i int64) Handler {
		return func(ctx Context) error {
			ctx.Push(Integer(i))
			return nil
		}
	}
	r.Register("b", push(1))
	r.Register("a", push(2))
	if !r.Contains("a") || r.Contains("c") {
		t.Fatal("contains")
	}
	if err := r.Alias("c", "a"); err != nil {
		t.Fatal(err)
	}
	var invalid InvalidArgument
	if err := r.Alias("d", "missing"); !errors.As(err, &invalid) {
		t.Fatalf("got %v", err)
	}
	if names := r.Names(); !slices.Equal(names, []string{"a", "b", "c"}) {
		t.Fatalf("got %v", names)
	}

	engine := New()
	handler, ok := r.Lookup("c")
	if !ok {
		t.Fatal("lookup")
	}
	if err := handler(engine); err != nil {
		t.Fatal(err)
	}
	expectStack(t, engine, "[2]")

	// replacing keeps aliases bound to the old handler
	r.Register("a", push(3))
	handler, _ = r.Lookup("c")
	if err := handler(engine); err != nil {
		t.Fatal(err)
	}
	expectStack(t, engine, "[2 2]")

	if !r.Remove("b") || r.Remove("b") {
		t.Fatal("remove")
	}
	if r.Len() != 2 {
		t.Fatalf("got %v", r.Len())
	}

	other := NewRegistry()
	other.Register("x", push(4))
	other.Register("a", push(5))
	r.Merge(other)
	if r.Len() != 3 {
		t.Fatalf("got %v", r.Len())
	}
	handler, _ = r.Lookup("a")
	if err := handler(engine); err != nil {
		t.Fatal(err)
	}
	expectStack(t, engine, "[2 2 5]")
}

func TestRegistryOverridesFunctionsAndVariables(t *testing.T) {
	engine, _ := newTestEngine(t)
	execLines(t, engine, "1 字 v ⊕ dup ⺆ 99 ⺘")
	engine.Registry().Register("v", func(ctx Context) error {
		ctx.Push(String("op"))
		return nil
	})
	execLines(t, engine, "7 dup v")
	expectStack(t, engine, `[7 7 "op"]`)
}
