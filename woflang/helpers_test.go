package woflang

import (
	"bytes"
	"fmt"
	"testing"
)

// testOps is a small operation set for exercising the engine.
func testOps(registry *Registry) {
	binary := func(fn func(a, b int64) int64) Handler {
		return func(ctx Context) error {
			values, err := ctx.Stack().PopN(2)
			if err != nil {
				return err
			}
			a, err := values[0].AsInteger()
			if err != nil {
				return err
			}
			b, err := values[1].AsInteger()
			if err != nil {
				return err
			}
			ctx.Push(Integer(fn(a, b)))
			return nil
		}
	}
	registry.Register("+", binary(func(a, b int64) int64 { return a + b }))
	registry.Register("-", binary(func(a, b int64) int64 { return a - b }))
	registry.Register("*", binary(func(a, b int64) int64 { return a * b }))
	registry.Register("<", binary(func(a, b int64) int64 {
		if a < b {
			return 1
		}
		return 0
	}))
	registry.Register("dup", func(ctx Context) error {
		return ctx.Stack().Dup()
	})
	registry.Register("drop", func(ctx Context) error {
		return ctx.Stack().Drop()
	})
	registry.Register(".", func(ctx Context) error {
		v, err := ctx.Pop()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(ctx.Output(), v)
		return err
	})
	registry.Register("fail", func(ctx Context) error {
		return RuntimeError{
			Message: "failed",
		}
	})
}

func newTestEngine(t *testing.T, options ...Option) (*Engine, *bytes.Buffer) {
	t.Helper()
	buf := new(bytes.Buffer)
	engine := New(append([]Option{
		WithPlugins(testOps),
		WithOutput(buf),
	}, options...)...)
	return engine, buf
}

func execLines(t *testing.T, engine *Engine, lines ...string) {
	t.Helper()
	for _, line := range lines {
		if err := engine.ExecLine(line); err != nil {
			t.Fatalf("%s: %v", line, err)
		}
	}
}

func expectStack(t *testing.T, engine *Engine, expected string) {
	t.Helper()
	if got := engine.Stack().String(); got != expected {
		t.Fatalf("got %s, expected %s", got, expected)
	}
}

func expectClean(t *testing.T, engine *Engine) {
	t.Helper()
	if engine.BlockDepth() != 1 {
		t.Fatalf("got block depth %v", engine.BlockDepth())
	}
	if engine.Scopes().Depth() != 1 {
		t.Fatalf("got scope depth %v", engine.Scopes().Depth())
	}
	if engine.LoopDepth() != 0 {
		t.Fatalf("got loop depth %v", engine.LoopDepth())
	}
	if engine.CallDepth() != 0 {
		t.Fatalf("got call depth %v", engine.CallDepth())
	}
	if engine.Mode() != StateNormal {
		t.Fatalf("got mode %v", engine.Mode())
	}
}
