package debugs

import (
	"testing"

	"github.com/reusee/wof/woflang"
	"go.starlark.net/starlark"
)

func TestToStarlarkValue(t *testing.T) {
	testCases := []struct {
		name     string
		input    any
		expected starlark.Value
	}{
		{"nil", nil, starlark.None},
		{"string", "hello", starlark.String("hello")},
		{"int", 42, starlark.MakeInt(42)},
		{"names", []string{"a", "b"}, starlark.NewList([]starlark.Value{starlark.String("a"), starlark.String("b")})},
		{"integer", woflang.Integer(7), starlark.MakeInt64(7)},
		{"float", woflang.Float(1.5), starlark.Float(1.5)},
		{"text", woflang.String("hi"), starlark.String("hi")},
		{"symbol", woflang.Symbol("@top"), starlark.String("@top")},
		{"nil value", woflang.Nil(), starlark.None},
		{"stack", []woflang.Value{woflang.Integer(1), woflang.String("a")}, starlark.NewList([]starlark.Value{starlark.MakeInt64(1), starlark.String("a")})},
		{"vars", map[string]woflang.Value{"x": woflang.Integer(2)}, func() starlark.Value {
			d := starlark.NewDict(1)
			d.SetKey(starlark.String("x"), starlark.MakeInt64(2))
			return d
		}()},
		{"nested", map[string]any{"depth": map[string]any{"loops": 1}}, func() starlark.Value {
			inner := starlark.NewDict(1)
			inner.SetKey(starlark.String("loops"), starlark.MakeInt(1))
			d := starlark.NewDict(1)
			d.SetKey(starlark.String("depth"), inner)
			return d
		}()},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			actual := toStarlarkValue(tc.input)
			equal, err := starlark.Equal(actual, tc.expected)
			if err != nil {
				t.Fatalf("comparison failed: %v", err)
			}
			if !equal {
				t.Errorf("toStarlarkValue(%#v) = %v, want %v", tc.input, actual, tc.expected)
			}
		})
	}

	t.Run("function", func(t *testing.T) {
		fn := toStarlarkValue(func(name string) []string {
			return []string{name, name}
		})
		if _, ok := fn.(starlark.Callable); !ok {
			t.Fatalf("got %T", fn)
		}
	})

	t.Run("panic on unsupported type", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("toStarlarkValue did not panic on unsupported type")
			}
		}()
		toStarlarkValue(make(chan bool))
	})
}
