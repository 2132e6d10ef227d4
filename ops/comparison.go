package ops

import (
	"cmp"

	"github.com/reusee/wof/woflang"
)

func registerComparison(registry *woflang.Registry) {
	registry.Register("=", func(ctx woflang.Context) error {
		operands, err := ctx.Stack().PopN(2)
		if err != nil {
			return err
		}
		ctx.Push(boolValue(Eq(operands[0], operands[1])))
		return nil
	})
	registry.Register("≠", func(ctx woflang.Context) error {
		operands, err := ctx.Stack().PopN(2)
		if err != nil {
			return err
		}
		ctx.Push(boolValue(!Eq(operands[0], operands[1])))
		return nil
	})
	registry.Register("<", ordering(func(c int) bool { return c < 0 }))
	registry.Register(">", ordering(func(c int) bool { return c > 0 }))
	registry.Register("≤", ordering(func(c int) bool { return c <= 0 }))
	registry.Register("≥", ordering(func(c int) bool { return c >= 0 }))
	alias(registry, "=", "＝", "==")
	alias(registry, "≠", "!=")
	alias(registry, "<", "＜")
	alias(registry, ">", "＞")
	alias(registry, "≤", "<=")
	alias(registry, "≥", ">=")
}

// Eq compares numbers by value and everything else by kind and payload.
func Eq(a, b woflang.Value) bool {
	if a.IsNumeric() && b.IsNumeric() {
		c, err := Compare(a, b)
		return err == nil && c == 0
	}
	return a.Equal(b)
}

func Compare(a, b woflang.Value) (int, error) {
	if a.Kind() == woflang.KindInteger && b.Kind() == woflang.KindInteger {
		x, _ := a.AsInteger()
		y, _ := b.AsInteger()
		return cmp.Compare(x, y), nil
	}
	if a.IsNumeric() && b.IsNumeric() {
		x, _ := a.AsFloat()
		y, _ := b.AsFloat()
		return cmp.Compare(x, y), nil
	}
	x, err := a.AsText()
	if err != nil {
		return 0, err
	}
	y, err := b.AsText()
	if err != nil {
		return 0, err
	}
	return cmp.Compare(x, y), nil
}

func ordering(accept func(int) bool) woflang.Handler {
	return func(ctx woflang.Context) error {
		operands, err := ctx.Stack().PopN(2)
		if err != nil {
			return err
		}
		c, err := Compare(operands[0], operands[1])
		if err != nil {
			return err
		}
		ctx.Push(boolValue(accept(c)))
		return nil
	}
}
