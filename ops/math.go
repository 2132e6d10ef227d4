package ops

import (
	"fmt"
	"math"

	"github.com/reusee/wof/woflang"
)

func registerMath(registry *woflang.Registry) {
	registry.Register("+", arithmetic(Plus, func(a, b float64) (float64, error) {
		return a + b, nil
	}))
	registry.Register("-", arithmetic(Minus, func(a, b float64) (float64, error) {
		return a - b, nil
	}))
	registry.Register("*", arithmetic(Multiply, func(a, b float64) (float64, error) {
		return a * b, nil
	}))
	registry.Register("/", arithmetic(Divide, func(a, b float64) (float64, error) {
		if b == 0 {
			return 0, errDivisionByZero
		}
		return a / b, nil
	}))
	registry.Register("%", arithmetic(Mod, func(a, b float64) (float64, error) {
		if b == 0 {
			return 0, errDivisionByZero
		}
		return math.Mod(a, b), nil
	}))
	alias(registry, "*", "×")
	alias(registry, "/", "÷")

	registry.Register("neg", func(ctx woflang.Context) error {
		v, err := ctx.Pop()
		if err != nil {
			return err
		}
		if v.Kind() == woflang.KindInteger {
			i, _ := v.AsInteger()
			if i == math.MinInt64 {
				return overflow("neg", i, 0)
			}
			ctx.Push(woflang.Integer(-i))
			return nil
		}
		f, err := v.AsFloat()
		if err != nil {
			return err
		}
		ctx.Push(woflang.Float(-f))
		return nil
	})
}

var errDivisionByZero = woflang.InvalidArgument{
	Message: "division by zero",
}

func overflow(op string, a, b int64) error {
	return woflang.OverflowError{
		Message: fmt.Sprintf("%d %s %d", a, op, b),
	}
}

// arithmetic builds a binary handler that stays in integers when both
// operands are integers.
func arithmetic(
	ints func(a, b int64) (int64, error),
	floats func(a, b float64) (float64, error),
) woflang.Handler {
	return func(ctx woflang.Context) error {
		operands, err := ctx.Stack().PopN(2)
		if err != nil {
			return err
		}
		a, b := operands[0], operands[1]
		if a.Kind() == woflang.KindInteger && b.Kind() == woflang.KindInteger {
			x, _ := a.AsInteger()
			y, _ := b.AsInteger()
			ret, err := ints(x, y)
			if err != nil {
				return err
			}
			ctx.Push(woflang.Integer(ret))
			return nil
		}
		x, err := a.AsFloat()
		if err != nil {
			return err
		}
		y, err := b.AsFloat()
		if err != nil {
			return err
		}
		ret, err := floats(x, y)
		if err != nil {
			return err
		}
		ctx.Push(woflang.Float(ret))
		return nil
	}
}

func Plus(a, b int64) (int64, error) {
	ret := a + b
	if (b > 0 && ret < a) || (b < 0 && ret > a) {
		return 0, overflow("+", a, b)
	}
	return ret, nil
}

func Minus(a, b int64) (int64, error) {
	ret := a - b
	if (b > 0 && ret > a) || (b < 0 && ret < a) {
		return 0, overflow("-", a, b)
	}
	return ret, nil
}

func Multiply(a, b int64) (int64, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	ret := a * b
	if ret/b != a || (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
		return 0, overflow("*", a, b)
	}
	return ret, nil
}

func Divide(a, b int64) (int64, error) {
	if b == 0 {
		return 0, errDivisionByZero
	}
	if a == math.MinInt64 && b == -1 {
		return 0, overflow("/", a, b)
	}
	return a / b, nil
}

func Mod(a, b int64) (int64, error) {
	if b == 0 {
		return 0, errDivisionByZero
	}
	if b == -1 {
		return 0, nil
	}
	return a % b, nil
}
