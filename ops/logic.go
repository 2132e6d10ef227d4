package ops

import "github.com/reusee/wof/woflang"

func registerLogic(registry *woflang.Registry) {
	registry.Register("∧", func(ctx woflang.Context) error {
		operands, err := ctx.Stack().PopN(2)
		if err != nil {
			return err
		}
		ctx.Push(boolValue(operands[0].Truthy() && operands[1].Truthy()))
		return nil
	})
	registry.Register("∨", func(ctx woflang.Context) error {
		operands, err := ctx.Stack().PopN(2)
		if err != nil {
			return err
		}
		ctx.Push(boolValue(operands[0].Truthy() || operands[1].Truthy()))
		return nil
	})
	registry.Register("¬", func(ctx woflang.Context) error {
		v, err := ctx.Pop()
		if err != nil {
			return err
		}
		ctx.Push(boolValue(!v.Truthy()))
		return nil
	})
	registry.Register("⊻", func(ctx woflang.Context) error {
		operands, err := ctx.Stack().PopN(2)
		if err != nil {
			return err
		}
		ctx.Push(boolValue(operands[0].Truthy() != operands[1].Truthy()))
		return nil
	})
}
