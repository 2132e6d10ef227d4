package ops

import "github.com/reusee/wof/woflang"

func registerStack(registry *woflang.Registry) {
	registry.Register("dup", func(ctx woflang.Context) error {
		return ctx.Stack().Dup()
	})
	registry.Register("drop", func(ctx woflang.Context) error {
		return ctx.Stack().Drop()
	})
	registry.Register("swap", func(ctx woflang.Context) error {
		return ctx.Stack().Swap()
	})
	registry.Register("over", func(ctx woflang.Context) error {
		return ctx.Stack().Over()
	})
	registry.Register("rot", func(ctx woflang.Context) error {
		return ctx.Stack().Rot()
	})
	registry.Register("clear", func(ctx woflang.Context) error {
		ctx.Clear()
		return nil
	})
	registry.Register("depth", func(ctx woflang.Context) error {
		ctx.Push(woflang.Integer(int64(ctx.Stack().Len())))
		return nil
	})
}
