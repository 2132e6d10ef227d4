package ops

import (
	"fmt"

	"github.com/reusee/wof/woflang"
)

func registerOutput(registry *woflang.Registry) {
	registry.Register(".", func(ctx woflang.Context) error {
		v, err := ctx.Pop()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(ctx.Output(), v.String())
		return err
	})
	alias(registry, ".", "print")
	registry.Register(".s", func(ctx woflang.Context) error {
		_, err := fmt.Fprintln(ctx.Output(), ctx.Stack().String())
		return err
	})
}
