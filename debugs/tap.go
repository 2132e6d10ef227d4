package debugs

import (
	"context"

	"github.com/reusee/wof/logs"
	"github.com/reusee/wof/woflang"
	"go.starlark.net/repl"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Tap starts an interactive starlark session over engine state.
type Tap func(ctx context.Context, what string, engine *woflang.Engine)

func (Module) Tap(
	logger logs.Logger,
) Tap {
	return func(ctx context.Context, what string, engine *woflang.Engine) {
		globals := EngineGlobals(engine)
		logger.InfoContext(ctx, "tap: "+what,
			"stack", engine.Stack().Len(),
			"functions", len(engine.Functions()),
		)
		defer func() {
			logger.InfoContext(ctx, "tap end: "+what)
		}()

		mappings := make(starlark.StringDict)
		for name, value := range globals {
			mappings[name] = toStarlarkValue(value)
		}

		thread := &starlark.Thread{
			Name: "tap",
		}
		repl.REPLOptions(&syntax.FileOptions{
			Set:             true,
			While:           true,
			TopLevelControl: true,
		}, thread, mappings)
	}
}
