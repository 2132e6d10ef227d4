package debugs

import (
	"github.com/reusee/wof/woflang"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// EngineGlobals exposes engine state to starlark.
func EngineGlobals(engine *woflang.Engine) map[string]any {
	return map[string]any{
		"stack":      engine.Stack().Values(),
		"vars":       engine.Scopes().Visible(),
		"functions":  engine.Functions(),
		"labels":     engine.Labels(),
		"operations": engine.Registry().Names(),
		"state":      engine.Mode().String(),
		"depth": map[string]any{
			"blocks": engine.BlockDepth(),
			"scopes": engine.Scopes().Depth(),
			"loops":  engine.LoopDepth(),
			"calls":  engine.CallDepth(),
		},
		"body": func(name string) []string {
			def, ok := engine.Function(name)
			if !ok {
				return nil
			}
			texts := make([]string, 0, len(def.Body))
			for _, tok := range def.Body {
				texts = append(texts, tok.Text)
			}
			return texts
		},
	}
}

func Inspect(engine *woflang.Engine, expr string) (starlark.Value, error) {
	globals := make(starlark.StringDict)
	for name, value := range EngineGlobals(engine) {
		globals[name] = toStarlarkValue(value)
	}
	thread := &starlark.Thread{
		Name: "inspect",
	}
	return starlark.EvalOptions(&syntax.FileOptions{}, thread, "inspect", expr, globals)
}
