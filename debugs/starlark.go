package debugs

import (
	"fmt"

	"github.com/reusee/starlarkutil"
	"github.com/reusee/wof/woflang"
	"go.starlark.net/starlark"
)

func toStarlarkValue(v any) starlark.Value {
	switch v := v.(type) {

	case nil:
		return starlark.None

	case woflang.Value:
		return fromValue(v)

	case string:
		return starlark.String(v)
	case int:
		return starlark.MakeInt(v)

	case []string:
		elems := make([]starlark.Value, len(v))
		for i, s := range v {
			elems[i] = starlark.String(s)
		}
		return starlark.NewList(elems)

	case []woflang.Value:
		elems := make([]starlark.Value, len(v))
		for i, value := range v {
			elems[i] = fromValue(value)
		}
		return starlark.NewList(elems)

	case map[string]woflang.Value:
		d := starlark.NewDict(len(v))
		for k, value := range v {
			d.SetKey(starlark.String(k), fromValue(value))
		}
		return d

	case map[string]any:
		d := starlark.NewDict(len(v))
		for k, val := range v {
			d.SetKey(starlark.String(k), toStarlarkValue(val))
		}
		return d

	case func(string) []string:
		return starlarkutil.MakeFunc("", v)

	}

	panic(fmt.Errorf("unsupported type for starlark: %T", v))
}

func fromValue(v woflang.Value) starlark.Value {
	switch v.Kind() {
	case woflang.KindInteger:
		i, _ := v.AsInteger()
		return starlark.MakeInt64(i)
	case woflang.KindFloat:
		f, _ := v.AsFloat()
		return starlark.Float(f)
	case woflang.KindString, woflang.KindSymbol:
		s, _ := v.AsText()
		return starlark.String(s)
	}
	return starlark.None
}
