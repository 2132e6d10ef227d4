package ops

import (
	"github.com/reusee/wof/woflang"
)

// Register installs the core operations.
func Register(registry *woflang.Registry) {
	registerStack(registry)
	registerMath(registry)
	registerComparison(registry)
	registerLogic(registry)
	registerOutput(registry)
}

func alias(registry *woflang.Registry, target string, aliases ...string) {
	for _, name := range aliases {
		if err := registry.Alias(name, target); err != nil {
			panic(err)
		}
	}
}

func boolValue(b bool) woflang.Value {
	if b {
		return woflang.Integer(1)
	}
	return woflang.Integer(0)
}
