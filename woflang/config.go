package woflang

import (
	"github.com/reusee/wof/configs"
	"github.com/reusee/wof/modes"
	"github.com/reusee/wof/vars"
)

type Config struct {
	MaxLoopIterations int64             `json:"max_loop_iterations"`
	MaxJumps          int               `json:"max_jumps"`
	MaxCallDepth      int               `json:"max_call_depth"`
	ExpandBindings    bool              `json:"expand_bindings"`
	Debug             bool              `json:"debug"`
	BindingsFile      string            `json:"bindings_file"`
	Bindings          map[string]string `json:"bindings"`
}

const ConfigSchema = `
max_loop_iterations?: int & >0
max_jumps?: int & >0
max_call_depth?: int & >0
expand_bindings?: bool
debug?: bool
bindings_file?: string
bindings?: [string]: string
`

const (
	DefaultMaxLoopIterations = 1_000_000
	DefaultMaxJumps          = 1_000_000
	DefaultMaxCallDepth      = 10_000
)

func DefaultConfig() Config {
	return Config{
		MaxLoopIterations: DefaultMaxLoopIterations,
		MaxJumps:          DefaultMaxJumps,
		MaxCallDepth:      DefaultMaxCallDepth,
		ExpandBindings:    true,
	}
}

func LoadConfig(loader configs.Loader, mode modes.Mode) Config {
	config := DefaultConfig()
	config.MaxLoopIterations = vars.FirstNonZero(
		configs.First[int64](loader, "max_loop_iterations"),
		config.MaxLoopIterations,
	)
	config.MaxJumps = vars.FirstNonZero(
		configs.First[int](loader, "max_jumps"),
		config.MaxJumps,
	)
	config.MaxCallDepth = vars.FirstNonZero(
		configs.First[int](loader, "max_call_depth"),
		config.MaxCallDepth,
	)
	if v := configs.First[*bool](loader, "expand_bindings"); v != nil {
		config.ExpandBindings = *v
	}
	if v := configs.First[*bool](loader, "debug"); v != nil {
		config.Debug = *v
	} else {
		config.Debug = mode == modes.ModeDevelopment
	}
	config.BindingsFile = configs.First[string](loader, "bindings_file")
	for bindings := range configs.All[map[string]string](loader, "bindings") {
		if config.Bindings == nil {
			config.Bindings = make(map[string]string)
		}
		// earlier files take precedence
		for alias, glyph := range bindings {
			if _, ok := config.Bindings[alias]; !ok {
				config.Bindings[alias] = glyph
			}
		}
	}
	return config
}

func (c Config) KeyBindings() (*KeyBindings, error) {
	bindings := DefaultKeyBindings()
	if c.BindingsFile != "" {
		if err := bindings.Load(c.BindingsFile); err != nil {
			return nil, err
		}
	}
	for alias, glyph := range c.Bindings {
		bindings.Bind(alias, glyph)
	}
	return bindings, nil
}
