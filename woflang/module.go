package woflang

import (
	"io"
	"os"

	"github.com/reusee/dscope"
	"github.com/reusee/wof/configs"
	"github.com/reusee/wof/logs"
	"github.com/reusee/wof/modes"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}

func (Module) Config(
	loader configs.Loader,
	mode modes.Mode,
) Config {
	return LoadConfig(loader, mode)
}

type Output io.Writer

func (Module) Output() Output {
	return os.Stdout
}

type NewEngine func(options ...Option) *Engine

func (Module) NewEngine(
	config Config,
	logger logs.Logger,
	output Output,
) NewEngine {
	return func(options ...Option) *Engine {
		bindings, err := config.KeyBindings()
		if err != nil {
			logger.Warn("load key bindings", "error", err)
			bindings = DefaultKeyBindings()
		}
		return New(append([]Option{
			WithConfig(config),
			WithLogger(logger),
			WithOutput(output),
			WithKeyBindings(bindings),
		}, options...)...)
	}
}
