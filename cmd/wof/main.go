package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/reusee/dscope"
	"github.com/reusee/wof/cmds"
	"github.com/reusee/wof/configs"
	"github.com/reusee/wof/debugs"
	"github.com/reusee/wof/logs"
	"github.com/reusee/wof/modes"
	"github.com/reusee/wof/ops"
	"github.com/reusee/wof/woflang"
	"golang.org/x/term"
)

var (
	runFiles    = cmds.Collect[string]("run")
	execLines   = cmds.Collect[string]("exec")
	configFiles = cmds.Collect[string]("config")
	bindsFile   = cmds.Var[string]("binds")
	inspectExpr = cmds.Var[string]("inspect")
	doTap       = cmds.Switch("tap")
	printStack  = cmds.Switch("stack")
	listBinds   = cmds.Switch("list-binds")
)

func main() {
	cmds.Execute(os.Args[1:])

	dscope.New(
		new(Module),
		modes.ForProduction(),
		dscope.Provide(configs.NewLoader(*configFiles, woflang.ConfigSchema)),
	).Call(func(
		logger logs.Logger,
		newSpan logs.NewSpan,
		newEngine woflang.NewEngine,
		config woflang.Config,
		tap debugs.Tap,
	) {
		ctx, _ := newSpan(context.Background(), "", "args", os.Args[1:])
		fail := func(err error) {
			if err == nil {
				return
			}
			logger.DebugContext(ctx, "failed", "error", err)
			color := isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())
			os.Stderr.WriteString(woflang.Diagnose(err).Render(color))
			os.Exit(1)
		}

		engine := newEngine(
			woflang.WithContext(ctx),
			woflang.WithPlugins(ops.Register),
		)
		fail(loadBindings(engine, config))

		if *listBinds {
			for _, binding := range engine.Bindings().All() {
				fmt.Printf("%s\t%s\n", binding.Alias, binding.Glyph)
			}
		}

		if len(*runFiles) == 0 && len(*execLines) == 0 && !term.IsTerminal(int(os.Stdin.Fd())) {
			content, err := io.ReadAll(os.Stdin)
			fail(err)
			fail(engine.ExecSource("<stdin>", string(content)))
		}
		for _, path := range *runFiles {
			fail(engine.ExecFile(path))
		}
		for _, line := range *execLines {
			fail(engine.ExecLine(line))
		}

		if *inspectExpr != "" {
			value, err := debugs.Inspect(engine, *inspectExpr)
			fail(err)
			fmt.Println(value)
		}
		if *doTap {
			tap(ctx, "wof", engine)
		}
		if *printStack {
			fmt.Println(engine.Stack())
		}
	})
}

// loadBindings merges the user bindings file. The binds command takes
// precedence over ~/.wofbinds; a configured bindings_file is already loaded.
func loadBindings(engine *woflang.Engine, config woflang.Config) error {
	path := *bindsFile
	if path == "" {
		if config.BindingsFile != "" {
			return nil
		}
		var err error
		path, err = woflang.DefaultKeyBindingsPath()
		if err != nil {
			return err
		}
	}
	if err := engine.Bindings().Load(path); err != nil {
		return err
	}
	// inline config bindings win over files
	for alias, glyph := range config.Bindings {
		engine.Bindings().Bind(alias, glyph)
	}
	return nil
}
