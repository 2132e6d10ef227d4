package woflang

import (
	"os"
	"strings"
)

const lineSourceName = "<line>"

// ExecLine tokenizes and dispatches one line. Engine state persists across calls.
func (e *Engine) ExecLine(line string) error {
	if strings.TrimSpace(line) == "" {
		return nil
	}
	return e.ExecSource(lineSourceName, line)
}

func (e *Engine) ExecSource(name string, content string) error {
	source := NewSource(name, content)
	return e.exec(source, Tokenize(source))
}

// ExecFile runs a whole file as one buffer, so labels may be targeted from
// any line of it. A top level return ends only its own line.
func (e *Engine) ExecFile(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return wrap(err)
	}
	return e.ExecSource(path, string(content))
}

func (e *Engine) exec(source *Source, tokens []Token) error {
	if n := len(tokens); n > 0 && tokens[n-1].Kind == TokenEOF {
		tokens = tokens[:n-1]
	}
	if len(tokens) == 0 {
		return nil
	}
	if e.config.ExpandBindings && e.bindings != nil {
		tokens = e.bindings.Expand(tokens)
	}
	if e.Mode() == StateNormal {
		e.prescanLabels(tokens)
	}

	depth := e.blockStack.Depth()
	e.tokens = tokens
	e.jumps = 0
	err := e.run(0)
	if err != nil {
		e.recover(depth)
	}
	e.tokens = nil

	if e.config.Debug {
		e.logger.DebugContext(e.ctx, "exec",
			"source", source.Name,
			"stack", e.stack.String(),
			"scopes", e.scopes.Depth(),
			"blocks", e.blockStack.Depth(),
			"state", e.Mode(),
		)
	}
	return err
}

// recover discards frames and signals left by a failed execution and
// unwinds blocks to depth.
func (e *Engine) recover(depth int) {
	e.unwindCalls(0)
	e.loops = e.loops[:0]
	e.breaking = false
	e.continuing = false
	e.returning = false
	e.jumping = nil
	e.popBlocksTo(depth)
}
