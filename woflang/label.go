package woflang

import (
	"fmt"
	"strings"
)

const listLabelsName = "labels"

// labelTarget is a continuation plus the call and loop depths it was
// recorded at. A jump unwinds frames opened above those depths.
type labelTarget struct {
	Tokens []Token
	Calls  int
	Loops  int
}

func (e *Engine) defineLabel(tok Token) {
	name := strings.TrimPrefix(tok.Text, ":")
	switch name {
	case "":
		return
	case listLabelsName:
		e.listLabels()
		return
	}
	e.labels[name] = labelTarget{
		Tokens: e.tokens,
		Calls:  len(e.calls),
		Loops:  len(e.loops),
	}
	e.logger.DebugContext(e.ctx, "label defined",
		"name", name,
		"tokens", len(e.tokens),
	)
}

// prescanLabels registers the labels at nesting depth zero of a buffer so
// they can be targeted before being reached.
func (e *Engine) prescanLabels(tokens []Token) {
	var n nesting
	for i, tok := range tokens {
		if tok.Kind == TokenLabel && n.depth == 0 {
			name := strings.TrimPrefix(tok.Text, ":")
			if name != "" && name != listLabelsName {
				e.labels[name] = labelTarget{
					Tokens: tokens[i+1:],
				}
			}
		}
		n.track(tok)
	}
}

func (e *Engine) listLabels() {
	names := e.Labels()
	if len(names) == 0 {
		fmt.Fprintln(e.output, "no labels defined")
		return
	}
	fmt.Fprintf(e.output, "labels: %s\n", strings.Join(names, ", "))
}

func (e *Engine) jump(tok Token) error {
	target, ok := e.next()
	if !ok || (target.Kind != TokenLabelRef && target.Kind != TokenSymbol) {
		if ok {
			e.pushBack(target)
		}
		return runtimeErrorf("%s requires a label: %s @name", tok.Text, tok.Text)
	}
	name := strings.TrimPrefix(target.Text, "@")
	continuation, ok := e.labels[name]
	if !ok {
		return WithSpan(UndefinedLabel{Name: name}, target.Span)
	}
	e.jumps++
	if e.jumps > e.config.MaxJumps {
		return runtimeErrorf("jump safety limit reached (%d jumps)", e.config.MaxJumps)
	}
	dest := e.reachable(continuation)
	e.jumping = &dest
	if e.config.Debug {
		e.logger.DebugContext(e.ctx, "jump",
			"label", name,
			"tokens", len(dest.Tokens),
			"calls", dest.Calls,
			"loops", dest.Loops,
		)
	}
	return nil
}

// reachable lowers the depths of a label to frames that are still active.
// Loops must keep the calls they were started under, and calls the loops
// they were made in.
func (e *Engine) reachable(target labelTarget) labelTarget {
	target.Calls = min(target.Calls, len(e.calls))
	target.Loops = min(target.Loops, len(e.loops))
	for {
		switch {
		case target.Loops > 0 && e.loops[target.Loops-1].CallDepth > target.Calls:
			target.Loops--
		case target.Calls > 0 && e.calls[target.Calls-1].LoopDepth > target.Loops:
			target.Calls--
		default:
			return target
		}
	}
}

// land finishes a pending jump once the enclosing loops above its level have
// exited. It reports false while such loops remain.
func (e *Engine) land() bool {
	target := e.jumping
	if len(e.loops) > target.Loops {
		return false
	}
	e.jumping = nil
	e.unwindCalls(target.Calls)
	// conditional blocks left behind would never see their closing token
	for info := e.currentBlock(); info.ID != RootBlock && !info.Type.CreatesScope(); info = e.currentBlock() {
		e.popBlock()
	}
	e.tokens = target.Tokens
	return true
}
