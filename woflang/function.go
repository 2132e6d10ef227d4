package woflang

type functionCollector struct {
	name    string
	span    Span
	body    []Token
	nesting nesting
}

func (e *Engine) beginFunction(tok Token) error {
	name, ok := e.expectName()
	if !ok {
		return runtimeErrorf("%s requires: %s name %s body %s", tok.Text, tok.Text, glyphBlockOpen, glyphBlockClose)
	}
	if _, ok := e.expectBlockOpen(); !ok {
		e.pushBack(name)
		return runtimeErrorf("%s requires: %s name %s body %s", tok.Text, tok.Text, glyphBlockOpen, glyphBlockClose)
	}
	e.defining = &functionCollector{
		name: name.Text,
		span: name.Span,
	}
	return nil
}

func (e *Engine) collectFunctionBody(tok Token) {
	c := e.defining
	if !c.nesting.track(tok) {
		c.body = append(c.body, tok)
		return
	}
	e.defining = nil
	e.functions[c.name] = &FunctionDef{
		Name: c.name,
		Body: c.body,
		Span: c.span,
	}
	e.logger.DebugContext(e.ctx, "function defined",
		"name", c.name,
		"tokens", len(c.body),
	)
}

func (e *Engine) callByName(tok Token) error {
	name, ok := e.expectName()
	if !ok {
		return runtimeErrorf("%s requires a function name", tok.Text)
	}
	def, ok := e.functions[name.Text]
	if !ok {
		return WithSpan(UndefinedFunction{Name: name.Text}, name.Span)
	}
	return e.call(def, name)
}

func (e *Engine) call(def *FunctionDef, tok Token) error {
	if len(e.calls) >= e.config.MaxCallDepth {
		return runtimeErrorf("call depth limit reached (%d frames)", e.config.MaxCallDepth)
	}
	if def.Arity > 0 && !e.stack.Has(def.Arity) {
		return StackUnderflow{
			Expected: def.Arity,
			Found:    e.stack.Len(),
		}
	}
	e.calls = append(e.calls, CallFrame{
		Name:       def.Name,
		Remaining:  e.tokens,
		BlockDepth: e.blockStack.Depth(),
		LoopDepth:  len(e.loops),
	})
	e.pushBlock(BlockFunction, tok.Span, def.Name)
	e.tokens = def.Body
	if e.config.Debug {
		e.logger.DebugContext(e.ctx, "call",
			"name", def.Name,
			"depth", len(e.calls),
		)
	}
	return nil
}

// finishCall pops the innermost call frame and resumes its caller.
func (e *Engine) finishCall() {
	frame := e.calls[len(e.calls)-1]
	e.calls = e.calls[:len(e.calls)-1]
	e.popBlocksTo(frame.BlockDepth)
	e.tokens = frame.Remaining
}

// completeReturn finishes a pending return once loops opened inside the
// returning function have unwound. It reports false while such loops remain.
func (e *Engine) completeReturn() bool {
	if n := len(e.calls); n > 0 {
		if e.calls[n-1].LoopDepth < len(e.loops) {
			return false
		}
		e.returning = false
		e.finishCall()
		return true
	}
	if len(e.loops) > 0 {
		return false
	}
	// at top level a return ends the line it appears on
	e.returning = false
	for len(e.tokens) > 0 && e.tokens[0].Span.Line <= e.returnLine {
		e.tokens = e.tokens[1:]
	}
	return true
}

func (e *Engine) unwindCalls(base int) {
	for len(e.calls) > base {
		frame := e.calls[len(e.calls)-1]
		e.calls = e.calls[:len(e.calls)-1]
		e.popBlocksTo(frame.BlockDepth)
	}
}
