package woflang

type loopCollector struct {
	kind    LoopKind
	count   int64
	span    Span
	body    []Token
	nesting nesting
}

func (e *Engine) beginLoop(tok Token, kind LoopKind) error {
	c := &loopCollector{
		kind: kind,
		span: tok.Span,
	}
	var n Value
	if kind == LoopRepeat {
		var err error
		n, err = e.stack.Pop()
		if err != nil {
			return err
		}
		c.count, err = n.AsInteger()
		if err != nil {
			return err
		}
	}
	if _, ok := e.expectBlockOpen(); !ok {
		if kind == LoopRepeat {
			e.stack.Push(n)
			return runtimeErrorf("%s requires: N %s %s body %s", tok.Text, tok.Text, glyphBlockOpen, glyphBlockClose)
		}
		return runtimeErrorf("%s requires: %s %s body %s", tok.Text, tok.Text, glyphBlockOpen, glyphBlockClose)
	}
	e.collecting = c
	return nil
}

func (e *Engine) collectLoopBody(tok Token) error {
	c := e.collecting
	if !c.nesting.track(tok) {
		c.body = append(c.body, tok)
		return nil
	}
	e.collecting = nil
	return WithSpan(e.executeLoop(c), c.span)
}

func (e *Engine) executeLoop(c *loopCollector) error {
	frame := &LoopFrame{
		Body:          c.body,
		Kind:          c.kind,
		MaxIterations: e.config.MaxLoopIterations,
		CallDepth:     len(e.calls),
	}
	blockType := BlockLoop
	if c.kind == LoopRepeat {
		frame.MaxIterations = max(c.count, 0)
		blockType = BlockRepeat
	}

	outer := e.tokens
	base := len(e.calls)
	depth := e.blockStack.Depth()
	e.loops = append(e.loops, frame)
	e.pushBlock(blockType, c.span, "")
	e.logger.DebugContext(e.ctx, "loop start",
		"kind", frame.Kind,
		"max", frame.MaxIterations,
	)
	defer func() {
		e.unwindCalls(base)
		e.popBlocksTo(depth)
		e.loops = e.loops[:len(e.loops)-1]
		if e.jumping == nil {
			e.tokens = outer
		}
		e.logger.DebugContext(e.ctx, "loop end",
			"kind", frame.Kind,
			"iterations", frame.Iteration,
		)
	}()

	for {
		if frame.Iteration >= frame.MaxIterations {
			if frame.Kind == LoopRepeat {
				return nil
			}
			return runtimeErrorf("infinite loop safety limit reached (%d iterations)", frame.MaxIterations)
		}
		if frame.Kind == LoopWhile {
			cond, err := e.stack.Pop()
			if err != nil {
				return err
			}
			if !cond.Truthy() {
				return nil
			}
		}
		frame.Iteration++

		e.tokens = frame.Body
		if err := e.run(base); err != nil {
			return err
		}
		if e.breaking {
			e.breaking = false
			return nil
		}
		if e.returning || e.jumping != nil {
			return nil
		}
		e.continuing = false
		e.unwindCalls(base)
		e.popBlocksTo(depth + 1)
	}
}
