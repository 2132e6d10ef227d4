package woflang

func (e *Engine) beginIf(tok Token) error {
	cond, err := e.stack.Pop()
	if err != nil {
		return err
	}
	if cond.Truthy() {
		e.pushBlock(BlockIf, tok.Span, "")
		return nil
	}
	e.skip = new(nesting)
	return nil
}

// beginElse is reached after a taken then-branch; the else-branch is skipped.
func (e *Engine) beginElse() {
	if e.currentBlock().Type == BlockIf {
		e.popBlock()
	}
	e.skip = new(nesting)
}

func (e *Engine) skipToken(tok Token) {
	if e.skip.depth == 0 && keywordOf(tok) == kwElse {
		e.skip = nil
		e.pushBlock(BlockElse, tok.Span, "")
		return
	}
	if e.skip.track(tok) {
		e.skip = nil
	}
}

func (e *Engine) closeBlock() error {
	info := e.currentBlock()
	if info.ID == RootBlock || info.Type == BlockFunction || info.Type.IsLoop() {
		return runtimeErrorf("unexpected %s", glyphBlockClose)
	}
	e.popBlock()
	return nil
}
