package woflang

func (e *Engine) defineVar(tok Token) error {
	name, ok := e.expectName()
	if !ok {
		return runtimeErrorf("%s requires a variable name", tok.Text)
	}
	v, err := e.stack.Pop()
	if err != nil {
		e.pushBack(name)
		return err
	}
	e.scopes.Define(name.Text, v)
	return nil
}

func (e *Engine) setVar(tok Token) error {
	name, ok := e.expectName()
	if !ok {
		return runtimeErrorf("%s requires a variable name", tok.Text)
	}
	if !e.scopes.IsDefined(name.Text) {
		return WithSpan(UndefinedVariable{Name: name.Text}, name.Span)
	}
	v, err := e.stack.Pop()
	if err != nil {
		e.pushBack(name)
		return err
	}
	return e.scopes.Set(name.Text, v)
}

func (e *Engine) getVar(tok Token) error {
	name, ok := e.expectName()
	if !ok {
		return runtimeErrorf("%s requires a variable name", tok.Text)
	}
	v, ok := e.scopes.Lookup(name.Text)
	if !ok {
		return WithSpan(UndefinedVariable{Name: name.Text}, name.Span)
	}
	e.stack.Push(v)
	return nil
}

func (e *Engine) DefineVar(name string, v Value) {
	e.scopes.Define(name, v)
}

func (e *Engine) SetVar(name string, v Value) error {
	return e.scopes.Set(name, v)
}
