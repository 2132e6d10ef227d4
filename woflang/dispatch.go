package woflang

import (
	"fmt"
	"strconv"
)

type keyword uint8

const (
	kwNone keyword = iota
	kwDefineFunction
	kwCall
	kwReturn
	kwLoop
	kwRepeat
	kwWhile
	kwBreak
	kwContinue
	kwDefineVar
	kwSetVar
	kwGetVar
	kwIf
	kwThen
	kwElse
	kwBlockOpen
	kwBlockClose
	kwGoto
)

const (
	glyphBlockOpen  = "⺆"
	glyphBlockClose = "⺘"
)

var keywords = map[string]keyword{
	"⊕":    kwDefineFunction,
	"fn":   kwDefineFunction,
	"func": kwDefineFunction,
	"def":  kwDefineFunction,

	"巡":    kwCall,
	"call": kwCall,

	"至":      kwReturn,
	"return": kwReturn,
	"ret":    kwReturn,

	"⟳":    kwLoop,
	"loop": kwLoop,

	"⨯":      kwRepeat,
	"times":  kwRepeat,
	"repeat": kwRepeat,

	"⥁":     kwWhile,
	"while": kwWhile,

	"🛑":     kwBreak,
	"break": kwBreak,

	"↻":        kwContinue,
	"continue": kwContinue,

	"字":      kwDefineVar,
	"define": kwDefineVar,
	"let":    kwDefineVar,

	"支":     kwSetVar,
	"set":   kwSetVar,
	"store": kwSetVar,

	"読":    kwGetVar,
	"load": kwGetVar,
	"get":  kwGetVar,

	"若":  kwIf,
	"if": kwIf,

	"則":    kwThen,
	"then": kwThen,

	"或":    kwElse,
	"else": kwElse,

	glyphBlockOpen:  kwBlockOpen,
	glyphBlockClose: kwBlockClose,

	"goto": kwGoto,
	"jump": kwGoto,
	"跳":    kwGoto,
}

func keywordOf(tok Token) keyword {
	if tok.Kind != TokenSymbol {
		return kwNone
	}
	return keywords[tok.Text]
}

func IsKeyword(name string) bool {
	_, ok := keywords[name]
	return ok
}

// nesting counts block depth over raw tokens while skipping or collecting.
type nesting struct {
	depth int
	// a loop header opens a level and owns the block-open that follows it
	absorbOpen bool
}

// track reports whether tok closes the outermost level.
func (n *nesting) track(tok Token) bool {
	kw := keywordOf(tok)
	absorb := n.absorbOpen
	n.absorbOpen = false
	switch kw {
	case kwBlockClose:
		if n.depth == 0 {
			return true
		}
		n.depth--
	case kwBlockOpen:
		if !absorb {
			n.depth++
		}
	case kwLoop, kwRepeat, kwWhile:
		n.depth++
		n.absorbOpen = true
	case kwIf:
		n.depth++
	}
	return false
}

func (e *Engine) next() (Token, bool) {
	if len(e.tokens) == 0 {
		return Token{}, false
	}
	tok := e.tokens[0]
	e.tokens = e.tokens[1:]
	return tok, true
}

func (e *Engine) pushBack(tok Token) {
	tokens := make([]Token, 0, len(e.tokens)+1)
	tokens = append(tokens, tok)
	e.tokens = append(tokens, e.tokens...)
}

// run dispatches the active buffer until it drains, finishing call frames
// opened above base.
func (e *Engine) run(base int) error {
	for {
		if e.breaking || e.continuing {
			return nil
		}
		if e.jumping != nil {
			if !e.land() {
				return nil
			}
			continue
		}
		if e.returning {
			if !e.completeReturn() {
				return nil
			}
			continue
		}
		tok, ok := e.next()
		if !ok {
			if len(e.calls) > base {
				e.finishCall()
				continue
			}
			return nil
		}
		if err := e.dispatch(tok); err != nil {
			return err
		}
	}
}

func (e *Engine) dispatch(tok Token) error {
	e.ip++
	if e.config.Debug {
		e.logger.DebugContext(e.ctx, "dispatch",
			"token", tok.Text,
			"kind", tok.Kind,
			"state", e.Mode(),
			"stack", e.stack.Len(),
		)
	}
	var err error
	switch {
	case e.collecting != nil:
		err = e.collectLoopBody(tok)
	case e.defining != nil:
		e.collectFunctionBody(tok)
	case e.skip != nil:
		e.skipToken(tok)
	default:
		err = e.dispatchNormal(tok)
	}
	return WithSpan(err, tok.Span)
}

func (e *Engine) dispatchNormal(tok Token) error {
	switch tok.Kind {

	case TokenInteger:
		i, err := strconv.ParseInt(tok.Text, 10, 64)
		if err != nil {
			return ParseError{
				Message: fmt.Sprintf("invalid integer %q", tok.Text),
				Span:    tok.Span,
			}
		}
		e.stack.Push(Integer(i))

	case TokenFloat:
		f, err := strconv.ParseFloat(tok.Text, 64)
		if err != nil {
			return ParseError{
				Message: fmt.Sprintf("invalid float %q", tok.Text),
				Span:    tok.Span,
			}
		}
		e.stack.Push(Float(f))

	case TokenString:
		e.stack.Push(String(Unescape(tok.Text)))

	case TokenLabel:
		e.defineLabel(tok)

	case TokenLabelRef:
		e.stack.Push(Symbol(tok.Text))

	case TokenSymbol:
		return e.dispatchSymbol(tok)

	}
	return nil
}

func (e *Engine) dispatchSymbol(tok Token) error {
	if kw := keywordOf(tok); kw != kwNone {
		return e.dispatchKeyword(kw, tok)
	}
	if handler, ok := e.registry.Lookup(tok.Text); ok {
		return handler(e)
	}
	if def, ok := e.functions[tok.Text]; ok {
		return e.call(def, tok)
	}
	if v, ok := e.scopes.Lookup(tok.Text); ok {
		e.stack.Push(v)
		return nil
	}
	e.stack.Push(Symbol(tok.Text))
	return nil
}

func (e *Engine) dispatchKeyword(kw keyword, tok Token) error {
	switch kw {
	case kwDefineFunction:
		return e.beginFunction(tok)
	case kwCall:
		return e.callByName(tok)
	case kwReturn:
		e.returning = true
		e.returnLine = tok.Span.Line
	case kwLoop:
		return e.beginLoop(tok, LoopInfinite)
	case kwRepeat:
		return e.beginLoop(tok, LoopRepeat)
	case kwWhile:
		return e.beginLoop(tok, LoopWhile)
	case kwBreak:
		if len(e.loops) == 0 {
			return runtimeErrorf("%s (break) outside of loop", tok.Text)
		}
		e.breaking = true
	case kwContinue:
		if len(e.loops) == 0 {
			return runtimeErrorf("%s (continue) outside of loop", tok.Text)
		}
		e.continuing = true
	case kwDefineVar:
		return e.defineVar(tok)
	case kwSetVar:
		return e.setVar(tok)
	case kwGetVar:
		return e.getVar(tok)
	case kwIf:
		return e.beginIf(tok)
	case kwThen:
		// optional marker after a condition
	case kwElse:
		e.beginElse()
	case kwBlockOpen:
		e.pushBlock(BlockGeneric, tok.Span, "")
	case kwBlockClose:
		return e.closeBlock()
	case kwGoto:
		return e.jump(tok)
	}
	return nil
}

// expectName consumes a name token following a keyword. On mismatch the
// token is pushed back.
func (e *Engine) expectName() (Token, bool) {
	tok, ok := e.next()
	if !ok {
		return Token{}, false
	}
	if tok.Kind != TokenSymbol || keywordOf(tok) != kwNone {
		e.pushBack(tok)
		return Token{}, false
	}
	return tok, true
}

func (e *Engine) expectBlockOpen() (Token, bool) {
	tok, ok := e.next()
	if !ok {
		return Token{}, false
	}
	if keywordOf(tok) != kwBlockOpen {
		e.pushBack(tok)
		return Token{}, false
	}
	return tok, true
}
