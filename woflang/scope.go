package woflang

import (
	"slices"

	"github.com/samber/lo"
)

type Scope struct {
	Parent *Scope
	Block  BlockID
	Vars   map[string]Value
}

func (s *Scope) Get(name string) (Value, bool) {
	for scope := s; scope != nil; scope = scope.Parent {
		if v, ok := scope.Vars[name]; ok {
			return v, true
		}
	}
	return Value{}, false
}

func (s *Scope) Def(name string, v Value) {
	if s.Vars == nil {
		s.Vars = make(map[string]Value)
	}
	s.Vars[name] = v
}

func (s *Scope) Set(name string, v Value) bool {
	for scope := s; scope != nil; scope = scope.Parent {
		if _, ok := scope.Vars[name]; ok {
			scope.Vars[name] = v
			return true
		}
	}
	return false
}

func (s *Scope) NewChild(block BlockID) *Scope {
	return &Scope{
		Parent: s,
		Block:  block,
	}
}

// ScopeStack is the chain of variable scopes. The global scope is never popped.
type ScopeStack struct {
	global  *Scope
	current *Scope
	depth   int
}

func NewScopeStack() *ScopeStack {
	global := &Scope{
		Block: RootBlock,
	}
	return &ScopeStack{
		global:  global,
		current: global,
		depth:   1,
	}
}

func (s *ScopeStack) Push(block BlockID) {
	s.current = s.current.NewChild(block)
	s.depth++
}

func (s *ScopeStack) Pop() bool {
	if s.current == s.global {
		return false
	}
	s.current = s.current.Parent
	s.depth--
	return true
}

func (s *ScopeStack) Current() *Scope {
	return s.current
}

func (s *ScopeStack) Global() *Scope {
	return s.global
}

func (s *ScopeStack) Depth() int {
	return s.depth
}

func (s *ScopeStack) Define(name string, v Value) {
	s.current.Def(name, v)
}

func (s *ScopeStack) Lookup(name string) (Value, bool) {
	return s.current.Get(name)
}

func (s *ScopeStack) IsDefined(name string) bool {
	_, ok := s.current.Get(name)
	return ok
}

func (s *ScopeStack) Set(name string, v Value) error {
	if !s.current.Set(name, v) {
		return UndefinedVariable{
			Name: name,
		}
	}
	return nil
}

func (s *ScopeStack) VisibleNames() []string {
	var names []string
	for scope := s.current; scope != nil; scope = scope.Parent {
		names = append(names, lo.Keys(scope.Vars)...)
	}
	names = lo.Uniq(names)
	slices.Sort(names)
	return names
}

// Visible returns the bindings visible from the innermost scope.
func (s *ScopeStack) Visible() map[string]Value {
	ret := make(map[string]Value)
	for scope := s.current; scope != nil; scope = scope.Parent {
		for name, v := range scope.Vars {
			if _, ok := ret[name]; !ok {
				ret[name] = v
			}
		}
	}
	return ret
}
