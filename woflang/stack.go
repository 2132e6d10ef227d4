package woflang

import "strings"

type Stack struct {
	values []Value
}

func NewStack() *Stack {
	return &Stack{
		values: make([]Value, 0, 64),
	}
}

func (s *Stack) Push(v Value) {
	s.values = append(s.values, v)
}

func (s *Stack) Pop() (Value, error) {
	if len(s.values) == 0 {
		return Value{}, StackUnderflow{Expected: 1, Found: 0}
	}
	v := s.values[len(s.values)-1]
	s.values[len(s.values)-1] = Value{}
	s.values = s.values[:len(s.values)-1]
	return v, nil
}

func (s *Stack) Peek() (Value, error) {
	return s.PeekAt(0)
}

// PeekAt returns the value n positions below the top.
func (s *Stack) PeekAt(n int) (Value, error) {
	if n < 0 || n >= len(s.values) {
		return Value{}, StackUnderflow{Expected: n + 1, Found: len(s.values)}
	}
	return s.values[len(s.values)-1-n], nil
}

func (s *Stack) Len() int {
	return len(s.values)
}

func (s *Stack) Has(n int) bool {
	return len(s.values) >= n
}

func (s *Stack) require(n int) error {
	if len(s.values) < n {
		return StackUnderflow{Expected: n, Found: len(s.values)}
	}
	return nil
}

func (s *Stack) Clear() {
	clear(s.values)
	s.values = s.values[:0]
}

// Values returns the stack bottom first. The slice must not be modified.
func (s *Stack) Values() []Value {
	return s.values
}

func (s *Stack) Dup() error {
	v, err := s.Peek()
	if err != nil {
		return err
	}
	s.Push(v)
	return nil
}

func (s *Stack) Drop() error {
	_, err := s.Pop()
	return err
}

func (s *Stack) Swap() error {
	if err := s.require(2); err != nil {
		return err
	}
	n := len(s.values)
	s.values[n-1], s.values[n-2] = s.values[n-2], s.values[n-1]
	return nil
}

func (s *Stack) Over() error {
	v, err := s.PeekAt(1)
	if err != nil {
		return err
	}
	s.Push(v)
	return nil
}

// Rot moves the third value to the top: a b c -> b c a.
func (s *Stack) Rot() error {
	if err := s.require(3); err != nil {
		return err
	}
	n := len(s.values)
	a := s.values[n-3]
	s.values[n-3] = s.values[n-2]
	s.values[n-2] = s.values[n-1]
	s.values[n-1] = a
	return nil
}

// PopN pops n values, returned bottom first.
func (s *Stack) PopN(n int) ([]Value, error) {
	if err := s.require(n); err != nil {
		return nil, err
	}
	start := len(s.values) - n
	ret := make([]Value, n)
	copy(ret, s.values[start:])
	clear(s.values[start:])
	s.values = s.values[:start]
	return ret, nil
}

func (s *Stack) PopInteger() (int64, error) {
	v, err := s.Pop()
	if err != nil {
		return 0, err
	}
	return v.AsInteger()
}

func (s *Stack) PopFloat() (float64, error) {
	v, err := s.Pop()
	if err != nil {
		return 0, err
	}
	return v.AsFloat()
}

func (s *Stack) PopText() (string, error) {
	v, err := s.Pop()
	if err != nil {
		return "", err
	}
	return v.AsText()
}

func (s *Stack) String() string {
	var b strings.Builder
	b.WriteString("[")
	for i, v := range s.values {
		if i > 0 {
			b.WriteString(" ")
		}
		if v.kind == KindString {
			b.WriteString(`"` + v.s + `"`)
			continue
		}
		b.WriteString(v.String())
	}
	b.WriteString("]")
	return b.String()
}
