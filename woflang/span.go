package woflang

import "fmt"

type Span struct {
	Source *Source
	Line   int
	Column int
	Offset int
	Length int
}

func (s Span) IsZero() bool {
	return s.Line == 0
}

func (s Span) String() string {
	if s.Source != nil && s.Source.Name != "" {
		return fmt.Sprintf("%s:%d:%d", s.Source.Name, s.Line, s.Column)
	}
	return fmt.Sprintf("%d:%d", s.Line, s.Column)
}
