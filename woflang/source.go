package woflang

import "strings"

type Source struct {
	Name    string
	Content string
	Lines   []string
}

func NewSource(name string, content string) *Source {
	return &Source{
		Name:    name,
		Content: content,
		Lines:   strings.Split(content, "\n"),
	}
}

func (s *Source) Line(n int) (string, bool) {
	if s == nil || n < 1 || n > len(s.Lines) {
		return "", false
	}
	return strings.TrimSuffix(s.Lines[n-1], "\r"), true
}
