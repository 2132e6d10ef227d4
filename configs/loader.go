package configs

import (
	"errors"
	"fmt"
	"iter"
	"os"
	"sync"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

var ErrValueNotFound = errors.New("value not found")

type Loader struct {
	getRoots func() ([]rootInfo, error)
}

type rootInfo struct {
	value cue.Value
	path  string
}

type source struct {
	name    string
	content []byte
}

// NewLoader loads cue files. Earlier files take precedence.
func NewLoader(filePaths []string, schemaSrc string) Loader {
	return newLoader(schemaSrc, func() ([]source, error) {
		var ret []source
		for _, filePath := range filePaths {
			content, err := os.ReadFile(filePath)
			if err != nil {
				return nil, fmt.Errorf("read config %s: %w", filePath, err)
			}
			ret = append(ret, source{
				name:    filePath,
				content: content,
			})
		}
		return ret, nil
	})
}

// NewStringLoader loads cue sources given inline.
func NewStringLoader(schemaSrc string, contents ...string) Loader {
	return newLoader(schemaSrc, func() ([]source, error) {
		ret := make([]source, 0, len(contents))
		for i, content := range contents {
			ret = append(ret, source{
				name:    fmt.Sprintf("<config %d>", i),
				content: []byte(content),
			})
		}
		return ret, nil
	})
}

func newLoader(schemaSrc string, read func() ([]source, error)) Loader {
	return Loader{
		getRoots: sync.OnceValues(func() (ret []rootInfo, err error) {
			ctx := cuecontext.New()

			var schema cue.Value
			if schemaSrc != "" {
				schema = ctx.CompileString("close({" + schemaSrc + "})")
				if err := schema.Err(); err != nil {
					return nil, fmt.Errorf("compile schema: %w", err)
				}
			}

			sources, err := read()
			if err != nil {
				return nil, err
			}

			for _, src := range sources {
				value := ctx.CompileBytes(
					src.content,
					cue.Filename(src.name),
				)
				if err := value.Err(); err != nil {
					return nil, err
				}
				if schema.Exists() {
					if err := schema.Unify(value).Validate(); err != nil {
						return nil, err
					}
				}
				ret = append(ret, rootInfo{
					value: value,
					path:  src.name,
				})
			}

			return ret, nil
		}),
	}
}

func (l Loader) IterCueValues(path string) iter.Seq2[*cue.Value, error] {
	return func(yield func(*cue.Value, error) bool) {
		roots, err := l.getRoots()
		if err != nil {
			yield(nil, err)
			return
		}

		cuePath := cue.ParsePath(path)
		for _, info := range roots {
			value := info.value.LookupPath(cuePath)
			if !value.Exists() {
				continue
			}
			if !yield(&value, nil) {
				return
			}
		}
	}
}

func (l Loader) AssignFirst(path string, target any) error {
	for value, err := range l.IterCueValues(path) {
		if err != nil {
			return err
		}
		return value.Decode(target)
	}
	return ErrValueNotFound
}
