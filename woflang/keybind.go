package woflang

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

// KeyBindings maps typed aliases to glyphs.
type KeyBindings struct {
	bindings map[string]string
}

func NewKeyBindings() *KeyBindings {
	return &KeyBindings{
		bindings: make(map[string]string),
	}
}

var defaultBindings = map[string]string{
	// control
	"if":       "若",
	"then":     "則",
	"else":     "或",
	"elif":     "另",
	"ret":      "至",
	"fn":       "⊕",
	"call":     "巡",
	"loop":     "⟳",
	"times":    "⨯",
	"break":    "🛑",
	"continue": "↻",
	"{":        "⺆",
	"}":        "⺘",
	"begin":    "⺆",
	"end":      "⺘",
	"let":      "字",
	"get":      "読",
	"set":      "支",

	// math
	"df":    "∂",
	"int":   "∫",
	"sum":   "∑",
	"prod":  "∏",
	"sqrt":  "√",
	"inf":   "∞",
	"pi":    "π",
	"tau":   "τ",
	"phi":   "φ",
	"euler": "ℯ",

	// logic
	"and":     "∧",
	"or":      "∨",
	"not":     "¬",
	"xor":     "⊻",
	"implies": "→",
	"iff":     "↔",
	"forall":  "∀",
	"exists":  "∃",

	// comparison
	"eq": "＝",
	"ne": "≠",
	"lt": "＜",
	"gt": "＞",
	"le": "≤",
	"ge": "≥",

	// sets
	"in":        "∈",
	"notin":     "∉",
	"subset":    "⊂",
	"supset":    "⊃",
	"union":     "∪",
	"intersect": "∩",
	"empty":     "∅",

	// greek
	"alpha":   "α",
	"beta":    "β",
	"gamma":   "γ",
	"delta":   "δ",
	"epsilon": "ε",
	"theta":   "θ",
	"lambda":  "λ",
	"mu":      "μ",
	"sigma":   "σ",
	"omega":   "ω",

	// quantum
	"ket0": "|0⟩",
	"ket1": "|1⟩",
	"bra0": "⟨0|",
	"bra1": "⟨1|",
}

func DefaultKeyBindings() *KeyBindings {
	k := NewKeyBindings()
	for alias, glyph := range defaultBindings {
		k.Bind(alias, glyph)
	}
	return k
}

func (k *KeyBindings) Bind(alias string, glyph string) {
	k.bindings[alias] = glyph
}

func (k *KeyBindings) Unbind(alias string) bool {
	if _, ok := k.bindings[alias]; !ok {
		return false
	}
	delete(k.bindings, alias)
	return true
}

func (k *KeyBindings) Resolve(alias string) (string, bool) {
	glyph, ok := k.bindings[alias]
	return glyph, ok
}

func (k *KeyBindings) Len() int {
	return len(k.bindings)
}

type Binding struct {
	Alias string
	Glyph string
}

// All returns bindings sorted by alias.
func (k *KeyBindings) All() []Binding {
	aliases := lo.Keys(k.bindings)
	slices.Sort(aliases)
	return lo.Map(aliases, func(alias string, _ int) Binding {
		return Binding{
			Alias: alias,
			Glyph: k.bindings[alias],
		}
	})
}

// Expand replaces symbol tokens whose whole text is bound.
func (k *KeyBindings) Expand(tokens []Token) []Token {
	var ret []Token
	for i, tok := range tokens {
		if tok.Kind != TokenSymbol {
			continue
		}
		glyph, ok := k.bindings[tok.Text]
		if !ok {
			continue
		}
		if ret == nil {
			ret = slices.Clone(tokens)
		}
		ret[i].Text = glyph
	}
	if ret == nil {
		return tokens
	}
	return ret
}

// Load merges bindings from a YAML file. A missing file is not an error.
func (k *KeyBindings) Load(path string) error {
	content, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return wrap(err)
	}
	var bindings map[string]string
	if err := yaml.Unmarshal(content, &bindings); err != nil {
		return wrap(err)
	}
	for alias, glyph := range bindings {
		k.Bind(alias, glyph)
	}
	return nil
}

func (k *KeyBindings) Save(path string) error {
	content, err := yaml.Marshal(k.bindings)
	if err != nil {
		return wrap(err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return wrap(err)
	}
	if err := os.WriteFile(path, content, 0644); err != nil {
		return wrap(err)
	}
	return nil
}

func DefaultKeyBindingsPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", wrap(err)
	}
	return filepath.Join(home, ".wofbinds"), nil
}
