package woflang

import (
	"context"
	"io"
	"log/slog"
	"os"
	"slices"

	"github.com/reusee/wof/logs"
	"github.com/reusee/wof/vars"
	"github.com/samber/lo"
)

// Context is the capability surface handed to operation handlers.
type Context interface {
	Push(v Value)
	Pop() (Value, error)
	Peek() (Value, error)
	Has(n int) bool
	Stack() *Stack
	Clear()
	Output() io.Writer
	Logger() logs.Logger
}

type FunctionDef struct {
	Name  string
	Body  []Token
	Arity int
	Span  Span
}

type CallFrame struct {
	Name       string
	Remaining  []Token
	BlockDepth int
	LoopDepth  int
}

type LoopKind uint8

const (
	LoopInfinite LoopKind = iota
	LoopRepeat
	LoopWhile
)

func (k LoopKind) String() string {
	switch k {
	case LoopInfinite:
		return "infinite"
	case LoopRepeat:
		return "repeat"
	case LoopWhile:
		return "while"
	}
	return "unknown"
}

type LoopFrame struct {
	Body          []Token
	Kind          LoopKind
	Iteration     int64
	MaxIterations int64
	CallDepth     int
}

type DispatchState uint8

const (
	StateNormal DispatchState = iota
	StateSkip
	StateDefiningFunction
	StateCollectingLoop
)

func (s DispatchState) String() string {
	switch s {
	case StateNormal:
		return "normal"
	case StateSkip:
		return "skip"
	case StateDefiningFunction:
		return "defining-function"
	case StateCollectingLoop:
		return "collecting-loop"
	}
	return "unknown"
}

type Engine struct {
	stack      *Stack
	registry   *Registry
	functions  map[string]*FunctionDef
	scopes     *ScopeStack
	blocks     *BlockRegistry
	blockStack *BlockStack
	bindings   *KeyBindings
	labels     map[string]labelTarget

	// token slices are never written in place; they may be shared between
	// the active buffer, call frames, function bodies and labels
	tokens []Token
	calls  []CallFrame
	loops  []*LoopFrame
	ip     int
	jumps  int

	skip       *nesting
	defining   *functionCollector
	collecting *loopCollector

	breaking   bool
	continuing bool
	returning  bool
	returnLine int
	jumping    *labelTarget

	config Config
	ctx    context.Context
	logger logs.Logger
	output io.Writer
}

type Option func(*Engine)

// WithConfig replaces the engine config. Zero limits fall back to the defaults.
func WithConfig(config Config) Option {
	return func(e *Engine) {
		config.MaxLoopIterations = vars.FirstNonZero(config.MaxLoopIterations, DefaultMaxLoopIterations)
		config.MaxJumps = vars.FirstNonZero(config.MaxJumps, DefaultMaxJumps)
		config.MaxCallDepth = vars.FirstNonZero(config.MaxCallDepth, DefaultMaxCallDepth)
		e.config = config
	}
}

// WithContext sets the context carried by log records, such as a logs span.
func WithContext(ctx context.Context) Option {
	return func(e *Engine) {
		e.ctx = ctx
	}
}

func WithLogger(logger logs.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

func WithOutput(w io.Writer) Option {
	return func(e *Engine) {
		e.output = w
	}
}

func WithKeyBindings(bindings *KeyBindings) Option {
	return func(e *Engine) {
		e.bindings = bindings
	}
}

func WithPlugins(plugins ...Plugin) Option {
	return func(e *Engine) {
		e.Use(plugins...)
	}
}

func New(options ...Option) *Engine {
	e := &Engine{
		stack:      NewStack(),
		registry:   NewRegistry(),
		functions:  make(map[string]*FunctionDef),
		scopes:     NewScopeStack(),
		blocks:     NewBlockRegistry(),
		blockStack: NewBlockStack(),
		bindings:   DefaultKeyBindings(),
		labels:     make(map[string]labelTarget),
		config:     DefaultConfig(),
		ctx:        context.Background(),
		logger:     slog.New(slog.DiscardHandler),
		output:     os.Stdout,
	}
	for _, option := range options {
		option(e)
	}
	return e
}

func (e *Engine) Use(plugins ...Plugin) {
	for _, plugin := range plugins {
		plugin(e.registry)
	}
}

var _ Context = new(Engine)

func (e *Engine) Push(v Value) {
	e.stack.Push(v)
}

func (e *Engine) Pop() (Value, error) {
	return e.stack.Pop()
}

func (e *Engine) Peek() (Value, error) {
	return e.stack.Peek()
}

func (e *Engine) Has(n int) bool {
	return e.stack.Has(n)
}

func (e *Engine) Stack() *Stack {
	return e.stack
}

func (e *Engine) Clear() {
	e.stack.Clear()
}

func (e *Engine) Output() io.Writer {
	return e.output
}

func (e *Engine) Logger() logs.Logger {
	return e.logger
}

func (e *Engine) Registry() *Registry {
	return e.registry
}

func (e *Engine) Config() Config {
	return e.config
}

func (e *Engine) Bindings() *KeyBindings {
	return e.bindings
}

func (e *Engine) Scopes() *ScopeStack {
	return e.scopes
}

func (e *Engine) Blocks() *BlockRegistry {
	return e.blocks
}

func (e *Engine) BlockStack() *BlockStack {
	return e.blockStack
}

func (e *Engine) Functions() []string {
	names := lo.Keys(e.functions)
	slices.Sort(names)
	return names
}

func (e *Engine) Function(name string) (FunctionDef, bool) {
	def, ok := e.functions[name]
	if !ok {
		return FunctionDef{}, false
	}
	return *def, true
}

func (e *Engine) DefineFunction(def FunctionDef) {
	e.functions[def.Name] = &def
}

func (e *Engine) Labels() []string {
	names := lo.Keys(e.labels)
	slices.Sort(names)
	return names
}

func (e *Engine) BlockDepth() int {
	return e.blockStack.Depth()
}

func (e *Engine) LoopDepth() int {
	return len(e.loops)
}

func (e *Engine) CallDepth() int {
	return len(e.calls)
}

func (e *Engine) CurrentLoop() (LoopFrame, bool) {
	if len(e.loops) == 0 {
		return LoopFrame{}, false
	}
	return *e.loops[len(e.loops)-1], true
}

func (e *Engine) Mode() DispatchState {
	switch {
	case e.collecting != nil:
		return StateCollectingLoop
	case e.defining != nil:
		return StateDefiningFunction
	case e.skip != nil:
		return StateSkip
	}
	return StateNormal
}

// SkipDepth is zero unless tokens are being skipped.
func (e *Engine) SkipDepth() int {
	if e.skip == nil {
		return 0
	}
	return e.skip.depth + 1
}

func (e *Engine) Lookup(name string) (Value, bool) {
	return e.scopes.Lookup(name)
}

func (e *Engine) pushBlock(typ BlockType, span Span, name string) BlockID {
	id := e.blocks.Open(typ, e.blockStack.Current(), e.ip, span, name)
	e.blockStack.Push(id)
	if typ.CreatesScope() {
		e.scopes.Push(id)
	}
	return id
}

func (e *Engine) popBlock() {
	id, ok := e.blockStack.Pop()
	if !ok {
		return
	}
	if info, ok := e.blocks.Get(id); ok && info.Type.CreatesScope() {
		e.scopes.Pop()
	}
	e.blocks.Close(id, e.ip)
}

func (e *Engine) popBlocksTo(depth int) {
	for e.blockStack.Depth() > depth {
		e.popBlock()
	}
}

func (e *Engine) currentBlock() BlockInfo {
	info, _ := e.blocks.Get(e.blockStack.Current())
	return info
}
