package woflang

import (
	"fmt"
	"slices"
)

type BlockID uint32

const RootBlock BlockID = 0

type BlockType uint8

const (
	BlockGlobal BlockType = iota
	BlockFunction
	BlockIf
	BlockThen
	BlockElse
	BlockElseIf
	BlockLoop
	BlockFor
	BlockRepeat
	BlockGeneric
)

var blockTypeNames = [...]string{
	BlockGlobal:   "global",
	BlockFunction: "function",
	BlockIf:       "if",
	BlockThen:     "then",
	BlockElse:     "else",
	BlockElseIf:   "else-if",
	BlockLoop:     "loop",
	BlockFor:      "for",
	BlockRepeat:   "repeat",
	BlockGeneric:  "block",
}

func (t BlockType) String() string {
	if int(t) < len(blockTypeNames) {
		return blockTypeNames[t]
	}
	return fmt.Sprintf("BlockType(%d)", t)
}

func (t BlockType) CreatesScope() bool {
	switch t {
	case BlockFunction, BlockLoop, BlockFor, BlockRepeat:
		return true
	}
	return false
}

func (t BlockType) IsLoop() bool {
	switch t {
	case BlockLoop, BlockFor, BlockRepeat:
		return true
	}
	return false
}

type BlockInfo struct {
	ID      BlockID
	Type    BlockType
	StartIP int
	EndIP   int
	Parent  BlockID
	Span    Span
	Name    string
}

func (b BlockInfo) IsOpen() bool {
	return b.EndIP < 0
}

const closedBlockHistory = 256

// BlockRegistry records open blocks and a bounded history of closed ones.
type BlockRegistry struct {
	blocks map[BlockID]*BlockInfo
	closed []BlockID
	nextID BlockID
}

func NewBlockRegistry() *BlockRegistry {
	r := &BlockRegistry{
		blocks: make(map[BlockID]*BlockInfo),
		nextID: RootBlock + 1,
	}
	r.blocks[RootBlock] = &BlockInfo{
		ID:    RootBlock,
		Type:  BlockGlobal,
		EndIP: -1,
	}
	return r
}

func (r *BlockRegistry) Open(typ BlockType, parent BlockID, startIP int, span Span, name string) BlockID {
	id := r.nextID
	r.nextID++
	r.blocks[id] = &BlockInfo{
		ID:      id,
		Type:    typ,
		StartIP: startIP,
		EndIP:   -1,
		Parent:  parent,
		Span:    span,
		Name:    name,
	}
	return id
}

func (r *BlockRegistry) Close(id BlockID, endIP int) bool {
	if id == RootBlock {
		return false
	}
	info, ok := r.blocks[id]
	if !ok || !info.IsOpen() {
		return false
	}
	info.EndIP = endIP
	r.closed = append(r.closed, id)
	if len(r.closed) > closedBlockHistory {
		delete(r.blocks, r.closed[0])
		r.closed = slices.Delete(r.closed, 0, 1)
	}
	return true
}

func (r *BlockRegistry) Get(id BlockID) (BlockInfo, bool) {
	info, ok := r.blocks[id]
	if !ok {
		return BlockInfo{}, false
	}
	return *info, true
}

func (r *BlockRegistry) Children(id BlockID) []BlockID {
	var ret []BlockID
	for childID, info := range r.blocks {
		if childID != RootBlock && info.Parent == id {
			ret = append(ret, childID)
		}
	}
	slices.Sort(ret)
	return ret
}

// FindFunction returns the most recent open function block with the name.
func (r *BlockRegistry) FindFunction(name string) (BlockInfo, bool) {
	var found *BlockInfo
	for _, info := range r.blocks {
		if info.Type != BlockFunction || info.Name != name || !info.IsOpen() {
			continue
		}
		if found == nil || info.ID > found.ID {
			found = info
		}
	}
	if found == nil {
		return BlockInfo{}, false
	}
	return *found, true
}

func (r *BlockRegistry) Len() int {
	return len(r.blocks)
}

// BlockStack holds the ids of currently open blocks. The root is never popped.
type BlockStack struct {
	ids []BlockID
}

func NewBlockStack() *BlockStack {
	return &BlockStack{
		ids: []BlockID{RootBlock},
	}
}

func (s *BlockStack) Push(id BlockID) {
	s.ids = append(s.ids, id)
}

func (s *BlockStack) Pop() (BlockID, bool) {
	if len(s.ids) <= 1 {
		return RootBlock, false
	}
	id := s.ids[len(s.ids)-1]
	s.ids = s.ids[:len(s.ids)-1]
	return id, true
}

func (s *BlockStack) Current() BlockID {
	return s.ids[len(s.ids)-1]
}

func (s *BlockStack) Depth() int {
	return len(s.ids)
}

func (s *BlockStack) IsGlobal() bool {
	return len(s.ids) == 1
}

// IDs returns open block ids from the root outward.
func (s *BlockStack) IDs() []BlockID {
	return slices.Clone(s.ids)
}
