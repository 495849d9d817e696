package ir

import (
	"encoding/json"
	"fmt"
)

// Snapshot is an ordered capture of a document's blocks at one point
// in time, plus the stable key to engine handle mapping.
//
// Two snapshots of the same document lineage may disagree on handles
// but agree on key assignment order; keys are derived from a
// deterministic traversal of the document.
type Snapshot struct {
	blocks []*Block
	byKey  map[string]*Block
	pos    map[string]int
}

// New builds a snapshot from blocks in document order.  It rejects
// duplicate stable keys and empty or inverted spans.
func New(blocks []*Block) (*Snapshot, error) {
	s := &Snapshot{
		blocks: make([]*Block, 0, len(blocks)),
		byKey:  make(map[string]*Block, len(blocks)),
		pos:    make(map[string]int, len(blocks)),
	}
	for i, b := range blocks {
		if b.Key == "" {
			return nil, fmt.Errorf("%w: block %d", ErrNoKey, i)
		}
		if _, ok := s.byKey[b.Key]; ok {
			return nil, fmt.Errorf("%w: %q at block %d", ErrDupKey, b.Key, i)
		}
		if b.Start >= b.End {
			return nil, fmt.Errorf("%w: %q has [%d,%d)", ErrBadSpan, b.Key, b.Start, b.End)
		}
		s.byKey[b.Key] = b
		s.pos[b.Key] = i
		s.blocks = append(s.blocks, b)
	}
	return s, nil
}

// Len returns the number of blocks.
func (s *Snapshot) Len() int { return len(s.blocks) }

// Blocks returns the blocks in document order.  The returned slice is
// shared; callers must not modify it.
func (s *Snapshot) Blocks() []*Block { return s.blocks }

// At returns the block at document position i.
func (s *Snapshot) At(i int) *Block { return s.blocks[i] }

// ByKey returns the block with the given stable key, or nil.
func (s *Snapshot) ByKey(key string) *Block { return s.byKey[key] }

// Handle returns the engine handle for a stable key, or "".
func (s *Snapshot) Handle(key string) string {
	b := s.byKey[key]
	if b == nil {
		return ""
	}
	return b.Handle
}

// Position returns the document position of the block with the given
// key, or -1 when the key is not in the snapshot.
func (s *Snapshot) Position(key string) int {
	p, ok := s.pos[key]
	if !ok {
		return -1
	}
	return p
}

// Mapping returns the stable key to engine handle table.
func (s *Snapshot) Mapping() map[string]string {
	m := make(map[string]string, len(s.blocks))
	for _, b := range s.blocks {
		m[b.Key] = b.Handle
	}
	return m
}

func (s *Snapshot) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.blocks)
}

func (s *Snapshot) UnmarshalJSON(d []byte) error {
	var blocks []*Block
	if err := json.Unmarshal(d, &blocks); err != nil {
		return err
	}
	ns, err := New(blocks)
	if err != nil {
		return err
	}
	*s = *ns
	return nil
}
