package ir

// Block is one unit of document content.  Handle is the document
// engine's own identifier for the block and is not stable across
// reloads; Key is the stable key assigned by keymap and is.
//
// A Block placed in a Snapshot must not be mutated.  Start and End are
// byte offsets into the document revision the snapshot was captured
// from, with Start < End.
type Block struct {
	Handle string `json:"handle"`
	Key    string `json:"key"`
	Kind   Kind   `json:"kind"`
	Text   string `json:"text"`
	Start  int    `json:"start"`
	End    int    `json:"end"`
	Level  int    `json:"level,omitempty"`
	Number string `json:"number,omitempty"`
}

// Clone returns a copy of b.  Snapshots hand out their own blocks by
// pointer; callers that want to derive a modified block copy first.
func (b *Block) Clone() *Block {
	c := *b
	return &c
}
