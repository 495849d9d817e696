package edit

// Batch is an ordered list of instructions from one producer.
type Batch struct {
	Author  string `json:"author,omitempty"`
	Version string `json:"version,omitempty"`
	Edits   List   `json:"edits"`
}

// List is an instruction slice with wire (de)coding keyed on the
// per-instruction "op" tag.
type List []Instruction

// Clone returns a shallow copy of the batch with its own edit slice.
// Instruction values are immutable, so sharing them is fine.
func (b *Batch) Clone() *Batch {
	out := &Batch{Author: b.Author, Version: b.Version}
	out.Edits = make(List, len(b.Edits))
	copy(out.Edits, b.Edits)
	return out
}
