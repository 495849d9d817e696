package ir

import (
	"encoding/json"
	"errors"
	"testing"
)

func blk(key string, start, end int) *Block {
	return &Block{
		Handle: "h-" + key,
		Key:    key,
		Kind:   Paragraph,
		Text:   "text of " + key,
		Start:  start,
		End:    end,
	}
}

type newTest struct {
	name   string
	blocks []*Block
	err    error
}

var newTests = []newTest{
	{
		name:   "empty",
		blocks: nil,
	},
	{
		name:   "ordered",
		blocks: []*Block{blk("b001", 0, 10), blk("b002", 10, 24)},
	},
	{
		name:   "dup key",
		blocks: []*Block{blk("b001", 0, 10), blk("b001", 10, 24)},
		err:    ErrDupKey,
	},
	{
		name:   "inverted span",
		blocks: []*Block{blk("b001", 10, 10)},
		err:    ErrBadSpan,
	},
	{
		name:   "missing key",
		blocks: []*Block{{Handle: "h", Kind: Paragraph, Text: "x", Start: 0, End: 1}},
		err:    ErrNoKey,
	},
}

func TestNew(t *testing.T) {
	for _, tc := range newTests {
		t.Run(tc.name, func(t *testing.T) {
			s, err := New(tc.blocks)
			if tc.err != nil {
				if !errors.Is(err, tc.err) {
					t.Fatalf("got err %v, want %v", err, tc.err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if s.Len() != len(tc.blocks) {
				t.Errorf("got %d blocks, want %d", s.Len(), len(tc.blocks))
			}
		})
	}
}

func TestLookups(t *testing.T) {
	s, err := New([]*Block{blk("b001", 0, 10), blk("b002", 10, 24), blk("b003", 24, 30)})
	if err != nil {
		t.Fatal(err)
	}
	if got := s.Position("b002"); got != 1 {
		t.Errorf("Position(b002) = %d, want 1", got)
	}
	if got := s.Position("b999"); got != -1 {
		t.Errorf("Position(b999) = %d, want -1", got)
	}
	if got := s.Handle("b003"); got != "h-b003" {
		t.Errorf("Handle(b003) = %q", got)
	}
	if s.ByKey("nope") != nil {
		t.Error("ByKey(nope) should be nil")
	}
}

func TestSnapshotJSON(t *testing.T) {
	s, err := New([]*Block{blk("b001", 0, 10), blk("b002", 10, 24)})
	if err != nil {
		t.Fatal(err)
	}
	d, err := json.Marshal(s)
	if err != nil {
		t.Fatal(err)
	}
	var got Snapshot
	if err := json.Unmarshal(d, &got); err != nil {
		t.Fatal(err)
	}
	if got.Len() != 2 || got.ByKey("b002").Text != "text of b002" {
		t.Errorf("round trip lost data: %+v", got.Blocks())
	}
}
