// Package ir provides the intermediate representation of a document:
// an ordered, point-in-time snapshot of its blocks.
//
// # Usage
//
//	snap, err := ir.New(blocks)
//	b := snap.ByKey("b004")
//
// A Snapshot is immutable once built.  Blocks are never mutated in
// place; a new capture of the document produces a new Snapshot.
//
// # Related Packages
//
//   - github.com/signadot/redline/keymap - stable key assignment
//   - github.com/signadot/redline/edit - instructions addressing blocks
package ir
