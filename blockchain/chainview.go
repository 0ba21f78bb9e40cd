// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2019-2026 The Marscoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

// BlockIndex is an opaque handle to a position in a chain of block
// headers. The retargeting core never assumes anything about its
// representation — it is consumed, not owned — and always reaches it
// through a ChainView. A nil BlockIndex means "no such block"
// (pre-genesis, or walked past the start of the chain).
type BlockIndex interface{}

// ChainView is the read-only ancestor-lookup interface every retargeting
// algorithm walks. Implementations may back it with an in-memory pointer
// chain (MemChainView), a database (chainstore.LevelDBChainView), or
// anything else; the core places no constraint beyond these four
// accessors.
type ChainView interface {
	// Prev returns idx's parent, or nil if idx has none (genesis).
	Prev(idx BlockIndex) BlockIndex

	// Height returns idx's height.
	Height(idx BlockIndex) int32

	// Time returns idx's block timestamp, in seconds since the epoch.
	Time(idx BlockIndex) int64

	// Bits returns idx's claimed compact target.
	Bits(idx BlockIndex) uint32
}

// Node is a single entry in an in-memory, pointer-linked chain, the
// concrete BlockIndex representation MemChainView understands.
type Node struct {
	Height int32
	Time   int64
	Bits   uint32
	Prev   *Node
}

// Entry describes one block's retargeting-relevant fields, used to build a
// MemChainView chain with NewChain.
type Entry struct {
	Time int64
	Bits uint32
}

// NewChain builds a linked list of Nodes from a slice of entries, indexed
// from height 0, and returns the tip (the last entry). A nil/empty slice
// returns a nil tip, representing the pre-genesis state.
func NewChain(entries []Entry) *Node {
	var prev *Node
	for i, e := range entries {
		prev = &Node{
			Height: int32(i),
			Time:   e.Time,
			Bits:   e.Bits,
			Prev:   prev,
		}
	}
	return prev
}

// MemChainView is the trivial ChainView over Node's own linked-list
// pointers.
type MemChainView struct{}

// Prev implements ChainView.
func (MemChainView) Prev(idx BlockIndex) BlockIndex {
	n, ok := idx.(*Node)
	if !ok || n == nil || n.Prev == nil {
		return nil
	}
	return n.Prev
}

// Height implements ChainView.
func (MemChainView) Height(idx BlockIndex) int32 {
	return idx.(*Node).Height
}

// Time implements ChainView.
func (MemChainView) Time(idx BlockIndex) int64 {
	return idx.(*Node).Time
}

// Bits implements ChainView.
func (MemChainView) Bits(idx BlockIndex) uint32 {
	return idx.(*Node).Bits
}
