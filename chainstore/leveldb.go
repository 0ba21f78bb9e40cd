// Copyright (c) 2019-2026 The Marscoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package chainstore backs a blockchain.ChainView with an on-disk LevelDB
// database, standing in for the block storage and chain index traversal
// collaborator the difficulty retargeting core consumes but never owns.
package chainstore

import (
	"encoding/binary"
	"fmt"
	"sync/atomic"

	"github.com/btcsuite/goleveldb/leveldb"
	"github.com/btcsuite/goleveldb/leveldb/opt"
	"github.com/marscoinproject/marsd/blockchain"
)

// entrySize is the width of the fixed record stored under each height's key:
// an 8-byte time, a 4-byte compact target, and a 4-byte parent height (or
// noParent if the record is genesis).
const entrySize = 8 + 4 + 4

const noParent = ^uint32(0)

// Ref is the BlockIndex handle LevelDBChainView hands out: a bare height.
// The actual block data lives in the database, keyed by height, so a Ref
// carries no other state and is safe to compare and copy freely.
type Ref struct {
	height int32
}

// LevelDBChainView is a blockchain.ChainView backed by a LevelDB database
// of (height -> time, bits, parent height) records. It also implements
// blockchain.GenerationalChainView: Generation() increments every time
// Rebuild is called, invalidating any ASERT anchor cache keyed on it.
type LevelDBChainView struct {
	db         *leveldb.DB
	tipHeight  int32
	generation uint64
}

// Open opens (creating if necessary) a LevelDB database at path and wraps
// it as a LevelDBChainView with no recorded tip.
func Open(path string) (*LevelDBChainView, error) {
	db, err := leveldb.OpenFile(path, &opt.Options{})
	if err != nil {
		return nil, fmt.Errorf("chainstore: open %s: %w", path, err)
	}
	return &LevelDBChainView{db: db, tipHeight: -1}, nil
}

// Close releases the underlying database handle.
func (v *LevelDBChainView) Close() error {
	return v.db.Close()
}

// PutBlock records a block's retargeting-relevant fields at height,
// linking it to its parent (or noParent for genesis), and advances the
// view's tip if height is now the highest recorded.
func (v *LevelDBChainView) PutBlock(height int32, t int64, bits uint32, hasParent bool) error {
	var parent uint32
	if hasParent {
		parent = uint32(height - 1)
	} else {
		parent = noParent
	}

	var buf [entrySize]byte
	binary.BigEndian.PutUint64(buf[0:8], uint64(t))
	binary.BigEndian.PutUint32(buf[8:12], bits)
	binary.BigEndian.PutUint32(buf[12:16], parent)

	if err := v.db.Put(heightKey(height), buf[:], nil); err != nil {
		return fmt.Errorf("chainstore: put height %d: %w", height, err)
	}
	if height > v.tipHeight {
		v.tipHeight = height
	}
	return nil
}

// Tip returns a Ref to the highest block PutBlock has recorded, or false
// if the view is empty.
func (v *LevelDBChainView) Tip() (blockchain.BlockIndex, bool) {
	if v.tipHeight < 0 {
		return nil, false
	}
	return Ref{height: v.tipHeight}, true
}

// Rebuild bumps the view's generation, invalidating any cache keyed on it
// (blockchain.ResetASERTAnchorCache should also be called by the owner of
// that cache, since generation bumps alone don't reach a cache that keys
// on a different ChainView instance).
func (v *LevelDBChainView) Rebuild() {
	atomic.AddUint64(&v.generation, 1)
}

// Generation implements blockchain.GenerationalChainView.
func (v *LevelDBChainView) Generation() uint64 {
	return atomic.LoadUint64(&v.generation)
}

func (v *LevelDBChainView) read(height int32) (t int64, bits uint32, parent uint32, ok bool) {
	data, err := v.db.Get(heightKey(height), nil)
	if err != nil {
		return 0, 0, 0, false
	}
	if len(data) != entrySize {
		return 0, 0, 0, false
	}
	t = int64(binary.BigEndian.Uint64(data[0:8]))
	bits = binary.BigEndian.Uint32(data[8:12])
	parent = binary.BigEndian.Uint32(data[12:16])
	return t, bits, parent, true
}

// Prev implements blockchain.ChainView.
func (v *LevelDBChainView) Prev(idx blockchain.BlockIndex) blockchain.BlockIndex {
	ref, ok := idx.(Ref)
	if !ok {
		return nil
	}
	_, _, parent, ok := v.read(ref.height)
	if !ok || parent == noParent {
		return nil
	}
	return Ref{height: int32(parent)}
}

// Height implements blockchain.ChainView.
func (v *LevelDBChainView) Height(idx blockchain.BlockIndex) int32 {
	return idx.(Ref).height
}

// Time implements blockchain.ChainView.
func (v *LevelDBChainView) Time(idx blockchain.BlockIndex) int64 {
	t, _, _, _ := v.read(idx.(Ref).height)
	return t
}

// Bits implements blockchain.ChainView.
func (v *LevelDBChainView) Bits(idx blockchain.BlockIndex) uint32 {
	_, bits, _, _ := v.read(idx.(Ref).height)
	return bits
}

func heightKey(height int32) []byte {
	var key [5]byte
	key[0] = 'h'
	binary.BigEndian.PutUint32(key[1:], uint32(height))
	return key[:]
}
