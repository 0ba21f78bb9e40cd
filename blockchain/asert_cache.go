// Copyright (c) 2020 The Bitcoin Cash Node developers
// Copyright (c) 2019-2026 The Marscoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import "sync"

// GenerationalChainView is implemented by a ChainView that can detect its
// own rebuilds. Implementations bump the returned counter every time the
// underlying block tree is reorganized or reloaded, so the ASERT anchor
// cache below can tell a cached BlockIndex is stale without holding a raw
// pointer into storage it does not own, replacing the original chain's
// raw-pointer anchor cache with a generation counter instead.
type GenerationalChainView interface {
	ChainView
	Generation() uint64
}

// asertAnchorCache memoizes the ASERT anchor lookup keyed on the anchor
// height and the chain view's generation counter. A single writer updates
// it under mu; readers take the same lock, since the walk this cache
// avoids is cheap enough that a mutex is not a bottleneck.
type asertAnchorCache struct {
	mu         sync.Mutex
	valid      bool
	generation uint64
	height     int32
	anchor     BlockIndex
}

var globalASERTAnchorCache asertAnchorCache

// ResetASERTAnchorCache invalidates the shared ASERT anchor cache. Callers
// must invoke this whenever the block tree backing a GenerationalChainView
// is rebuilt from scratch rather than incrementally reorganized, or
// whenever ASERT anchor height parameters change.
func ResetASERTAnchorCache() {
	globalASERTAnchorCache.mu.Lock()
	defer globalASERTAnchorCache.mu.Unlock()
	globalASERTAnchorCache.valid = false
	globalASERTAnchorCache.anchor = nil
}

// findASERTAnchorCached wraps findASERTAnchor with the generation-counter
// cache when chain implements GenerationalChainView; otherwise it always
// performs the full walk.
func findASERTAnchorCached(tip BlockIndex, anchorHeight int32, chain ChainView) BlockIndex {
	gcv, ok := chain.(GenerationalChainView)
	if !ok {
		return findASERTAnchorByHeight(tip, anchorHeight, chain)
	}

	gen := gcv.Generation()

	globalASERTAnchorCache.mu.Lock()
	if globalASERTAnchorCache.valid &&
		globalASERTAnchorCache.generation == gen &&
		globalASERTAnchorCache.height == anchorHeight {
		anchor := globalASERTAnchorCache.anchor
		globalASERTAnchorCache.mu.Unlock()
		return anchor
	}
	globalASERTAnchorCache.mu.Unlock()

	anchor := findASERTAnchorByHeight(tip, anchorHeight, chain)

	globalASERTAnchorCache.mu.Lock()
	globalASERTAnchorCache.valid = true
	globalASERTAnchorCache.generation = gen
	globalASERTAnchorCache.height = anchorHeight
	globalASERTAnchorCache.anchor = anchor
	globalASERTAnchorCache.mu.Unlock()

	return anchor
}

// findASERTAnchorByHeight walks back from tip until it reaches
// anchorHeight, or returns nil if the walk runs past the start of the
// chain first.
func findASERTAnchorByHeight(tip BlockIndex, anchorHeight int32, chain ChainView) BlockIndex {
	idx := tip
	for idx != nil {
		if chain.Height(idx) == anchorHeight {
			return idx
		}
		idx = chain.Prev(idx)
	}
	return nil
}
