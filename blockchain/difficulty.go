// Copyright (c) 2009-2010 Satoshi Nakamoto
// Copyright (c) 2009-2014 The Bitcoin developers
// Copyright (c) 2014-2026 The Marscoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"github.com/marscoinproject/marsd/chaincfg"
	"github.com/marscoinproject/marsd/wire"
)

// algorithm identifies which of the four retargeting algorithms governs a
// given next-block height. It exists only as a dispatch tag; no algorithm
// carries state or behavior beyond the pure function it is dispatched to.
type algorithm int

const (
	algoV1 algorithm = iota
	algoDGW2
	algoDGW3
	algoASERT
)

// selectAlgorithm applies a sequence of lower-bound tests where the last
// matching rule wins. It is written as a chain of independent ifs, in the
// same descending-priority shape as the original chain's DiffMode
// selection in GetNextWorkRequired, so the "last matching rule wins"
// reading stays visible in the code.
func selectAlgorithm(height int32, params *chaincfg.Params) algorithm {
	algo := algoV1
	if height >= params.DGWActivationHeight && height < params.DGW3ActivationHeight {
		algo = algoDGW2
	}
	if height >= params.DGW3ActivationHeight && height < params.ASERTActivationHeight {
		algo = algoDGW3
	}
	if height >= params.ASERTActivationHeight {
		algo = algoASERT
	}
	return algo
}

// NextWorkRequired computes the compact target the block at tip.height+1
// must satisfy. It is the single entry point consensus validation calls
// into this package with.
func NextWorkRequired(tip BlockIndex, header *wire.BlockHeader, params *chaincfg.Params, chain ChainView) uint32 {
	if params.NoRetargeting {
		if tip == nil {
			return params.PowLimitBits
		}
		return chain.Bits(tip)
	}

	if tip == nil {
		return params.PowLimitBits
	}

	height := chain.Height(tip) + 1
	oldBits := chain.Bits(tip)

	var newBits uint32
	switch selectAlgorithm(height, params) {
	case algoDGW2:
		newBits = retargetDGW2(tip, params, chain)
	case algoDGW3:
		newBits = retargetDGW3(tip, params, chain)
	case algoASERT:
		newBits = retargetASERT(tip, params, chain)
	default:
		newBits = retargetV1(tip, header, params, chain)
	}

	if newBits != oldBits {
		log.Debugf("Difficulty retarget at block height %d, old %08x new %08x", height, oldBits, newBits)
	}
	return newBits
}
