// Copyright (c) 2009-2010 Satoshi Nakamoto
// Copyright (c) 2009-2014 The Bitcoin developers
// Copyright (c) 2014-2026 The Marscoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"github.com/holiman/uint256"
	"github.com/marscoinproject/marsd/chaincfg"
)

// CheckProofOfWork reports whether hash satisfies the target encoded by
// nBits, ported from CheckProofOfWork in the original chain's pow.cpp.
// hash is the block hash interpreted as a 256-bit big-endian integer;
// computing that interpretation from the wire hash bytes is the header
// serializer's job, not this package's.
func CheckProofOfWork(hash *uint256.Int, nBits uint32, params *chaincfg.Params) bool {
	target, negative, overflow := DecodeCompact(nBits)
	if negative || overflow || target.IsZero() {
		return false
	}
	if target.Cmp(params.PowLimit) > 0 {
		return false
	}
	return hash.Cmp(target) <= 0
}

// BlockProof returns nBits' contribution to cumulative chain work, ported
// from GetBlockProof in the original chain's pow.cpp: ⌊2^256 /
// (target+1)⌋, computed as (~target)/(target+1)+1 to stay within 256 bits
// throughout.
func BlockProof(nBits uint32) *uint256.Int {
	target, negative, overflow := DecodeCompact(nBits)
	if negative || overflow || target.IsZero() {
		return new(uint256.Int)
	}

	notTarget := new(uint256.Int).Not(target)
	denominator := new(uint256.Int).AddUint64(target, 1)
	work := new(uint256.Int).Div(notTarget, denominator)
	return work.AddUint64(work, 1)
}
