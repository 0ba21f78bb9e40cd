// Copyright (c) 2014-2026 The Marscoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"github.com/holiman/uint256"
	"github.com/marscoinproject/marsd/chaincfg"
)

// PermittedDifficultyTransition checks that newNBits is a legitimate
// successor to oldNBits at the given next-block height. It applies only
// while the legacy V1 algorithm governs retargeting;
// DGW2, DGW3, and ASERT compute a new target from a rolling window every
// block rather than at fixed interval boundaries, so this check has
// nothing to enforce for them and callers should not invoke it there.
func PermittedDifficultyTransition(params *chaincfg.Params, height int32, oldNBits, newNBits uint32) bool {
	_, _, interval := params.RetargetV1Params(height)
	if height%int32(interval) != 0 {
		return oldNBits == newNBits
	}

	if params.AllowMinDifficultyBlocks {
		return true
	}

	oldTarget, _, _ := DecodeCompact(oldNBits)
	newTarget, negative, overflow := DecodeCompact(newNBits)
	if negative || overflow || newTarget.IsZero() {
		return false
	}

	lowerBound := new(uint256.Int).Div(oldTarget, uint256.NewInt(4))
	upperBound := new(uint256.Int).Mul(oldTarget, uint256.NewInt(4))
	if upperBound.Cmp(params.PowLimit) > 0 {
		upperBound.Set(params.PowLimit)
	}

	return newTarget.Cmp(lowerBound) >= 0 && newTarget.Cmp(upperBound) <= 0
}
