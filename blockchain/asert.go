// Copyright (c) 2020 The Bitcoin Cash Node developers
// Copyright (c) 2019-2026 The Marscoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"fmt"

	"github.com/holiman/uint256"
	"github.com/marscoinproject/marsd/chaincfg"
)

// asertIdealSpacing is the schedule's target block spacing in seconds,
// frozen independent of chaincfg.Params the same way DarkGravityWave
// freezes its own spacing.
const asertIdealSpacing = 123

// asertMaxScheduleDrift bounds |time_diff - ideal_spacing*height_diff|;
// exceeding it means the block index is corrupted beyond anything a
// consensus rule should paper over.
const asertMaxScheduleDrift = 1 << 47

// AsertInvariantError reports a violated ASERT consensus invariant: an
// unreachable anchor despite sufficient height, or a schedule deviation
// too large to be a legitimate timestamp. Both indicate a corrupted block
// index rather than an ordinary consensus disagreement.
type AsertInvariantError struct {
	Reason string
}

func (e *AsertInvariantError) Error() string {
	return fmt.Sprintf("blockchain: ASERT invariant violated: %s", e.Reason)
}

// retargetASERT computes the next required work using the Absolutely
// Scheduled Exponentially-weighted Rising Target schedule, ported from
// CalculateASERT/GetNextASERTWorkRequired in the original chain's pow.cpp.
// It panics with an *AsertInvariantError if a consensus invariant is
// violated; the caller is expected to recover and reject the candidate
// block, the same way btcd's difficulty.go panics on a nil firstNode for
// "should never happen" block-index corruption.
func retargetASERT(tip BlockIndex, params *chaincfg.Params, chain ChainView) uint32 {
	if tip == nil || chain.Height(tip) < params.ASERTAnchorHeight {
		return params.PowLimitBits
	}

	anchor := findASERTAnchorCached(tip, params.ASERTAnchorHeight, chain)
	if anchor == nil {
		panic(&AsertInvariantError{Reason: "anchor block unreachable from tip"})
	}

	anchorTime := chain.Time(anchor)
	if prev := chain.Prev(anchor); prev != nil {
		anchorTime = chain.Time(prev)
	}

	timeDiff := chain.Time(tip) - anchorTime
	heightDiff := int64(chain.Height(tip) - chain.Height(anchor))
	refTarget, _, _ := DecodeCompact(chain.Bits(anchor))

	drift := timeDiff - asertIdealSpacing*heightDiff
	if drift < 0 {
		drift = -drift
	}
	if drift >= asertMaxScheduleDrift {
		panic(&AsertInvariantError{Reason: "schedule deviation exceeds 2^47 seconds"})
	}

	exponent := ((timeDiff - asertIdealSpacing*(heightDiff+1)) * 65536) / params.ASERTHalfLifeSeconds

	shifts := exponent >> 16
	frac := exponent & 0xffff

	factor := asertCubicFactor(uint64(frac))

	next, overflowed := shiftedMul(refTarget, factor, shifts-16)
	if overflowed {
		next = new(uint256.Int).Set(params.PowLimit)
	}

	clampU256(next, u256One, params.PowLimit)
	newBits := EncodeCompact(next)
	log.Tracef("ASERT anchor height %d time diff %d height diff %d newbits %08x",
		chain.Height(anchor), timeDiff, heightDiff, newBits)
	return newBits
}

// asertCubicFactor evaluates a cubic fixed-point approximation of
// 2^(frac/65536) scaled by 65536, for frac in [0, 0xFFFF]. All
// intermediates fit in uint64: the dominant term at frac=65535 is on the
// order of 1.28e19, within range.
func asertCubicFactor(frac uint64) uint64 {
	const (
		c1 = 195766423245049
		c2 = 971821376
		c3 = 5127
		rn = 1 << 47
	)
	return 65536 + ((c1*frac + c2*frac*frac + c3*frac*frac*frac + rn) >> 48)
}
