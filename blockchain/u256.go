// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2019-2026 The Marscoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"math/big"

	"github.com/holiman/uint256"
)

// u256Zero and u256One are shared clamp bounds: u256Zero for the
// upper-bound-only clamp RetargetV1 ends with, u256One for the "never
// quite zero" floor of ASERT and DarkGravityWave.
var (
	u256Zero = uint256.NewInt(0)
	u256One  = uint256.NewInt(1)
)

// clampU256 clamps t in place to [lo, hi] and returns it, matching the
// clamp-to-pow_limit step every retargeting algorithm ends with.
func clampU256(t, lo, hi *uint256.Int) *uint256.Int {
	if t.Cmp(lo) < 0 {
		t.Set(lo)
	} else if t.Cmp(hi) > 0 {
		t.Set(hi)
	}
	return t
}

// mulDiv computes floor(x * num / den) using a uint256 intermediate. It
// panics if den is zero, which would indicate a caller bug (target
// timespans are always positive, non-zero constants or clamped sums).
func mulDiv(x *uint256.Int, num, den int64) *uint256.Int {
	if den == 0 {
		panic("blockchain: mulDiv with zero denominator")
	}
	result := new(uint256.Int).Mul(x, uint256.NewInt(uint64(num)))
	return result.Div(result, uint256.NewInt(uint64(den)))
}

// byteLen returns the number of bytes needed to hold x's magnitude, 0 for
// a zero value, matching CBigNum::bit_length()/8-rounded-up semantics used
// throughout the compact encoder.
func byteLen(x *uint256.Int) int {
	return (x.BitLen() + 7) / 8
}

// u256ToFloat and floatToU256 convert between a U256 target and its
// closest float64 approximation, via math/big. Retargeting itself never
// uses these: DarkGravityWave's difficulty average and final retarget are
// exact big.Int arithmetic. They exist for tests that want an approximate
// ratio between two targets without decoding both by hand.
func u256ToFloat(x *uint256.Int) float64 {
	f, _ := new(big.Float).SetInt(x.ToBig()).Float64()
	return f
}

func floatToU256(f float64) *uint256.Int {
	if f < 0 {
		f = 0
	}
	bi, _ := new(big.Float).SetFloat64(f).Int(nil)
	result, overflow := uint256.FromBig(bi)
	if overflow {
		return new(uint256.Int).SetAllOne()
	}
	return result
}

// shiftedMul computes ref*factor (factor small enough to always fit) then
// applies a signed shift, detecting and reporting loss of high bits when
// shifting left. This is the overflow-checked "256-bit multiplication
// followed by a shift" step ASERT needs.
func shiftedMul(ref *uint256.Int, factor uint64, shift int64) (result *uint256.Int, overflowed bool) {
	next := new(uint256.Int).Mul(ref, uint256.NewInt(factor))
	switch {
	case shift <= 0:
		return next.Rsh(next, uint(-shift)), false
	default:
		shifted := new(uint256.Int).Lsh(next, uint(shift))
		back := new(uint256.Int).Rsh(shifted, uint(shift))
		if back.Cmp(next) != 0 {
			return nil, true
		}
		return shifted, false
	}
}
