// Copyright (c) 2014 The Dash developers
// Copyright (c) 2019-2026 The Marscoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"math/big"

	"github.com/holiman/uint256"
	"github.com/marscoinproject/marsd/chaincfg"
)

// dgwTargetSpacing is the spacing DarkGravityWave uses regardless of
// params.TargetSpacingSeconds. Both v2 and v3 hard-code 123 in the
// original chain's pow.cpp; that is preserved here rather than "fixed"
// to read from params.
const dgwTargetSpacing = 123

// retargetDGW2 computes the next required work using DarkGravityWave v2's
// 14-to-140-block dampened smart-average, ported from DarkGravityWave2 in
// the original chain's pow.cpp. The running difficulty average and the
// final retarget multiply/divide are exact arbitrary-precision integer
// arithmetic, matching the source's CBigNum; float64 is confined to the
// SmartAverage/Shift block-time blend, the one piece the source itself
// computes with doubles.
func retargetDGW2(tip BlockIndex, params *chaincfg.Params, chain ChainView) uint32 {
	if tip == nil || chain.Height(tip) < 14 {
		return params.PowLimitBits
	}

	const pastBlocksMin = 14
	const pastBlocksMax = 140

	var (
		pastDifficultyAverage     *big.Int
		pastDifficultyAveragePrev *big.Int

		blockTimeAverage     int64
		blockTimeAveragePrev int64
		blockTimeCount       int64
		blockTimeSum2        int64
		blockTimeCount2      int64
		lastBlockTime        int64
	)

	countBlocks := int64(0)
	cur := tip
	for i := int64(1); cur != nil && chain.Height(cur) > 0; i++ {
		if i > pastBlocksMax {
			break
		}
		countBlocks++

		target, _, _ := DecodeCompact(chain.Bits(cur))
		reading := target.ToBig()

		if countBlocks <= pastBlocksMin {
			if countBlocks == 1 {
				pastDifficultyAverage = reading
			} else {
				next := new(big.Int).Sub(reading, pastDifficultyAveragePrev)
				next.Quo(next, big.NewInt(countBlocks))
				next.Add(next, pastDifficultyAveragePrev)
				pastDifficultyAverage = next
			}
			pastDifficultyAveragePrev = pastDifficultyAverage
		}

		if lastBlockTime > 0 {
			diff := lastBlockTime - chain.Time(cur)
			if blockTimeCount <= pastBlocksMin {
				blockTimeCount++
				if blockTimeCount == 1 {
					blockTimeAverage = diff
				} else {
					blockTimeAverage = ((diff - blockTimeAveragePrev) / blockTimeCount) + blockTimeAveragePrev
				}
				blockTimeAveragePrev = blockTimeAverage
			}
			blockTimeCount2++
			blockTimeSum2 += diff
		}
		lastBlockTime = chain.Time(cur)

		prev := chain.Prev(cur)
		if prev == nil {
			break
		}
		cur = prev
	}

	bnNew := new(big.Int).Set(pastDifficultyAverage)

	targetTimespan := countBlocks * dgwTargetSpacing
	actualTimespan := targetTimespan
	if blockTimeCount != 0 && blockTimeCount2 != 0 {
		smartAverage := float64(blockTimeAverage)*0.7 + (float64(blockTimeSum2)/float64(blockTimeCount2))*0.3
		if smartAverage < 1 {
			smartAverage = 1
		}
		shift := float64(dgwTargetSpacing) / smartAverage

		fActualTimespan := (float64(countBlocks) * dgwTargetSpacing) / shift
		fTargetTimespan := float64(countBlocks) * dgwTargetSpacing
		if fActualTimespan < fTargetTimespan/3 {
			fActualTimespan = fTargetTimespan / 3
		}
		if fActualTimespan > fTargetTimespan*3 {
			fActualTimespan = fTargetTimespan * 3
		}

		actualTimespan = int64(fActualTimespan)
		targetTimespan = int64(fTargetTimespan)

		bnNew.Mul(bnNew, big.NewInt(actualTimespan))
		bnNew.Quo(bnNew, big.NewInt(targetTimespan))
	}

	newBits := bigToClampedTarget(bnNew, params)
	log.Tracef("DGW2 countBlocks %d actual timespan %d target timespan %d newbits %08x",
		countBlocks, actualTimespan, targetTimespan, newBits)
	return newBits
}

// retargetDGW3 computes the next required work using DarkGravityWave v3's
// fixed 24-block ordinary moving average, ported from DarkGravityWave3 in
// the original chain's pow.cpp. Unlike v2, v3's source has no double
// anywhere; the entire recurrence and the final retarget stay exact
// integer arithmetic here as well.
func retargetDGW3(tip BlockIndex, params *chaincfg.Params, chain ChainView) uint32 {
	if tip == nil || chain.Height(tip) < 24 {
		return params.PowLimitBits
	}

	const pastBlocksMin = 24
	const pastBlocksMax = 24

	var (
		pastDifficultyAverage     *big.Int
		pastDifficultyAveragePrev *big.Int
		lastBlockTime             int64
		actualTimespan            int64
	)

	countBlocks := int64(0)
	cur := tip
	for i := int64(1); cur != nil && chain.Height(cur) > 0; i++ {
		if i > pastBlocksMax {
			break
		}
		countBlocks++

		target, _, _ := DecodeCompact(chain.Bits(cur))
		reading := target.ToBig()

		if countBlocks <= pastBlocksMin {
			if countBlocks == 1 {
				pastDifficultyAverage = reading
			} else {
				next := new(big.Int).Mul(pastDifficultyAveragePrev, big.NewInt(countBlocks))
				next.Add(next, reading)
				next.Quo(next, big.NewInt(countBlocks+1))
				pastDifficultyAverage = next
			}
			pastDifficultyAveragePrev = pastDifficultyAverage
		}

		if lastBlockTime > 0 {
			actualTimespan += lastBlockTime - chain.Time(cur)
		}
		lastBlockTime = chain.Time(cur)

		prev := chain.Prev(cur)
		if prev == nil {
			break
		}
		cur = prev
	}

	if avgTarget, overflow := uint256.FromBig(pastDifficultyAverage); pastDifficultyAverage.Sign() <= 0 || overflow || avgTarget.Cmp(params.PowLimit) > 0 {
		return params.PowLimitBits
	}

	bnNew := new(big.Int).Set(pastDifficultyAverage)

	targetTimespan := countBlocks * dgwTargetSpacing
	if actualTimespan < targetTimespan/3 {
		actualTimespan = targetTimespan / 3
	}
	if actualTimespan > targetTimespan*3 {
		actualTimespan = targetTimespan * 3
	}

	bnNew.Mul(bnNew, big.NewInt(actualTimespan))
	bnNew.Quo(bnNew, big.NewInt(targetTimespan))

	newBits := bigToClampedTarget(bnNew, params)
	log.Tracef("DGW3 countBlocks %d actual timespan %d target timespan %d newbits %08x",
		countBlocks, actualTimespan, targetTimespan, newBits)
	return newBits
}

// bigToClampedTarget converts a DarkGravityWave difficulty average, still
// a signed arbitrary-precision integer at this point, into its canonical
// compact encoding, clamped to [1, pow_limit]: every retargeting
// algorithm in this package must return a target in that range, so a
// non-positive average or one whose magnitude overflows 256 bits clamps
// to the network's proof-of-work limit rather than encoding as the
// invalid zero target.
func bigToClampedTarget(x *big.Int, params *chaincfg.Params) uint32 {
	if x.Sign() <= 0 {
		return params.PowLimitBits
	}
	target, overflow := uint256.FromBig(x)
	if overflow {
		target = new(uint256.Int).Set(params.PowLimit)
	}
	clampU256(target, u256One, params.PowLimit)
	return EncodeCompact(target)
}
