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

// retargetV1 computes the next required work using the legacy Bitcoin-style
// interval retarget, adjusted at ForkOneHeight and ForkTwoHeight for the
// Mars-day/Mars-minute schedule. Ported from GetNextWorkRequired_V1 in the
// original chain's pow.cpp. header is the candidate block being validated;
// only its timestamp is read, for the AllowMinDifficultyBlocks shortcut.
func retargetV1(tip BlockIndex, header *wire.BlockHeader, params *chaincfg.Params, chain ChainView) uint32 {
	if tip == nil {
		return params.PowLimitBits
	}

	height := chain.Height(tip) + 1
	spacing, timespan, interval := params.RetargetV1Params(height)

	// Only change once per interval.
	if height%int32(interval) != 0 {
		if params.AllowMinDifficultyBlocks {
			if header.Timestamp.Unix() > chain.Time(tip)+spacing*2 {
				return params.PowLimitBits
			}
			idx := tip
			for {
				prev := chain.Prev(idx)
				if prev == nil {
					break
				}
				if chain.Height(idx)%int32(interval) == 0 || chain.Bits(idx) != params.PowLimitBits {
					break
				}
				idx = prev
			}
			return chain.Bits(idx)
		}
		return chain.Bits(tip)
	}

	// Go back the full period, unless this is the first retarget after
	// genesis, in which case go back one less (there is no block -1).
	blocksToGoBack := interval - 1
	if int64(height) != interval {
		blocksToGoBack = interval
	}

	first := tip
	for i := int64(0); first != nil && i < blocksToGoBack; i++ {
		first = chain.Prev(first)
	}
	if first == nil {
		return params.PowLimitBits
	}

	rawTimespan := chain.Time(tip) - chain.Time(first)
	actualTimespan := rawTimespan
	if actualTimespan < timespan/4 {
		actualTimespan = timespan / 4
	}
	if actualTimespan > timespan*4 {
		actualTimespan = timespan * 4
	}
	log.Tracef("V1 retarget actual timespan %d, adjusted timespan %d, target timespan %d",
		rawTimespan, actualTimespan, timespan)

	bnNew, _, _ := DecodeCompact(chain.Bits(tip))
	fShift := bnNew.BitLen() > 235
	if fShift {
		bnNew.Rsh(bnNew, 1)
	}
	bnNew = mulDiv(bnNew, actualTimespan, timespan)
	if fShift {
		bnNew.Lsh(bnNew, 1)
	}

	clampU256(bnNew, u256Zero, params.PowLimit)
	return EncodeCompact(bnNew)
}
