// Copyright (c) 2019-2026 The Marscoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"github.com/holiman/uint256"
	"github.com/marscoinproject/marsd/chaincfg"
)

// testParams returns a self-contained parameter set with round, easy to
// reason about activation heights, independent of chaincfg.MainNetParams
// so individual algorithm tests can pick heights without regard to the
// real chain's schedule.
func testParams() *chaincfg.Params {
	powLimit := new(uint256.Int).Lsh(uint256.NewInt(0x0fffff), 216)
	return &chaincfg.Params{
		Name:                     "unittest",
		PowLimit:                 powLimit,
		PowLimitBits:             EncodeCompact(powLimit),
		TargetSpacingSeconds:     123,
		TargetTimespanSeconds:    88775,
		AllowMinDifficultyBlocks: false,
		NoRetargeting:            false,
		ASERTHalfLifeSeconds:     7200,
		ASERTAnchorHeight:        1000,
		DGWActivationHeight:      200,
		DGW3ActivationHeight:     300,
		ASERTActivationHeight:    1000,
		ForkOneHeight:            0,
		ForkTwoHeight:            50,
	}
}
