// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2019-2026 The Marscoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package chaincfg holds the network-specific parameters the difficulty
// retargeting core is handed by its caller. It never imports the
// blockchain package: parameters flow one way, from chaincfg down into
// blockchain.
package chaincfg

import (
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/holiman/uint256"
	"github.com/marscoinproject/marsd/wire"
)

// Params defines the network-specific parameters the retargeting core
// consumes, plus the network's identity (name, magic, genesis). It is not
// a full reproduction of every bitcoind chain parameter.
type Params struct {
	// Name is the human-readable network name (mainnet, testnet, regtest).
	Name string

	// Net is the magic number identifying this network on the wire.
	Net uint32

	// GenesisHeader and GenesisHash describe the network's genesis block,
	// the fixed point every chain view is rooted at.
	GenesisHeader wire.BlockHeader
	GenesisHash   chainhash.Hash

	// PowLimit is the highest (easiest) target permitted on this network;
	// every retargeting algorithm clamps to it.
	PowLimit *uint256.Int

	// PowLimitBits is PowLimit's canonical compact encoding.
	PowLimitBits uint32

	// TargetSpacingSeconds is the nominal seconds between blocks (123 on
	// mainnet post fork-two).
	TargetSpacingSeconds int64

	// TargetTimespanSeconds is the nominal seconds a full retarget
	// interval should take.
	TargetTimespanSeconds int64

	// AllowMinDifficultyBlocks enables the testnet/regtest minimum
	// difficulty shortcut in RetargetV1.
	AllowMinDifficultyBlocks bool

	// NoRetargeting disables retargeting entirely (regtest): the tip's
	// nBits is returned unchanged.
	NoRetargeting bool

	// ASERTHalfLifeSeconds is the ASERT half-life (7200 on mainnet).
	ASERTHalfLifeSeconds int64

	// ASERTAnchorHeight is the height of the ASERT schedule's anchor
	// block.
	ASERTAnchorHeight int32

	// DGWActivationHeight is the first height DarkGravityWave v2 governs.
	DGWActivationHeight int32

	// DGW3ActivationHeight is the first height DarkGravityWave v3 governs.
	DGW3ActivationHeight int32

	// ASERTActivationHeight is the first height ASERT governs.
	ASERTActivationHeight int32

	// ForkOneHeight is the first height the Mars-day timespan applies to
	// legacy V1 retargeting.
	ForkOneHeight int32

	// ForkTwoHeight is the first height the 123-second spacing and
	// 721-block interval apply to legacy V1 retargeting.
	ForkTwoHeight int32
}

// retargetV1BaseSpacing and retargetV1BaseTimespan are the original,
// pre-Mars Bitcoin/Litecoin-style parameters: 150 second spacing, 3.5-day
// timespan, giving the base 2016-block interval.
const (
	retargetV1BaseSpacing  = 150
	retargetV1BaseTimespan = int64(3.5 * 24 * 3600)
)

// RetargetV1Params returns the (targetSpacing, targetTimespan, interval)
// tuple legacy V1 retargeting uses at the given next-block height. Note
// the ForkOneHeight stage deliberately keeps the
// original 2016-block interval even though it adopts the shorter Mars-day
// timespan — that mismatch is preserved from the original chain's
// GetNextWorkRequired_V1, which only recomputes nInterval at ForkTwoHeight.
func (p *Params) RetargetV1Params(height int32) (spacing, timespan, interval int64) {
	switch {
	case height >= p.ForkTwoHeight:
		timespan = 88775
		spacing = 123
		return spacing, timespan, timespan / spacing
	case height >= p.ForkOneHeight:
		return retargetV1BaseSpacing, 88775, retargetV1BaseTimespan / retargetV1BaseSpacing
	default:
		return retargetV1BaseSpacing, retargetV1BaseTimespan, retargetV1BaseTimespan / retargetV1BaseSpacing
	}
}
