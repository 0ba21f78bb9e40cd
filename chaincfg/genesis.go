// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2019-2026 The Marscoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/holiman/uint256"
	"github.com/marscoinproject/marsd/wire"
)

// mainPowLimit is 0x1e0fffff decoded as compact(E=0x1e, M=0x0fffff):
// M << (8*(E-3)) = 0x0fffff << 216, a 236-bit value with 20 leading
// mantissa bits. This is the historical Marscoin/Litecoin-shaped
// proof-of-work limit.
var mainPowLimit = new(uint256.Int).Lsh(uint256.NewInt(0x0fffff), 216)

// genesisMerkleRoot is the hash of the sole coinbase transaction in the
// genesis block, lifted from the historical Marscoin genesis.
var genesisMerkleRoot = chainhash.Hash([chainhash.HashSize]byte{
	0xc8, 0x43, 0xea, 0xe4, 0x65, 0x8e, 0x3a, 0x51,
	0xd2, 0xf2, 0x80, 0xc3, 0x63, 0x76, 0xce, 0x56,
	0xdc, 0x71, 0xa6, 0xc7, 0x0e, 0x4b, 0x1c, 0x5a,
	0xd2, 0xd7, 0xa9, 0x31, 0x6f, 0x9b, 0x9a, 0xb7,
})

// genesisHeader is the genesis block header for the main network.
var genesisHeader = wire.BlockHeader{
	Version:    2,
	PrevBlock:  chainhash.Hash{},
	MerkleRoot: genesisMerkleRoot,
	Timestamp:  time.Unix(0x53c9ecdc, 0), // 2014-07-19 03:58:20 +0000 UTC
	Bits:       0x1e0fffff,
	Nonce:      0x00010281,
}

// regTestGenesisHeader is the genesis header for the regression test
// network: same coinbase, much easier target, distinct nonce.
var regTestGenesisHeader = wire.BlockHeader{
	Version:    1,
	PrevBlock:  chainhash.Hash{},
	MerkleRoot: genesisMerkleRoot,
	Timestamp:  time.Unix(1296688602, 0),
	Bits:       0x207fffff,
	Nonce:      2,
}

// testNetGenesisHeader is the genesis header for the test network.
var testNetGenesisHeader = wire.BlockHeader{
	Version:    1,
	PrevBlock:  chainhash.Hash{},
	MerkleRoot: genesisMerkleRoot,
	Timestamp:  time.Unix(1296688602, 0),
	Bits:       0x1d00ffff,
	Nonce:      0x18aea41a,
}

// MainNetParams defines the network parameters for the main Marscoin-lineage
// network.
var MainNetParams = Params{
	Name:          "mainnet",
	Net:           0xd9b4bef9,
	GenesisHeader: genesisHeader,
	GenesisHash:   genesisHeader.BlockHash(),

	PowLimit:     mainPowLimit,
	PowLimitBits: 0x1e0fffff,

	TargetSpacingSeconds:  123,
	TargetTimespanSeconds: 88775,

	AllowMinDifficultyBlocks: false,
	NoRetargeting:            false,

	ASERTHalfLifeSeconds:  7200,
	ASERTAnchorHeight:     2999999,
	DGWActivationHeight:   120000,
	DGW3ActivationHeight:  126000,
	ASERTActivationHeight: 3000000,
	ForkOneHeight:         14260,
	ForkTwoHeight:         70000,
}

// TestNetParams defines the network parameters for the test network.
var TestNetParams = Params{
	Name:          "testnet",
	Net:           0x0709110b,
	GenesisHeader: testNetGenesisHeader,
	GenesisHash:   testNetGenesisHeader.BlockHash(),

	PowLimit:     new(uint256.Int).Sub(new(uint256.Int).Lsh(uint256.NewInt(1), 224), uint256.NewInt(1)),
	PowLimitBits: 0x1d00ffff,

	TargetSpacingSeconds:  123,
	TargetTimespanSeconds: 88775,

	AllowMinDifficultyBlocks: true,
	NoRetargeting:            false,

	ASERTHalfLifeSeconds:  7200,
	ASERTAnchorHeight:     100,
	DGWActivationHeight:   2000,
	DGW3ActivationHeight:  2100,
	ASERTActivationHeight: 3000,
	ForkOneHeight:         500,
	ForkTwoHeight:         1000,
}

// RegressionNetParams defines the network parameters for the regression
// test network, where retargeting is disabled entirely.
var RegressionNetParams = Params{
	Name:          "regtest",
	Net:           0xdab5bffa,
	GenesisHeader: regTestGenesisHeader,
	GenesisHash:   regTestGenesisHeader.BlockHash(),

	PowLimit:     new(uint256.Int).Sub(new(uint256.Int).Lsh(uint256.NewInt(1), 255), uint256.NewInt(1)),
	PowLimitBits: 0x207fffff,

	TargetSpacingSeconds:  123,
	TargetTimespanSeconds: 88775,

	AllowMinDifficultyBlocks: true,
	NoRetargeting:            true,

	ASERTHalfLifeSeconds:  7200,
	ASERTAnchorHeight:     100,
	DGWActivationHeight:   2000,
	DGW3ActivationHeight:  2100,
	ASERTActivationHeight: 3000,
	ForkOneHeight:         500,
	ForkTwoHeight:         1000,
}
