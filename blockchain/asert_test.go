// Copyright (c) 2019-2026 The Marscoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/holiman/uint256"
	"github.com/marscoinproject/marsd/chaincfg"
	gc "gopkg.in/check.v1"
)

// Hook go-check into `go test`, following the same suite-registration
// idiom used throughout the pack's gocheck-based packages.
func TestGocheck(t *testing.T) { gc.TestingT(t) }

type asertSuite struct{}

var _ = gc.Suite(&asertSuite{})

func asertTestParams() *chaincfg.Params {
	p := testParams()
	p.ASERTAnchorHeight = 2999999
	p.ASERTActivationHeight = 3000000
	p.ASERTHalfLifeSeconds = 7200
	return p
}

// asertChain builds a chain with anchorHeight blocks before the anchor, at
// anchorPrevTime, then the anchor itself at anchorTime, then filler blocks
// up to tipHeight, whose own timestamp is overridden to tipTime. Only
// anchor, anchor.prev, and tip are read by retargetASERT — the filler
// values exist solely so the Prev walk has real nodes to traverse.
//
// Mainnet's real anchor height is 2,999,999; this helper substitutes a
// much smaller one purely so tests don't need million-node chains. Since
// the algorithm depends only on height_diff = tip.height - anchor.height,
// not on the anchor's absolute height, matching height_diff and
// timestamps reproduces the exact same target.
func asertChain(anchorHeight int32, anchorTime, anchorPrevTime int64, anchorBits uint32, tipHeight int32, tipTime int64) (BlockIndex, ChainView) {
	entries := make([]Entry, tipHeight+1)
	for h := int32(0); h < anchorHeight; h++ {
		entries[h] = Entry{Time: anchorPrevTime, Bits: anchorBits}
	}
	entries[anchorHeight] = Entry{Time: anchorTime, Bits: anchorBits}
	for h := anchorHeight + 1; h <= tipHeight; h++ {
		entries[h] = Entry{Time: anchorTime, Bits: anchorBits}
	}
	entries[tipHeight].Time = tipTime
	tip := NewChain(entries)
	var chain MemChainView
	return tip, chain
}

// TestASERTOnSchedule checks a block arriving on schedule (height_diff
// preserved at 100 but a smaller absolute anchor height, see asertChain).
// The exact target is checked against a reference computation of the
// scheduling formula performed independently of this package's Go code.
func (s *asertSuite) TestASERTOnSchedule(c *gc.C) {
	params := asertTestParams()
	params.ASERTAnchorHeight = 100
	tip, chain := asertChain(100, 1700000000, 1700000000, 0x1b0404cb, 200, 1700012300)

	got := retargetASERT(tip, params, chain)
	want := uint32(0x1b03f8b8)
	c.Check(got, gc.Equals, want, gc.Commentf("retargetASERT bits = 0x%08x, want 0x%08x\n%s", got, want, spew.Sdump(params)))
}

// TestASERTDoublingLaw checks that when
// time_diff - ideal_spacing*(height_diff+1) == half_life, the target
// doubles exactly.
func (s *asertSuite) TestASERTDoublingLaw(c *gc.C) {
	params := asertTestParams()
	anchorHeight := int32(1000)
	params.ASERTAnchorHeight = anchorHeight

	anchorTime := int64(1_700_000_000)
	tipHeight := anchorHeight // height_diff == 0
	tipTime := anchorTime + asertIdealSpacing*1 + params.ASERTHalfLifeSeconds

	entries := make([]Entry, tipHeight+1)
	for h := range entries {
		entries[h] = Entry{Time: anchorTime, Bits: 0x1b0404cb}
	}
	entries[tipHeight].Time = tipTime
	tip := NewChain(entries)
	var chain MemChainView

	got := retargetASERT(tip, params, chain)
	newTarget, _, _ := DecodeCompact(got)
	refTarget, _, _ := DecodeCompact(0x1b0404cb)
	doubled := new(uint256.Int).Lsh(refTarget, 1)

	c.Check(newTarget.Cmp(doubled), gc.Equals, 0, gc.Commentf("got %s want %s", newTarget.Hex(), doubled.Hex()))
}

// TestASERTHalvingLaw checks the symmetric halving case. The expected
// target is ref_target/2 after the compact encoding's truncation, since
// 0x0404cb is odd and its halved low bit does not survive re-encoding.
func (s *asertSuite) TestASERTHalvingLaw(c *gc.C) {
	params := asertTestParams()
	anchorHeight := int32(1000)
	params.ASERTAnchorHeight = anchorHeight

	anchorTime := int64(1_700_000_000)
	tipHeight := anchorHeight
	tipTime := anchorTime + asertIdealSpacing*1 - params.ASERTHalfLifeSeconds

	entries := make([]Entry, tipHeight+1)
	for h := range entries {
		entries[h] = Entry{Time: anchorTime, Bits: 0x1b0404cb}
	}
	entries[tipHeight].Time = tipTime
	tip := NewChain(entries)
	var chain MemChainView

	got := retargetASERT(tip, params, chain)
	newTarget, _, _ := DecodeCompact(got)
	refTarget, _, _ := DecodeCompact(0x1b0404cb)
	halved, _, _ := DecodeCompact(EncodeCompact(new(uint256.Int).Rsh(refTarget, 1)))

	c.Check(newTarget.Cmp(halved), gc.Equals, 0, gc.Commentf("got %s want %s", newTarget.Hex(), halved.Hex()))
}

func TestASERTBelowAnchorHeightReturnsPowLimit(t *testing.T) {
	params := asertTestParams()
	params.ASERTAnchorHeight = 100
	entries := make([]Entry, 50)
	for i := range entries {
		entries[i] = Entry{Time: int64(i) * 123, Bits: 0x1b0404cb}
	}
	tip := NewChain(entries)
	var chain MemChainView

	got := retargetASERT(tip, params, chain)
	if got != params.PowLimitBits {
		t.Errorf("retargetASERT below anchor height = 0x%08x, want pow_limit", got)
	}
}

func TestASERTAnchorCacheResetIsSafe(t *testing.T) {
	ResetASERTAnchorCache()
	params := asertTestParams()
	params.ASERTAnchorHeight = 10
	entries := make([]Entry, 20)
	for i := range entries {
		entries[i] = Entry{Time: int64(i) * 123, Bits: 0x1b0404cb}
	}
	tip := NewChain(entries)
	var chain MemChainView

	first := retargetASERT(tip, params, chain)
	ResetASERTAnchorCache()
	second := retargetASERT(tip, params, chain)
	if first != second {
		t.Errorf("retargetASERT is not deterministic across a cache reset: 0x%08x vs 0x%08x", first, second)
	}
}
