// Copyright (c) 2019-2026 The Marscoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"testing"
	"time"

	"github.com/marscoinproject/marsd/wire"
)

func header(t time.Time) *wire.BlockHeader {
	return &wire.BlockHeader{Timestamp: t}
}

// TestRetargetV1PreGenesis checks that a nil tip always yields pow_limit.
func TestRetargetV1PreGenesis(t *testing.T) {
	params := testParams()
	var chain MemChainView
	got := retargetV1(nil, header(time.Unix(0, 0)), params, chain)
	if got != params.PowLimitBits {
		t.Errorf("retargetV1(nil, ...) = 0x%08x, want pow_limit 0x%08x", got, params.PowLimitBits)
	}
}

// TestRetargetV1AtForkTwoBoundary checks the first retarget after
// ForkTwoHeight, interval = 721, expecting a new target roughly 0.999x
// the old one.
func TestRetargetV1AtForkTwoBoundary(t *testing.T) {
	params := testParams()
	params.ForkTwoHeight = 0 // fork-two rules active from genesis in this fixture

	const interval = 721
	entries := make([]Entry, interval)
	genesisTime := int64(1_600_000_000)
	for i := range entries {
		entries[i] = Entry{
			Time: genesisTime + int64(i)*123,
			Bits: 0x1b0404cb,
		}
	}
	// Nudge the tip's timestamp to match the scenario's actual timespan
	// of 88,683 seconds over the 720-block walkback.
	entries[interval-1].Time = entries[0].Time + 88683

	tip := NewChain(entries)
	var chain MemChainView

	got := retargetV1(tip, header(time.Unix(entries[interval-1].Time, 0)), params, chain)

	target, _, _ := DecodeCompact(got)
	oldTarget, _, _ := DecodeCompact(0x1b0404cb)
	ratio := u256ToFloat(target) / u256ToFloat(oldTarget)
	if ratio < 0.998 || ratio > 1.0 {
		t.Errorf("new/old target ratio = %v, want close to 0.999", ratio)
	}
}

func TestRetargetV1NonBoundaryReturnsTipBits(t *testing.T) {
	params := testParams()
	params.ForkTwoHeight = 1000
	params.ForkOneHeight = 0

	entries := []Entry{
		{Time: 1000, Bits: 0x1d00ffff},
		{Time: 1150, Bits: 0x1d00abcd},
	}
	tip := NewChain(entries)
	var chain MemChainView

	got := retargetV1(tip, header(time.Unix(1300, 0)), params, chain)
	if got != 0x1d00abcd {
		t.Errorf("non-boundary retargetV1 = 0x%08x, want tip bits 0x1d00abcd", got)
	}
}

func TestRetargetV1AllowMinDifficultyShortcut(t *testing.T) {
	params := testParams()
	params.ForkTwoHeight = 1000
	params.ForkOneHeight = 0
	params.AllowMinDifficultyBlocks = true

	entries := []Entry{
		{Time: 1000, Bits: 0x1d00ffff},
	}
	tip := NewChain(entries)
	var chain MemChainView

	spacing, _, _ := params.RetargetV1Params(2)
	late := time.Unix(entries[0].Time+spacing*2+1, 0)

	got := retargetV1(tip, header(late), params, chain)
	if got != params.PowLimitBits {
		t.Errorf("late block under AllowMinDifficultyBlocks = 0x%08x, want pow_limit", got)
	}
}
