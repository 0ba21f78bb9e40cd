// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2019-2026 The Marscoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"testing"

	"github.com/holiman/uint256"
)

func TestDecodeCompact(t *testing.T) {
	tests := []struct {
		name     string
		nBits    uint32
		want     *uint256.Int
		negative bool
		overflow bool
	}{
		{"zero", 0, new(uint256.Int), false, false},
		{"low exponent", 0x03000001, uint256.NewInt(1), false, false},
		{
			"canonical mainnet pow limit",
			0x1e0fffff,
			new(uint256.Int).Lsh(uint256.NewInt(0x0fffff), 216),
			false, false,
		},
		{
			"real difficulty bits",
			0x1b0404cb,
			new(uint256.Int).Lsh(uint256.NewInt(0x0404cb), 192),
			false, false,
		},
		{"masked sign bit clears to zero mantissa", 0x01800001, new(uint256.Int), false, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			target, negative, overflow := DecodeCompact(tc.nBits)
			if target.Cmp(tc.want) != 0 {
				t.Errorf("target = %s, want %s", target.Hex(), tc.want.Hex())
			}
			if negative != tc.negative {
				t.Errorf("negative = %v, want %v", negative, tc.negative)
			}
			if overflow != tc.overflow {
				t.Errorf("overflow = %v, want %v", overflow, tc.overflow)
			}
		})
	}
}

// TestDecodeCompactOverflow checks that a compact value whose magnitude
// cannot fit a canonical 256-bit target is flagged,
// regardless of what the truncated bit pattern happens to be. The
// consequence for proof-of-work checking is covered by
// TestCheckProofOfWorkRejectsOverflow in pow_test.go.
func TestDecodeCompactOverflow(t *testing.T) {
	_, negative, overflow := DecodeCompact(0x21010000)
	if !overflow {
		t.Fatal("expected overflow = true")
	}
	if negative {
		t.Fatal("expected negative = false")
	}
}

func TestCompactRoundTrip(t *testing.T) {
	canonical := []uint32{0x1e0fffff, 0x1b0404cb, 0x1d00ffff, 0x01010000, 0x02010000}
	for _, nBits := range canonical {
		target, _, _ := DecodeCompact(nBits)
		if got := EncodeCompact(target); got != nBits {
			t.Errorf("EncodeCompact(DecodeCompact(0x%08x)) = 0x%08x, want 0x%08x", nBits, got, nBits)
		}
	}
}

func TestEncodeCompactZero(t *testing.T) {
	if got := EncodeCompact(new(uint256.Int)); got != 0 {
		t.Errorf("EncodeCompact(0) = 0x%08x, want 0", got)
	}
}
