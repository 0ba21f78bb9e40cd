// Copyright (c) 2019-2026 The Marscoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"testing"

	"github.com/holiman/uint256"
)

func TestClampU256(t *testing.T) {
	lo, hi := uint256.NewInt(10), uint256.NewInt(100)

	below := uint256.NewInt(1)
	if clampU256(below, lo, hi).Cmp(lo) != 0 {
		t.Errorf("clamp below lo = %s, want %s", below.Hex(), lo.Hex())
	}

	above := uint256.NewInt(1000)
	if clampU256(above, lo, hi).Cmp(hi) != 0 {
		t.Errorf("clamp above hi = %s, want %s", above.Hex(), hi.Hex())
	}

	inRange := uint256.NewInt(50)
	if clampU256(inRange, lo, hi).Cmp(uint256.NewInt(50)) != 0 {
		t.Errorf("clamp in range changed value to %s", inRange.Hex())
	}
}

func TestMulDiv(t *testing.T) {
	x := uint256.NewInt(100)
	got := mulDiv(x, 3, 4)
	if got.Cmp(uint256.NewInt(75)) != 0 {
		t.Errorf("mulDiv(100, 3, 4) = %s, want 75", got.Hex())
	}
}

func TestMulDivPanicsOnZeroDenominator(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on zero denominator")
		}
	}()
	mulDiv(uint256.NewInt(1), 1, 0)
}

func TestByteLen(t *testing.T) {
	tests := []struct {
		x    *uint256.Int
		want int
	}{
		{new(uint256.Int), 0},
		{uint256.NewInt(1), 1},
		{uint256.NewInt(0xff), 1},
		{uint256.NewInt(0x0100), 2},
		{new(uint256.Int).Lsh(uint256.NewInt(1), 192), 25},
	}
	for _, tc := range tests {
		if got := byteLen(tc.x); got != tc.want {
			t.Errorf("byteLen(%s) = %d, want %d", tc.x.Hex(), got, tc.want)
		}
	}
}

func TestShiftedMulNoOverflow(t *testing.T) {
	ref := uint256.NewInt(1000)
	result, overflowed := shiftedMul(ref, 2, 0)
	if overflowed {
		t.Fatal("unexpected overflow")
	}
	if result.Cmp(uint256.NewInt(2000)) != 0 {
		t.Errorf("shiftedMul(1000, 2, 0) = %s, want 2000", result.Hex())
	}
}

func TestShiftedMulRightShift(t *testing.T) {
	ref := uint256.NewInt(1000)
	result, overflowed := shiftedMul(ref, 2, -1)
	if overflowed {
		t.Fatal("unexpected overflow")
	}
	if result.Cmp(uint256.NewInt(1000)) != 0 {
		t.Errorf("shiftedMul(1000, 2, -1) = %s, want 1000", result.Hex())
	}
}

func TestShiftedMulDetectsOverflow(t *testing.T) {
	// factor 1 keeps the multiplication itself lossless; the left shift
	// alone is what pushes ref's high bit past bit 255.
	ref := new(uint256.Int).Lsh(uint256.NewInt(1), 250)
	_, overflowed := shiftedMul(ref, 1, 10)
	if !overflowed {
		t.Fatal("expected overflow when high bits are shifted out")
	}
}

func TestFloatU256RoundTrip(t *testing.T) {
	x := new(uint256.Int).Lsh(uint256.NewInt(1), 100)
	back := floatToU256(u256ToFloat(x))
	// float64 has 53 bits of mantissa; a value this large round-trips
	// exactly only because it is a power of two.
	if back.Cmp(x) != 0 {
		t.Errorf("float round trip of 2^100 = %s, want %s", back.Hex(), x.Hex())
	}
}
