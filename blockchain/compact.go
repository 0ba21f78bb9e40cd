// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2019-2026 The Marscoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import "github.com/holiman/uint256"

// DecodeCompact converts a compact ("nBits") representation of a 256-bit
// threshold into a target, along with the negative and overflow flags
// bitcoind-lineage chains have carried since Satoshi's original
// CBigNum::SetCompact.
//
// Layout: the high byte is the exponent E (size in bytes); the low 24 bits
// are the mantissa field, of which only the low 23 bits (0x007fffff) are
// magnitude — bit 23 (0x00800000) is the sign flag. For exponents of 3 or
// less the magnitude is shifted right before use, as in SetCompact.
// negative is true when the resulting magnitude is non-zero and the sign
// flag is set. overflow is true when the magnitude is non-zero and the
// exponent is above 34, above 32 with a magnitude over 0xff, or above 33
// with a magnitude over 0xffff.
func DecodeCompact(nBits uint32) (target *uint256.Int, negative bool, overflow bool) {
	exponent := nBits >> 24
	mantissa := nBits & 0x007fffff

	target = new(uint256.Int)
	if exponent <= 3 {
		mantissa >>= 8 * (3 - exponent)
		target.SetUint64(uint64(mantissa))
	} else {
		target.SetUint64(uint64(mantissa))
		target.Lsh(target, uint(8*(exponent-3)))
	}

	negative = mantissa != 0 && nBits&0x00800000 != 0
	overflow = mantissa != 0 && (exponent > 34 ||
		(mantissa > 0xff && exponent > 32) ||
		(mantissa > 0xffff && exponent > 33))

	return target, negative, overflow
}

// EncodeCompact converts a target to its canonical compact ("nBits")
// representation.
func EncodeCompact(target *uint256.Int) uint32 {
	if target.IsZero() {
		return 0
	}

	exponent := uint32(byteLen(target))
	var mantissa uint32
	if exponent <= 3 {
		mantissa = uint32(target.Uint64()) << (8 * (3 - exponent))
	} else {
		shifted := new(uint256.Int).Rsh(target, uint(8*(exponent-3)))
		mantissa = uint32(shifted.Uint64())
	}

	// If the mantissa's sign bit ended up set, the value needs one more
	// byte of exponent to stay unambiguously positive.
	if mantissa&0x00800000 != 0 {
		mantissa >>= 8
		exponent++
	}

	return (exponent << 24) | (mantissa & 0x007fffff)
}
