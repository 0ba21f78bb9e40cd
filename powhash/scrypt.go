// Copyright (c) 2019-2026 The Marscoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package powhash computes the proof-of-work hash the difficulty
// retargeting core's CheckProofOfWork compares against a target. It is
// external to that core, but lives in this module so the two can be
// exercised together.
package powhash

import (
	"github.com/holiman/uint256"
	"golang.org/x/crypto/scrypt"
)

// The scrypt cost parameters the original chain mines with:
// N=1024, r=1, p=1, a 32-byte derived key.
const (
	scryptN      = 1024
	scryptR      = 1
	scryptP      = 1
	scryptKeyLen = 32
)

// Sum computes the scrypt proof-of-work hash of a serialized block
// header, returned little-endian the way the wire format stores hashes.
func Sum(headerBytes []byte) ([32]byte, error) {
	digest, err := scrypt.Key(headerBytes, headerBytes, scryptN, scryptR, scryptP, scryptKeyLen)
	if err != nil {
		return [32]byte{}, err
	}
	var out [32]byte
	copy(out[:], digest)
	return out, nil
}

// ToU256 interprets a scrypt digest as the big-endian 256-bit integer
// blockchain.CheckProofOfWork compares against a decoded target, block
// hashes being conventionally interpreted big-endian for that comparison.
func ToU256(digest [32]byte) *uint256.Int {
	reversed := reverse(digest)
	return new(uint256.Int).SetBytes(reversed[:])
}

func reverse(b [32]byte) [32]byte {
	var out [32]byte
	for i, v := range b {
		out[len(b)-1-i] = v
	}
	return out
}
