// Copyright (c) 2019-2026 The Marscoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Command nextbits is a diagnostic tool that computes the compact target
// blockchain.NextWorkRequired would demand for the block following a
// given synthetic chain tip, then scrypt-hashes a synthetic next-block
// header at the caller's chosen nonce and reports whether that hash
// would satisfy the computed target, along with its block-work
// contribution. It owns none of the core's logic; it is a thin
// CLI/logging shell around blockchain and powhash.
package main

import (
	"bytes"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/marscoinproject/marsd/blockchain"
	"github.com/marscoinproject/marsd/chaincfg"
	"github.com/marscoinproject/marsd/powhash"
	"github.com/marscoinproject/marsd/wire"
)

func networkParams(name string) *chaincfg.Params {
	switch name {
	case "testnet":
		return &chaincfg.TestNetParams
	case "regtest":
		return &chaincfg.RegressionNetParams
	default:
		return &chaincfg.MainNetParams
	}
}

func run() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	initLogRotator(cfg.LogFile)
	setLogLevel(cfg.LogLevel)

	bits, err := strconv.ParseUint(cfg.TipBits, 16, 32)
	if err != nil {
		return fmt.Errorf("invalid --tipbits %q: %w", cfg.TipBits, err)
	}

	params := networkParams(cfg.Network)
	entries := make([]blockchain.Entry, cfg.TipHeight+1)
	for i := range entries {
		entries[i] = blockchain.Entry{
			Time: cfg.TipTime - int64(cfg.TipHeight-int32(i))*params.TargetSpacingSeconds,
			Bits: uint32(bits),
		}
	}
	entries[cfg.TipHeight].Time = cfg.TipTime
	entries[cfg.TipHeight].Bits = uint32(bits)

	tip := blockchain.NewChain(entries)
	var chain blockchain.MemChainView

	header := &wire.BlockHeader{}
	next := blockchain.NextWorkRequired(tip, header, params, chain)

	target, negative, overflow := blockchain.DecodeCompact(next)
	fmt.Printf("nBits: 0x%08x\n", next)
	fmt.Printf("target: %s\n", target.Hex())
	if negative || overflow {
		fmt.Printf("warning: negative=%v overflow=%v\n", negative, overflow)
	}

	work := blockchain.BlockProof(next)
	fmt.Printf("block proof: %s\n", work.Hex())

	candidate := &wire.BlockHeader{
		Version:   1,
		Timestamp: time.Unix(cfg.TipTime+params.TargetSpacingSeconds, 0),
		Bits:      next,
		Nonce:     cfg.Nonce,
	}
	var buf bytes.Buffer
	if err := candidate.Serialize(&buf); err != nil {
		return fmt.Errorf("serializing candidate header: %w", err)
	}
	digest, err := powhash.Sum(buf.Bytes())
	if err != nil {
		return fmt.Errorf("computing proof-of-work hash: %w", err)
	}
	hash := powhash.ToU256(digest)
	fmt.Printf("pow hash (nonce %d): %s\n", cfg.Nonce, hash.Hex())
	fmt.Printf("satisfies target: %v\n", blockchain.CheckProofOfWork(hash, next, params))

	return nil
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
