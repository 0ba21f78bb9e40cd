// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2019-2026 The Marscoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	flags "github.com/jessevdk/go-flags"
)

const (
	defaultLogLevel    = "info"
	defaultLogFilename = "nextbits.log"
)

var defaultLogFile = filepath.Join(nextbitsHomeDir(), defaultLogFilename)

// config defines nextbits' command-line options: a synthetic single-block
// chain tail (tip height, time, bits) it feeds to
// blockchain.NextWorkRequired and prints the result of, for exercising
// and spot-checking the retargeting core outside of full consensus
// validation.
type config struct {
	ShowVersion bool   `short:"V" long:"version" description:"Display version information and exit"`
	Network     string `short:"n" long:"network" default:"mainnet" description:"mainnet, testnet, or regtest"`
	TipHeight   int32  `short:"h" long:"tipheight" required:"true" description:"height of the chain tip"`
	TipTime     int64  `short:"t" long:"tiptime" required:"true" description:"tip block time, seconds since epoch"`
	TipBits     string `short:"b" long:"tipbits" required:"true" description:"tip block's compact nBits, hex, e.g. 1b0404cb"`
	Nonce       uint32 `long:"nonce" description:"candidate nonce to scrypt-hash a synthetic next block with, for a proof-of-work spot check"`
	LogLevel    string `short:"l" long:"loglevel" default:"info" description:"trace, debug, info, warn, error, or critical"`
	LogFile     string `long:"logfile" description:"Path to log file"`
}

func nextbitsHomeDir() string {
	dir, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(dir, ".nextbits")
}

// loadConfig parses command-line flags into a config, applying nextbits'
// defaults the same way podctl's loadConfig does.
func loadConfig() (*config, error) {
	cfg := config{
		Network:  "mainnet",
		LogLevel: defaultLogLevel,
		LogFile:  defaultLogFile,
	}

	parser := flags.NewParser(&cfg, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		return nil, err
	}

	switch cfg.Network {
	case "mainnet", "testnet", "regtest":
	default:
		return nil, fmt.Errorf("unknown network %q", cfg.Network)
	}

	return &cfg, nil
}
