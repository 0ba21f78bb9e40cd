// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2019-2026 The Marscoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/btcsuite/btclog"
	"github.com/jrick/logrotate/rotator"
	"github.com/marscoinproject/marsd/blockchain"
)

// logWriter outputs to both standard output and the write-end of an
// initialized log rotator, the same dual-sink shape as the original
// full-node daemon's LogWriter.
type logWriter struct{}

func (logWriter) Write(p []byte) (n int, err error) {
	os.Stdout.Write(p)
	logRotator.Write(p)
	return len(p), nil
}

var (
	backendLog = btclog.NewBackend(logWriter{})
	logRotator *rotator.Rotator

	nbtsLog = backendLog.Logger("NBTS")
	chanLog = backendLog.Logger("CHAN")
)

func init() {
	blockchain.UseLogger(chanLog)
}

// initLogRotator initializes the package-global log rotator, matching
// the original full-node daemon's InitLogRotator: 10 MiB roll size (the
// threshold argument is in KiB), keep 3 old files.
func initLogRotator(logFile string) {
	logDir, _ := filepath.Split(logFile)
	if err := os.MkdirAll(logDir, 0700); err != nil {
		fmt.Fprintf(os.Stderr, "failed to create log directory: %v\n", err)
		os.Exit(1)
	}
	r, err := rotator.New(logFile, 10*1024, false, 3)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create file rotator: %v\n", err)
		os.Exit(1)
	}
	logRotator = r
}

func setLogLevel(logLevel string) {
	level, _ := btclog.LevelFromString(logLevel)
	nbtsLog.SetLevel(level)
	chanLog.SetLevel(level)
}
