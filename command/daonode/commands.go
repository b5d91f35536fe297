// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/bitmark-inc/daonode/fee"
	"github.com/bitmark-inc/daonode/period"
	"github.com/bitmark-inc/daonode/replay"
	"github.com/bitmark-inc/daonode/transactionrecord"
	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"
)

// setup command handler
//
// commands that cannot access any internal database or states or the
// configuration file
func processSetupCommand(program string, arguments []string) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {
	case "start", "run":
		return false // continue processing

	case "phase", "fee", "config-test", "cfg":
		return false // defer processing until configuration is read

	case "replay", "tx":
		return false // defer processing until database is loaded

	case "version", "v":
		fmt.Printf("%s\n", version)
		return true

	default:
		switch command {
		case "help", "h", "?":
		case "", " ":
			fmt.Printf("error: missing command\n")
		default:
			fmt.Printf("error: no such command: %q\n", command)
		}
		fmt.Printf("usage: %s [--help] [--verbose] [--quiet] --config-file=FILE [--define=NAME=VALUE] [[command|help] arguments...]\n", program)

		fmt.Printf("supported commands:\n\n")
		fmt.Printf("  help                       (h)      - display this message\n\n")
		fmt.Printf("  version                    (v)      - display version sting\n\n")

		fmt.Printf("  start                      (run)    - just run the program, same as no arguments\n")
		fmt.Printf("                                        for convienience when passing script arguments\n")
		fmt.Printf("\n")

		fmt.Printf("  config-test                (cfg)    - just check the configuration file\n")
		fmt.Printf("\n")

		fmt.Printf("  phase HEIGHT                        - show the voting phase of a block height\n")
		fmt.Printf("\n")

		fmt.Printf("  fee HEIGHT                          - show the configured proposal fee at a block height\n")
		fmt.Printf("\n")

		fmt.Printf("  replay                              - classify all stored blocks then exit\n")
		fmt.Printf("\n")

		fmt.Printf("  tx TXID                             - show a replayed transaction\n")
		fmt.Printf("\n")

		exitwithstatus.Exit(1)
	}

	// indicate processing complete and preform normal exit from main
	return true
}

// configuration file enquiry commands
// have configuration file read and decoded, but nothing else
func processConfigCommand(arguments []string, options *Configuration) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	switch command {
	case "config-test", "cfg":
		printJson("", options)

	case "phase":
		height := heightArgument(arguments)
		phases, err := period.NewService(options.Genesis.Height, options.Phases)
		if nil != err {
			exitwithstatus.Message("error: %s", err)
		}
		info := struct {
			Height uint64       `json:"height"`
			Phase  period.Phase `json:"phase"`
			Cycle  uint64       `json:"cycle"`
			First  uint64       `json:"firstBlock"`
			Last   uint64       `json:"lastBlock"`
		}{
			Height: height,
			Phase:  phases.PhaseForHeight(height),
		}
		if period.Undefined != info.Phase {
			info.Cycle, _ = phases.CycleIndex(height)
			info.First, _ = phases.FirstBlockOfPhase(height, info.Phase)
			info.Last, _ = phases.LastBlockOfPhase(height, info.Phase)
		}
		printJson("", info)

	case "fee":
		height := heightArgument(arguments)
		fees := fee.New(options.Fees.Initial, nil)
		for _, change := range options.Fees.Changes {
			if err := fees.Add(change.Height, change.Fee); nil != err {
				exitwithstatus.Message("error: fee change at: %d  error: %s", change.Height, err)
			}
		}
		printJson("", struct {
			Height      uint64 `json:"height"`
			ProposalFee uint64 `json:"proposalFee"`
		}{
			Height:      height,
			ProposalFee: fees.ProposalFeeAt(height),
		})

	default: // unknown commands fall through to data command
		return false
	}

	// indicate processing complete and perform normal exit from main
	return true
}

// data command handler
// the storage pools are enabled so these commands can access the database
func processDataCommand(log *logger.L, arguments []string, replayer *replay.Replayer) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	switch command {

	case "start", "run":
		return false // continue processing

	case "replay":
		n, err := replayer.ReplayAvailable(nil)
		if nil != err {
			log.Criticalf("replay error: %s", err)
			exitwithstatus.Message("replay error: %s", err)
		}
		height, _ := replay.ReplayedHeight()
		stats := replayer.Statistics()
		printJson("", struct {
			Blocks       int    `json:"blocks"`
			Height       uint64 `json:"height"`
			Transactions uint64 `json:"transactions"`
			Valid        uint64 `json:"valid"`
			Invalid      uint64 `json:"invalid"`
		}{
			Blocks:       n,
			Height:       height,
			Transactions: stats.Transactions.Uint64(),
			Valid:        stats.Valid.Uint64(),
			Invalid:      stats.Invalid.Uint64(),
		})

	case "tx":
		if len(arguments) < 1 {
			exitwithstatus.Message("missing transaction id argument")
		}
		var txId transactionrecord.TxId
		if err := transactionrecord.TxIdFromString(&txId, arguments[0]); nil != err {
			exitwithstatus.Message("error in transaction id: %s", err)
		}
		tx, err := replay.StoredTransaction(txId)
		if nil != err {
			exitwithstatus.Message("transaction: %s  error: %s", txId, err)
		}
		printJson("", tx)

	default:
		exitwithstatus.Message("error: no such command: %s", command)

	}

	// indicate processing complete and perform normal exit from main
	return true
}

func heightArgument(arguments []string) uint64 {
	if len(arguments) < 1 {
		exitwithstatus.Message("missing block height argument")
	}
	height, err := strconv.ParseUint(arguments[0], 10, 64)
	if nil != err {
		exitwithstatus.Message("error in block height: %s", err)
	}
	return height
}

func printJson(title string, message interface{}) {
	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		exitwithstatus.Message("Error: printjson marshall error: %s", err)
	}

	if "" == title {
		fmt.Printf("%s\n", b)
	} else {
		fmt.Printf("%s:\n%s\n", title, b)
	}
}
