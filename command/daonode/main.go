// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/bitmark-inc/daonode/background"
	"github.com/bitmark-inc/daonode/blockfeed"
	"github.com/bitmark-inc/daonode/fault"
	"github.com/bitmark-inc/daonode/fee"
	"github.com/bitmark-inc/daonode/messagebus"
	"github.com/bitmark-inc/daonode/mode"
	"github.com/bitmark-inc/daonode/parser"
	"github.com/bitmark-inc/daonode/period"
	"github.com/bitmark-inc/daonode/replay"
	"github.com/bitmark-inc/daonode/storage"
	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "quiet", HasArg: getoptions.NO_ARGUMENT, Short: 'q'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
		{Long: "define", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'D'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		processSetupCommand(program, []string{"version"})
		return
	}

	if len(options["help"]) > 0 {
		processSetupCommand(program, []string{"help"})
		return
	}

	// these commands do not require the configuration
	if len(arguments) > 0 && processSetupCommand(program, arguments) {
		return
	}

	if 1 != len(options["config-file"]) {
		exitwithstatus.Message("%s: only one config-file option is required, %d were detected", program, len(options["config-file"]))
	}

	// NAME=VALUE pairs become Lua globals
	variables := make(map[string]string)
	for _, d := range options["define"] {
		s := strings.SplitN(d, "=", 2)
		if 2 != len(s) || "" == strings.TrimSpace(s[0]) {
			exitwithstatus.Message("%s: invalid define: %q", program, d)
		}
		variables[strings.TrimSpace(s[0])] = strings.TrimSpace(s[1])
	}

	// read options and parse the configuration file
	configurationFile := options["config-file"][0]
	theConfiguration, err := getConfiguration(configurationFile, variables)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	// these commands require the configuration and
	// perform enquiries on the configuration
	if len(arguments) > 0 && processConfigCommand(arguments, theConfiguration) {
		return
	}

	// start logging
	if err = logger.Initialise(theConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("theConfiguration: %v", theConfiguration)

	if err = fault.Initialise(); nil != err {
		exitwithstatus.Message("%s: fault setup failed with error: %s", program, err)
	}
	defer fault.Finalise()

	// optional PID file
	// use if not running under a supervisor program like daemon(8)
	if "" != theConfiguration.PidFile {
		lockFile, err := os.OpenFile(theConfiguration.PidFile, os.O_WRONLY|os.O_EXCL|os.O_CREATE, os.ModeExclusive|0600)
		if err != nil {
			if os.IsExist(err) {
				exitwithstatus.Message("%s: another instance is already running", program)
			}
			exitwithstatus.Message("%s: PID file: %q creation failed, error: %s", program, theConfiguration.PidFile, err)
		}
		fmt.Fprintf(lockFile, "%d\n", os.Getpid())
		lockFile.Close()
		defer os.Remove(theConfiguration.PidFile)
	}

	// set the initial system mode - before any background tasks are started
	err = mode.Initialise(theConfiguration.Chain)
	if nil != err {
		log.Criticalf("mode initialise error: %s", err)
		exitwithstatus.Message("mode initialise error: %s", err)
	}
	defer mode.Finalise()

	log.Infof("test mode: %v", mode.IsTesting())
	log.Infof("database: %q", theConfiguration.Database.Name)
	log.Infof("genesis height: %d", theConfiguration.Genesis.Height)
	log.Infof("phases: %+v", theConfiguration.Phases)

	// start the data storage
	log.Info("initialise storage")
	err = storage.Initialise(theConfiguration.Database.Name, storage.ReadWrite)
	if nil != err {
		log.Criticalf("storage initialise error: %s", err)
		exitwithstatus.Message("storage initialise error: %s", err)
	}
	defer storage.Finalise()

	phases, err := period.NewService(theConfiguration.Genesis.Height, theConfiguration.Phases)
	if nil != err {
		log.Criticalf("period initialise error: %s", err)
		exitwithstatus.Message("period initialise error: %s", err)
	}

	fees, err := loadFeeSchedule(theConfiguration)
	if nil != err {
		log.Criticalf("fee schedule error: %s", err)
		exitwithstatus.Message("fee schedule error: %s", err)
	}

	replayer := replay.New(parser.New(fees, phases), theConfiguration.Genesis.Height, messagebus.Bus)

	// these commands are allowed to access the internal database
	if len(arguments) > 0 && processDataCommand(log, arguments, replayer) {
		return
	}

	feed, err := blockfeed.New(theConfiguration.SpoolDirectory, replayer)
	if nil != err {
		log.Criticalf("block feed initialise error: %s", err)
		exitwithstatus.Message("block feed initialise error: %s", err)
	}

	processes := background.Start(background.Processes{
		replay.NewDiagnosticLogger(messagebus.Bus),
		replayer,
		feed,
	}, nil)
	defer processes.Stop()

	// wait for CTRL-C before shutting down to allow manual testing
	if 0 == len(options["quiet"]) {
		fmt.Printf("\n\nWaiting for CTRL-C (SIGINT) or 'kill <pid>' (SIGTERM)…")
	}

	// turn Signals into channel messages
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-ch:
		log.Infof("received signal: %v", sig)
		if 0 == len(options["quiet"]) {
			fmt.Printf("\nreceived signal: %v\n", sig)
			fmt.Printf("\nshutting down…\n")
		}

	case err := <-replayer.Failed():
		log.Criticalf("replay failed: %s", err)
		processes.Stop()
		err = fault.PanicIfInternal("replay", err)
		exitwithstatus.Message("replay failed: %s", err)
	}

	log.Info("shutting down…")
	mode.Set(mode.Stopped)
}

// fee changes from the configuration are merged into the persisted ones
func loadFeeSchedule(options *Configuration) (*fee.Schedule, error) {
	fees := fee.New(options.Fees.Initial, storage.Pool.FeeChanges)
	if err := fees.Load(); nil != err {
		return nil, err
	}
	for _, change := range options.Fees.Changes {
		if err := fees.Ensure(change.Height, change.Fee); nil != err {
			return nil, err
		}
	}
	return fees, nil
}
