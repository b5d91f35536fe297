// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bitmark-inc/daonode/chain"
	"github.com/bitmark-inc/daonode/configuration"
	"github.com/bitmark-inc/daonode/fee"
	"github.com/bitmark-inc/daonode/period"
	"github.com/bitmark-inc/logger"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "" // this will error; use "." for the same directory as the config file

	defaultLevelDBDirectory = "data"
	defaultSpoolDirectory   = "spool"

	defaultLogDirectory = "log"
	defaultLogFile      = "daonode.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// initial proposal fee in the smallest coloured coin unit
var defaultProposalFee = map[string]uint64{
	chain.Mainnet: 200,
	chain.Testnet: 200,
	chain.Regtest: 100,
}

// to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		"main":            "info",
		"replay":          "info",
		"diagnostic":      "warn",
		logger.DefaultTag: "critical",
	}
)

type DatabaseType struct {
	Directory string `gluamapper:"directory" json:"directory"`
	Name      string `gluamapper:"name" json:"name"`
}

type GenesisType struct {
	Height uint64 `gluamapper:"height" json:"height"`
}

type FeeType struct {
	Initial uint64       `gluamapper:"initial" json:"initial"`
	Changes []fee.Change `gluamapper:"changes" json:"changes"`
}

type Configuration struct {
	DataDirectory  string               `gluamapper:"data_directory" json:"data_directory"`
	PidFile        string               `gluamapper:"pidfile" json:"pidfile"`
	Chain          string               `gluamapper:"chain" json:"chain"`
	Database       DatabaseType         `gluamapper:"database" json:"database"`
	SpoolDirectory string               `gluamapper:"spool_directory" json:"spool_directory"`
	Genesis        GenesisType          `gluamapper:"genesis" json:"genesis"`
	Phases         period.Durations     `gluamapper:"phases" json:"phases"`
	Fees           FeeType              `gluamapper:"fees" json:"fees"`
	Logging        logger.Configuration `gluamapper:"logging" json:"logging"`
}

// will read decode and verify the configuration
//
// chain dependent items left at zero are given the defaults of the
// selected chain
func getConfiguration(configurationFileName string, variables map[string]string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := &Configuration{

		DataDirectory:  defaultDataDirectory,
		PidFile:        "", // no PidFile by default
		Chain:          chain.Mainnet,
		SpoolDirectory: defaultSpoolDirectory,

		Database: DatabaseType{
			Directory: defaultLevelDBDirectory,
			Name:      "",
		},

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels,
		},
	}

	if err := configuration.ParseConfigurationFile(configurationFileName, options, variables); err != nil {
		return nil, err
	}

	// Abort if the chain name is not recognised.
	options.Chain = strings.ToLower(options.Chain)
	if !chain.Valid(options.Chain) {
		return nil, fmt.Errorf("Chain: %q is not supported", options.Chain)
	}

	if "" == options.Database.Name {
		options.Database.Name = options.Chain + ".leveldb"
	}
	if 0 == options.Genesis.Height {
		options.Genesis.Height = chain.GenesisHeight(options.Chain)
	}
	if 0 == options.Phases.CycleLength() {
		options.Phases = period.DefaultDurations(options.Chain)
	}
	if err := options.Phases.Validate(); nil != err {
		return nil, err
	}
	if 0 == options.Fees.Initial {
		options.Fees.Initial = defaultProposalFee[options.Chain]
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fmt.Errorf("Path: %q is not a valid directory", options.DataDirectory)
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	}
	options.DataDirectory = filepath.Clean(options.DataDirectory)

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, fmt.Errorf("Path: %q is not a directory", options.DataDirectory)
	}

	// optional absolute paths i.e. blank or an absolute path
	optionalAbsolute := []*string{
		&options.PidFile,
	}
	for _, f := range optionalAbsolute {
		if "" != *f {
			*f = configuration.EnsureAbsolute(options.DataDirectory, *f)
		}
	}

	// fail if any of these are not simple file names i.e. must
	// not contain path seperator, then add the correct directory
	// prefix, file item is first and corresponding directory is
	// second (or nil if no prefix can be added)
	mustNotBePaths := [][2]*string{
		{&options.Database.Name, &options.Database.Directory},
		{&options.Logging.File, nil},
	}
	for _, f := range mustNotBePaths {
		switch filepath.Dir(*f[0]) {
		case "", ".":
			if nil != f[1] {
				*f[1] = configuration.EnsureAbsolute(options.DataDirectory, *f[1])
				*f[0] = configuration.EnsureAbsolute(*f[1], *f[0])
			}
		default:
			return nil, fmt.Errorf("Files: %q is not plain name", *f[0])
		}
	}

	// make absolute and create directories if they do not already exist
	for _, d := range []*string{
		&options.Database.Directory,
		&options.SpoolDirectory,
		&options.Logging.Directory,
	} {
		*d = configuration.EnsureAbsolute(options.DataDirectory, *d)
		if err := os.MkdirAll(*d, 0700); nil != err {
			return nil, err
		}
	}

	// done
	return options, nil
}
