// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/daonode/chain"
	"github.com/bitmark-inc/daonode/fee"
	"github.com/bitmark-inc/daonode/period"
)

func writeConfiguration(t *testing.T, content string) (string, string) {
	dir, err := ioutil.TempDir("", "daonode")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}
	fileName := filepath.Join(dir, "daonode.conf")
	err = ioutil.WriteFile(fileName, []byte(content), 0600)
	if nil != err {
		t.Fatalf("write error: %s", err)
	}
	return dir, fileName
}

func TestConfigurationDefaults(t *testing.T) {
	dir, fileName := writeConfiguration(t, `return { data_directory = ".", chain = "REGTEST" }`)
	defer os.RemoveAll(dir)

	options, err := getConfiguration(fileName, nil)
	assert.Nil(t, err, "configuration")

	assert.Equal(t, chain.Regtest, options.Chain, "chain")
	assert.Equal(t, chain.GenesisHeight(chain.Regtest), options.Genesis.Height, "genesis")
	assert.Equal(t, period.DefaultDurations(chain.Regtest), options.Phases, "phases")
	assert.Equal(t, uint64(100), options.Fees.Initial, "initial fee")
	assert.Equal(t, filepath.Join(dir, "data", "regtest.leveldb"), options.Database.Name, "database")
	assert.Equal(t, filepath.Join(dir, "spool"), options.SpoolDirectory, "spool")

	info, err := os.Stat(options.SpoolDirectory)
	assert.Nil(t, err, "spool created")
	assert.True(t, info.IsDir(), "spool is directory")
}

func TestConfigurationOverrides(t *testing.T) {
	const content = `
return {
    data_directory = ".",
    chain = "testnet",
    genesis = { height = 500 },
    phases = {
        proposal = 10, break1 = 2, blind_vote = 3, break2 = 1,
        vote_reveal = 3, break3 = 1, result = 1, break4 = 1,
    },
    fees = {
        initial = 70,
        changes = {
            { height = 600, proposal_fee = 80 },
        },
    },
    spool_directory = incoming,
}
`
	dir, fileName := writeConfiguration(t, content)
	defer os.RemoveAll(dir)

	options, err := getConfiguration(fileName, map[string]string{"incoming": "feed"})
	assert.Nil(t, err, "configuration")

	assert.Equal(t, uint64(500), options.Genesis.Height, "genesis")
	assert.Equal(t, uint64(22), options.Phases.CycleLength(), "cycle")
	assert.Equal(t, uint64(70), options.Fees.Initial, "initial fee")
	assert.Equal(t, []fee.Change{{Height: 600, Fee: 80}}, options.Fees.Changes, "changes")
	assert.Equal(t, filepath.Join(dir, "feed"), options.SpoolDirectory, "spool")
}

func TestConfigurationErrors(t *testing.T) {
	dir, fileName := writeConfiguration(t, `return { data_directory = ".", chain = "nochain" }`)
	defer os.RemoveAll(dir)

	_, err := getConfiguration(fileName, nil)
	assert.NotNil(t, err, "invalid chain")

	dir2, fileName2 := writeConfiguration(t, `return { chain = "regtest" }`)
	defer os.RemoveAll(dir2)

	_, err = getConfiguration(fileName2, nil)
	assert.NotNil(t, err, "missing data directory")

	dir3, fileName3 := writeConfiguration(t, `return { data_directory = ".", phases = { proposal = 1 } }`)
	defer os.RemoveAll(dir3)

	_, err = getConfiguration(fileName3, nil)
	assert.NotNil(t, err, "incomplete phases")
}
