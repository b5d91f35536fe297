// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/daonode/configuration"
	"github.com/bitmark-inc/daonode/fault"
)

type phases struct {
	Proposal uint64 `gluamapper:"proposal"`
	Break1   uint64 `gluamapper:"break1"`
}

type fee struct {
	Height uint64 `gluamapper:"height"`
	Fee    uint64 `gluamapper:"proposal_fee"`
}

type testConfiguration struct {
	Chain   string `gluamapper:"chain"`
	Spool   string `gluamapper:"spool_directory"`
	Phases  phases `gluamapper:"phases"`
	Fees    []fee  `gluamapper:"fees"`
	Missing string `gluamapper:"missing"`
}

const luaConfig = `
local M = {}

M.chain = "regtest"
M.spool_directory = data_directory .. "/spool"

M.phases = {
    proposal = 4,
    break1 = 1,
}

M.fees = {
    { height = 200, proposal_fee = 2000 },
    { height = 300, proposal_fee = 3000 },
}

return M
`

func writeConfig(t *testing.T, content string) (string, func()) {
	dir, err := ioutil.TempDir("", "configuration")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}
	fileName := filepath.Join(dir, "daonode.conf")
	err = ioutil.WriteFile(fileName, []byte(content), 0600)
	if nil != err {
		t.Fatalf("write error: %s", err)
	}
	return fileName, func() { os.RemoveAll(dir) }
}

func TestParseConfigurationFile(t *testing.T) {
	fileName, cleanup := writeConfig(t, luaConfig)
	defer cleanup()

	config := testConfiguration{
		Missing: "default",
	}
	variables := map[string]string{
		"data_directory": "/var/lib/daonode",
	}
	err := configuration.ParseConfigurationFile(fileName, &config, variables)
	assert.Nil(t, err, "parse")

	assert.Equal(t, "regtest", config.Chain, "chain")
	assert.Equal(t, "/var/lib/daonode/spool", config.Spool, "spool from variable")
	assert.Equal(t, uint64(4), config.Phases.Proposal, "proposal")
	assert.Equal(t, uint64(1), config.Phases.Break1, "break1")
	assert.Equal(t, []fee{{200, 2000}, {300, 3000}}, config.Fees, "fees")
	assert.Equal(t, "default", config.Missing, "default kept")
}

func TestParseConfigurationErrors(t *testing.T) {
	config := testConfiguration{}

	err := configuration.ParseConfigurationFile("/no/such/file.conf", &config, nil)
	assert.Equal(t, fault.ErrConfigurationNotFound, err, "missing file")

	err = configuration.ParseConfigurationFile("/no/such/file.conf", config, nil)
	assert.Equal(t, fault.ErrInvalidStructPointer, err, "not a pointer")

	fileName, cleanup := writeConfig(t, "return {")
	defer cleanup()
	err = configuration.ParseConfigurationFile(fileName, &config, nil)
	assert.NotNil(t, err, "syntax error")
}

func TestEnsureAbsolute(t *testing.T) {
	assert.Equal(t, "/data/file", configuration.EnsureAbsolute("/data", "file"), "relative")
	assert.Equal(t, "/other/file", configuration.EnsureAbsolute("/data", "/other/file"), "absolute")
	assert.Equal(t, "/data/file", configuration.EnsureAbsolute("/data", "sub/../file"), "cleaned")
}
