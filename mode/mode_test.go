// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mode_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/daonode/chain"
	"github.com/bitmark-inc/daonode/fault"
	"github.com/bitmark-inc/daonode/fixtures"
	"github.com/bitmark-inc/daonode/mode"
)

func TestInitialiseAndSet(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	err := mode.Initialise(chain.Regtest)
	assert.Nil(t, err, "wrong Initialise")
	defer mode.Finalise()

	assert.True(t, mode.Is(mode.Replaying), "initial mode")
	assert.True(t, mode.IsTesting(), "regtest is testing")
	assert.Equal(t, chain.Regtest, mode.ChainName(), "chain name")

	mode.Set(mode.Normal)
	assert.True(t, mode.IsNot(mode.Replaying), "mode changed")
	assert.Equal(t, "Normal", mode.String(), "string")

	err = mode.Initialise(chain.Regtest)
	assert.Equal(t, fault.ErrAlreadyInitialised, err, "second Initialise")
}

func TestInitialiseInvalidChain(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	err := mode.Initialise("bitmark")
	assert.Equal(t, fault.ErrInvalidChain, err, "invalid chain")
}
