// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fee_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/daonode/fault"
	"github.com/bitmark-inc/daonode/fee"
	"github.com/bitmark-inc/daonode/fixtures"
	"github.com/bitmark-inc/daonode/storage"
)

const databaseFileName = "fee-test.leveldb"

func TestProposalFeeAt(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	s := fee.New(200, nil)
	assert.Nil(t, s.Add(100, 1000), "add")
	assert.Nil(t, s.Add(500, 1500), "add")

	tests := []struct {
		height uint64
		fee    uint64
	}{
		{0, 200},
		{99, 200},
		{100, 1000},
		{499, 1000},
		{500, 1500},
		{1000000, 1500},
	}
	for i, item := range tests {
		assert.Equal(t, item.fee, s.ProposalFeeAt(item.height), "%d: height %d", i, item.height)
	}
}

func TestAddOrdering(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	s := fee.New(200, nil)
	assert.Nil(t, s.Add(100, 1000), "add")
	assert.Equal(t, fault.ErrDuplicateFeeChange, s.Add(100, 1000), "duplicate")
	assert.Equal(t, fault.ErrFeeChangeOutOfOrder, s.Add(50, 1000), "out of order")

	assert.Nil(t, s.Ensure(100, 1000), "identical change")
	assert.Equal(t, fault.ErrDuplicateFeeChange, s.Ensure(100, 999), "conflicting change")
	assert.Nil(t, s.Ensure(200, 999), "new change")
	assert.Equal(t, 2, len(s.Changes()), "changes")
}

func TestPersistence(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()
	os.RemoveAll(databaseFileName)
	defer os.RemoveAll(databaseFileName)

	err := storage.Initialise(databaseFileName, storage.ReadWrite)
	assert.Nil(t, err, "storage")
	defer storage.Finalise()

	s := fee.New(200, storage.Pool.FeeChanges)
	assert.Nil(t, s.Add(300, 700), "add")
	assert.Nil(t, s.Add(900, 800), "add")

	restored := fee.New(200, storage.Pool.FeeChanges)
	assert.Nil(t, restored.Load(), "load")
	assert.Equal(t, s.Changes(), restored.Changes(), "restored changes")
	assert.Equal(t, uint64(700), restored.ProposalFeeAt(899), "restored fee")
	assert.Equal(t, uint64(800), restored.ProposalFeeAt(900), "restored fee")
}
