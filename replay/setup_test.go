// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package replay_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/daonode/blockrecord"
	"github.com/bitmark-inc/daonode/chain"
	"github.com/bitmark-inc/daonode/compreq"
	"github.com/bitmark-inc/daonode/fee"
	"github.com/bitmark-inc/daonode/fixtures"
	"github.com/bitmark-inc/daonode/mode"
	"github.com/bitmark-inc/daonode/parser"
	"github.com/bitmark-inc/daonode/period"
	"github.com/bitmark-inc/daonode/storage"
	"github.com/bitmark-inc/daonode/transactionrecord"
)

const (
	databaseFileName = "test.leveldb"
	genesis          = 100
	proposalFee      = 1000
)

func removeFiles() {
	os.RemoveAll(databaseFileName)
}

func setup(t *testing.T) {
	fixtures.SetupTestLogger()
	removeFiles()
	err := storage.Initialise(databaseFileName, storage.ReadWrite)
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}
	err = mode.Initialise(chain.Regtest)
	if nil != err {
		t.Fatalf("mode initialise error: %s", err)
	}
}

func teardown(t *testing.T) {
	_ = mode.Finalise()
	storage.Finalise()
	removeFiles()
	fixtures.TeardownTestLogger()
}

func newParser(t *testing.T) *parser.Parser {
	phases, err := period.NewService(genesis, period.DefaultDurations(chain.Regtest))
	assert.Nil(t, err, "period")
	return parser.New(fee.New(proposalFee, nil), phases)
}

// value outputs followed by a compensation request op_return
func compReqTx(height uint64, burnt uint64) *transactionrecord.Tx {
	payload := make([]byte, compreq.PayloadLength)
	payload[0] = byte(transactionrecord.CompensationRequestOpReturn)
	payload[1] = compreq.Version
	payload[2] = byte(height)

	return &transactionrecord.Tx{
		BlockHeight: height,
		BurntFee:    burnt,
		Outputs: []*transactionrecord.TxOutput{
			{Index: 0, Value: 5000, Kind: transactionrecord.ValueScript, Address: "change"},
			{Index: 1, Value: 20000, Kind: transactionrecord.ValueScript, Address: "requester"},
			{Index: 2, Kind: transactionrecord.OpReturnScript, OpReturnData: payload},
		},
	}
}

func storeBlock(t *testing.T, height uint64, txs ...*transactionrecord.Tx) {
	block := blockrecord.Block{
		Header: blockrecord.Header{
			Height: height,
		},
		Transactions: txs,
	}
	packed, err := block.Pack()
	assert.Nil(t, err, "pack block")
	err = storage.Pool.Blocks.Put(blockrecord.HeightKey(height), packed)
	assert.Nil(t, err, "store block")
}

func txIdOf(t *testing.T, tx *transactionrecord.Tx) transactionrecord.TxId {
	txId, err := tx.TxId()
	assert.Nil(t, err, "tx id")
	return txId
}
