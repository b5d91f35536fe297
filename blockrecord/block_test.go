// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockrecord_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/daonode/blockrecord"
	"github.com/bitmark-inc/daonode/fault"
	"github.com/bitmark-inc/daonode/transactionrecord"
)

func makeBlock(height uint64) *blockrecord.Block {
	return &blockrecord.Block{
		Header: blockrecord.Header{Height: height},
		Transactions: []*transactionrecord.Tx{
			{
				BlockHeight: height,
				BurntFee:    10,
				Outputs: []*transactionrecord.TxOutput{
					{Value: 100, Kind: transactionrecord.ValueScript, Address: "addr-one"},
				},
			},
			{
				BlockHeight: height,
				BurntFee:    1000,
				Outputs: []*transactionrecord.TxOutput{
					{Value: 100, Kind: transactionrecord.ValueScript, Address: "addr-two"},
					{Kind: transactionrecord.OpReturnScript, OpReturnData: []byte{0x11, 0x01}},
				},
			},
		},
	}
}

func TestPackUnpackBlock(t *testing.T) {
	packed, err := makeBlock(123).Pack()
	assert.Nil(t, err, "pack")

	header, err := packed.ExtractHeader()
	assert.Nil(t, err, "header")
	assert.Equal(t, uint64(123), header.Height, "height")
	assert.Equal(t, uint16(2), header.TransactionCount, "count")

	block, err := packed.Unpack()
	assert.Nil(t, err, "unpack")
	assert.Equal(t, 2, len(block.Transactions), "transactions")
	assert.Equal(t, uint64(1000), block.Transactions[1].BurntFee, "order preserved")
}

func TestPackHeightMismatch(t *testing.T) {
	b := makeBlock(123)
	b.Transactions[1].BlockHeight = 124
	_, err := b.Pack()
	assert.Equal(t, fault.ErrBlockHeightMismatch, err, "mismatch")
}

func TestUnpackTrailingData(t *testing.T) {
	packed, err := makeBlock(9).Pack()
	assert.Nil(t, err, "pack")

	_, err = append(packed, 0x00).Unpack()
	assert.Equal(t, fault.ErrUnexpectedTrailingData, err, "trailing")
}

func TestUnpackShortHeader(t *testing.T) {
	_, err := blockrecord.PackedBlock{0x01, 0x00}.Unpack()
	assert.Equal(t, fault.ErrTruncatedRecord, err, "short")
}
