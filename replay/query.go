// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package replay

import (
	"github.com/bitmark-inc/daonode/fault"
	"github.com/bitmark-inc/daonode/storage"
	"github.com/bitmark-inc/daonode/transactionrecord"
)

// StoredTransaction - a replayed transaction with the classification
// of each of its outputs restored
func StoredTransaction(txId transactionrecord.TxId) (*transactionrecord.Tx, error) {
	_, packed := storage.Pool.Transactions.GetNB(txId[:])
	if nil == packed {
		return nil, fault.ErrTransactionNotFound
	}

	tx, n, err := transactionrecord.Packed(packed).Unpack()
	if nil != err {
		return nil, err
	}
	if n != len(packed) {
		return nil, fault.ErrUnexpectedTrailingData
	}

	for _, output := range tx.Outputs {
		value := storage.Pool.Outputs.Get(outputKey(txId, output.Index))
		if 1 != len(value) {
			return nil, fault.ErrTruncatedRecord
		}
		output.Type = transactionrecord.OutputType(value[0])
	}
	return tx, nil
}

// StoredOutputType - classification of a single replayed output
func StoredOutputType(txId transactionrecord.TxId, index int) (transactionrecord.OutputType, error) {
	if index < 0 {
		return transactionrecord.UndefinedOutput, fault.ErrOutputIndexOutOfRange
	}
	value := storage.Pool.Outputs.Get(outputKey(txId, index))
	if nil == value {
		return transactionrecord.UndefinedOutput, fault.ErrTransactionNotFound
	}
	if 1 != len(value) {
		return transactionrecord.UndefinedOutput, fault.ErrTruncatedRecord
	}
	return transactionrecord.OutputType(value[0]), nil
}
