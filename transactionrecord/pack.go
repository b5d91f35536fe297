// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"github.com/bitmark-inc/daonode/fault"
	"github.com/bitmark-inc/daonode/util"
)

// Pack - convert a transaction to its byte form
//
//   tag ++ height ++ burnt fee ++ count ++ [ value ++ kind ++ length ++ script ]
//
// all integers are Varint64
func (tx *Tx) Pack() (Packed, error) {
	if len(tx.Outputs) > MaxOutputs {
		return nil, fault.ErrTooManyOutputs
	}

	opReturnCount := 0
	record := util.ToVarint64(uint64(TransactionTag))
	record = util.AppendVarint64(record, tx.BlockHeight)
	record = util.AppendVarint64(record, tx.BurntFee)
	record = util.AppendVarint64(record, uint64(len(tx.Outputs)))

	for i, output := range tx.Outputs {
		record = util.AppendVarint64(record, output.Value)
		record = util.AppendVarint64(record, uint64(output.Kind))

		switch output.Kind {
		case ValueScript:
			if len(output.Address) > MaxAddressLength {
				return nil, fault.ErrScriptTooLong
			}
			record = appendBytes(record, []byte(output.Address))

		case OpReturnScript:
			if len(output.OpReturnData) > MaxOpReturnLength {
				return nil, fault.ErrScriptTooLong
			}
			if i != len(tx.Outputs)-1 {
				return nil, fault.ErrOpReturnNotLastOutput
			}
			opReturnCount += 1
			record = appendBytes(record, output.OpReturnData)

		default:
			return nil, fault.ErrUnknownRecordTag
		}
	}
	if opReturnCount > 1 {
		return nil, fault.ErrOpReturnNotLastOutput
	}

	return record, nil
}

func appendBytes(buffer []byte, data []byte) []byte {
	buffer = util.AppendVarint64(buffer, uint64(len(data)))
	return append(buffer, data...)
}
