// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"github.com/bitmark-inc/daonode/fault"
	"github.com/bitmark-inc/daonode/util"
)

// Unpack - turn a byte slice into a transaction
//
// returns the number of bytes consumed so records can be concatenated;
// every output starts in the UndefinedOutput classification
func (record Packed) Unpack() (*Tx, int, error) {
	r := reader{buffer: record}

	tag, err := r.varint()
	if nil != err {
		return nil, 0, err
	}
	if TransactionTag != TagType(tag) {
		return nil, 0, fault.ErrUnknownRecordTag
	}

	tx := &Tx{}
	if tx.BlockHeight, err = r.varint(); nil != err {
		return nil, 0, err
	}
	if tx.BurntFee, err = r.varint(); nil != err {
		return nil, 0, err
	}

	count, err := r.varint()
	if nil != err {
		return nil, 0, err
	}
	if count > MaxOutputs {
		return nil, 0, fault.ErrTooManyOutputs
	}

	tx.Outputs = make([]*TxOutput, 0, count)
	for i := 0; i < int(count); i += 1 {
		output := &TxOutput{
			Index: i,
			Type:  UndefinedOutput,
		}
		if output.Value, err = r.varint(); nil != err {
			return nil, 0, err
		}
		kind, err := r.varint()
		if nil != err {
			return nil, 0, err
		}
		output.Kind = ScriptKind(kind)

		switch output.Kind {
		case ValueScript:
			address, err := r.bytes(MaxAddressLength)
			if nil != err {
				return nil, 0, err
			}
			output.Address = string(address)

		case OpReturnScript:
			if i != int(count)-1 {
				return nil, 0, fault.ErrOpReturnNotLastOutput
			}
			data, err := r.bytes(MaxOpReturnLength)
			if nil != err {
				return nil, 0, err
			}
			output.OpReturnData = data

		default:
			return nil, 0, fault.ErrUnknownRecordTag
		}
		tx.Outputs = append(tx.Outputs, output)
	}

	return tx, r.n, nil
}

// sequential access to a packed buffer
type reader struct {
	buffer []byte
	n      int
}

func (r *reader) varint() (uint64, error) {
	value, count := util.FromVarint64(r.buffer[r.n:])
	if 0 == count {
		return 0, fault.ErrTruncatedRecord
	}
	r.n += count
	return value, nil
}

// length prefixed bytes, the result is a copy
func (r *reader) bytes(maximum int) ([]byte, error) {
	length, err := r.varint()
	if nil != err {
		return nil, err
	}
	if length > uint64(maximum) {
		return nil, fault.ErrScriptTooLong
	}
	end := r.n + int(length)
	if end > len(r.buffer) {
		return nil, fault.ErrTruncatedRecord
	}
	data := make([]byte, length)
	copy(data, r.buffer[r.n:end])
	r.n = end
	return data, nil
}
