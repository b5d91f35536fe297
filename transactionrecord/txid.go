// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"encoding/hex"

	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/daonode/fault"
)

// TxIdLength - number of bytes in a transaction id
const TxIdLength = 32

// TxId - SHA3-256 digest of a packed transaction
//
// stored as little endian byte array
// represented as big endian hex value for print and JSON
type TxId [TxIdLength]byte

// NewTxId - digest a packed record
func NewTxId(record []byte) TxId {
	return sha3.Sum256(record)
}

// TxIdFromBytes - convert and validate a little endian byte slice
func TxIdFromBytes(txId *TxId, buffer []byte) error {
	if TxIdLength != len(buffer) {
		return fault.ErrNotTransactionPack
	}
	copy(txId[:], buffer)
	return nil
}

// TxIdFromString - parse a big endian hex representation
func TxIdFromString(txId *TxId, s string) error {
	return txId.UnmarshalText([]byte(s))
}

// String - big endian hex, for %s
func (txId TxId) String() string {
	return hex.EncodeToString(txId.reversed())
}

// GoString - for %#v
func (txId TxId) GoString() string {
	return "<SHA3-256:" + txId.String() + ">"
}

// MarshalText - big endian hex text for JSON encoding
func (txId TxId) MarshalText() ([]byte, error) {
	return []byte(txId.String()), nil
}

// UnmarshalText - big endian hex text into a transaction id
func (txId *TxId) UnmarshalText(s []byte) error {
	if TxIdLength != hex.DecodedLen(len(s)) {
		return fault.ErrNotTransactionPack
	}
	buffer := make([]byte, TxIdLength)
	if _, err := hex.Decode(buffer, s); nil != err {
		return err
	}
	for i, v := range buffer {
		txId[TxIdLength-1-i] = v
	}
	return nil
}

// internal function to return a reversed byte order copy
func (txId TxId) reversed() []byte {
	result := make([]byte, TxIdLength)
	for i := 0; i < TxIdLength; i += 1 {
		result[i] = txId[TxIdLength-1-i]
	}
	return result
}
