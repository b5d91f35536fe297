// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockrecord

import (
	"encoding/binary"

	"github.com/bitmark-inc/daonode/fault"
	"github.com/bitmark-inc/daonode/transactionrecord"
)

// PackedBlock - packed records are just a byte slice
type PackedBlock []byte

// currently supported block version
const (
	Version = 1
)

// maximum transactions in a block
// limited by uint16 field
const (
	MaximumTransactions = 10000
)

// byte sizes for various fields
const (
	VersionSize          = 2 // Block version number
	TransactionCountSize = 2 // Count of transactions
	HeightSize           = 8 // This block's height
)

// offsets of the fields
const (
	versionOffset          = 0
	transactionCountOffset = versionOffset + VersionSize
	heightOffset           = transactionCountOffset + TransactionCountSize

	totalHeaderSize = heightOffset + HeightSize
)

// Header - the unpacked header structure
type Header struct {
	Version          uint16 `json:"version"`
	TransactionCount uint16 `json:"transactionCount"`
	Height           uint64 `json:"height,string"`
}

// Block - header and the DAO relevant transactions in chain order
type Block struct {
	Header       Header                  `json:"header"`
	Transactions []*transactionrecord.Tx `json:"transactions"`
}

// Pack - header ++ (concat packed transactions)
//
// every transaction must carry the height of the block
func (b *Block) Pack() (PackedBlock, error) {
	if len(b.Transactions) > MaximumTransactions {
		return nil, fault.ErrTooManyTransactions
	}

	buffer := make([]byte, totalHeaderSize)
	binary.LittleEndian.PutUint16(buffer[versionOffset:], Version)
	binary.LittleEndian.PutUint16(buffer[transactionCountOffset:], uint16(len(b.Transactions)))
	binary.LittleEndian.PutUint64(buffer[heightOffset:], b.Header.Height)

	for _, tx := range b.Transactions {
		if tx.BlockHeight != b.Header.Height {
			return nil, fault.ErrBlockHeightMismatch
		}
		packed, err := tx.Pack()
		if nil != err {
			return nil, err
		}
		buffer = append(buffer, packed...)
	}
	return buffer, nil
}

// ExtractHeader - decode only the fixed size header
func (record PackedBlock) ExtractHeader() (*Header, error) {
	if len(record) < totalHeaderSize {
		return nil, fault.ErrTruncatedRecord
	}
	header := &Header{
		Version:          binary.LittleEndian.Uint16(record[versionOffset:]),
		TransactionCount: binary.LittleEndian.Uint16(record[transactionCountOffset:]),
		Height:           binary.LittleEndian.Uint64(record[heightOffset:]),
	}
	if Version != header.Version {
		return nil, fault.ErrUnknownRecordTag
	}
	if header.TransactionCount > MaximumTransactions {
		return nil, fault.ErrTooManyTransactions
	}
	return header, nil
}

// Unpack - decode header and all transactions
func (record PackedBlock) Unpack() (*Block, error) {
	header, err := record.ExtractHeader()
	if nil != err {
		return nil, err
	}

	block := &Block{
		Header:       *header,
		Transactions: make([]*transactionrecord.Tx, 0, header.TransactionCount),
	}

	data := record[totalHeaderSize:]
	for i := 0; i < int(header.TransactionCount); i += 1 {
		tx, n, err := transactionrecord.Packed(data).Unpack()
		if nil != err {
			return nil, err
		}
		if tx.BlockHeight != header.Height {
			return nil, fault.ErrBlockHeightMismatch
		}
		block.Transactions = append(block.Transactions, tx)
		data = data[n:]
	}
	if 0 != len(data) {
		return nil, fault.ErrUnexpectedTrailingData
	}
	return block, nil
}

// HeightKey - storage key of a block: big endian height
func HeightKey(height uint64) []byte {
	key := make([]byte, HeightSize)
	binary.BigEndian.PutUint64(key, height)
	return key
}
