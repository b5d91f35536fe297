// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
)

// Transaction - a batch of writes across pools committed atomically
type Transaction interface {
	Begin() error
	Put(*PoolHandle, []byte, []byte)
	PutN(*PoolHandle, []byte, uint64)
	Delete(*PoolHandle, []byte)
	Get(*PoolHandle, []byte) []byte
	GetN(*PoolHandle, []byte) (uint64, bool)
	Commit() error
	Abort()
}

type transactionData struct {
	access Access
}

func newTransaction(access Access) Transaction {
	return &transactionData{
		access: access,
	}
}

func (t *transactionData) Begin() error {
	return t.access.Begin()
}

func (t *transactionData) Put(handle *PoolHandle, key []byte, value []byte) {
	handle.put(key, value)
}

func (t *transactionData) PutN(handle *PoolHandle, key []byte, value uint64) {
	buffer := make([]byte, 8)
	binary.BigEndian.PutUint64(buffer, value)
	handle.put(key, buffer)
}

func (t *transactionData) Delete(handle *PoolHandle, key []byte) {
	handle.remove(key)
}

func (t *transactionData) Get(handle *PoolHandle, key []byte) []byte {
	return handle.Get(key)
}

func (t *transactionData) GetN(handle *PoolHandle, key []byte) (uint64, bool) {
	return handle.GetN(key)
}

func (t *transactionData) Commit() error {
	return t.access.Commit()
}

func (t *transactionData) Abort() {
	t.access.Abort()
}
