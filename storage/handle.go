// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"

	"github.com/syndtr/goleveldb/leveldb"
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"

	"github.com/bitmark-inc/daonode/fault"
)

// ErrReadOnly - write attempted on a read only database
var ErrReadOnly = fault.ProcessError("database is read only")

// PoolHandle - the structure for a pool
type PoolHandle struct {
	prefix     byte
	limit      []byte
	dataAccess Access
	readOnly   bool
}

// Element - a binary data item
type Element struct {
	Key   []byte
	Value []byte
}

// prepend the prefix onto the key
func (p *PoolHandle) prefixKey(key []byte) []byte {
	prefixedKey := make([]byte, 1, len(key)+1)
	prefixedKey[0] = p.prefix
	return append(prefixedKey, key...)
}

// Put - store a key/value bytes pair immediately, outside any batch
func (p *PoolHandle) Put(key []byte, value []byte) error {
	if p.readOnly {
		return ErrReadOnly
	}
	poolData.RLock()
	defer poolData.RUnlock()
	return p.dataAccess.PutDirect(p.prefixKey(key), value)
}

// PutN - store a uint64 as big endian immediately, outside any batch
func (p *PoolHandle) PutN(key []byte, value uint64) error {
	buffer := make([]byte, 8)
	binary.BigEndian.PutUint64(buffer, value)
	return p.Put(key, buffer)
}

// batched writes, only reachable through a Transaction
func (p *PoolHandle) put(key []byte, value []byte) {
	p.dataAccess.Put(p.prefixKey(key), value)
}

func (p *PoolHandle) remove(key []byte) {
	p.dataAccess.Delete(p.prefixKey(key))
}

// Get - read a value for a given key, nil if not found
//
// uncommitted values of an open batch are visible
func (p *PoolHandle) Get(key []byte) []byte {
	poolData.RLock()
	defer poolData.RUnlock()
	value, err := p.dataAccess.Get(p.prefixKey(key))
	if leveldb.ErrNotFound == err {
		return nil
	}
	fault.PanicIfError("pool.Get", err)
	return value
}

// GetN - read a record and decode first 8 bytes as big endian uint64
//
// second parameter is false if record was not found
// panics if not 8 (or more) bytes in the record
func (p *PoolHandle) GetN(key []byte) (uint64, bool) {
	buffer := p.Get(key)
	if nil == buffer {
		return 0, false
	}
	if len(buffer) < 8 {
		fault.Panicf("pool.GetN truncated record for: %x: %x", key, buffer)
	}
	return binary.BigEndian.Uint64(buffer[:8]), true
}

// GetNB - decode first 8 bytes as big endian uint64 and return the rest
//
// second parameter is nil if record was not found
func (p *PoolHandle) GetNB(key []byte) (uint64, []byte) {
	buffer := p.Get(key)
	if nil == buffer {
		return 0, nil
	}
	if len(buffer) < 9 { // must have at least one byte after the N value
		fault.Panicf("pool.GetNB truncated record for: %x: %x", key, buffer)
	}
	return binary.BigEndian.Uint64(buffer[:8]), buffer[8:]
}

// Has - check if a key exists
func (p *PoolHandle) Has(key []byte) bool {
	poolData.RLock()
	defer poolData.RUnlock()
	found, err := p.dataAccess.Has(p.prefixKey(key))
	fault.PanicIfError("pool.Has", err)
	return found
}

// LastElement - get the last committed element in a pool
func (p *PoolHandle) LastElement() (Element, bool) {
	maxRange := ldb_util.Range{
		Start: []byte{p.prefix}, // Start of key range, included in the range
		Limit: p.limit,          // Limit of key range, excluded from the range
	}

	poolData.RLock()
	defer poolData.RUnlock()

	iter := p.dataAccess.Iterator(&maxRange)

	found := false
	result := Element{}
	if iter.Last() {
		result = copyElement(iter.Key(), iter.Value())
		found = true
	}
	iter.Release()
	fault.PanicIfError("pool.LastElement", iter.Error())
	return result, found
}

// iterator contents are only valid until the next call to Next
func copyElement(key []byte, value []byte) Element {
	dataKey := make([]byte, len(key)-1) // strip the prefix
	copy(dataKey, key[1:])

	dataValue := make([]byte, len(value))
	copy(dataValue, value)

	return Element{
		Key:   dataKey,
		Value: dataValue,
	}
}
