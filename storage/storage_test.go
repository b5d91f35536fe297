// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/daonode/fault"
	"github.com/bitmark-inc/daonode/storage"
)

func TestDoubleInitialise(t *testing.T) {
	setup(t)
	defer teardown(t)

	err := storage.Initialise(databaseFileName, storage.ReadWrite)
	assert.Equal(t, fault.ErrAlreadyInitialised, err, "second initialise")
}

func TestPutGet(t *testing.T) {
	setup(t)
	defer teardown(t)

	p := storage.Pool.TestData

	assert.Nil(t, p.Get([]byte("missing")), "missing key")
	assert.False(t, p.Has([]byte("missing")), "missing key")

	err := p.Put([]byte("key-one"), []byte("data-one"))
	assert.Nil(t, err, "put")
	assert.Equal(t, []byte("data-one"), p.Get([]byte("key-one")), "get")
	assert.True(t, p.Has([]byte("key-one")), "has")

	err = p.PutN([]byte("key-n"), 0x0102030405060708)
	assert.Nil(t, err, "putN")
	n, found := p.GetN([]byte("key-n"))
	assert.True(t, found, "getN found")
	assert.Equal(t, uint64(0x0102030405060708), n, "getN")

	// other pools do not see the data
	assert.Nil(t, storage.Pool.Blocks.Get([]byte("key-one")), "pool separation")
}

func TestCursor(t *testing.T) {
	setup(t)
	defer teardown(t)

	p := storage.Pool.TestData
	for _, k := range []string{"key-c", "key-a", "key-e", "key-b", "key-d"} {
		assert.Nil(t, p.Put([]byte(k), []byte("v-"+k)), "put")
	}
	assert.Nil(t, storage.Pool.Transactions.Put([]byte("key-z"), []byte("other")), "put")

	cursor := p.NewFetchCursor()
	first, err := cursor.Fetch(2)
	assert.Nil(t, err, "fetch")
	assert.Equal(t, 2, len(first), "first count")
	assert.Equal(t, []byte("key-a"), first[0].Key, "first key")
	assert.Equal(t, []byte("key-b"), first[1].Key, "second key")

	rest, err := cursor.Fetch(10)
	assert.Nil(t, err, "fetch")
	assert.Equal(t, 3, len(rest), "remaining count")
	assert.Equal(t, []byte("key-e"), rest[2].Key, "last key")

	last, found := p.LastElement()
	assert.True(t, found, "last found")
	assert.Equal(t, []byte("v-key-e"), last.Value, "last value")

	seen := 0
	err = p.NewFetchCursor().Seek([]byte("key-c")).Map(func(key []byte, value []byte) error {
		seen += 1
		return nil
	})
	assert.Nil(t, err, "map")
	assert.Equal(t, 3, seen, "map from seek")

	_, err = cursor.Fetch(0)
	assert.Equal(t, fault.ErrInvalidCount, err, "zero count")
}

func TestTransactionCommit(t *testing.T) {
	setup(t)
	defer teardown(t)

	p := storage.Pool.TestData
	assert.Nil(t, p.Put([]byte("old"), []byte("gone")), "put")

	trx, err := storage.NewDBTransaction()
	assert.Nil(t, err, "begin")

	_, err = storage.NewDBTransaction()
	assert.Equal(t, storage.ErrBatchInUse, err, "nested begin")

	trx.Put(p, []byte("new"), []byte("value"))
	trx.PutN(p, []byte("count"), 7)
	trx.Delete(p, []byte("old"))

	// uncommitted data is visible through the cache
	assert.Equal(t, []byte("value"), trx.Get(p, []byte("new")), "uncommitted get")
	assert.False(t, p.Has([]byte("old")), "uncommitted delete")

	// but not to iterators
	_, found := p.LastElement()
	assert.True(t, found, "committed element")

	assert.Nil(t, trx.Commit(), "commit")

	n, found := p.GetN([]byte("count"))
	assert.True(t, found, "count found")
	assert.Equal(t, uint64(7), n, "count")
	assert.Nil(t, p.Get([]byte("old")), "deleted")

	_, err = storage.NewDBTransaction()
	assert.Nil(t, err, "begin after commit")
}

func TestTransactionAbort(t *testing.T) {
	setup(t)
	defer teardown(t)

	p := storage.Pool.TestData

	trx, err := storage.NewDBTransaction()
	assert.Nil(t, err, "begin")
	trx.Put(p, []byte("key"), []byte("value"))
	trx.Abort()

	assert.Nil(t, p.Get([]byte("key")), "aborted put")

	trx, err = storage.NewDBTransaction()
	assert.Nil(t, err, "begin after abort")
	trx.Abort()
}

func TestReadOnly(t *testing.T) {
	setup(t)
	storage.Finalise()

	err := storage.Initialise(databaseFileName, storage.ReadOnly)
	assert.Nil(t, err, "read only initialise")
	defer teardown(t)

	err = storage.Pool.TestData.Put([]byte("k"), []byte("v"))
	assert.Equal(t, storage.ErrReadOnly, err, "read only put")
}
