// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"sync"

	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/iterator"
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"

	"github.com/bitmark-inc/daonode/fault"
)

// Access - batched database access
type Access interface {
	Abort()
	Begin() error
	Commit() error
	Delete([]byte)
	Get([]byte) ([]byte, error)
	Has([]byte) (bool, error)
	InUse() bool
	Iterator(*ldb_util.Range) iterator.Iterator
	Put([]byte, []byte)
	PutDirect([]byte, []byte) error
}

// ErrBatchInUse - only one batch may be open at a time
var ErrBatchInUse = fault.ProcessError("batch already in use")

type accessData struct {
	sync.Mutex
	inUse bool
	db    *leveldb.DB
	batch *leveldb.Batch
	cache Cache
}

func newDA(db *leveldb.DB, batch *leveldb.Batch, cache Cache) Access {
	return &accessData{
		inUse: false,
		db:    db,
		batch: batch,
		cache: cache,
	}
}

func (d *accessData) Begin() error {
	d.Lock()
	defer d.Unlock()

	if d.inUse {
		return ErrBatchInUse
	}
	d.inUse = true
	return nil
}

func (d *accessData) Put(key []byte, value []byte) {
	d.cache.Set(dbPut, string(key), value)
	d.batch.Put(key, value)
}

// PutDirect - write outside any batch
func (d *accessData) PutDirect(key []byte, value []byte) error {
	return d.db.Put(key, value, nil)
}

func (d *accessData) Delete(key []byte) {
	d.cache.Set(dbDelete, string(key), nil)
	d.batch.Delete(key)
}

func (d *accessData) Commit() error {
	d.Lock()
	defer d.Unlock()

	err := d.db.Write(d.batch, nil)
	d.reset()
	return err
}

func (d *accessData) Abort() {
	d.Lock()
	defer d.Unlock()
	d.reset()
}

func (d *accessData) reset() {
	d.batch.Reset()
	d.cache.Clear()
	d.inUse = false
}

func (d *accessData) Get(key []byte) ([]byte, error) {
	value, deleted, found := d.cache.Get(string(key))
	if deleted {
		return nil, leveldb.ErrNotFound
	}
	if found {
		return value, nil
	}
	return d.db.Get(key, nil)
}

func (d *accessData) Has(key []byte) (bool, error) {
	_, deleted, found := d.cache.Get(string(key))
	if found {
		return !deleted, nil
	}
	return d.db.Has(key, nil)
}

// Iterator - committed data only
func (d *accessData) Iterator(searchRange *ldb_util.Range) iterator.Iterator {
	return d.db.NewIterator(searchRange, nil)
}

func (d *accessData) InUse() bool {
	d.Lock()
	defer d.Unlock()
	return d.inUse
}
