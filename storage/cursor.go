// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/syndtr/goleveldb/leveldb/util"

	"github.com/bitmark-inc/daonode/fault"
)

// FetchCursor - cursor structure
type FetchCursor struct {
	pool     *PoolHandle
	maxRange util.Range
}

// NewFetchCursor - initialise a cursor to the start of a key range
func (p *PoolHandle) NewFetchCursor() *FetchCursor {
	return &FetchCursor{
		pool: p,
		maxRange: util.Range{
			Start: []byte{p.prefix}, // Start of key range, included in the range
			Limit: p.limit,          // Limit of key range, excluded from the range
		},
	}
}

// Seek - move cursor to specific key position
func (cursor *FetchCursor) Seek(key []byte) *FetchCursor {
	cursor.maxRange.Start = cursor.pool.prefixKey(key)
	return cursor
}

// Fetch - return up to count elements, advancing the cursor past them
func (cursor *FetchCursor) Fetch(count int) ([]Element, error) {
	if count <= 0 {
		return nil, fault.ErrInvalidCount
	}

	iter := cursor.pool.dataAccess.Iterator(&cursor.maxRange)

	results := make([]Element, 0, count)
	for len(results) < count && iter.Next() {
		results = append(results, copyElement(iter.Key(), iter.Value()))
	}
	iter.Release()

	if n := len(results); n > 0 {
		// smallest key strictly after the last one returned
		next := cursor.pool.prefixKey(results[n-1].Key)
		cursor.maxRange.Start = append(next, 0x00)
	}
	return results, iter.Error()
}

// Map - run a function on all elements in the range
func (cursor *FetchCursor) Map(f func(key []byte, value []byte) error) error {
	iter := cursor.pool.dataAccess.Iterator(&cursor.maxRange)

	var err error
	for iter.Next() {
		e := copyElement(iter.Key(), iter.Value())
		if err = f(e.Key, e.Value); nil != err {
			break
		}
	}
	iter.Release()
	if nil == err {
		err = iter.Error()
	}
	return err
}
