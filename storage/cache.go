// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"time"

	cache "github.com/patrickmn/go-cache"
)

// Cache - uncommitted writes of the current batch, visible to readers
// before the batch reaches the database
type Cache interface {
	Get(string) (value []byte, deleted bool, found bool)
	Set(int, string, []byte)
	Clear()
}

const (
	dbPut = iota
	dbDelete
)

// entries must outlive the longest batch, a replay batch is one block
const (
	defaultExpiration = 10 * time.Minute
	cleanupInterval   = 5 * time.Minute
)

type dbCache struct {
	cache *cache.Cache
}

type cacheData struct {
	op    int
	value []byte
}

func newCache() Cache {
	return &dbCache{
		cache: cache.New(defaultExpiration, cleanupInterval),
	}
}

// Get - deleted is true if the batch removes the key
func (c *dbCache) Get(key string) ([]byte, bool, bool) {
	obj, found := c.cache.Get(key)
	if !found {
		return nil, false, false
	}

	data := obj.(cacheData)
	if dbDelete == data.op {
		return nil, true, true
	}
	return data.value, false, true
}

func (c *dbCache) Set(op int, key string, value []byte) {
	c.cache.Set(key, cacheData{op: op, value: value}, cache.DefaultExpiration)
}

func (c *dbCache) Clear() {
	c.cache.Flush()
}
