// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package counter_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/daonode/counter"
)

func TestCounter(t *testing.T) {
	var c counter.Counter

	assert.True(t, c.IsZero(), "zero at start")

	c.Increment()
	c.Increment()
	assert.Equal(t, uint64(12), c.Add(10), "after add")

	assert.Equal(t, uint64(12), c.Reset(), "previous value")
	assert.True(t, c.IsZero(), "zero after reset")
}

func TestConcurrentIncrement(t *testing.T) {
	var c counter.Counter
	wg := new(sync.WaitGroup)
	for i := 0; i < 8; i += 1 {
		wg.Add(1)
		go func() {
			for j := 0; j < 1000; j += 1 {
				c.Increment()
			}
			wg.Done()
		}()
	}
	wg.Wait()
	assert.Equal(t, uint64(8000), c.Uint64(), "total")
}
