// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package counter

import (
	"sync/atomic"
)

// Counter - a 64 bit unsigned counter safe for concurrent update
type Counter uint64

// Increment - add 1 to a counter, returns new value
func (ic *Counter) Increment() uint64 {
	return atomic.AddUint64((*uint64)(ic), 1)
}

// Add - add n to a counter, returns new value
func (ic *Counter) Add(n uint64) uint64 {
	return atomic.AddUint64((*uint64)(ic), n)
}

// Uint64 - returns current value
func (ic *Counter) Uint64() uint64 {
	return atomic.LoadUint64((*uint64)(ic))
}

// IsZero - check if zero
func (ic *Counter) IsZero() bool {
	return 0 == ic.Uint64()
}

// Reset - set to zero, returns the previous value
func (ic *Counter) Reset() uint64 {
	return atomic.SwapUint64((*uint64)(ic), 0)
}
