// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fee

import (
	"encoding/binary"
	"sort"
	"sync"

	"github.com/bitmark-inc/daonode/fault"
	"github.com/bitmark-inc/daonode/storage"
	"github.com/bitmark-inc/logger"
)

// Change - proposal fee effective from a block height onwards
type Change struct {
	Height uint64 `gluamapper:"height" json:"height,string"`
	Fee    uint64 `gluamapper:"proposal_fee" json:"proposalFee,string"`
}

// Schedule - ordered proposal fee changes
//
// the fee at a height is the fee of the last change at or before that
// height, or the initial fee if there is none
type Schedule struct {
	sync.RWMutex
	log     *logger.L
	initial uint64
	changes []Change
	pool    *storage.PoolHandle
}

// New - create a schedule, pool may be nil for an in-memory schedule
func New(initialFee uint64, pool *storage.PoolHandle) *Schedule {
	return &Schedule{
		log:     logger.New("fee"),
		initial: initialFee,
		changes: make([]Change, 0, 8),
		pool:    pool,
	}
}

// Load - restore all persisted changes
func (s *Schedule) Load() error {
	if nil == s.pool {
		return nil
	}

	s.Lock()
	defer s.Unlock()

	s.changes = s.changes[:0]
	err := s.pool.NewFetchCursor().Map(func(key []byte, value []byte) error {
		if 8 != len(key) || 8 != len(value) {
			return fault.ErrTruncatedRecord
		}
		s.changes = append(s.changes, Change{
			Height: binary.BigEndian.Uint64(key),
			Fee:    binary.BigEndian.Uint64(value),
		})
		return nil
	})
	if nil != err {
		return err
	}

	s.log.Infof("loaded: %d fee changes", len(s.changes))
	return nil
}

// Add - append a change, heights must be strictly increasing
func (s *Schedule) Add(height uint64, fee uint64) error {
	s.Lock()
	defer s.Unlock()

	if n := len(s.changes); n > 0 {
		last := s.changes[n-1]
		if height == last.Height {
			return fault.ErrDuplicateFeeChange
		}
		if height < last.Height {
			return fault.ErrFeeChangeOutOfOrder
		}
	}

	if nil != s.pool {
		key := make([]byte, 8)
		binary.BigEndian.PutUint64(key, height)
		if err := s.pool.PutN(key, fee); nil != err {
			return err
		}
	}

	s.changes = append(s.changes, Change{Height: height, Fee: fee})
	s.log.Infof("proposal fee: %d from height: %d", fee, height)
	return nil
}

// Ensure - add a change unless the identical change is already present
func (s *Schedule) Ensure(height uint64, fee uint64) error {
	s.RLock()
	for _, c := range s.changes {
		if c.Height == height {
			s.RUnlock()
			if c.Fee != fee {
				return fault.ErrDuplicateFeeChange
			}
			return nil
		}
	}
	s.RUnlock()
	return s.Add(height, fee)
}

// ProposalFeeAt - the protocol proposal fee applicable at height
func (s *Schedule) ProposalFeeAt(height uint64) uint64 {
	s.RLock()
	defer s.RUnlock()

	// first change strictly after height
	i := sort.Search(len(s.changes), func(i int) bool {
		return s.changes[i].Height > height
	})
	if 0 == i {
		return s.initial
	}
	return s.changes[i-1].Fee
}

// Changes - copy of all changes in height order
func (s *Schedule) Changes() []Change {
	s.RLock()
	defer s.RUnlock()
	result := make([]Change, len(s.changes))
	copy(result, s.changes)
	return result
}
