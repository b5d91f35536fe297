// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package period

import (
	"github.com/bitmark-inc/daonode/chain"
	"github.com/bitmark-inc/daonode/fault"
)

// Durations - number of blocks in each phase
type Durations struct {
	Proposal   uint64 `gluamapper:"proposal" json:"proposal"`
	Break1     uint64 `gluamapper:"break1" json:"break1"`
	BlindVote  uint64 `gluamapper:"blind_vote" json:"blind_vote"`
	Break2     uint64 `gluamapper:"break2" json:"break2"`
	VoteReveal uint64 `gluamapper:"vote_reveal" json:"vote_reveal"`
	Break3     uint64 `gluamapper:"break3" json:"break3"`
	Result     uint64 `gluamapper:"result" json:"result"`
	Break4     uint64 `gluamapper:"break4" json:"break4"`
}

// DefaultDurations - phase lengths for a chain
func DefaultDurations(chainName string) Durations {
	switch chainName {
	case chain.Mainnet:
		return Durations{
			Proposal:   3600,
			Break1:     150,
			BlindVote:  600,
			Break2:     10,
			VoteReveal: 300,
			Break3:     10,
			Result:     10,
			Break4:     10,
		}
	case chain.Testnet:
		return Durations{
			Proposal:   380,
			Break1:     10,
			BlindVote:  300,
			Break2:     10,
			VoteReveal: 300,
			Break3:     10,
			Result:     2,
			Break4:     10,
		}
	default:
		return Durations{
			Proposal:   4,
			Break1:     1,
			BlindVote:  2,
			Break2:     1,
			VoteReveal: 2,
			Break3:     1,
			Result:     1,
			Break4:     1,
		}
	}
}

// Of - the duration of a single phase
func (d Durations) Of(p Phase) uint64 {
	switch p {
	case Proposal:
		return d.Proposal
	case Break1:
		return d.Break1
	case BlindVote:
		return d.BlindVote
	case Break2:
		return d.Break2
	case VoteReveal:
		return d.VoteReveal
	case Break3:
		return d.Break3
	case Result:
		return d.Result
	case Break4:
		return d.Break4
	default:
		return 0
	}
}

// CycleLength - total blocks in one cycle
func (d Durations) CycleLength() uint64 {
	total := uint64(0)
	for _, p := range Phases {
		total += d.Of(p)
	}
	return total
}

// Validate - every phase must span at least one block
func (d Durations) Validate() error {
	for _, p := range Phases {
		if 0 == d.Of(p) {
			return fault.ErrInvalidPhaseDuration
		}
	}
	return nil
}
