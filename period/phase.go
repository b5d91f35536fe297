// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package period

import (
	"github.com/bitmark-inc/daonode/fault"
)

// Phase - one step of the voting cycle
type Phase int

// phases in cycle order
const (
	Undefined Phase = iota
	Proposal
	Break1
	BlindVote
	Break2
	VoteReveal
	Break3
	Result
	Break4

	// this item must be last
	maximumPhase
)

// Phases - all defined phases in cycle order
var Phases = []Phase{Proposal, Break1, BlindVote, Break2, VoteReveal, Break3, Result, Break4}

var phaseNames = [...]string{
	Undefined:  "undefined",
	Proposal:   "proposal",
	Break1:     "break1",
	BlindVote:  "blind_vote",
	Break2:     "break2",
	VoteReveal: "vote_reveal",
	Break3:     "break3",
	Result:     "result",
	Break4:     "break4",
}

func (p Phase) String() string {
	if p < Undefined || p >= maximumPhase {
		return "*unknown*"
	}
	return phaseNames[p]
}

// MarshalText - for JSON output
func (p Phase) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// PhaseFromString - convert a name as used in the configuration
func PhaseFromString(s string) (Phase, error) {
	for _, p := range Phases {
		if phaseNames[p] == s {
			return p, nil
		}
	}
	return Undefined, fault.ErrUnknownPhase
}
