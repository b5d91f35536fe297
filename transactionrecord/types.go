// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

// OutputType - classification of a transaction output
//
// the stored value is persisted so existing values must never be renumbered
type OutputType uint8

// all output classifications
const (
	UndefinedOutput             = OutputType(iota) // not yet classified
	GenesisOutput               = OutputType(iota)
	BSQOutput                   = OutputType(iota) // coloured value
	BTCOutput                   = OutputType(iota) // plain value
	ProposalOpReturnOutput      = OutputType(iota)
	CompReqOpReturnOutput       = OutputType(iota) // valid compensation request marker
	IssuanceCandidateOutput     = OutputType(iota) // receives issuance if the request is accepted
	BlindVoteLockStakeOutput    = OutputType(iota)
	BlindVoteOpReturnOutput     = OutputType(iota)
	VoteRevealUnlockStakeOutput = OutputType(iota)
	VoteRevealOpReturnOutput    = OutputType(iota)
	InvalidOutput               = OutputType(iota)

	// this item must be last
	maximumOutputType = OutputType(iota)
)

var outputTypeNames = [...]string{
	UndefinedOutput:             "Undefined",
	GenesisOutput:               "Genesis",
	BSQOutput:                   "BSQ",
	BTCOutput:                   "BTC",
	ProposalOpReturnOutput:      "ProposalOpReturn",
	CompReqOpReturnOutput:       "CompReqOpReturn",
	IssuanceCandidateOutput:     "IssuanceCandidate",
	BlindVoteLockStakeOutput:    "BlindVoteLockStake",
	BlindVoteOpReturnOutput:     "BlindVoteOpReturn",
	VoteRevealUnlockStakeOutput: "VoteRevealUnlockStake",
	VoteRevealOpReturnOutput:    "VoteRevealOpReturn",
	InvalidOutput:               "Invalid",
}

// IsValid - check the value is one of the defined classifications
func (t OutputType) IsValid() bool {
	return t < maximumOutputType
}

// IsTerminal - true for any classification other than undefined
func (t OutputType) IsTerminal() bool {
	return t != UndefinedOutput && t.IsValid()
}

func (t OutputType) String() string {
	if !t.IsValid() {
		return "*Unknown*"
	}
	return outputTypeNames[t]
}

// MarshalText - for JSON output
func (t OutputType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// OpReturnType - the type marker carried in byte zero of OP_RETURN data
type OpReturnType byte

// known type markers
const (
	UndefinedOpReturn           OpReturnType = 0x00
	ProposalOpReturn            OpReturnType = 0x10
	CompensationRequestOpReturn OpReturnType = 0x11
	BlindVoteOpReturn           OpReturnType = 0x12
	VoteRevealOpReturn          OpReturnType = 0x13
	LockupOpReturn              OpReturnType = 0x14
)

// OpReturnTypeOf - extract the type marker from OP_RETURN data
func OpReturnTypeOf(data []byte) OpReturnType {
	if 0 == len(data) {
		return UndefinedOpReturn
	}
	switch t := OpReturnType(data[0]); t {
	case ProposalOpReturn, CompensationRequestOpReturn, BlindVoteOpReturn, VoteRevealOpReturn, LockupOpReturn:
		return t
	default:
		return UndefinedOpReturn
	}
}

func (t OpReturnType) String() string {
	switch t {
	case UndefinedOpReturn:
		return "Undefined"
	case ProposalOpReturn:
		return "Proposal"
	case CompensationRequestOpReturn:
		return "CompensationRequest"
	case BlindVoteOpReturn:
		return "BlindVote"
	case VoteRevealOpReturn:
		return "VoteReveal"
	case LockupOpReturn:
		return "Lockup"
	default:
		return "*Unknown*"
	}
}

// MarshalText - for JSON output
func (t OpReturnType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}
