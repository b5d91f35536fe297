// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package compreq

import (
	"github.com/bitmark-inc/daonode/fault"
	"github.com/bitmark-inc/daonode/period"
	"github.com/bitmark-inc/daonode/transactionrecord"
)

// payload layout
const (
	PayloadLength = 22
	Version       = 0x01

	versionOffset = 1
)

// FeeScheduleReader - protocol proposal fee for a block height
type FeeScheduleReader interface {
	ProposalFeeAt(height uint64) uint64
}

// PhaseOracle - voting cycle phase membership for a block height
type PhaseOracle interface {
	IsInPhase(height uint64, phase period.Phase) bool
}

// Context - the part of the parsing model used by this rule
type Context interface {
	IssuanceCandidate() *transactionrecord.TxOutput
	SetVerifiedOpReturnType(transactionrecord.OpReturnType)
}

// Result - classification produced by a single evaluation
//
// Candidate is UndefinedOutput when there was no issuance candidate;
// Diagnostic is nil on success
type Result struct {
	Output     transactionrecord.OutputType
	Candidate  transactionrecord.OutputType
	Verified   transactionrecord.OpReturnType
	Diagnostic *Diagnostic
}

// IsValid - true if the request passed every check
func (r Result) IsValid() bool {
	return transactionrecord.CompensationRequestOpReturn == r.Verified
}

// Rule - compensation request validation with its collaborators
type Rule struct {
	fees   FeeScheduleReader
	phases PhaseOracle
}

// New - create a rule
func New(fees FeeScheduleReader, phases PhaseOracle) *Rule {
	return &Rule{
		fees:   fees,
		phases: phases,
	}
}

// Evaluate - classify the payload without modifying anything
//
// checks run in a fixed order and stop at the first failure, so the
// collaborators are only queried when the cheaper checks have passed
func (r *Rule) Evaluate(payload []byte, paidFee uint64, height uint64, hasCandidate bool) (Result, error) {
	d := &Diagnostic{
		Height:        height,
		PayloadLength: len(payload),
		PaidFee:       paidFee,
	}

	if !hasCandidate {
		d.Check = NoIssuanceCandidate
	} else if d.Check = CheckPayload(payload); Passed == d.Check {
		d.ExpectedFee = r.fees.ProposalFeeAt(height)
		if paidFee != d.ExpectedFee {
			d.Check = WrongFee
		} else if !r.phases.IsInPhase(height, period.Proposal) {
			d.Check = NotInProposalPhase
		}
	} else if WrongVersion == d.Check {
		d.Version = payload[versionOffset]
	}

	if Passed != d.Check {
		result := Result{
			Output:     transactionrecord.InvalidOutput,
			Candidate:  transactionrecord.UndefinedOutput,
			Verified:   transactionrecord.UndefinedOpReturn,
			Diagnostic: d,
		}
		// the candidate cannot receive issuance for an invalid request
		if hasCandidate {
			result.Candidate = transactionrecord.BTCOutput
		}
		return result, nil
	}

	if !hasCandidate {
		return Result{}, fault.ErrIssuanceCandidateMissing
	}

	return Result{
		Output:    transactionrecord.CompReqOpReturnOutput,
		Candidate: transactionrecord.IssuanceCandidateOutput,
		Verified:  transactionrecord.CompensationRequestOpReturn,
	}, nil
}

// CheckPayload - the checks that depend only on the payload bytes
func CheckPayload(payload []byte) Check {
	switch {
	case PayloadLength != len(payload):
		return WrongPayloadLength
	case Version != payload[versionOffset]:
		return WrongVersion
	default:
		return Passed
	}
}

// Process - evaluate and apply the result to output, candidate and ctx
//
// a mismatch is returned as a diagnostic; the error is only ever an
// internal fault that must stop block processing
func (r *Rule) Process(payload []byte, output *transactionrecord.TxOutput, tx *transactionrecord.Tx, paidFee uint64, height uint64, ctx Context) (*Diagnostic, error) {
	candidate := ctx.IssuanceCandidate()

	result, err := r.Evaluate(payload, paidFee, height, nil != candidate)
	if nil != err {
		return nil, err
	}

	if result.IsValid() {
		output.Type = result.Output
		ctx.SetVerifiedOpReturnType(result.Verified)

		candidate = ctx.IssuanceCandidate()
		if nil == candidate {
			return nil, fault.ErrIssuanceCandidateMissing
		}
		candidate.Type = result.Candidate
		return nil, nil
	}

	output.Type = result.Output
	if nil != candidate {
		candidate.Type = result.Candidate
	}

	if txId, err := tx.TxId(); nil == err {
		result.Diagnostic.TxId = txId
	}
	return result.Diagnostic, nil
}
