// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package parser

import (
	"github.com/bitmark-inc/daonode/compreq"
	"github.com/bitmark-inc/daonode/fault"
	"github.com/bitmark-inc/daonode/transactionrecord"
	"github.com/bitmark-inc/logger"
)

// position of the issuance candidate in a compensation request
const issuanceCandidateIndex = 1

// Parser - applies the OP_RETURN rules to transactions in chain order
type Parser struct {
	log     *logger.L
	compReq *compreq.Rule
}

// New - create a parser
func New(fees compreq.FeeScheduleReader, phases compreq.PhaseOracle) *Parser {
	return &Parser{
		log:     logger.New("parser"),
		compReq: compreq.New(fees, phases),
	}
}

// ParseTransaction - classify the OP_RETURN output of a transaction and
// its issuance candidate
//
// returns the model for inspection by the caller and any diagnostic;
// an error is always an internal fault
func (p *Parser) ParseTransaction(tx *transactionrecord.Tx) (*Model, *compreq.Diagnostic, error) {
	model := &Model{}

	opReturn := tx.OpReturnOutput()
	if nil == opReturn {
		return model, nil, nil
	}
	model.opReturnType = transactionrecord.OpReturnTypeOf(opReturn.OpReturnData)

	if transactionrecord.CompensationRequestOpReturn == model.opReturnType {
		designateIssuanceCandidate(tx, model)
	}

	var diagnostic *compreq.Diagnostic
	var err error

	switch model.opReturnType {
	case transactionrecord.CompensationRequestOpReturn:
		diagnostic, err = p.compReq.Process(opReturn.OpReturnData, opReturn, tx, tx.BurntFee, tx.BlockHeight, model)
		if nil != err {
			return nil, nil, err
		}

	case transactionrecord.UndefinedOpReturn:
		opReturn.Type = transactionrecord.InvalidOutput
		p.log.Debugf("unknown op_return type at height: %d", tx.BlockHeight)

	default:
		// other proposal types are left for their own rules
		p.log.Debugf("op_return type: %s not handled at height: %d", model.opReturnType, tx.BlockHeight)
	}

	if candidate := model.IssuanceCandidate(); nil != candidate && !candidate.Type.IsTerminal() {
		return nil, nil, fault.ErrCandidateUnclassified
	}

	return model, diagnostic, nil
}

// the second output of a compensation request is the candidate,
// provided it is a value output
func designateIssuanceCandidate(tx *transactionrecord.Tx, model *Model) {
	if len(tx.Outputs) <= issuanceCandidateIndex {
		return
	}
	output := tx.Outputs[issuanceCandidateIndex]
	if output.IsOpReturn() {
		return
	}
	model.SetIssuanceCandidate(output)
}
