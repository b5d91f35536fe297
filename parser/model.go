// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package parser

import (
	"github.com/bitmark-inc/daonode/transactionrecord"
)

// Model - scratch state for parsing one transaction
//
// created for each transaction and discarded when all of its outputs
// have been through the rules
type Model struct {
	opReturnType         transactionrecord.OpReturnType
	issuanceCandidate    *transactionrecord.TxOutput
	verifiedOpReturnType transactionrecord.OpReturnType
}

// OpReturnType - type marker of the transaction's OP_RETURN output
func (m *Model) OpReturnType() transactionrecord.OpReturnType {
	return m.opReturnType
}

// IssuanceCandidate - output that receives issuance if the request is accepted
func (m *Model) IssuanceCandidate() *transactionrecord.TxOutput {
	return m.issuanceCandidate
}

// SetIssuanceCandidate - designate the issuance candidate
func (m *Model) SetIssuanceCandidate(output *transactionrecord.TxOutput) {
	m.issuanceCandidate = output
}

// VerifiedOpReturnType - type whose rules the OP_RETURN data passed
func (m *Model) VerifiedOpReturnType() transactionrecord.OpReturnType {
	return m.verifiedOpReturnType
}

// SetVerifiedOpReturnType - record the OP_RETURN type that was verified
func (m *Model) SetVerifiedOpReturnType(t transactionrecord.OpReturnType) {
	m.verifiedOpReturnType = t
}
