// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package compreq

import (
	"fmt"

	"github.com/bitmark-inc/daonode/transactionrecord"
)

// Check - identifies the first check that failed
type Check int

// checks in evaluation order
const (
	Passed Check = iota
	NoIssuanceCandidate
	WrongPayloadLength
	WrongVersion
	WrongFee
	NotInProposalPhase
)

func (c Check) String() string {
	switch c {
	case Passed:
		return "passed"
	case NoIssuanceCandidate:
		return "no issuance candidate"
	case WrongPayloadLength:
		return "wrong payload length"
	case WrongVersion:
		return "wrong version"
	case WrongFee:
		return "wrong fee"
	case NotInProposalPhase:
		return "not in proposal phase"
	default:
		return "*unknown*"
	}
}

// MarshalText - for JSON output
func (c Check) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// Diagnostic - record of a compensation request that did not match the rules
//
// ExpectedFee is only set once the fee has been looked up
type Diagnostic struct {
	TxId          transactionrecord.TxId `json:"txId"`
	Height        uint64                 `json:"height"`
	Check         Check                  `json:"check"`
	PayloadLength int                    `json:"payloadLength"`
	Version       byte                   `json:"version,omitempty"`
	PaidFee       uint64                 `json:"paidFee"`
	ExpectedFee   uint64                 `json:"expectedFee,omitempty"`
}

func (d *Diagnostic) String() string {
	switch d.Check {
	case WrongPayloadLength:
		return fmt.Sprintf("compensation request did not match rules: %s: %d  tx: %s  height: %d", d.Check, d.PayloadLength, d.TxId, d.Height)
	case WrongVersion:
		return fmt.Sprintf("compensation request did not match rules: %s: 0x%02x  tx: %s  height: %d", d.Check, d.Version, d.TxId, d.Height)
	case WrongFee:
		return fmt.Sprintf("compensation request did not match rules: %s: paid: %d  expected: %d  tx: %s  height: %d", d.Check, d.PaidFee, d.ExpectedFee, d.TxId, d.Height)
	default:
		return fmt.Sprintf("compensation request did not match rules: %s  tx: %s  height: %d", d.Check, d.TxId, d.Height)
	}
}
