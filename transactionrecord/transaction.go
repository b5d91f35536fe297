// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

// TagType - type code for records
// this is encoded a Varint64 at start of "Packed"
type TagType uint64

// enumerate the possible record types
const (
	// null marks beginning of list - not used as a record type
	NullTag = TagType(iota)

	TransactionTag = TagType(iota) // DAO relevant transaction

	// this item must be last
	InvalidTag = TagType(iota)
)

// Packed - packed records are just a byte slice
type Packed []byte

// byte sizes for various fields
const (
	MaxOutputs        = 1000
	MaxOpReturnLength = 80
	MaxAddressLength  = 128
)

// ScriptKind - distinguishes value outputs from metadata outputs
type ScriptKind uint8

// output script kinds
const (
	ValueScript    ScriptKind = 0
	OpReturnScript ScriptKind = 1
)

// TxOutput - one output of a transaction
//
// Type is the only mutable field, it is written by the parsing rules
type TxOutput struct {
	Index        int        `json:"index"`
	Value        uint64     `json:"value,string"`
	Kind         ScriptKind `json:"kind"`
	Address      string     `json:"address,omitempty"`
	OpReturnData []byte     `json:"opReturnData,omitempty"`
	Type         OutputType `json:"type"`
}

// IsOpReturn - true for an unspendable metadata output
func (o *TxOutput) IsOpReturn() bool {
	return OpReturnScript == o.Kind
}

// Tx - a transaction as seen by the DAO parser
//
// BurntFee is the coloured coin fee paid by the transaction, computed
// by the upstream node from its inputs and outputs
type Tx struct {
	BlockHeight uint64      `json:"blockHeight,string"`
	BurntFee    uint64      `json:"burntFee,string"`
	Outputs     []*TxOutput `json:"outputs"`
}

// OpReturnOutput - the last output if it is an OP_RETURN
func (tx *Tx) OpReturnOutput() *TxOutput {
	if 0 == len(tx.Outputs) {
		return nil
	}
	last := tx.Outputs[len(tx.Outputs)-1]
	if !last.IsOpReturn() {
		return nil
	}
	return last
}

// TxId - digest of the packed transaction
//
// output classifications are not part of the packed form so the
// id is stable across parsing
func (tx *Tx) TxId() (TxId, error) {
	packed, err := tx.Pack()
	if nil != err {
		return TxId{}, err
	}
	return packed.TxId(), nil
}

// TxId - digest of an already packed transaction
func (record Packed) TxId() TxId {
	return NewTxId(record)
}
