// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"os"
	"strings"

	"github.com/bitmark-inc/daonode/fault"
	"github.com/bitmark-inc/daonode/transactionrecord"
)

var (
	ErrRequiredDatabase = fault.InvalidError("database directory is required")
	ErrRequiredHeight   = fault.InvalidError("block height is required")
	ErrRequiredPayload  = fault.InvalidError("payload is required")
	ErrRequiredTxId     = fault.InvalidError("transaction id is required")
)

// hex payload, optional 0x prefix
func checkPayload(payload string) ([]byte, error) {
	payload = strings.TrimPrefix(strings.TrimSpace(payload), "0x")
	if "" == payload {
		return nil, ErrRequiredPayload
	}
	return hex.DecodeString(payload)
}

func checkTxId(s string) (transactionrecord.TxId, error) {
	var txId transactionrecord.TxId
	if "" == s {
		return txId, ErrRequiredTxId
	}
	err := transactionrecord.TxIdFromString(&txId, s)
	return txId, err
}

// database must already exist
func checkDatabase(directory string) (string, error) {
	if "" == directory {
		return "", ErrRequiredDatabase
	}
	directory = os.ExpandEnv(directory)
	info, err := os.Stat(directory)
	if nil != err {
		return "", err
	}
	if !info.IsDir() {
		return "", ErrRequiredDatabase
	}
	return directory, nil
}
