// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chain

// names of all chains
const (
	Mainnet = "mainnet"
	Testnet = "testnet"
	Regtest = "regtest"
)

// Valid - validate a chain name
func Valid(name string) bool {
	switch name {
	case Mainnet, Testnet, Regtest:
		return true
	default:
		return false
	}
}

// GenesisHeight - first block height that can carry DAO transactions
func GenesisHeight(name string) uint64 {
	switch name {
	case Mainnet:
		return 524717
	case Testnet:
		return 1446300
	default:
		return 111
	}
}
