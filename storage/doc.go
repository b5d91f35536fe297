// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk data store
//
// maintain separate pools of a number of elements in key->value form
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the available tables.
//
// Notes:
// 1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ++           = concatenation of byte data
// 3. height       = big endian uint64 (8 bytes)
// 4. txId         = transaction digest as 32 byte SHA3-256(data)
// 5. index        = output index as big endian uint32 (4 bytes)
//
// Blocks:
//
//   B ++ height                - imported blocks
//                                data: packed block
//
// Transactions:
//
//   T ++ txId                  - replayed transactions
//                                data: height ++ packed transaction
//
// Outputs:
//
//   O ++ txId ++ index         - output classification after replay
//                                data: classification (1 byte)
//
// Fees:
//
//   F ++ height                - proposal fee change effective from height
//                                data: fee as big endian uint64
//
// Replay:
//
//   R ++ "height"              - last fully replayed block height
//                                data: height
//
// Testing:
//   Z ++ key                   - testing data
package storage
