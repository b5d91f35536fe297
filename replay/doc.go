// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package replay - walk stored blocks in height order and classify
// their transactions
//
// each block is committed as a single storage transaction containing:
//
//   T ++ txId                  → height ++ packed transaction
//   O ++ txId ++ index(uint32) → output type (1 byte)
//   R ++ "height"              → last replayed height
//
// so an interrupted replay resumes at the first uncommitted block
package replay
