// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package compreq - validate compensation request OP_RETURN data
//
// A compensation request carries a 22 byte OP_RETURN payload:
//
//   type marker (1) ++ version (1) ++ proposal identifier (20)
//
// The transaction is a valid request only if it has an issuance
// candidate output, the payload has the expected length and version,
// the burnt fee equals the scheduled proposal fee at the block height
// and the block lies in the proposal phase of the voting cycle.
//
// Evaluate is a pure function of its inputs; Process applies the
// result to the outputs and the parsing context. Every node must reach
// the same classification for the same chain data.
package compreq
