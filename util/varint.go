// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

// Varint64MaximumBytes - maximum possible number of bytes in Varint64
const Varint64MaximumBytes = 9

// ToVarint64 - convert a 64 bit unsigned integer to Varint64
//
// seven bits per byte, least significant group first, high bit set
// when another byte follows; the ninth byte carries a full eight bits
func ToVarint64(value uint64) []byte {
	return AppendVarint64(make([]byte, 0, Varint64MaximumBytes), value)
}

// AppendVarint64 - append the Varint64 encoding of value to buffer
func AppendVarint64(buffer []byte, value uint64) []byte {
	if value < 0x80 {
		return append(buffer, byte(value))
	}
	for i := 0; i < Varint64MaximumBytes && value != 0; i += 1 {
		ext := uint64(0x80)
		if value < 0x80 {
			ext = 0x00
		}
		buffer = append(buffer, byte(value|ext))
		value >>= 7
	}
	return buffer
}

// FromVarint64 - convert an array of up to Varint64MaximumBytes to a uint64
//
// also return the number of bytes used as second value
// returns 0, 0 if varint64 buffer is truncated
func FromVarint64(buffer []byte) (uint64, int) {
	result := uint64(0)
	shift := uint(0)

	for count := 1; count <= len(buffer); count += 1 {
		currByte := uint64(buffer[count-1])
		if count == Varint64MaximumBytes {
			return result | currByte<<shift, count
		}
		result |= currByte & 0x7f << shift
		if 0 == currByte&0x80 {
			return result, count
		}
		shift += 7
	}
	return 0, 0
}
