// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/daonode/util"
)

var varint64Tests = []struct {
	value   uint64
	encoded []byte
}{
	{0, []byte{0x00}},
	{1, []byte{0x01}},
	{127, []byte{0x7f}},
	{128, []byte{0x80, 0x01}},
	{255, []byte{0xff, 0x01}},
	{16383, []byte{0xff, 0x7f}},
	{16384, []byte{0x80, 0x80, 0x01}},
	{0x7fffffffffffffff, []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x7f}},
	{0x8000000000000000, []byte{0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80}},
	{0xffffffffffffffff, []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}},
}

func TestToVarint64(t *testing.T) {
	for i, item := range varint64Tests {
		assert.Equal(t, item.encoded, util.ToVarint64(item.value), "%d: ToVarint64(%x)", i, item.value)
	}
}

func TestFromVarint64WithSuffix(t *testing.T) {
	suffix := []byte{0xff, 0x97, 0x23}
	for i, item := range varint64Tests {
		b := append(append([]byte{}, item.encoded...), suffix...)
		value, count := util.FromVarint64(b)
		assert.Equal(t, item.value, value, "%d: value", i)
		assert.Equal(t, len(item.encoded), count, "%d: count", i)
	}
}

func TestFromVarint64Truncated(t *testing.T) {
	for i, b := range [][]byte{{}, {0x80}, {0xff, 0xff}, {0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}} {
		value, count := util.FromVarint64(b)
		assert.Equal(t, uint64(0), value, "%d: value", i)
		assert.Equal(t, 0, count, "%d: count", i)
	}
}

func TestAppendVarint64(t *testing.T) {
	b := util.AppendVarint64([]byte{0x11}, 300)
	assert.Equal(t, []byte{0x11, 0xac, 0x02}, b, "append")
}
