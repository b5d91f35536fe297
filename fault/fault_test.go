// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/daonode/fault"
)

var (
	ErrExistsOne   = fault.ExistsError("exists one ")
	ErrExistsTwo   = fault.ExistsError("exists two")
	ErrInternalOne = fault.InternalError("internal one")
	ErrInvalidOne  = fault.InvalidError("invalid one")
	ErrInvalidTwo  = fault.InvalidError("invalid two")
	ErrLengthOne   = fault.LengthError("length one")
	ErrNotFoundOne = fault.NotFoundError("not found one")
	ErrProcessOne  = fault.ProcessError("process one")
	ErrRecordOne   = fault.RecordError("record one")
)

// test that the various classes do not overlap
func TestClasses(t *testing.T) {
	errorList := []struct {
		err      error
		exists   bool
		internal bool
		invalid  bool
		length   bool
		notFound bool
		process  bool
		record   bool
	}{
		{ErrExistsOne, true, false, false, false, false, false, false},
		{ErrExistsTwo, true, false, false, false, false, false, false},
		{ErrInternalOne, false, true, false, false, false, false, false},
		{fault.ErrIssuanceCandidateMissing, false, true, false, false, false, false, false},
		{ErrInvalidOne, false, false, true, false, false, false, false},
		{ErrInvalidTwo, false, false, true, false, false, false, false},
		{ErrLengthOne, false, false, false, true, false, false, false},
		{ErrNotFoundOne, false, false, false, false, true, false, false},
		{ErrProcessOne, false, false, false, false, false, true, false},
		{ErrRecordOne, false, false, false, false, false, false, true},
	}

	for i, e := range errorList {
		err := e.err
		assert.Equal(t, e.exists, fault.IsErrExists(err), "%d: exists for err = %v", i, err)
		assert.Equal(t, e.internal, fault.IsErrInternal(err), "%d: internal for err = %v", i, err)
		assert.Equal(t, e.invalid, fault.IsErrInvalid(err), "%d: invalid for err = %v", i, err)
		assert.Equal(t, e.length, fault.IsErrLength(err), "%d: length for err = %v", i, err)
		assert.Equal(t, e.notFound, fault.IsErrNotFound(err), "%d: not found for err = %v", i, err)
		assert.Equal(t, e.process, fault.IsErrProcess(err), "%d: process for err = %v", i, err)
		assert.Equal(t, e.record, fault.IsErrRecord(err), "%d: record for err = %v", i, err)
	}
}

func TestPanicIfInternal(t *testing.T) {
	assert.Nil(t, fault.PanicIfInternal("nil", nil), "nil error")
	assert.Equal(t, ErrInvalidOne, fault.PanicIfInternal("invalid", ErrInvalidOne), "non-internal error")

	assert.Panics(t, func() {
		_ = fault.PanicIfInternal("internal", fault.ErrIssuanceCandidateMissing)
	}, "internal error must panic")
}
