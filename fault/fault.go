// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InternalError GenericError
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type RecordError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised        = ExistsError("already initialised")
	ErrBlockAlreadyStored        = ExistsError("a different block is already stored at this height")
	ErrBlockHeightMismatch       = InvalidError("block height mismatch")
	ErrBlockNotFound             = NotFoundError("block not found")
	ErrCandidateUnclassified     = InternalError("issuance candidate left unclassified")
	ErrConfigurationNotFound     = NotFoundError("configuration file not found")
	ErrDuplicateFeeChange        = ExistsError("duplicate fee change height")
	ErrFeeChangeOutOfOrder       = InvalidError("fee change height out of order")
	ErrInvalidChain              = InvalidError("invalid chain")
	ErrInvalidCount              = InvalidError("invalid count")
	ErrInvalidHeight             = InvalidError("invalid height")
	ErrInvalidLoggerChannel      = InvalidError("invalid logger channel")
	ErrInvalidPhaseDuration      = InvalidError("invalid phase duration")
	ErrInvalidSpoolFileName      = InvalidError("invalid spool file name")
	ErrInvalidStructPointer      = InvalidError("invalid struct pointer")
	ErrIssuanceCandidateMissing  = InternalError("issuance candidate missing after successful compensation request")
	ErrNotInitialised            = NotFoundError("not initialised")
	ErrNotOpReturnOutput         = InvalidError("output is not an op_return output")
	ErrNotTransactionPack        = RecordError("not transaction pack")
	ErrOpReturnNotLastOutput     = InvalidError("op_return is not the last output")
	ErrOutputIndexOutOfRange     = InvalidError("output index out of range")
	ErrReplayAborted             = ProcessError("replay aborted")
	ErrScriptTooLong             = LengthError("script too long")
	ErrSpoolDirectoryNotFound    = NotFoundError("spool directory not found")
	ErrTooManyOutputs            = LengthError("too many outputs")
	ErrTooManyTransactions       = LengthError("too many transactions")
	ErrTransactionNotFound       = NotFoundError("transaction not found")
	ErrTruncatedRecord           = LengthError("truncated record")
	ErrUnexpectedTrailingData    = RecordError("unexpected trailing data")
	ErrUnknownPhase              = InvalidError("unknown phase")
	ErrUnknownRecordTag          = RecordError("unknown record tag")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InternalError) Error() string { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e LengthError) Error() string   { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }
func (e RecordError) Error() string   { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInternal(e error) bool { _, ok := e.(InternalError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrLength(e error) bool   { _, ok := e.(LengthError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
func IsErrRecord(e error) bool   { _, ok := e.(RecordError); return ok }
