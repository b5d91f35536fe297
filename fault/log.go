// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"fmt"
	"runtime"
	"time"

	"github.com/bitmark-inc/logger"
)

// time allowed for the log writer to drain before a panic
const panicDelay = 100 * time.Millisecond

// hold a logger channel
var log *logger.L

// Initialise - setup a log channel for last attempt to log something
func Initialise() error {
	if nil != log {
		return ErrAlreadyInitialised
	}
	log = logger.New("PANIC")
	if nil == log {
		return ErrInvalidLoggerChannel
	}
	return nil
}

// Finalise - flush any data
func Finalise() {
	if nil != log {
		log.Flush()
		log = nil
	}
}

// Critical - log a simple string with the caller location
func Critical(message string) {
	internalCriticalf(withCaller(2, "%s"), message)
}

// Criticalf - log a formatted string with arguments like fmt.Sprintf()
func Criticalf(format string, arguments ...interface{}) {
	internalCriticalf(withCaller(2, format), arguments...)
}

// Panicf - log the formatted message then panic
func Panicf(format string, arguments ...interface{}) {
	internalCriticalf(withCaller(2, format), arguments...)
	Panic("abort, see last messages in log file")
}

// Panic - final panic
func Panic(message string) {
	internalCriticalf("%s", message)
	time.Sleep(panicDelay)
	panic(message)
}

// PanicWithError - final panic including the error that caused it
func PanicWithError(message string, err error) {
	s := fmt.Sprintf("%s failed with error: %v", message, err)
	internalCriticalf("%s", s)
	time.Sleep(panicDelay)
	panic(s)
}

// PanicIfError - conditional panic
func PanicIfError(message string, err error) {
	if nil == err {
		return
	}
	PanicWithError(message, err)
}

// PanicIfInternal - panic only for the internal error class, any other
// error is returned unchanged for normal handling
func PanicIfInternal(message string, err error) error {
	if IsErrInternal(err) {
		PanicWithError(message, err)
	}
	return err
}

// prefix a format with the file:line of the caller skip levels up
func withCaller(skip int, format string) string {
	if _, file, line, ok := runtime.Caller(skip); ok {
		return fmt.Sprintf("(%q:%d) ", file, line) + format
	}
	return format
}

// internal routine to handle uninitialised logger channel
func internalCriticalf(format string, arguments ...interface{}) {
	if nil == log {
		fmt.Printf("*** "+format+"\n", arguments...)
	} else {
		log.Criticalf(format, arguments...)
		log.Flush() // make sure log file is saved
	}
}
