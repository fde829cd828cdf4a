// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/bitmark-inc/logger"
)

// time allowed for the log file to be written before a panic
const panicDelay = 100 * time.Millisecond

// the last chance channel, nil until Initialise
var log *logger.L

// Initialise - setup a log channel for last attempt to log something
//
// must be called after logger.Initialise; until then, and in
// programs that never call it, messages go to stderr
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

// Finalise - flush any data and release the channel
func Finalise() {
	if nil != log {
		log.Flush()
	}
	log = nil
}

// Criticalf - log a formatted string with arguments like fmt.Sprintf()
// prefixed by the caller's file and line
func Criticalf(format string, arguments ...interface{}) {
	critical(2, fmt.Sprintf(format, arguments...))
}

// Panic - log the message with the caller's location then panic
// with the bare message
//
// used for broken internal invariants, never for bad input
func Panic(message string) {
	critical(2, message)
	if nil != log {
		time.Sleep(panicDelay)
	}
	panic(message)
}

// skip is the number of frames between the caller of interest and
// this function
func critical(skip int, message string) {
	if _, file, line, ok := runtime.Caller(skip); ok {
		message = fmt.Sprintf("(%q:%d) %s", file, line, message)
	}
	if nil == log {
		fmt.Fprintf(os.Stderr, "*** %s\n", message)
		return
	}
	log.Critical(message)
	log.Flush()
}
