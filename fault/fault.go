// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"errors"
)

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised   = ExistsError("already initialised")
	ErrBalanceMismatch      = InvalidError("balance does not match sub-tree heights")
	ErrBalanceOutOfRange    = InvalidError("balance out of range")
	ErrConfigDirPath        = InvalidError("config is not a folder")
	ErrConfigNotTable       = InvalidError("configuration did not return a table")
	ErrInvalidCount         = InvalidError("invalid count")
	ErrInvalidLoggerChannel = InvalidError("invalid logger channel")
	ErrInvalidStructPointer = InvalidError("invalid struct pointer")
	ErrInvalidTreeType      = InvalidError("invalid tree type")
	ErrKeyNotFound          = NotFoundError("key not found")
	ErrKeyOrder             = InvalidError("key out of order")
	ErrNotFoundConfigFile   = NotFoundError("config file is not found")
	ErrParentLinkMismatch   = InvalidError("parent link does not match")
	ErrTraversalOrder       = ProcessError("traversal not in ascending order")
	ErrTreeNotEmpty         = ProcessError("tree not empty after removing all keys")
	ErrWrongItemCount       = ProcessError("wrong item count")
	ErrWrongValue           = ProcessError("wrong value")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// determine the class of an error, looking through any wrapping
func IsErrExists(e error) bool   { var t ExistsError; return errors.As(e, &t) }
func IsErrInvalid(e error) bool  { var t InvalidError; return errors.As(e, &t) }
func IsErrNotFound(e error) bool { var t NotFoundError; return errors.As(e, &t) }
func IsErrProcess(e error) bool  { var t ProcessError; return errors.As(e, &t) }
