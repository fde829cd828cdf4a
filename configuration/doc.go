// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package configuration - parse a Lua configuration file
//
// most of base Lua is available such as reading files to set key data
// and getenv to extract environment supplied items.  The file must
// return a single table, its fields are mapped onto a Go structure
// using the "gluamapper" field tags.
//
// the global "arg" table holds the configuration file name as arg[0]
// followed by any extra arguments supplied by the caller.
package configuration
