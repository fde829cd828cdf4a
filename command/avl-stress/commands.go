// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io/ioutil"
	"os"

	"github.com/bitmark-inc/avltree/util"
	"github.com/bitmark-inc/exitwithstatus"
)

// a configuration that uses every setting with its default value
const sampleConfiguration = `-- avl-stress.conf  -*- mode: lua -*-

local M = {}

-- directory for the log directory, "." is the directory of this file
M.data_directory = "."

-- "avl" or "unbalanced"
M.tree = "avl"

-- number of distinct keys inserted then removed in each round
M.keys = 10000
M.rounds = 10

-- independent trees exercised in parallel
M.workers = 1

-- zero selects a time based seed
M.seed = 0

-- validate the whole tree after every n-th mutation, 0 to disable
M.validate_every = 1000

M.logging = {
    directory = "log",
    file = "avl-stress.log",
    size = 1048576,
    count = 10,
    console = false,
    levels = {
        DEFAULT = "info",
    },
}

return M
`

// setup command handler
//
// commands that do not need a configuration file
func processSetupCommand(program string, arguments []string) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	switch command {
	case "generate-configuration", "gen-conf":
		if len(arguments) < 1 {
			exitwithstatus.Message("missing file name")
		}
		fileName := arguments[0]
		if util.EnsureFileExists(fileName) {
			exitwithstatus.Message("file: %q already exists", fileName)
		}
		if err := ioutil.WriteFile(fileName, []byte(sampleConfiguration), 0600); nil != err {
			os.Remove(fileName)
			exitwithstatus.Message("write file: %q  error: %s", fileName, err)
		}
		fmt.Printf("generated configuration: %q\n", fileName)

	case "start", "run":
		return false // continue processing

	case "version", "v":
		fmt.Printf("%s\n", version)

	default:
		switch command {
		case "help", "h", "?":
		case "", " ":
			fmt.Printf("error: missing command\n")
		default:
			fmt.Printf("error: no such command: %v\n", command)
		}

		fmt.Printf("usage: %s [--help] [--verbose] [--quiet] --config-file=FILE [[command|help] arguments...]\n", program)

		fmt.Printf("supported commands:\n\n")
		fmt.Printf("  help                       (h)      - display this message\n\n")
		fmt.Printf("  version                    (v)      - display version string\n\n")
		fmt.Printf("  generate-configuration     (gen-conf)\n")
		fmt.Printf("                             FILE     - write a sample configuration\n\n")
		fmt.Printf("  start                      (run)    - run the stress rounds\n\n")
	}

	// indicate processing complete and perform normal exit from main
	return true
}
