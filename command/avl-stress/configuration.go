// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bitmark-inc/avltree/configuration"
	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/util"
	"github.com/bitmark-inc/logger"
)

// names accepted by the "tree" setting
const (
	treeAVL        = "avl"
	treeUnbalanced = "unbalanced"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "." // same directory as the config file

	defaultTree          = treeAVL
	defaultKeys          = 10000
	defaultRounds        = 10
	defaultWorkers       = 1
	defaultValidateEvery = 1000

	defaultLogDirectory = "log"
	defaultLogFile      = "avl-stress.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		logger.DefaultTag: "critical",
	}
)

// Configuration - settings for a stress run
//
// a zero seed selects a time based seed, which is logged so that a
// failing run can be repeated.  Each worker owns a separate tree
// seeded with seed + worker number
type Configuration struct {
	DataDirectory string               `gluamapper:"data_directory" json:"data_directory"`
	Tree          string               `gluamapper:"tree" json:"tree"`
	Keys          int                  `gluamapper:"keys" json:"keys"`
	Rounds        int                  `gluamapper:"rounds" json:"rounds"`
	Workers       int                  `gluamapper:"workers" json:"workers"`
	Seed          int64                `gluamapper:"seed" json:"seed"`
	ValidateEvery int                  `gluamapper:"validate_every" json:"validate_every"`
	Logging       logger.Configuration `gluamapper:"logging" json:"logging"`
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := &Configuration{
		DataDirectory: defaultDataDirectory,
		Tree:          defaultTree,
		Keys:          defaultKeys,
		Rounds:        defaultRounds,
		Workers:       defaultWorkers,
		Seed:          0,
		ValidateEvery: defaultValidateEvery,

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels,
		},
	}

	if err := configuration.ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	if err := options.check(); nil != err {
		return nil, err
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fmt.Errorf("%w: %q", fault.ErrConfigDirPath, options.DataDirectory)
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	}
	options.DataDirectory = filepath.Clean(options.DataDirectory)

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, fmt.Errorf("%w: %q", fault.ErrConfigDirPath, options.DataDirectory)
	}

	// log file must be a plain name inside the log directory
	switch filepath.Dir(options.Logging.File) {
	case "", ".":
	default:
		return nil, fmt.Errorf("Files: %q is not plain name", options.Logging.File)
	}

	// make absolute and create directories if they do not already exist
	for _, d := range []*string{
		&options.Logging.Directory,
	} {
		*d = util.EnsureAbsolute(options.DataDirectory, *d)
		ok, err := util.EnsureDirectory(*d)
		if nil != err {
			return nil, err
		}
		if !ok {
			return nil, fmt.Errorf("%w: %q", fault.ErrConfigDirPath, *d)
		}
	}

	// done
	return options, nil
}

// range checks on the run parameters
func (c *Configuration) check() error {
	c.Tree = strings.ToLower(c.Tree)
	switch c.Tree {
	case treeAVL, treeUnbalanced:
	default:
		return fmt.Errorf("%w: %q", fault.ErrInvalidTreeType, c.Tree)
	}

	if c.Keys <= 0 {
		return fmt.Errorf("%w: keys: %d", fault.ErrInvalidCount, c.Keys)
	}
	if c.Rounds <= 0 {
		return fmt.Errorf("%w: rounds: %d", fault.ErrInvalidCount, c.Rounds)
	}
	if c.Workers <= 0 {
		return fmt.Errorf("%w: workers: %d", fault.ErrInvalidCount, c.Workers)
	}
	if c.ValidateEvery < 0 {
		return fmt.Errorf("%w: validate_every: %d", fault.ErrInvalidCount, c.ValidateEvery)
	}
	return nil
}
