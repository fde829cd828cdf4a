// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avltree/configuration"
	"github.com/bitmark-inc/avltree/fault"
)

type logging struct {
	Directory string            `gluamapper:"directory"`
	Levels    map[string]string `gluamapper:"levels"`
}

type testConfiguration struct {
	Tree    string  `gluamapper:"tree"`
	Keys    int     `gluamapper:"keys"`
	Seed    int64   `gluamapper:"seed"`
	Name    string  `gluamapper:"name"`
	Logging logging `gluamapper:"logging"`
}

const source = `
local M = {}
M.tree = "unbalanced"
M.keys = 3 * 100
M.seed = 42
M.name = arg[1] or "none"
M.logging = {
    directory = "log",
    levels = {
        DEFAULT = "info",
        stress = "debug",
    },
}
return M
`

func TestParseString(t *testing.T) {
	config := testConfiguration{
		Tree: "avl",
	}
	err := configuration.ParseConfigurationString(source, &config)
	assert.Nil(t, err, "parse error")

	assert.Equal(t, "unbalanced", config.Tree, "wrong tree")
	assert.Equal(t, 300, config.Keys, "wrong keys")
	assert.Equal(t, int64(42), config.Seed, "wrong seed")
	assert.Equal(t, "none", config.Name, "wrong name")
	assert.Equal(t, "log", config.Logging.Directory, "wrong directory")
	assert.Equal(t, "debug", config.Logging.Levels["stress"], "wrong level")
}

func TestParseFile(t *testing.T) {
	dir, err := ioutil.TempDir("", "configuration")
	if nil != err {
		t.Fatalf("temporary directory error: %s", err)
	}
	defer os.RemoveAll(dir)

	fileName := filepath.Join(dir, "test.conf")
	err = ioutil.WriteFile(fileName, []byte(source), 0600)
	if nil != err {
		t.Fatalf("write error: %s", err)
	}

	config := testConfiguration{}
	err = configuration.ParseConfigurationFile(fileName, &config, "from-argument")
	assert.Nil(t, err, "parse error")
	assert.Equal(t, "from-argument", config.Name, "argument not passed")
	assert.Equal(t, 300, config.Keys, "wrong keys")
}

func TestParseErrors(t *testing.T) {
	config := testConfiguration{}

	err := configuration.ParseConfigurationFile("/does/not/exist.conf", &config)
	assert.Equal(t, fault.ErrNotFoundConfigFile, err, "missing file")

	err = configuration.ParseConfigurationString(source, config)
	assert.Equal(t, fault.ErrInvalidStructPointer, err, "non-pointer accepted")

	err = configuration.ParseConfigurationString("x = 1", &config)
	assert.Equal(t, fault.ErrConfigNotTable, err, "missing table")

	err = configuration.ParseConfigurationString("return {", &config)
	assert.NotNil(t, err, "syntax error accepted")
}
