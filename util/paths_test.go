// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avltree/util"
)

func TestEnsureAbsolute(t *testing.T) {
	assert.Equal(t, "/data/log", util.EnsureAbsolute("/data", "log"), "relative path")
	assert.Equal(t, "/var/log", util.EnsureAbsolute("/data", "/var/log"), "absolute path")
	assert.Equal(t, "/data/log", util.EnsureAbsolute("/data", "./x/../log"), "path not cleaned")
}

func TestEnsureDirectory(t *testing.T) {
	dir, err := ioutil.TempDir("", "util")
	if nil != err {
		t.Fatalf("temporary directory error: %s", err)
	}
	defer os.RemoveAll(dir)

	logDirectory := filepath.Join(dir, "a", "log")
	ok, err := util.EnsureDirectory(logDirectory)
	assert.Nil(t, err, "create error")
	assert.True(t, ok, "not created")
	assert.True(t, util.EnsureFileExists(logDirectory), "directory missing")

	// already present
	ok, err = util.EnsureDirectory(logDirectory)
	assert.Nil(t, err, "existing directory error")
	assert.True(t, ok, "existing directory rejected")

	fileName := filepath.Join(dir, "file")
	err = ioutil.WriteFile(fileName, []byte("x"), 0600)
	if nil != err {
		t.Fatalf("write error: %s", err)
	}
	ok, err = util.EnsureDirectory(fileName)
	assert.Nil(t, err, "file error")
	assert.False(t, ok, "file accepted as directory")

	assert.False(t, util.EnsureFileExists(filepath.Join(dir, "none")), "missing file exists")
}
