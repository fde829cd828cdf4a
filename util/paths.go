// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"os"
	"path/filepath"
)

// EnsureAbsolute - ensure the path is absolute
// if not, prepend the directory to make absolute path
func EnsureAbsolute(directory string, filePath string) string {
	if !filepath.IsAbs(filePath) {
		filePath = filepath.Join(directory, filePath)
	}
	return filepath.Clean(filePath)
}

// EnsureFileExists - check if file exists
func EnsureFileExists(name string) bool {
	_, err := os.Stat(name)
	return nil == err
}

// EnsureDirectory - create a directory if it does not exist
//
// returns false if the path exists but is not a directory
func EnsureDirectory(name string) (bool, error) {
	info, err := os.Stat(name)
	if nil == err {
		return info.IsDir(), nil
	}
	if !os.IsNotExist(err) {
		return false, err
	}
	if err := os.MkdirAll(name, 0700); nil != err {
		return false, err
	}
	return true, nil
}
