// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avltree/fault"
)

func run(arguments ...string) (string, error) {
	var w bytes.Buffer
	var e bytes.Buffer
	app := newApp(&w, &e)
	err := app.Run(append([]string{"avl-cli"}, arguments...))
	return w.String(), err
}

func TestPrint(t *testing.T) {
	out, err := run("print", "2", "1", "3")
	assert.Nil(t, err, "print error")

	expected := "       /------+ 3 ^2\n" +
		"|------+ 2 ^<nil>\n" +
		"       \\------+ 1 ^2\n" +
		"depth: 2\n"
	assert.Equal(t, expected, out, "wrong drawing")
}

func TestWalk(t *testing.T) {
	out, err := run("walk", "10", "9", "100")
	assert.Nil(t, err, "walk error")
	assert.Equal(t, "10 → 1\n100 → 3\n9 → 2\n", out, "wrong string order")

	out, err = run("--numeric", "walk", "10", "9", "100")
	assert.Nil(t, err, "walk error")
	assert.Equal(t, "9 → 2\n10 → 1\n100 → 3\n", out, "wrong numeric order")

	out, err = run("-n", "-u", "walk", "--reverse", "10", "9", "100", "9")
	assert.Nil(t, err, "walk error")
	assert.Equal(t, "100 → 3\n10 → 1\n9 → 4\n", out, "wrong reverse order")
}

func TestFind(t *testing.T) {
	out, err := run("-n", "find", "-k", "5", "5", "3", "8", "1", "4", "7", "9")
	if !assert.Nil(t, err, "find error") {
		return
	}

	var result map[string]interface{}
	err = json.Unmarshal([]byte(out), &result)
	assert.Nil(t, err, "JSON error")
	assert.Equal(t, float64(5), result["key"], "wrong key")
	assert.Equal(t, float64(1), result["value"], "wrong value")
	assert.Equal(t, float64(0), result["depth"], "wrong depth")
	assert.Equal(t, float64(4), result["previous"], "wrong previous")
	assert.Equal(t, float64(7), result["next"], "wrong next")

	_, err = run("-n", "find", "-k", "6", "5", "3", "8")
	assert.True(t, fault.IsErrNotFound(err), "wrong error: %v", err)

	_, err = run("find", "5", "3", "8")
	assert.Equal(t, ErrMissingKey, err, "missing key accepted")
}

func TestRemove(t *testing.T) {
	out, err := run("-n", "remove", "-k", "2", "2", "1", "3")
	assert.Nil(t, err, "remove error")

	expected := "       /------+ 3 ^1\n" +
		"|------+ 1 ^<nil>\n" +
		"depth: 2\n"
	assert.Equal(t, expected, out, "wrong drawing")

	out, err = run("-n", "remove", "-k", "1", "-k", "3", "-k", "2", "2", "1", "3")
	assert.Nil(t, err, "remove error")
	assert.Equal(t, "depth: 0\n", out, "tree not empty")
}

func TestStats(t *testing.T) {
	out, err := run("-n", "-u", "stats", "1", "2", "3", "4")
	if !assert.Nil(t, err, "stats error") {
		return
	}

	result := statsResult{}
	err = json.Unmarshal([]byte(out), &result)
	assert.Nil(t, err, "JSON error")
	assert.Equal(t, statsResult{Count: 4, Height: 4, Balanced: false}, result, "wrong unbalanced stats")

	out, err = run("-n", "stats", "1", "2", "3", "4")
	assert.Nil(t, err, "stats error")
	err = json.Unmarshal([]byte(out), &result)
	assert.Nil(t, err, "JSON error")
	assert.Equal(t, statsResult{Count: 4, Height: 3, Balanced: true, Rotations: 1}, result, "wrong AVL stats")
}

func TestErrors(t *testing.T) {
	_, err := run("-n", "print", "1", "x")
	assert.True(t, fault.IsErrInvalid(err), "wrong error: %v", err)

	_, err = run("print")
	assert.Equal(t, ErrNoKeys, err, "empty key list accepted")
}
