// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avltree/fault"
)

// without Initialise messages go to stderr and the panic value is
// the bare message
func TestPanicUninitialised(t *testing.T) {
	assert.PanicsWithValue(t, "broken invariant", func() {
		fault.Panic("broken invariant")
	}, "wrong panic value")

	assert.NotPanics(t, func() {
		fault.Criticalf("count: %d", 3)
	}, "critical message panicked")

	// nothing to flush
	fault.Finalise()
}
