// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package background_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/daonode/background"
)

type ticker struct {
	count   int64
	stopped int32
}

func (state *ticker) Run(args interface{}, shutdown <-chan struct{}) {
loop:
	for {
		select {
		case <-shutdown:
			break loop
		default:
		}
		atomic.AddInt64(&state.count, 1)
		time.Sleep(time.Millisecond)
	}
	atomic.StoreInt32(&state.stopped, 1)
}

type oneShot struct {
	ran int32
}

func (state *oneShot) Run(args interface{}, shutdown <-chan struct{}) {
	atomic.StoreInt32(&state.ran, 1)
}

func TestBackground(t *testing.T) {
	proc1 := &ticker{}
	proc2 := &ticker{}

	p := background.Start(background.Processes{proc1, proc2}, nil)
	time.Sleep(20 * time.Millisecond)
	p.Stop()
	p.Stop()

	assert.True(t, atomic.LoadInt64(&proc1.count) > 0, "first process ran")
	assert.True(t, atomic.LoadInt64(&proc2.count) > 0, "second process ran")
	assert.Equal(t, int32(1), atomic.LoadInt32(&proc1.stopped), "first process stopped")
	assert.Equal(t, int32(1), atomic.LoadInt32(&proc2.stopped), "second process stopped")
}

func TestDone(t *testing.T) {
	proc := &oneShot{}
	p := background.Start(background.Processes{proc}, nil)

	select {
	case <-p.Done():
	case <-time.After(time.Second):
		t.Fatal("process did not finish")
	}
	assert.Equal(t, int32(1), atomic.LoadInt32(&proc.ran), "ran")
	p.Stop()
}
