// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package messagebus

import (
	"github.com/bitmark-inc/daonode/counter"
)

// internal constants
const (
	queueSize = 1000
)

// Message - an item and the name of the sender
type Message struct {
	From string
	Item interface{}
}

// Queue - bounded message queue
type Queue struct {
	c       chan Message
	dropped counter.Counter
}

// Bus - the diagnostic queue
var Bus = New(queueSize)

// New - create a queue with space for size messages
func New(size int) *Queue {
	return &Queue{
		c: make(chan Message, size),
	}
}

// Send - queue data, returns false if the queue was full
func (q *Queue) Send(from string, item interface{}) bool {
	select {
	case q.c <- Message{From: from, Item: item}:
		return true
	default:
		q.dropped.Increment()
		return false
	}
}

// Chan - channel to read from
func (q *Queue) Chan() <-chan Message {
	return q.c
}

// Dropped - number of messages discarded since start
func (q *Queue) Dropped() uint64 {
	return q.dropped.Uint64()
}
