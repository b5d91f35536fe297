// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package replay

import (
	"github.com/bitmark-inc/daonode/compreq"
	"github.com/bitmark-inc/daonode/counter"
	"github.com/bitmark-inc/daonode/messagebus"
	"github.com/bitmark-inc/logger"
)

// DiagnosticLogger - background process writing queued diagnostics to the log
type DiagnosticLogger struct {
	log    *logger.L
	queue  *messagebus.Queue
	logged counter.Counter
}

// NewDiagnosticLogger - create a logger process reading from a queue
func NewDiagnosticLogger(queue *messagebus.Queue) *DiagnosticLogger {
	return &DiagnosticLogger{
		log:   logger.New("diagnostic"),
		queue: queue,
	}
}

// Logged - number of diagnostics written
func (d *DiagnosticLogger) Logged() uint64 {
	return d.logged.Uint64()
}

// Run - background process
func (d *DiagnosticLogger) Run(args interface{}, shutdown <-chan struct{}) {
	log := d.log
	log.Info("starting…")

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case message := <-d.queue.Chan():
			d.record(message)
		}
	}

	if dropped := d.queue.Dropped(); dropped > 0 {
		log.Warnf("dropped diagnostics: %d", dropped)
	}
	log.Info("shutting down…")
	log.Flush()
}

func (d *DiagnosticLogger) record(message messagebus.Message) {
	switch item := message.Item.(type) {
	case *compreq.Diagnostic:
		d.log.Warnf("%s: %s", message.From, item)
		d.logged.Increment()
	default:
		d.log.Errorf("%s: unexpected item: %v", message.From, item)
	}
}
