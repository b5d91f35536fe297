// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package replay

import (
	"encoding/binary"
	"time"

	"github.com/bitmark-inc/daonode/blockrecord"
	"github.com/bitmark-inc/daonode/counter"
	"github.com/bitmark-inc/daonode/fault"
	"github.com/bitmark-inc/daonode/messagebus"
	"github.com/bitmark-inc/daonode/mode"
	"github.com/bitmark-inc/daonode/parser"
	"github.com/bitmark-inc/daonode/storage"
	"github.com/bitmark-inc/daonode/transactionrecord"
	"github.com/bitmark-inc/logger"
)

const (
	pollInterval = 30 * time.Second
	senderName   = "replay"
)

var replayHeightKey = []byte("height")

// Statistics - counts since the replayer was created
type Statistics struct {
	Blocks       counter.Counter
	Transactions counter.Counter
	Valid        counter.Counter
	Invalid      counter.Counter
	Diagnostics  counter.Counter
}

// Replayer - classifies stored blocks in height order
type Replayer struct {
	log     *logger.L
	parser  *parser.Parser
	queue   *messagebus.Queue
	start   uint64
	trigger chan struct{}
	failed  chan error
	stats   Statistics
}

// New - create a replayer
//
// start is the height of the first block to replay when nothing has
// been replayed yet, normally the genesis height
func New(p *parser.Parser, start uint64, queue *messagebus.Queue) *Replayer {
	r := &Replayer{
		log:     logger.New("replay"),
		parser:  p,
		queue:   queue,
		start:   start,
		trigger: make(chan struct{}, 1),
		failed:  make(chan error, 1),
	}
	r.trigger <- struct{}{} // replay anything already stored as soon as Run starts
	return r
}

// ReplayedHeight - height of the last committed block, false if none
func ReplayedHeight() (uint64, bool) {
	return storage.Pool.Replay.GetN(replayHeightKey)
}

// Statistics - counters for this replayer
func (r *Replayer) Statistics() *Statistics {
	return &r.stats
}

// Trigger - request a replay pass, never blocks
func (r *Replayer) Trigger() {
	select {
	case r.trigger <- struct{}{}:
	default:
	}
}

// Failed - receives the error that stopped the replayer
func (r *Replayer) Failed() <-chan error {
	return r.failed
}

// Run - background process
func (r *Replayer) Run(args interface{}, shutdown <-chan struct{}) {
	log := r.log

	log.Info("starting…")

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case <-r.trigger:
		case <-time.After(pollInterval):
		}

		n, err := r.ReplayAvailable(shutdown)
		if nil != err {
			log.Criticalf("replay stopped: error: %s", err)
			r.failed <- err
			break loop
		}
		if n > 0 {
			log.Infof("replayed: %d blocks", n)
		}
	}

	log.Info("shutting down…")
	log.Flush()
}

// ReplayAvailable - replay every stored block following the last
// replayed height
//
// stops at the first missing height; any error leaves the system in
// Stopped mode and no further replay is possible
func (r *Replayer) ReplayAvailable(shutdown <-chan struct{}) (int, error) {
	if mode.Is(mode.Stopped) {
		return 0, fault.ErrReplayAborted
	}

	height := r.start
	if last, found := ReplayedHeight(); found {
		height = last + 1
	}

	count := 0
	for {
		select {
		case <-shutdown:
			return count, nil
		default:
		}

		packed := storage.Pool.Blocks.Get(blockrecord.HeightKey(height))
		if nil == packed {
			break
		}
		if 0 == count && mode.IsNot(mode.Replaying) {
			mode.Set(mode.Replaying)
		}

		err := r.replayBlock(height, blockrecord.PackedBlock(packed))
		if nil != err {
			r.log.Criticalf("block: %d  error: %s", height, err)
			mode.Set(mode.Stopped)
			return count, err
		}
		count += 1
		height += 1
	}

	if mode.Is(mode.Replaying) {
		mode.Set(mode.Normal)
	}
	return count, nil
}

func (r *Replayer) replayBlock(height uint64, packed blockrecord.PackedBlock) error {
	block, err := packed.Unpack()
	if nil != err {
		return err
	}
	if height != block.Header.Height {
		return fault.ErrBlockHeightMismatch
	}

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return err
	}

	for _, tx := range block.Transactions {
		err := r.replayTransaction(trx, tx)
		if nil != err {
			trx.Abort()
			return err
		}
	}

	trx.PutN(storage.Pool.Replay, replayHeightKey, height)
	err = trx.Commit()
	if nil != err {
		return err
	}

	r.stats.Blocks.Increment()
	r.log.Debugf("block: %d  transactions: %d", height, len(block.Transactions))
	return nil
}

func (r *Replayer) replayTransaction(trx storage.Transaction, tx *transactionrecord.Tx) error {
	packedTx, err := tx.Pack()
	if nil != err {
		return err
	}
	txId := packedTx.TxId()

	model, diagnostic, err := r.parser.ParseTransaction(tx)
	if nil != err {
		return err
	}
	r.stats.Transactions.Increment()

	if transactionrecord.CompensationRequestOpReturn == model.OpReturnType() {
		if transactionrecord.CompensationRequestOpReturn == model.VerifiedOpReturnType() {
			r.stats.Valid.Increment()
		} else {
			r.stats.Invalid.Increment()
		}
	}

	if nil != diagnostic {
		r.stats.Diagnostics.Increment()
		if !r.queue.Send(senderName, diagnostic) {
			r.log.Warnf("diagnostic queue full, dropped: %s", diagnostic)
		}
	}

	record := make([]byte, 8, 8+len(packedTx))
	binary.BigEndian.PutUint64(record, tx.BlockHeight)
	trx.Put(storage.Pool.Transactions, txId[:], append(record, packedTx...))

	for _, output := range tx.Outputs {
		trx.Put(storage.Pool.Outputs, outputKey(txId, output.Index), []byte{byte(output.Type)})
	}
	return nil
}

// txId ++ big endian index
func outputKey(txId transactionrecord.TxId, index int) []byte {
	key := make([]byte, transactionrecord.TxIdLength+4)
	copy(key, txId[:])
	binary.BigEndian.PutUint32(key[transactionrecord.TxIdLength:], uint32(index))
	return key
}
