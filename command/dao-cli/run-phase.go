// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/daonode/chain"
	"github.com/bitmark-inc/daonode/period"
)

type phaseResult struct {
	Height      uint64       `json:"height"`
	Genesis     uint64       `json:"genesis"`
	Phase       period.Phase `json:"phase"`
	Cycle       uint64       `json:"cycle"`
	FirstBlock  uint64       `json:"firstBlock"`
	LastBlock   uint64       `json:"lastBlock"`
	CycleLength uint64       `json:"cycleLength"`
}

func runPhase(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	if !c.IsSet("height") {
		return ErrRequiredHeight
	}
	height := c.Uint64("height")

	genesis := c.Uint64("genesis")
	if 0 == genesis {
		genesis = chain.GenesisHeight(m.chain)
	}

	durations := period.DefaultDurations(m.chain)
	phases, err := period.NewService(genesis, durations)
	if nil != err {
		return err
	}

	result := phaseResult{
		Height:      height,
		Genesis:     genesis,
		Phase:       phases.PhaseForHeight(height),
		CycleLength: durations.CycleLength(),
	}
	if period.Undefined != result.Phase {
		if result.Cycle, err = phases.CycleIndex(height); nil != err {
			return err
		}
		if result.FirstBlock, err = phases.FirstBlockOfPhase(height, result.Phase); nil != err {
			return err
		}
		if result.LastBlock, err = phases.LastBlockOfPhase(height, result.Phase); nil != err {
			return err
		}
	}

	return printJson(m.w, result)
}
