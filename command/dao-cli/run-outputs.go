// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/daonode/replay"
	"github.com/bitmark-inc/daonode/storage"
	"github.com/bitmark-inc/logger"
)

func runOutputs(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	database, err := checkDatabase(c.String("database"))
	if nil != err {
		return err
	}

	txId, err := checkTxId(c.String("txid"))
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "database: %q\n", database)
		fmt.Fprintf(m.e, "txid: %s\n", txId)
	}

	logging := logger.Configuration{
		Directory: os.TempDir(),
		File:      "dao-cli.log",
		Size:      1048576,
		Count:     10,
		Console:   true,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}
	if err = logger.Initialise(logging); nil != err {
		return err
	}
	defer logger.Finalise()

	err = storage.Initialise(database, storage.ReadOnly)
	if nil != err {
		return err
	}
	defer storage.Finalise()

	tx, err := replay.StoredTransaction(txId)
	if nil != err {
		return err
	}

	return printJson(m.w, tx)
}
