// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/daonode/chain"
)

type metadata struct {
	chain   string
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	app := newApp(os.Stdout, os.Stderr)

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

func newApp(w io.Writer, e io.Writer) *cli.App {

	app := cli.NewApp()
	app.Name = "dao-cli"
	app.Usage = "inspect compensation requests offline"
	app.Version = version
	app.HideVersion = true

	app.Writer = w
	app.ErrWriter = e

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "chain, n",
			Value: chain.Mainnet,
			Usage: " phase and genesis defaults of `CHAIN` [mainnet|testnet|regtest]",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "decode",
			Usage:     "check the shape of a compensation request op_return payload",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "payload, p",
					Value: "",
					Usage: "*hex op_return `DATA`",
				},
			},
			Action: runDecode,
		},
		{
			Name:      "phase",
			Usage:     "show the voting phase of a block height",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "height, b",
					Usage: "*block `HEIGHT`",
				},
				cli.Uint64Flag{
					Name:  "genesis, g",
					Usage: " genesis `HEIGHT` instead of the chain default",
				},
			},
			Action: runPhase,
		},
		{
			Name:      "outputs",
			Usage:     "show the classification of a replayed transaction",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "database, d",
					Value: "",
					Usage: "*daonode leveldb `DIRECTORY`",
				},
				cli.StringFlag{
					Name:  "txid, t",
					Value: "",
					Usage: "*transaction `ID`",
				},
			},
			Action: runOutputs,
		},
		{
			Name:  "version",
			Usage: "display dao-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	app.Before = func(c *cli.Context) error {

		network := strings.ToLower(c.GlobalString("chain"))
		if !chain.Valid(network) {
			return fmt.Errorf("chain: %q can only be mainnet/testnet/regtest", network)
		}

		verbose := c.GlobalBool("verbose")
		if verbose {
			fmt.Fprintf(c.App.ErrWriter, "chain: %s\n", network)
		}

		c.App.Metadata["config"] = &metadata{
			chain:   network,
			verbose: verbose,
			e:       c.App.ErrWriter,
			w:       c.App.Writer,
		}
		return nil
	}

	return app
}
