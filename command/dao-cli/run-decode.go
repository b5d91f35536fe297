// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/daonode/compreq"
	"github.com/bitmark-inc/daonode/transactionrecord"
)

type decodeResult struct {
	Length  int                            `json:"length"`
	Type    transactionrecord.OpReturnType `json:"type"`
	Version *byte                          `json:"version,omitempty"`
	Check   compreq.Check                  `json:"check"`
}

func runDecode(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	payload, err := checkPayload(c.String("payload"))
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "payload: %x\n", payload)
	}

	result := decodeResult{
		Length: len(payload),
		Type:   transactionrecord.OpReturnTypeOf(payload),
		Check:  compreq.CheckPayload(payload),
	}
	if len(payload) > 1 {
		v := payload[1]
		result.Version = &v
	}

	return printJson(m.w, result)
}
