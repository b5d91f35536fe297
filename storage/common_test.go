// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"os"
	"testing"

	"github.com/bitmark-inc/daonode/fixtures"
	"github.com/bitmark-inc/daonode/storage"
)

// test database file
const (
	databaseFileName = "test.leveldb"
)

// remove all files created by test
func removeFiles() {
	os.RemoveAll(databaseFileName)
}

// configure for testing
func setup(t *testing.T) {
	fixtures.SetupTestLogger()
	removeFiles()
	err := storage.Initialise(databaseFileName, storage.ReadWrite)
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}
}

// post test cleanup
func teardown(t *testing.T) {
	storage.Finalise()
	removeFiles()
	fixtures.TeardownTestLogger()
}
