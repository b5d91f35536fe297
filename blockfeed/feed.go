// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package blockfeed - import packed block files from a spool directory
//
// the upstream node writes each block as "<height>.block", normally by
// writing a temporary file and renaming it; imported files are deleted,
// files that can never be imported are renamed with a ".rejected" suffix
package blockfeed

import (
	"bytes"
	"io/ioutil"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/fsnotify/fsnotify"

	"github.com/bitmark-inc/daonode/blockrecord"
	"github.com/bitmark-inc/daonode/fault"
	"github.com/bitmark-inc/daonode/storage"
	"github.com/bitmark-inc/logger"
)

// file name suffixes
const (
	BlockSuffix    = ".block"
	RejectedSuffix = ".rejected"
)

// Trigger - notified after new blocks were stored
type Trigger interface {
	Trigger()
}

// Feed - the spool directory importer
type Feed struct {
	log       *logger.L
	directory string
	trigger   Trigger
}

// New - create a feed for an existing directory
func New(directory string, trigger Trigger) (*Feed, error) {
	directory, err := filepath.Abs(filepath.Clean(directory))
	if nil != err {
		return nil, err
	}

	info, err := os.Stat(directory)
	if nil != err || !info.IsDir() {
		return nil, fault.ErrSpoolDirectoryNotFound
	}

	return &Feed{
		log:       logger.New("blockfeed"),
		directory: directory,
		trigger:   trigger,
	}, nil
}

// HeightFromFileName - decode "<height>.block"
func HeightFromFileName(name string) (uint64, error) {
	base := filepath.Base(name)
	if !strings.HasSuffix(base, BlockSuffix) {
		return 0, fault.ErrInvalidSpoolFileName
	}
	height, err := strconv.ParseUint(strings.TrimSuffix(base, BlockSuffix), 10, 64)
	if nil != err {
		return 0, fault.ErrInvalidSpoolFileName
	}
	return height, nil
}

// FileName - spool file name for a block height
func FileName(height uint64) string {
	return strconv.FormatUint(height, 10) + BlockSuffix
}

// Import - store a single spool file
//
// a truncated file is left in place so that a later write can complete it
func (f *Feed) Import(fileName string) error {
	height, err := HeightFromFileName(fileName)
	if nil != err {
		return err
	}

	data, err := ioutil.ReadFile(fileName)
	if nil != err {
		return err
	}

	err = store(height, blockrecord.PackedBlock(data))
	if fault.IsErrLength(err) {
		f.log.Debugf("incomplete file: %q  error: %s", fileName, err)
		return err
	}
	if nil != err {
		f.log.Errorf("reject file: %q  error: %s", fileName, err)
		if e := os.Rename(fileName, fileName+RejectedSuffix); nil != e {
			f.log.Errorf("rename: %q  error: %s", fileName, e)
		}
		return err
	}

	f.log.Debugf("imported block: %d", height)
	return os.Remove(fileName)
}

func store(height uint64, packed blockrecord.PackedBlock) error {
	block, err := packed.Unpack()
	if nil != err {
		return err
	}
	if height != block.Header.Height {
		return fault.ErrBlockHeightMismatch
	}

	key := blockrecord.HeightKey(height)
	if existing := storage.Pool.Blocks.Get(key); nil != existing {
		if bytes.Equal(existing, packed) {
			return nil
		}
		return fault.ErrBlockAlreadyStored
	}
	return storage.Pool.Blocks.Put(key, packed)
}

// ImportAll - import every spool file in height order
//
// returns the number of blocks stored
func (f *Feed) ImportAll() (int, error) {
	names, err := filepath.Glob(filepath.Join(f.directory, "*"+BlockSuffix))
	if nil != err {
		return 0, err
	}

	type spoolFile struct {
		height uint64
		name   string
	}
	files := make([]spoolFile, 0, len(names))
	for _, name := range names {
		height, err := HeightFromFileName(name)
		if nil != err {
			f.log.Warnf("ignore file: %q", name)
			continue
		}
		files = append(files, spoolFile{height: height, name: name})
	}
	sort.Slice(files, func(i, j int) bool {
		return files[i].height < files[j].height
	})

	count := 0
	for _, file := range files {
		if nil == f.Import(file.name) {
			count += 1
		}
	}
	return count, nil
}

// Run - background process
func (f *Feed) Run(args interface{}, shutdown <-chan struct{}) {
	log := f.log

	log.Info("starting…")

	watcher, err := fsnotify.NewWatcher()
	if nil != err {
		log.Criticalf("new watcher error: %s", err)
		return
	}
	defer watcher.Close()

	err = watcher.Add(f.directory)
	if nil != err {
		log.Criticalf("watch: %q  error: %s", f.directory, err)
		return
	}

	// files that arrived while stopped
	f.importAndNotify()

loop:
	for {
		select {
		case <-shutdown:
			break loop

		case event, ok := <-watcher.Events:
			if !ok {
				break loop
			}
			if !isArrival(event) {
				continue
			}
			if _, err := HeightFromFileName(event.Name); nil != err {
				continue
			}
			log.Debugf("file event: %v", event)
			f.importAndNotify()

		case err, ok := <-watcher.Errors:
			if !ok {
				break loop
			}
			log.Errorf("watcher error: %s", err)
		}
	}

	log.Info("shutting down…")
	log.Flush()
}

// directory scan keeps imports in height order whatever the event order
func (f *Feed) importAndNotify() {
	n, err := f.ImportAll()
	if nil != err {
		f.log.Errorf("import error: %s", err)
		return
	}
	if n > 0 && nil != f.trigger {
		f.trigger.Trigger()
	}
}

func isArrival(event fsnotify.Event) bool {
	return event.Op&fsnotify.Create == fsnotify.Create ||
		event.Op&fsnotify.Write == fsnotify.Write
}
