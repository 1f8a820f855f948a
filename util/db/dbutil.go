// Copyright (C) 2019-2025 Algorand, Inc.
// This file is part of go-algorand
//
// go-algorand is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// go-algorand is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with go-algorand.  If not, see <https://www.gnu.org/licenses/>.

// Package db defines database utility functions.
//
// These functions currently work on a sqlite database.
// Other databases may not work with functions in this package.
package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/mattn/go-sqlite3"

	"github.com/d13co/algorand.observer/logging"
)

/* database utils */

// busy is the time to wait for a sqlite lock from another process, in ms.
// This causes sqlite to wait before returning SQLITE_BUSY.
const busy = 1000

const warnTxRetries = 1

// An Accessor manages a sqlite database handle.
type Accessor struct {
	Handle   *sqlx.DB
	readOnly bool
}

// MakeAccessor creates a new Accessor.
func MakeAccessor(dbfilename string, readOnly bool, inMemory bool) (Accessor, error) {
	var db Accessor
	db.readOnly = readOnly

	var err error
	uri := URI(dbfilename, readOnly, inMemory)
	if !inMemory {
		uri += "&_journal_mode=wal"
	}
	db.Handle, err = sqlx.Open("sqlite3", uri)
	if err != nil {
		return db, err
	}
	if inMemory {
		// every connection to a private in-memory database sees its own copy
		db.Handle.SetMaxOpenConns(1)
	}
	return db, db.Handle.Ping()
}

// Close closes the connection.
func (db Accessor) Close() error {
	return db.Handle.Close()
}

// Atomic executes a piece of code with respect to the database atomically,
// retrying while sqlite reports contention.
func (db Accessor) Atomic(ctx context.Context, fnDescription string, fn func(tx *sqlx.Tx) error) (err error) {
	descr := "w"
	if db.readOnly {
		descr = "r"
	}

	start := time.Now()
	defer func() {
		delta := time.Since(start)
		if delta > time.Second {
			logging.Base().With("description", fnDescription).Warnf("dbatomic(%v): tx took %v", descr, delta)
		}
	}()

	for i := 0; ; i++ {
		if i > 0 && i%warnTxRetries == 0 {
			if i >= 1000 {
				logging.Base().Errorf("dbatomic(%v): %d retries (last err: %v)", descr, i, err)
				return
			}
			logging.Base().With("description", fnDescription).Warnf("dbatomic(%v): %d retries (last err: %v)", descr, i, err)
		}

		var tx *sqlx.Tx
		tx, err = db.Handle.BeginTxx(ctx, nil)
		if dbretry(err) {
			continue
		} else if err != nil {
			return
		}

		err = fn(tx)
		if err != nil {
			tx.Rollback()
			if dbretry(err) {
				continue
			}
			return
		}

		err = tx.Commit()
		if !dbretry(err) {
			return
		}
	}
}

// URI returns the sqlite URI given a db filename as an input.
func URI(filename string, readOnly bool, memory bool) string {
	uri := fmt.Sprintf("file:%s?_busy_timeout=%d&_synchronous=full", filename, busy)
	if !readOnly {
		uri += "&_txlock=immediate"
	}
	if memory {
		uri += "&mode=memory"
	}
	return uri
}

// dbretry returns true if the error might be temporary
func dbretry(obj error) bool {
	err, ok := obj.(sqlite3.Error)
	return ok && (err.Code == sqlite3.ErrLocked || err.Code == sqlite3.ErrBusy)
}
