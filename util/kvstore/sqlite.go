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

package kvstore

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/d13co/algorand.observer/util/db"
)

func init() {
	kvImpls["sqlite"] = sqliteFactory{}
}

type sqliteFactory struct{}

func (sqliteFactory) New(path string, inMem bool) (KVStore, error) {
	return NewSQLiteDB(path, inMem)
}

const kvSchema = `CREATE TABLE IF NOT EXISTS kv (k BLOB PRIMARY KEY, v BLOB NOT NULL)`

// SQLiteDB implements KVStore over a single sqlite table.
type SQLiteDB struct {
	acc db.Accessor
}

// NewSQLiteDB opens (creating if needed) the sqlite database at path.
func NewSQLiteDB(path string, inMem bool) (*SQLiteDB, error) {
	acc, err := db.MakeAccessor(path, false, inMem)
	if err != nil {
		return nil, err
	}
	err = acc.Atomic(context.Background(), "kvstore schema", func(tx *sqlx.Tx) error {
		_, err := tx.Exec(kvSchema)
		return err
	})
	if err != nil {
		acc.Close()
		return nil, err
	}
	return &SQLiteDB{acc: acc}, nil
}

// Get a key
func (s *SQLiteDB) Get(key []byte) (value []byte, err error) {
	err = s.acc.Handle.Get(&value, "SELECT v FROM kv WHERE k = ?", key)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return
}

// Set a key to value
func (s *SQLiteDB) Set(key, value []byte) error {
	return s.acc.Atomic(context.Background(), "kvstore set", func(tx *sqlx.Tx) error {
		_, err := tx.Exec("INSERT OR REPLACE INTO kv (k, v) VALUES (?, ?)", key, value)
		return err
	})
}

// Delete a key
func (s *SQLiteDB) Delete(key []byte) error {
	return s.acc.Atomic(context.Background(), "kvstore delete", func(tx *sqlx.Tx) error {
		_, err := tx.Exec("DELETE FROM kv WHERE k = ?", key)
		return err
	})
}

// Close closes the database
func (s *SQLiteDB) Close() error { return s.acc.Close() }
