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
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/algorand/go-deadlock"
	"github.com/gofrs/flock"

	"github.com/d13co/algorand.observer/util/codecs"
)

func init() {
	kvImpls["file"] = fileFactory{}
}

type fileFactory struct{}

func (fileFactory) New(path string, inMem bool) (KVStore, error) {
	if inMem {
		return NewMemoryDB(), nil
	}
	return NewFileDB(path), nil
}

// FileDB keeps its entries in a JSON file. Every access re-reads the file
// under an advisory lock so that several processes sharing the file see
// each other's writes.
type FileDB struct {
	mu   deadlock.Mutex
	path string
	lock *flock.Flock
}

// NewFileDB returns a FileDB backed by the file at path. The file is created
// on first Set.
func NewFileDB(path string) *FileDB {
	return &FileDB{path: path, lock: flock.New(path + ".lock")}
}

func (f *FileDB) locked(fn func() error) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.lock.Lock(); err != nil {
		return fmt.Errorf("locking %s: %w", f.lock.Path(), err)
	}
	defer f.lock.Unlock()
	return fn()
}

func (f *FileDB) load() (map[string][]byte, error) {
	entries := make(map[string][]byte)
	err := codecs.LoadObjectFromFile(f.path, &entries)
	if errors.Is(err, fs.ErrNotExist) {
		return entries, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", f.path, err)
	}
	return entries, nil
}

func (f *FileDB) save(entries map[string][]byte) error {
	tmp := f.path + ".tmp"
	if err := codecs.SaveObjectToFile(tmp, entries, true); err != nil {
		return err
	}
	return os.Rename(tmp, f.path)
}

// Get a key
func (f *FileDB) Get(key []byte) (value []byte, err error) {
	err = f.locked(func() error {
		entries, err := f.load()
		if err != nil {
			return err
		}
		v, ok := entries[string(key)]
		if !ok {
			return ErrNotFound
		}
		value = v
		return nil
	})
	return
}

// Set a key to value
func (f *FileDB) Set(key, value []byte) error {
	return f.locked(func() error {
		entries, err := f.load()
		if err != nil {
			return err
		}
		entries[string(key)] = value
		return f.save(entries)
	})
}

// Delete a key
func (f *FileDB) Delete(key []byte) error {
	return f.locked(func() error {
		entries, err := f.load()
		if err != nil {
			return err
		}
		delete(entries, string(key))
		return f.save(entries)
	})
}

// Close is a no-op; the file is not held open between calls.
func (f *FileDB) Close() error { return nil }
