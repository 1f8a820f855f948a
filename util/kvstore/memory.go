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
	"github.com/algorand/go-deadlock"
)

func init() {
	kvImpls["memory"] = memoryFactory{}
}

type memoryFactory struct{}

func (memoryFactory) New(string, bool) (KVStore, error) {
	return NewMemoryDB(), nil
}

// MemoryDB is a KVStore living only in process memory.
type MemoryDB struct {
	mu deadlock.RWMutex
	kv map[string][]byte
}

// NewMemoryDB returns an empty MemoryDB.
func NewMemoryDB() *MemoryDB {
	return &MemoryDB{kv: make(map[string][]byte)}
}

// Get a key
func (m *MemoryDB) Get(key []byte) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.kv[string(key)]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]byte(nil), v...), nil
}

// Set a key to value
func (m *MemoryDB) Set(key, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.kv[string(key)] = append([]byte(nil), value...)
	return nil
}

// Delete a key
func (m *MemoryDB) Delete(key []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.kv, string(key))
	return nil
}

// Close is a no-op.
func (m *MemoryDB) Close() error { return nil }
