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

package abicall

import (
	"errors"
	"strconv"

	"github.com/d13co/algorand.observer/data/basics"
	"github.com/d13co/algorand.observer/logging"
	"github.com/d13co/algorand.observer/util/kvstore"
)

// appIDKey is the store key under which the last created application id is
// kept.
const appIDKey = "abi_app_id"

// AppIDMemory remembers the id of the last application created through the
// executor, so the next invocation can target it without retyping. It is
// best effort: read failures look like an empty memory and the last writer
// wins.
type AppIDMemory struct {
	store kvstore.KVStore
	log   logging.Logger
}

// MakeAppIDMemory returns a memory backed by store.
func MakeAppIDMemory(store kvstore.KVStore, log logging.Logger) *AppIDMemory {
	if log == nil {
		log = logging.Base()
	}
	return &AppIDMemory{store: store, log: log}
}

// Get returns the remembered application id as decimal text.
func (m *AppIDMemory) Get() (string, bool) {
	v, err := m.store.Get([]byte(appIDKey))
	if err != nil {
		if !errors.Is(err, kvstore.ErrNotFound) {
			m.log.Warnf("AppIDMemory: cannot read %s: %v", appIDKey, err)
		}
		return "", false
	}
	if len(v) == 0 {
		return "", false
	}
	return string(v), true
}

// Remember stores id as the last created application.
func (m *AppIDMemory) Remember(id basics.AppIndex) error {
	return m.store.Set([]byte(appIDKey), []byte(strconv.FormatUint(uint64(id), 10)))
}

// Forget clears the remembered id.
func (m *AppIDMemory) Forget() error {
	return m.store.Delete([]byte(appIDKey))
}
