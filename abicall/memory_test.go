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
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/d13co/algorand.observer/logging"
	"github.com/d13co/algorand.observer/test/partitiontest"
	"github.com/d13co/algorand.observer/util/kvstore"
)

func TestAppIDMemory(t *testing.T) {
	partitiontest.PartitionTest(t)

	mem := MakeAppIDMemory(kvstore.NewMemoryDB(), logging.Base())
	_, ok := mem.Get()
	require.False(t, ok)

	require.NoError(t, mem.Remember(12))
	require.NoError(t, mem.Remember(31566704))
	id, ok := mem.Get()
	require.True(t, ok)
	require.Equal(t, "31566704", id)

	require.NoError(t, mem.Forget())
	_, ok = mem.Get()
	require.False(t, ok)
}

func TestAppIDMemoryPersists(t *testing.T) {
	partitiontest.PartitionTest(t)

	path := filepath.Join(t.TempDir(), "appid")
	store, err := kvstore.NewKVStore("file", path, false)
	require.NoError(t, err)
	require.NoError(t, MakeAppIDMemory(store, nil).Remember(77))
	require.NoError(t, store.Close())

	store, err = kvstore.NewKVStore("file", path, false)
	require.NoError(t, err)
	defer store.Close()
	id, ok := MakeAppIDMemory(store, nil).Get()
	require.True(t, ok)
	require.Equal(t, "77", id)
}

func TestPrefillAppID(t *testing.T) {
	partitiontest.PartitionTest(t)

	mem := MakeAppIDMemory(kvstore.NewMemoryDB(), nil)
	m := mustMethod(t, "ping()void")

	inv := NewInvocation(m, testAddr("sender"))
	inv.PrefillAppID(mem)
	require.Empty(t, inv.AppID)

	require.NoError(t, mem.Remember(55))
	inv.PrefillAppID(mem)
	require.Equal(t, "55", inv.AppID)

	inv = NewInvocation(m, testAddr("sender"))
	inv.AppID = "9"
	inv.PrefillAppID(mem)
	require.Equal(t, "9", inv.AppID)

	inv.AppID = ""
	inv.PrefillAppID(nil)
	require.Empty(t, inv.AppID)
}
