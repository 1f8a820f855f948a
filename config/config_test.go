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

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/d13co/algorand.observer/test/partitiontest"
)

func TestLoadConfigMissingFileReturnsDefaults(t *testing.T) {
	partitiontest.PartitionTest(t)

	c, err := LoadConfigFromDisk(t.TempDir())
	require.NoError(t, err)
	expected, err := GetDefaultLocal().Resolved()
	require.NoError(t, err)
	require.Equal(t, expected, c)
	require.Equal(t, "http://localhost:4001", c.AlgodAddress)
}

func TestLoadConfigMergesOverDefaults(t *testing.T) {
	partitiontest.PartitionTest(t)

	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, ConfigFilename), []byte(`{"WalletName": "mine", "PollIntervalMs": 250}`), 0600)
	require.NoError(t, err)

	c, err := LoadConfigFromDisk(dir)
	require.NoError(t, err)
	require.Equal(t, "mine", c.WalletName)
	require.Equal(t, 250*time.Millisecond, c.PollInterval())
	require.Equal(t, 60*time.Second, c.ConfirmationTimeout())
	require.Equal(t, "http://localhost:4001", c.AlgodAddress)
	require.Equal(t, DefaultSandboxToken, c.KMDToken)
}

func TestLoadConfigUnknownProfile(t *testing.T) {
	partitiontest.PartitionTest(t)

	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, ConfigFilename), []byte(`{"NodeProfile": "nowhere"}`), 0600)
	require.NoError(t, err)

	_, err = LoadConfigFromDisk(dir)
	require.ErrorContains(t, err, "nowhere")
}

func TestLoadConfigBadJSON(t *testing.T) {
	partitiontest.PartitionTest(t)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFilename), []byte(`{`), 0600))
	_, err := LoadConfigFromDisk(dir)
	require.Error(t, err)
}

func TestSaveAndReload(t *testing.T) {
	partitiontest.PartitionTest(t)

	dir := t.TempDir()
	c := GetDefaultLocal()
	c.NodeProfile = Mainnet
	c.AppIDStore = "sqlite"
	require.NoError(t, c.SaveToDisk(dir))

	loaded, err := LoadConfigFromDisk(dir)
	require.NoError(t, err)
	require.Equal(t, "sqlite", loaded.AppIDStore)
	require.Equal(t, "https://mainnet-api.4160.nodely.dev:443", loaded.AlgodAddress)
	require.Empty(t, loaded.KMDAddress)
}

func TestStorePath(t *testing.T) {
	partitiontest.PartitionTest(t)

	c := GetDefaultLocal()
	require.Equal(t, filepath.Join("/data", "appid.json"), c.StorePath("/data"))
	c.AppIDStorePath = "/abs/appid.db"
	require.Equal(t, "/abs/appid.db", c.StorePath("/data"))
}

func TestGetDefaultLocalIsACopy(t *testing.T) {
	partitiontest.PartitionTest(t)

	c := GetDefaultLocal()
	c.Nodes[0].ID = "changed"
	require.Equal(t, Sandbox, GetDefaultLocal().Nodes[0].ID)
}
