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
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"time"

	"github.com/d13co/algorand.observer/util/codecs"
)

// ConfigFilename is the name of the config.json file where we store per-user settings
const ConfigFilename = "config.json"

// ConfigVersion is the current version of the Local structure
const ConfigVersion = uint32(1)

// Sandbox and Mainnet identify the node profiles compiled into defaultLocal.
const (
	Sandbox = "sandbox"
	Mainnet = "nodely_mainnet"
)

// DefaultSandboxToken is the API token of a default sandbox algod/kmd install.
const DefaultSandboxToken = "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"

// NodeProfile names a node (and optionally its kmd) the client can talk to.
type NodeProfile struct {
	ID           string
	Label        string
	AlgodAddress string
	AlgodToken   string
	KMDAddress   string
	KMDToken     string
}

// Local holds the per-user configuration of the method invocation client.
type Local struct {
	// Version tracks the current version of the defaults so we can migrate old -> new
	Version uint32

	// NodeProfile selects one of Nodes. When set, its addresses and tokens
	// fill the Algod* and KMD* fields left empty.
	NodeProfile string
	Nodes       []NodeProfile

	AlgodAddress string
	AlgodToken   string
	KMDAddress   string
	KMDToken     string

	// WalletName is the kmd wallet used to sign groups.
	WalletName string

	// AppIDStore selects the backend remembering the last application id:
	// "pebble", "sqlite", "file" or "memory". AppIDStorePath is relative to
	// the data directory unless absolute.
	AppIDStore     string
	AppIDStorePath string

	// ConfirmationTimeoutSec bounds the wait for a submitted group to be
	// confirmed. PollIntervalMs is the delay between pending-transaction polls.
	ConfirmationTimeoutSec int
	PollIntervalMs         int

	// ValidRounds is the validity window given to built transactions; zero
	// means the protocol maximum.
	ValidRounds uint64

	LogLevel string
}

var defaultLocal = Local{
	Version:     ConfigVersion,
	NodeProfile: Sandbox,
	Nodes: []NodeProfile{
		{
			ID:           Sandbox,
			Label:        "Sandbox",
			AlgodAddress: "http://localhost:4001",
			AlgodToken:   DefaultSandboxToken,
			KMDAddress:   "http://localhost:4002",
			KMDToken:     DefaultSandboxToken,
		},
		{
			ID:           Mainnet,
			Label:        "Nodely Mainnet (Nodely)",
			AlgodAddress: "https://mainnet-api.4160.nodely.dev:443",
		},
	},
	WalletName:             "unencrypted-default-wallet",
	AppIDStore:             "file",
	AppIDStorePath:         "appid.json",
	ConfirmationTimeoutSec: 60,
	PollIntervalMs:         1000,
	ValidRounds:            1000,
	LogLevel:               "warning",
}

// GetDefaultLocal returns a copy of the current defaultLocal config
func GetDefaultLocal() Local {
	c := defaultLocal
	c.Nodes = append([]NodeProfile(nil), defaultLocal.Nodes...)
	return c
}

// LoadConfigFromDisk returns a Local config structure based on merging the defaults
// with settings loaded from the config file from the custom dir. A missing
// config file is not an error; the defaults are returned.
func LoadConfigFromDisk(custom string) (c Local, err error) {
	return loadConfigFromFile(filepath.Join(custom, ConfigFilename))
}

func loadConfigFromFile(configFile string) (c Local, err error) {
	c = GetDefaultLocal()
	err = codecs.LoadObjectFromFile(configFile, &c)
	if errors.Is(err, fs.ErrNotExist) {
		return GetDefaultLocal().resolve()
	}
	if err != nil {
		return GetDefaultLocal(), fmt.Errorf("loading %s: %w", configFile, err)
	}
	return c.resolve()
}

// SaveToDisk writes the Local settings into a root/ConfigFilename file
func (cfg Local) SaveToDisk(root string) error {
	return cfg.SaveToFile(filepath.Join(root, ConfigFilename))
}

// SaveToFile saves the config to a specific filename
func (cfg Local) SaveToFile(filename string) error {
	return codecs.SaveObjectToFile(filename, cfg, true)
}

// resolve fills endpoint settings from the selected node profile.
func (cfg Local) resolve() (Local, error) {
	if cfg.NodeProfile == "" {
		return cfg, nil
	}
	profile, ok := cfg.Profile(cfg.NodeProfile)
	if !ok {
		return cfg, fmt.Errorf("unknown node profile %q", cfg.NodeProfile)
	}
	if cfg.AlgodAddress == "" {
		cfg.AlgodAddress = profile.AlgodAddress
		cfg.AlgodToken = profile.AlgodToken
	}
	if cfg.KMDAddress == "" {
		cfg.KMDAddress = profile.KMDAddress
		cfg.KMDToken = profile.KMDToken
	}
	return cfg, nil
}

// Resolved returns cfg with endpoint settings filled from its node profile.
func (cfg Local) Resolved() (Local, error) {
	return cfg.resolve()
}

// Profile looks up a node profile by id.
func (cfg Local) Profile(id string) (NodeProfile, bool) {
	for _, p := range cfg.Nodes {
		if p.ID == id {
			return p, true
		}
	}
	return NodeProfile{}, false
}

// ConfirmationTimeout returns the confirmation wait bound as a duration.
func (cfg Local) ConfirmationTimeout() time.Duration {
	return time.Duration(cfg.ConfirmationTimeoutSec) * time.Second
}

// PollInterval returns the delay between confirmation polls.
func (cfg Local) PollInterval() time.Duration {
	return time.Duration(cfg.PollIntervalMs) * time.Millisecond
}

// StorePath resolves AppIDStorePath against the data directory.
func (cfg Local) StorePath(dataDir string) string {
	if cfg.AppIDStorePath == "" || filepath.IsAbs(cfg.AppIDStorePath) {
		return cfg.AppIDStorePath
	}
	return filepath.Join(dataDir, cfg.AppIDStorePath)
}
