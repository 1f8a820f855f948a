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

// Package libgoal wires configuration, the algod and kmd clients, the
// application-id store and the method executor into a single Client, the way
// command line tools use them.
package libgoal

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/algorand/go-deadlock"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/d13co/algorand.observer/abicall"
	"github.com/d13co/algorand.observer/config"
	algodclient "github.com/d13co/algorand.observer/daemon/algod/api/client"
	"github.com/d13co/algorand.observer/daemon/algod/api/client/models"
	kmdclient "github.com/d13co/algorand.observer/daemon/kmd/client"
	"github.com/d13co/algorand.observer/data/abi"
	"github.com/d13co/algorand.observer/data/basics"
	"github.com/d13co/algorand.observer/logging"
	"github.com/d13co/algorand.observer/util/kvstore"
)

var errorNoDataDirectory = errors.New("no data directory given and $ALGORAND_OBSERVER_DATA is not set")

// Client represents the entry point for all libgoal functions
type Client struct {
	cfg     config.Local
	dataDir string
	log     logging.Logger

	algod  algodclient.RestClient
	signer abicall.Signer
	store  kvstore.KVStore
	memory *abicall.AppIDMemory

	metrics *abicall.Metrics

	mu                    deadlock.Mutex
	suggestedParamsCache  models.TransactionParametersResponse
	suggestedParamsExpire time.Time
	suggestedParamsMaxAge time.Duration
}

// ClientConfig is data to configure a Client
type ClientConfig struct {
	// DataDir holds config.json and the application-id store. If empty,
	// $ALGORAND_OBSERVER_DATA is used.
	DataDir string

	// Local overrides the configuration loaded from DataDir.
	Local *config.Local

	// Signer overrides the kmd wallet signer built from the configuration.
	Signer abicall.Signer

	// WalletPassword unlocks the configured kmd wallet.
	WalletPassword string

	// Registerer receives the executor metrics. Nil leaves them
	// unregistered.
	Registerer prometheus.Registerer

	Log logging.Logger
}

// MakeClient creates a Client from the configuration stored in dataDir.
func MakeClient(dataDir string) (*Client, error) {
	return MakeClientFromConfig(ClientConfig{DataDir: dataDir})
}

// MakeClientFromConfig creates a libgoal.Client from a config struct with many options.
func MakeClientFromConfig(cc ClientConfig) (*Client, error) {
	c := &Client{log: cc.Log}
	if c.log == nil {
		c.log = logging.Base()
	}
	if err := c.init(cc); err != nil {
		if c.store != nil {
			c.store.Close()
		}
		return nil, err
	}
	return c, nil
}

func (c *Client) init(cc ClientConfig) error {
	dataDir, err := getDataDir(cc.DataDir)
	if err != nil {
		return err
	}
	c.dataDir = dataDir

	if cc.Local != nil {
		c.cfg, err = cc.Local.Resolved()
	} else {
		c.cfg, err = config.LoadConfigFromDisk(dataDir)
	}
	if err != nil {
		return err
	}
	if c.cfg.LogLevel != "" {
		lvl, err := logging.ParseLevel(c.cfg.LogLevel)
		if err != nil {
			return err
		}
		c.log.SetLevel(lvl)
	}

	if c.cfg.AlgodAddress == "" {
		return fmt.Errorf("no algod address configured for node profile %q", c.cfg.NodeProfile)
	}
	algodURL, err := url.Parse(c.cfg.AlgodAddress)
	if err != nil {
		return fmt.Errorf("bad algod address %q: %w", c.cfg.AlgodAddress, err)
	}
	c.algod = algodclient.MakeRestClient(*algodURL, c.cfg.AlgodToken)

	c.signer = cc.Signer
	if c.signer == nil && c.cfg.KMDAddress != "" {
		kmd, err := kmdclient.MakeKMDClient(c.cfg.KMDAddress, c.cfg.KMDToken)
		if err != nil {
			return err
		}
		c.signer = kmdclient.MakeWalletSigner(kmd, c.cfg.WalletName, cc.WalletPassword, c.log)
	}

	storePath := c.cfg.StorePath(dataDir)
	c.store, err = kvstore.NewKVStore(c.cfg.AppIDStore, storePath, storePath == "")
	if err != nil {
		return fmt.Errorf("opening application id store: %w", err)
	}
	c.memory = abicall.MakeAppIDMemory(c.store, c.log)
	c.metrics = abicall.NewMetrics(cc.Registerer)
	return nil
}

func getDataDir(dataDir string) (string, error) {
	dir := dataDir
	if dir == "" {
		dir = os.Getenv("ALGORAND_OBSERVER_DATA")
	}
	if dir == "" {
		return "", errorNoDataDirectory
	}
	return dir, nil
}

// Close releases the application-id store.
func (c *Client) Close() error {
	return c.store.Close()
}

// DataDir returns the client's data directory path
func (c *Client) DataDir() string {
	return c.dataDir
}

// Config returns the resolved configuration of the client.
func (c *Client) Config() config.Local {
	return c.cfg
}

// HealthCheck returns an error if something is wrong
func (c *Client) HealthCheck(ctx context.Context) error {
	return c.algod.HealthCheck(ctx)
}

// Status returns the node status
func (c *Client) Status(ctx context.Context) (models.NodeStatusResponse, error) {
	return c.algod.Status(ctx)
}

// SuggestedParams returns the suggested parameters for a new transaction
func (c *Client) SuggestedParams(ctx context.Context) (models.TransactionParametersResponse, error) {
	return c.algod.SuggestedParams(ctx)
}

// SetSuggestedParamsCacheAge sets the maximum age of the suggested
// parameters handed to the executor.
func (c *Client) SetSuggestedParamsCacheAge(maxAge time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.suggestedParamsMaxAge = maxAge
}

func (c *Client) cachedSuggestedParams(ctx context.Context) (params models.TransactionParametersResponse, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.suggestedParamsMaxAge == 0 || time.Now().After(c.suggestedParamsExpire) {
		params, err = c.SuggestedParams(ctx)
		if err == nil && c.suggestedParamsMaxAge != 0 {
			c.suggestedParamsCache = params
			c.suggestedParamsExpire = time.Now().Add(c.suggestedParamsMaxAge)
		}
		return
	}
	return c.suggestedParamsCache, nil
}

// node is the algod client as seen by the executor, with suggested
// parameters served from the client's cache.
type node struct {
	algodclient.RestClient
	c *Client
}

func (n node) SuggestedParams(ctx context.Context) (models.TransactionParametersResponse, error) {
	return n.c.cachedSuggestedParams(ctx)
}

// Executor returns a method executor using the client's node, signer and
// application-id memory.
func (c *Client) Executor() (*abicall.Executor, error) {
	if c.signer == nil {
		return nil, errors.New("no signer: configure a kmd address or pass a signer")
	}
	return &abicall.Executor{
		Node:         node{RestClient: c.algod, c: c},
		Signer:       c.signer,
		Memory:       c.memory,
		Timeout:      c.cfg.ConfirmationTimeout(),
		PollInterval: c.cfg.PollInterval(),
		ValidRounds:  c.cfg.ValidRounds,
		Proto:        config.Consensus,
		Log:          c.log,
		Metrics:      c.metrics,
	}, nil
}

// NewInvocation starts an invocation of m by sender, targeting the last
// application created through this client if there is one.
func (c *Client) NewInvocation(m abi.Method, sender basics.Address) abicall.Invocation {
	inv := abicall.NewInvocation(m, sender)
	inv.PrefillAppID(c.memory)
	return inv
}

// RememberedAppID returns the id of the last application created through
// this client.
func (c *Client) RememberedAppID() (string, bool) {
	return c.memory.Get()
}

// ForgetAppID clears the remembered application id.
func (c *Client) ForgetAppID() error {
	return c.memory.Forget()
}

// BuildPlan builds the group of inv against the node's current parameters
// without signing or sending it.
func (c *Client) BuildPlan(ctx context.Context, inv abicall.Invocation) (*abicall.Plan, error) {
	if err := abicall.Validate(inv); err != nil {
		return nil, err
	}
	resp, err := c.cachedSuggestedParams(ctx)
	if err != nil {
		return nil, err
	}
	sp, err := abicall.MakeSuggestedParams(resp, c.cfg.ValidRounds, config.Consensus)
	if err != nil {
		return nil, err
	}
	return abicall.Build(inv, sp, config.Consensus)
}

// Invoke builds, signs, submits and confirms inv.
func (c *Client) Invoke(ctx context.Context, inv abicall.Invocation) (*abicall.Result, error) {
	exec, err := c.Executor()
	if err != nil {
		return nil, err
	}
	return exec.Execute(ctx, inv)
}
