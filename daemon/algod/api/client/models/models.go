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

// Package models defines models used by an algod rest client
//
// These mirror the subset of the algod v2 REST responses the method
// invocation client reads. We could use a swagger-generated client/models
// instead. However, the swagger generated client comes with a ton of
// dependencies and overhead, so we are sticking with a hard-coded internal
// approach.
package models

// ErrorResponse is returned by algod on every non-2xx status.
type ErrorResponse struct {
	Message string          `json:"message"`
	Data    *map[string]any `json:"data,omitempty"`
}

// NodeStatusResponse describes the node's sync state.
type NodeStatusResponse struct {
	// LastRound indicates the last round seen
	LastRound uint64 `json:"last-round"`

	// LastVersion indicates the last consensus version supported
	LastVersion string `json:"last-version"`

	// NextVersion of consensus protocol to use
	NextVersion string `json:"next-version"`

	// TimeSinceLastRound in nanoseconds
	TimeSinceLastRound uint64 `json:"time-since-last-round"`

	// CatchupTime in nanoseconds
	CatchupTime uint64 `json:"catchup-time"`

	StoppedAtUnsupportedRound bool `json:"stopped-at-unsupported-round"`
}

// TransactionParametersResponse contains the parameters that help a client
// construct a new transaction.
type TransactionParametersResponse struct {
	// ConsensusVersion indicates the consensus protocol version as of LastRound.
	ConsensusVersion string `json:"consensus-version"`

	// Fee is the suggested transaction fee in units of micro-Algos per byte.
	// Fee may fall to zero but transactions must still have a fee of at least
	// MinFee for the current network protocol.
	Fee uint64 `json:"fee"`

	// GenesisHash is the hash of the genesis block, base64 encoded.
	GenesisHash []byte `json:"genesis-hash"`

	// GenesisID is an ID listed in the genesis block.
	GenesisID string `json:"genesis-id"`

	// LastRound indicates the last round seen
	LastRound uint64 `json:"last-round"`

	// MinFee is the minimum transaction fee (not per byte) required for the
	// txn to validate for the current network protocol.
	MinFee uint64 `json:"min-fee"`
}

// PostTransactionsResponse is returned when a group is accepted into the pool.
type PostTransactionsResponse struct {
	// TxID is the id of the first transaction of the group.
	TxID string `json:"txId"`
}

// CompileResponse is the result of compiling TEAL source.
type CompileResponse struct {
	// Hash is the base32 SHA512_256 of the program bytes (Address style).
	Hash string `json:"hash"`

	// Result is the base64 encoded program bytes.
	Result string `json:"result"`

	// Sourcemap is the JSON source map, when requested.
	Sourcemap *map[string]interface{} `json:"sourcemap,omitempty"`
}

// DisassembleResponse is the result of disassembling program bytes.
type DisassembleResponse struct {
	// Result is the disassembled TEAL source.
	Result string `json:"result"`
}
