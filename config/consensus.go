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

// ConsensusParams specifies the protocol limits that the client must respect
// when it assembles transactions. Only the limits checked before submission
// are tracked here; the node remains the authority on everything else.
type ConsensusParams struct {
	// MinTxnFee is the minimum per-transaction fee in microAlgos.
	MinTxnFee uint64

	// MaxTxnLife is how many rounds a transaction may stay valid for.
	MaxTxnLife uint64

	// MaxTxnNoteBytes caps the note field of a transaction.
	MaxTxnNoteBytes int

	// MaxTxGroupSize is the largest atomic group the ledger accepts.
	MaxTxGroupSize int

	// MaxAppArgs is the maximum number of arguments to an application call.
	MaxAppArgs int

	// MaxAppTotalArgLen is the maximum sum of argument lengths.
	MaxAppTotalArgLen int

	// Maximum number of entries in each foreign array of an application call.
	MaxAppTxnAccounts      int
	MaxAppTxnForeignApps   int
	MaxAppTxnForeignAssets int

	// MaxAppTotalTxnReferences bounds the combined size of the foreign arrays.
	MaxAppTotalTxnReferences int

	// MaxAppProgramLen is the maximum size of approval plus clear program
	// without extra pages.
	MaxAppProgramLen int

	// MaxExtraAppProgramPages is the number of additional MaxAppProgramLen
	// pages a creation may request.
	MaxExtraAppProgramPages int

	MaxGlobalSchemaEntries uint64
	MaxLocalSchemaEntries  uint64
}

// Consensus holds the limits of the current protocol version.
var Consensus = ConsensusParams{
	MinTxnFee:                1000,
	MaxTxnLife:               1000,
	MaxTxnNoteBytes:          1024,
	MaxTxGroupSize:           16,
	MaxAppArgs:               16,
	MaxAppTotalArgLen:        2048,
	MaxAppTxnAccounts:        4,
	MaxAppTxnForeignApps:     8,
	MaxAppTxnForeignAssets:   8,
	MaxAppTotalTxnReferences: 8,
	MaxAppProgramLen:         2048,
	MaxExtraAppProgramPages:  3,
	MaxGlobalSchemaEntries:   64,
	MaxLocalSchemaEntries:    16,
}
