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
	"fmt"

	"github.com/d13co/algorand.observer/config"
	"github.com/d13co/algorand.observer/crypto"
	"github.com/d13co/algorand.observer/daemon/algod/api/client/models"
	"github.com/d13co/algorand.observer/data/basics"
)

// SuggestedParams are the network dependent header fields of the
// transactions of one group.
type SuggestedParams struct {
	// Fee is per byte of the signed transaction; MinFee is the floor.
	Fee    basics.MicroAlgos
	MinFee basics.MicroAlgos

	FirstValid basics.Round
	LastValid  basics.Round

	GenesisID   string
	GenesisHash crypto.Digest
}

// MakeSuggestedParams derives group parameters from a node's suggestion.
// validRounds is the length of the validity window; zero means the
// protocol maximum.
func MakeSuggestedParams(resp models.TransactionParametersResponse, validRounds uint64, proto config.ConsensusParams) (SuggestedParams, error) {
	var sp SuggestedParams
	if len(resp.GenesisHash) != len(sp.GenesisHash) {
		return sp, fmt.Errorf("node returned a %d byte genesis hash", len(resp.GenesisHash))
	}
	copy(sp.GenesisHash[:], resp.GenesisHash)
	sp.GenesisID = resp.GenesisID
	sp.Fee = basics.MicroAlgos{Raw: resp.Fee}
	sp.MinFee = basics.MicroAlgos{Raw: resp.MinFee}
	if sp.MinFee.IsZero() {
		sp.MinFee = basics.MicroAlgos{Raw: proto.MinTxnFee}
	}

	var err error
	sp.FirstValid, sp.LastValid, err = computeValidityRounds(0, 0, basics.Round(validRounds), basics.Round(resp.LastRound), proto.MaxTxnLife)
	return sp, err
}

// computeValidityRounds fills in the first and last valid rounds the way
// goal does when they are not given explicitly.
func computeValidityRounds(firstValid, lastValid, validRounds, lastRound basics.Round, maxTxnLife uint64) (basics.Round, basics.Round, error) {
	lifeAsRounds := basics.Round(maxTxnLife)
	if validRounds != 0 && lastValid != 0 {
		return 0, 0, fmt.Errorf("cannot construct transaction: ambiguous input: lastValid = %d, validRounds = %d", lastValid, validRounds)
	}

	if firstValid == 0 {
		// the node might be a round ahead of its peers, whose pools would
		// then reject a FirstValid of lastRound+1
		if lastRound > 0 {
			firstValid = lastRound
		} else {
			firstValid = 1
		}
	}

	if validRounds != 0 {
		if validRounds > lifeAsRounds+1 {
			return 0, 0, fmt.Errorf("cannot construct transaction: txn validity period %d is greater than protocol max txn lifetime %d", validRounds-1, maxTxnLife)
		}
		lastValid = firstValid + validRounds - 1
	} else if lastValid == 0 {
		lastValid = firstValid + lifeAsRounds
	}

	if firstValid > lastValid {
		return 0, 0, fmt.Errorf("cannot construct transaction: txn would first be valid on round %d which is after last valid round %d", firstValid, lastValid)
	} else if lastValid-firstValid > lifeAsRounds {
		return 0, 0, fmt.Errorf("cannot construct transaction: txn validity period ( %d to %d ) is greater than protocol max txn lifetime %d", firstValid, lastValid, maxTxnLife)
	}

	return firstValid, lastValid, nil
}

// fee returns the fee of a transaction of the given encoded size.
func (sp SuggestedParams) fee(size int) basics.MicroAlgos {
	fee := basics.MulSaturate(sp.Fee.Raw, uint64(size))
	if fee < sp.MinFee.Raw {
		fee = sp.MinFee.Raw
	}
	return basics.MicroAlgos{Raw: fee}
}
