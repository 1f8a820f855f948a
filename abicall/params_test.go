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
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/d13co/algorand.observer/config"
	"github.com/d13co/algorand.observer/crypto"
	"github.com/d13co/algorand.observer/daemon/algod/api/client/models"
	"github.com/d13co/algorand.observer/data/basics"
	"github.com/d13co/algorand.observer/test/partitiontest"
)

func TestValidRounds(t *testing.T) {
	partitiontest.PartitionTest(t)
	t.Parallel()

	const maxTxnLife = 1000
	const lastRound = basics.Round(1)

	tests := []struct {
		first, last, valid basics.Round
		wantFirst          basics.Round
		wantLast           basics.Round
		err                string
	}{
		{0, 0, 0, lastRound, lastRound + maxTxnLife, ""},
		{0, 0, maxTxnLife + 1, lastRound, lastRound + maxTxnLife, ""},
		{0, 0, maxTxnLife + 2, 0, 0, "cannot construct transaction: txn validity period 1001 is greater than protocol max txn lifetime 1000"},
		{0, 1, 2, 0, 0, "cannot construct transaction: ambiguous input: lastValid = 1, validRounds = 2"},
		{2, 1, 0, 0, 0, "cannot construct transaction: txn would first be valid on round 2 which is after last valid round 1"},
		{1, maxTxnLife + 2, 0, 0, 0, "cannot construct transaction: txn validity period ( 1 to 1002 ) is greater than protocol max txn lifetime 1000"},
		{1, maxTxnLife + 1, 0, 1, maxTxnLife + 1, ""},
		{0, lastRound + 1, 0, lastRound, lastRound + 1, ""},
		{0, 0, 1, lastRound, lastRound, ""},
		{0, 0, maxTxnLife, lastRound, lastRound + maxTxnLife - 1, ""},
		{1, 0, 1, 1, 1, ""},
		{1, 1, 0, 1, 1, ""},
		{100, 0, maxTxnLife, 100, 100 + maxTxnLife - 1, ""},
	}
	for _, test := range tests {
		fv, lv, err := computeValidityRounds(test.first, test.last, test.valid, lastRound, maxTxnLife)
		if test.err != "" {
			require.EqualError(t, err, test.err)
			continue
		}
		require.NoError(t, err)
		require.Equal(t, test.wantFirst, fv, "first=%d last=%d valid=%d", test.first, test.last, test.valid)
		require.Equal(t, test.wantLast, lv, "first=%d last=%d valid=%d", test.first, test.last, test.valid)
	}

	// a node at round zero
	fv, lv, err := computeValidityRounds(0, 0, 10, 0, maxTxnLife)
	require.NoError(t, err)
	require.Equal(t, basics.Round(1), fv)
	require.Equal(t, basics.Round(10), lv)
}

func TestMakeSuggestedParams(t *testing.T) {
	partitiontest.PartitionTest(t)

	gh := crypto.Digest{3}
	resp := models.TransactionParametersResponse{
		Fee:         2,
		GenesisHash: gh[:],
		GenesisID:   "mainnet-v1.0",
		LastRound:   5000,
	}
	sp, err := MakeSuggestedParams(resp, 0, config.Consensus)
	require.NoError(t, err)
	require.Equal(t, gh, sp.GenesisHash)
	require.Equal(t, "mainnet-v1.0", sp.GenesisID)
	require.Equal(t, basics.Round(5000), sp.FirstValid)
	require.Equal(t, basics.Round(6000), sp.LastValid)
	require.Equal(t, config.Consensus.MinTxnFee, sp.MinFee.Raw)

	require.Equal(t, uint64(1000), sp.fee(300).Raw)
	require.Equal(t, uint64(1200), sp.fee(600).Raw)

	resp.GenesisHash = gh[:8]
	_, err = MakeSuggestedParams(resp, 0, config.Consensus)
	require.ErrorContains(t, err, "8 byte genesis hash")
}
