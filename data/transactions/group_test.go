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

package transactions

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/d13co/algorand.observer/crypto"
	"github.com/d13co/algorand.observer/serr"
	"github.com/d13co/algorand.observer/test/partitiontest"
)

func TestAssignGroupID(t *testing.T) {
	partitiontest.PartitionTest(t)

	txns := []Transaction{testPayment(1), testPayment(2), testPayment(3)}
	gid, err := AssignGroupID(txns)
	require.NoError(t, err)
	require.False(t, gid.IsZero())
	for _, tx := range txns {
		require.Equal(t, gid, tx.Group)
	}
	require.NoError(t, VerifyGroup(txns))

	// recomputing with group ids already set gives the same id
	again, err := ComputeGroupID(txns)
	require.NoError(t, err)
	require.Equal(t, gid, again)

	// order matters
	swapped := []Transaction{txns[1], txns[0], txns[2]}
	other, err := ComputeGroupID(swapped)
	require.NoError(t, err)
	require.NotEqual(t, gid, other)
	require.Error(t, VerifyGroup(swapped))
}

func TestGroupIDMatchesManualHash(t *testing.T) {
	partitiontest.PartitionTest(t)

	a, b := testPayment(1), testPayment(2)
	expected := crypto.HashObj(TxGroup{TxGroupHashes: []crypto.Digest{crypto.Digest(a.ID()), crypto.Digest(b.ID())}})

	gid, err := ComputeGroupID([]Transaction{a, b})
	require.NoError(t, err)
	require.Equal(t, expected, gid)
}

func TestGroupTooLarge(t *testing.T) {
	partitiontest.PartitionTest(t)

	txns := make([]Transaction, MaxTxGroupSize)
	for i := range txns {
		txns[i] = testPayment(uint64(i))
	}
	_, err := AssignGroupID(txns)
	require.NoError(t, err)

	txns = append(txns, testPayment(99))
	_, err = AssignGroupID(txns)
	require.ErrorIs(t, err, ErrGroupTooLarge)
	size, ok := serr.Attr(err, "size")
	require.True(t, ok)
	require.Equal(t, MaxTxGroupSize+1, size)

	_, err = ComputeGroupID(nil)
	require.Error(t, err)
}
