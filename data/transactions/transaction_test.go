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

	"github.com/d13co/algorand.observer/config"
	"github.com/d13co/algorand.observer/crypto"
	"github.com/d13co/algorand.observer/data/basics"
	"github.com/d13co/algorand.observer/protocol"
	"github.com/d13co/algorand.observer/test/partitiontest"
)

func testAddr(name string) basics.Address {
	return basics.Address(crypto.Hash([]byte(name)))
}

func testPayment(amount uint64) Transaction {
	return Transaction{
		Type: protocol.PaymentTx,
		Header: Header{
			Sender:     testAddr("sender"),
			Fee:        basics.MicroAlgos{Raw: 1000},
			FirstValid: 100,
			LastValid:  1100,
			GenesisID:  "sandnet-v1",
		},
		PaymentTxnFields: PaymentTxnFields{
			Receiver: testAddr("receiver"),
			Amount:   basics.MicroAlgos{Raw: amount},
		},
	}
}

func TestTransactionIDDeterministic(t *testing.T) {
	partitiontest.PartitionTest(t)

	a := testPayment(5)
	b := testPayment(5)
	require.Equal(t, a.ID(), b.ID())
	require.NotEqual(t, a.ID(), testPayment(6).ID())

	var parsed Txid
	require.NoError(t, parsed.FromString(a.ID().String()))
	require.Equal(t, a.ID(), parsed)
	require.Len(t, a.ID().String(), 52)
}

func TestTransactionEncodingRoundTrip(t *testing.T) {
	partitiontest.PartitionTest(t)

	tx := testPayment(5)
	tx.Note = []byte("hello")
	enc := protocol.Encode(&tx)

	var back Transaction
	require.NoError(t, protocol.Decode(enc, &back))
	require.Equal(t, tx, back)
	require.Equal(t, tx.ID(), back.ID())
}

func TestSignAndVerify(t *testing.T) {
	partitiontest.PartitionTest(t)

	var seed crypto.Seed
	copy(seed[:], "observer-test-seed-0123456789abc")
	secrets := crypto.GenerateSignatureSecrets(seed)

	tx := testPayment(1)
	tx.Sender = basics.Address(secrets.SignatureVerifier)
	stx := tx.Sign(secrets)
	require.True(t, stx.AuthAddr.IsZero())
	require.True(t, secrets.SignatureVerifier.Verify(stx.Txn, stx.Sig))
	require.Equal(t, tx.ID(), stx.ID())

	rekeyed := testPayment(1)
	stx = rekeyed.Sign(secrets)
	require.Equal(t, basics.Address(secrets.SignatureVerifier), stx.AuthAddr)
}

func TestWellFormed(t *testing.T) {
	partitiontest.PartitionTest(t)

	proto := config.Consensus
	require.NoError(t, testPayment(1).WellFormed(proto))

	tests := []struct {
		name   string
		mutate func(*Transaction)
	}{
		{"zero sender", func(tx *Transaction) { tx.Sender = basics.Address{} }},
		{"low fee", func(tx *Transaction) { tx.Fee = basics.MicroAlgos{Raw: 1} }},
		{"bad range", func(tx *Transaction) { tx.LastValid = tx.FirstValid - 1 }},
		{"big note", func(tx *Transaction) { tx.Note = make([]byte, proto.MaxTxnNoteBytes+1) }},
		{"unknown type", func(tx *Transaction) { tx.Type = "nope" }},
		{"close to self", func(tx *Transaction) { tx.CloseRemainderTo = tx.Sender }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tx := testPayment(1)
			tc.mutate(&tx)
			require.Error(t, tx.WellFormed(proto))
		})
	}
}

func TestApplicationCallWellFormed(t *testing.T) {
	partitiontest.PartitionTest(t)

	proto := config.Consensus
	call := Transaction{
		Type:   protocol.ApplicationCallTx,
		Header: testPayment(0).Header,
		ApplicationCallTxnFields: ApplicationCallTxnFields{
			ApplicationID:   12,
			ApplicationArgs: [][]byte{{1, 2, 3, 4}},
		},
	}
	require.NoError(t, call.WellFormed(proto))

	tooMany := call
	tooMany.Accounts = make([]basics.Address, proto.MaxAppTxnAccounts+1)
	require.ErrorContains(t, tooMany.WellFormed(proto), "tx.Accounts too long")

	refs := call
	refs.Accounts = make([]basics.Address, 4)
	refs.ForeignAssets = make([]basics.AssetIndex, 5)
	require.ErrorContains(t, refs.WellFormed(proto), "MaxAppTotalTxnReferences")

	programs := call
	programs.ApprovalProgram = []byte{0x06, 0x81, 0x01}
	require.ErrorContains(t, programs.WellFormed(proto), "programs may only be specified")

	create := call
	create.ApplicationID = 0
	require.ErrorContains(t, create.WellFormed(proto), "requires both approval and clear")
	create.ApprovalProgram = []byte{0x06, 0x81, 0x01}
	create.ClearStateProgram = []byte{0x06, 0x81, 0x01}
	create.GlobalStateSchema = basics.StateSchema{NumUint: 65}
	require.ErrorContains(t, create.WellFormed(proto), "GlobalStateSchema")
	create.GlobalStateSchema = basics.StateSchema{NumUint: 1}
	require.NoError(t, create.WellFormed(proto))
	require.True(t, create.IsCreation())
}

func TestOnCompletionNames(t *testing.T) {
	partitiontest.PartitionTest(t)

	for oc := NoOpOC; oc <= DeleteApplicationOC; oc++ {
		parsed, err := OnCompletionFromString(oc.String())
		require.NoError(t, err)
		require.Equal(t, oc, parsed)
	}
	oc, err := OnCompletionFromString("optin")
	require.NoError(t, err)
	require.Equal(t, OptInOC, oc)

	_, err = OnCompletionFromString("explode")
	require.Error(t, err)
	require.Equal(t, "OnCompletion(9)", OnCompletion(9).String())
}
