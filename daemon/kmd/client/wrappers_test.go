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

package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"

	"github.com/d13co/algorand.observer/crypto"
	"github.com/d13co/algorand.observer/daemon/kmd/lib/kmdapi"
	"github.com/d13co/algorand.observer/data/account"
	"github.com/d13co/algorand.observer/data/basics"
	"github.com/d13co/algorand.observer/data/transactions"
	"github.com/d13co/algorand.observer/logging"
	"github.com/d13co/algorand.observer/protocol"
	"github.com/d13co/algorand.observer/test/partitiontest"
)

const (
	testToken  = "kmd-token"
	testWallet = "unencrypted-default-wallet"
	testHandle = "handle-1"
)

type fakeKMD struct {
	key      account.Root
	released []string
	signed   int
	tamper   bool
}

func (f *fakeKMD) reply(w http.ResponseWriter, resp interface{}) {
	w.Write(protocol.EncodeJSON(resp))
}

func (f *fakeKMD) router(t *testing.T) *mux.Router {
	r := mux.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			if req.Header.Get(kmdapi.KMDTokenHeader) != testToken {
				w.WriteHeader(http.StatusUnauthorized)
				f.reply(w, kmdapi.APIV1ResponseEnvelope{Error: true, Message: "invalid API token"})
				return
			}
			next.ServeHTTP(w, req)
		})
	})
	r.HandleFunc("/v1/wallets", func(w http.ResponseWriter, req *http.Request) {
		f.reply(w, kmdapi.APIV1GETWalletsResponse{Wallets: []kmdapi.APIV1Wallet{
			{ID: "w0", Name: "other"},
			{ID: "w1", Name: testWallet},
		}})
	}).Methods(http.MethodGet)
	r.HandleFunc("/v1/wallet/init", func(w http.ResponseWriter, req *http.Request) {
		var in kmdapi.APIV1POSTWalletInitRequest
		require.NoError(t, protocol.NewJSONDecoder(req.Body).Decode(&in))
		if in.WalletID != "w1" {
			f.reply(w, kmdapi.APIV1ResponseEnvelope{Error: true, Message: "wallet not found"})
			return
		}
		f.reply(w, kmdapi.APIV1POSTWalletInitResponse{WalletHandleToken: testHandle})
	}).Methods(http.MethodPost)
	r.HandleFunc("/v1/wallet/release", func(w http.ResponseWriter, req *http.Request) {
		var in kmdapi.APIV1POSTWalletReleaseRequest
		require.NoError(t, protocol.NewJSONDecoder(req.Body).Decode(&in))
		f.released = append(f.released, in.WalletHandleToken)
		f.reply(w, kmdapi.APIV1POSTWalletReleaseResponse{})
	}).Methods(http.MethodPost)
	r.HandleFunc("/v1/transaction/sign", func(w http.ResponseWriter, req *http.Request) {
		var in kmdapi.APIV1POSTTransactionSignRequest
		require.NoError(t, protocol.NewJSONDecoder(req.Body).Decode(&in))
		var tx transactions.Transaction
		require.NoError(t, protocol.Decode(in.Transaction, &tx))
		if tx.Sender != f.key.Address() {
			f.reply(w, kmdapi.APIV1ResponseEnvelope{Error: true, Message: "key does not exist in this wallet"})
			return
		}
		if f.tamper {
			tx.Note = []byte("tampered")
		}
		stx := tx.Sign(f.key.Secrets())
		f.signed++
		f.reply(w, kmdapi.APIV1POSTTransactionSignResponse{SignedTransaction: protocol.Encode(&stx)})
	}).Methods(http.MethodPost)
	return r
}

func startFakeKMD(t *testing.T, token string) (*fakeKMD, KMDClient) {
	f := &fakeKMD{key: account.ImportRoot(crypto.Seed{42})}
	srv := httptest.NewServer(f.router(t))
	t.Cleanup(srv.Close)
	kcl, err := MakeKMDClient(srv.URL, token)
	require.NoError(t, err)
	return f, kcl
}

func payment(sender basics.Address) transactions.Transaction {
	return transactions.Transaction{
		Type: protocol.PaymentTx,
		Header: transactions.Header{
			Sender:     sender,
			Fee:        basics.MicroAlgos{Raw: 1000},
			FirstValid: 10,
			LastValid:  1010,
		},
		PaymentTxnFields: transactions.PaymentTxnFields{Receiver: sender, Amount: basics.MicroAlgos{Raw: 1}},
	}
}

func TestWalletSignerSignsGroup(t *testing.T) {
	partitiontest.PartitionTest(t)

	f, kcl := startFakeKMD(t, testToken)
	signer := MakeWalletSigner(kcl, testWallet, "", logging.Base())

	txns := []transactions.Transaction{payment(f.key.Address()), payment(f.key.Address())}
	txns[1].Note = []byte("second")
	_, err := transactions.AssignGroupID(txns)
	require.NoError(t, err)

	signed, err := signer.SignGroup(context.Background(), txns)
	require.NoError(t, err)
	require.Len(t, signed, 2)
	for i := range txns {
		require.Equal(t, txns[i].ID(), signed[i].Txn.ID())
		require.True(t, crypto.SignatureVerifier(f.key.Address()).Verify(signed[i].Txn, signed[i].Sig))
	}
	require.Equal(t, []string{testHandle}, f.released)
}

func TestWalletSignerErrors(t *testing.T) {
	partitiontest.PartitionTest(t)

	f, kcl := startFakeKMD(t, testToken)
	stranger := account.ImportRoot(crypto.Seed{7})

	_, err := MakeWalletSigner(kcl, "missing", "", logging.Base()).SignGroup(context.Background(), nil)
	require.ErrorContains(t, err, `wallet "missing" not found`)

	signer := MakeWalletSigner(kcl, testWallet, "", logging.Base())
	_, err = signer.SignGroup(context.Background(), []transactions.Transaction{payment(stranger.Address())})
	require.ErrorContains(t, err, "key does not exist")
	require.Equal(t, []string{testHandle}, f.released)

	f.tamper = true
	_, err = signer.SignGroup(context.Background(), []transactions.Transaction{payment(f.key.Address())})
	require.ErrorContains(t, err, "different transaction")
	require.Len(t, f.released, 2)
}

func TestKMDUnauthorized(t *testing.T) {
	partitiontest.PartitionTest(t)

	_, kcl := startFakeKMD(t, "wrong")
	_, err := kcl.ListWallets(context.Background())
	require.ErrorContains(t, err, "invalid API token")
}
