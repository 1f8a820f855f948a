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
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"

	"github.com/d13co/algorand.observer/crypto"
	"github.com/d13co/algorand.observer/data/basics"
	"github.com/d13co/algorand.observer/data/transactions"
	"github.com/d13co/algorand.observer/protocol"
	"github.com/d13co/algorand.observer/test/partitiontest"
)

const testToken = "test-token"

type fakeNode struct {
	submitted []transactions.SignedTxn
	records   map[string]transactions.PendingRecord
}

func (f *fakeNode) router(t *testing.T) *mux.Router {
	r := mux.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			if req.URL.Path != healthCheckEndpoint && req.Header.Get(authHeader) != testToken {
				w.WriteHeader(http.StatusUnauthorized)
				fmt.Fprint(w, `{"message":"Invalid API Token"}`)
				return
			}
			next.ServeHTTP(w, req)
		})
	})
	r.HandleFunc("/health", func(w http.ResponseWriter, req *http.Request) {}).Methods(http.MethodGet)
	r.HandleFunc("/v2/status", func(w http.ResponseWriter, req *http.Request) {
		fmt.Fprint(w, `{"last-round": 1234, "last-version": "future", "catchup-time": 0}`)
	}).Methods(http.MethodGet)
	r.HandleFunc("/v2/transactions/params", func(w http.ResponseWriter, req *http.Request) {
		fmt.Fprintf(w, `{"consensus-version":"future","fee":0,"genesis-hash":"%s","genesis-id":"testnet-v1.0","last-round":77,"min-fee":1000}`,
			base64.StdEncoding.EncodeToString(bytes.Repeat([]byte{1}, 32)))
	}).Methods(http.MethodGet)
	r.HandleFunc("/v2/transactions", func(w http.ResponseWriter, req *http.Request) {
		require.Equal(t, "application/x-binary", req.Header.Get("Content-Type"))
		dec := protocol.NewDecoder(req.Body)
		f.submitted = nil
		for {
			var stx transactions.SignedTxn
			err := dec.Decode(&stx)
			if err == io.EOF {
				break
			}
			if err != nil {
				w.WriteHeader(http.StatusBadRequest)
				fmt.Fprintf(w, `{"message":%q}`, err.Error())
				return
			}
			f.submitted = append(f.submitted, stx)
		}
		fmt.Fprintf(w, `{"txId":"%s"}`, f.submitted[0].ID())
	}).Methods(http.MethodPost)
	r.HandleFunc("/v2/transactions/pending/{txid}", func(w http.ResponseWriter, req *http.Request) {
		require.Equal(t, "msgpack", req.URL.Query().Get("format"))
		rec, ok := f.records[mux.Vars(req)["txid"]]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			fmt.Fprint(w, `{"message":"could not find the transaction in the transaction pool or in the last 1000 confirmed rounds"}`)
			return
		}
		w.Write(protocol.Encode(&rec))
	}).Methods(http.MethodGet)
	r.HandleFunc("/v2/teal/compile", func(w http.ResponseWriter, req *http.Request) {
		src, _ := io.ReadAll(req.Body)
		if !bytes.HasPrefix(src, []byte("#pragma version")) {
			w.WriteHeader(http.StatusBadRequest)
			fmt.Fprint(w, `{"message":"1: unknown opcode: bogus"}`)
			return
		}
		prog := []byte{0x08, 0x81, 0x01}
		fmt.Fprintf(w, `{"hash":"%s","result":"%s"}`,
			basics.Address(crypto.Hash(prog)).String(), base64.StdEncoding.EncodeToString(prog))
	}).Methods(http.MethodPost)
	r.HandleFunc("/v2/teal/disassemble", func(w http.ResponseWriter, req *http.Request) {
		prog, _ := io.ReadAll(req.Body)
		if len(prog) == 0 {
			w.WriteHeader(http.StatusBadRequest)
			fmt.Fprint(w, `{"message":"invalid program"}`)
			return
		}
		fmt.Fprint(w, `{"result":"#pragma version 8\npushint 1\n"}`)
	}).Methods(http.MethodPost)
	return r
}

func startFakeNode(t *testing.T) (*fakeNode, RestClient) {
	node := &fakeNode{records: make(map[string]transactions.PendingRecord)}
	srv := httptest.NewServer(node.router(t))
	t.Cleanup(srv.Close)
	u, err := url.Parse(srv.URL)
	require.NoError(t, err)
	return node, MakeRestClient(*u, testToken)
}

func TestStatusAndParams(t *testing.T) {
	partitiontest.PartitionTest(t)

	_, client := startFakeNode(t)
	ctx := context.Background()

	require.NoError(t, client.HealthCheck(ctx))

	status, err := client.Status(ctx)
	require.NoError(t, err)
	require.Equal(t, uint64(1234), status.LastRound)
	require.Equal(t, "future", status.LastVersion)

	params, err := client.SuggestedParams(ctx)
	require.NoError(t, err)
	require.Equal(t, uint64(77), params.LastRound)
	require.Equal(t, uint64(1000), params.MinFee)
	require.Equal(t, "testnet-v1.0", params.GenesisID)
	require.Equal(t, bytes.Repeat([]byte{1}, 32), params.GenesisHash)
}

func TestUnauthorized(t *testing.T) {
	partitiontest.PartitionTest(t)

	_, client := startFakeNode(t)
	client.apiToken = "wrong"
	_, err := client.Status(context.Background())
	require.Error(t, err)
	var unauthorized unauthorizedRequestError
	require.ErrorAs(t, err, &unauthorized)
	require.Equal(t, "wrong", unauthorized.apiToken)
	require.Contains(t, err.Error(), "Invalid API Token")
}

func TestSendGroupAndPending(t *testing.T) {
	partitiontest.PartitionTest(t)

	node, client := startFakeNode(t)
	ctx := context.Background()

	sender := basics.Address(crypto.Hash([]byte("sender")))
	txns := []transactions.Transaction{
		{
			Type:             protocol.PaymentTx,
			Header:           transactions.Header{Sender: sender, Fee: basics.MicroAlgos{Raw: 1000}, FirstValid: 1, LastValid: 100},
			PaymentTxnFields: transactions.PaymentTxnFields{Receiver: sender, Amount: basics.MicroAlgos{Raw: 5}},
		},
		{
			Type:                     protocol.ApplicationCallTx,
			Header:                   transactions.Header{Sender: sender, Fee: basics.MicroAlgos{Raw: 1000}, FirstValid: 1, LastValid: 100},
			ApplicationCallTxnFields: transactions.ApplicationCallTxnFields{ApplicationID: 12},
		},
	}
	_, err := transactions.AssignGroupID(txns)
	require.NoError(t, err)
	group := []transactions.SignedTxn{{Txn: txns[0]}, {Txn: txns[1]}}

	txid, err := client.SendRawTransactionGroup(ctx, group)
	require.NoError(t, err)
	require.Equal(t, txns[0].ID().String(), txid)
	require.Equal(t, group, node.submitted)

	callID := txns[1].ID().String()
	_, err = client.PendingTransactionInformation(ctx, callID)
	var httpErr HTTPError
	require.ErrorAs(t, err, &httpErr)
	require.Equal(t, http.StatusNotFound, httpErr.StatusCode)

	node.records[callID] = transactions.PendingRecord{
		Txn:            group[1],
		ConfirmedRound: 9,
		Logs:           [][]byte{{0x15, 0x1f, 0x7c, 0x75, 1}},
	}
	rec, err := client.PendingTransactionInformation(ctx, "tx-"+callID)
	require.NoError(t, err)
	require.True(t, rec.Confirmed())
	require.Equal(t, basics.Round(9), rec.ConfirmedRound)
	require.Equal(t, txns[1], rec.Txn.Txn)
	require.Equal(t, node.records[callID].Logs, rec.Logs)
}

func TestCompileAndDisassemble(t *testing.T) {
	partitiontest.PartitionTest(t)

	_, client := startFakeNode(t)
	ctx := context.Background()

	prog, hash, err := client.Compile(ctx, []byte("#pragma version 8\nint 1\n"))
	require.NoError(t, err)
	require.Equal(t, []byte{0x08, 0x81, 0x01}, prog)
	require.Equal(t, crypto.Hash(prog), hash)

	_, _, err = client.Compile(ctx, []byte("bogus"))
	require.ErrorIs(t, err, ErrCompilationError)
	require.Contains(t, err.Error(), "unknown opcode")

	src, err := client.Disassemble(ctx, prog)
	require.NoError(t, err)
	require.Contains(t, src, "pushint 1")

	_, err = client.Disassemble(ctx, nil)
	require.ErrorIs(t, err, ErrCompilationError)
}

func TestFilterASCII(t *testing.T) {
	partitiontest.PartitionTest(t)

	require.Equal(t, "abc", filterASCII("a\nb\x00c"))
	require.Equal(t, "ok: 1", filterASCII("ok: 1"))
}
