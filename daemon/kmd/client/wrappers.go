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
	"fmt"

	"github.com/d13co/algorand.observer/daemon/kmd/lib/kmdapi"
	"github.com/d13co/algorand.observer/data/transactions"
	"github.com/d13co/algorand.observer/logging"
	"github.com/d13co/algorand.observer/protocol"
)

// ListWallets wraps kmdapi.APIV1GETWalletsRequest
func (kcl KMDClient) ListWallets(ctx context.Context) (resp kmdapi.APIV1GETWalletsResponse, err error) {
	req := kmdapi.APIV1GETWalletsRequest{}
	err = kcl.DoV1Request(ctx, req, &resp)
	return
}

// InitWallet wraps kmdapi.APIV1POSTWalletInitRequest
func (kcl KMDClient) InitWallet(ctx context.Context, walletID string, pw string) (resp kmdapi.APIV1POSTWalletInitResponse, err error) {
	req := kmdapi.APIV1POSTWalletInitRequest{
		WalletID:       walletID,
		WalletPassword: pw,
	}
	err = kcl.DoV1Request(ctx, req, &resp)
	return
}

// ReleaseWalletHandle wraps kmdapi.APIV1POSTWalletReleaseRequest
func (kcl KMDClient) ReleaseWalletHandle(ctx context.Context, walletHandle string) (resp kmdapi.APIV1POSTWalletReleaseResponse, err error) {
	req := kmdapi.APIV1POSTWalletReleaseRequest{
		WalletHandleToken: walletHandle,
	}
	err = kcl.DoV1Request(ctx, req, &resp)
	return
}

// ListKeys wraps kmdapi.APIV1POSTKeyListRequest
func (kcl KMDClient) ListKeys(ctx context.Context, walletHandle string) (resp kmdapi.APIV1POSTKeyListResponse, err error) {
	req := kmdapi.APIV1POSTKeyListRequest{
		WalletHandleToken: walletHandle,
	}
	err = kcl.DoV1Request(ctx, req, &resp)
	return
}

// SignTransaction wraps kmdapi.APIV1POSTTransactionSignRequest
func (kcl KMDClient) SignTransaction(ctx context.Context, walletHandle, pw string, pk []byte, tx transactions.Transaction) (resp kmdapi.APIV1POSTTransactionSignResponse, err error) {
	req := kmdapi.APIV1POSTTransactionSignRequest{
		WalletHandleToken: walletHandle,
		Transaction:       protocol.Encode(&tx),
		PublicKey:         pk,
		WalletPassword:    pw,
	}
	err = kcl.DoV1Request(ctx, req, &resp)
	return
}

// WalletSigner signs transaction groups with the keys of one kmd wallet.
// Each group is signed under a fresh wallet handle that is released
// afterwards.
type WalletSigner struct {
	kmd        KMDClient
	walletName string
	password   string
	log        logging.Logger
}

// MakeWalletSigner returns a signer for the named wallet.
func MakeWalletSigner(kmd KMDClient, walletName, password string, log logging.Logger) *WalletSigner {
	return &WalletSigner{kmd: kmd, walletName: walletName, password: password, log: log}
}

func (s *WalletSigner) walletID(ctx context.Context) (string, error) {
	resp, err := s.kmd.ListWallets(ctx)
	if err != nil {
		return "", err
	}
	for _, w := range resp.Wallets {
		if w.Name == s.walletName {
			return w.ID, nil
		}
	}
	return "", fmt.Errorf("wallet %q not found", s.walletName)
}

// SignGroup signs every transaction of txns, in order, with the wallet.
// The returned transactions are checked to be the ones submitted for
// signing.
func (s *WalletSigner) SignGroup(ctx context.Context, txns []transactions.Transaction) ([]transactions.SignedTxn, error) {
	id, err := s.walletID(ctx)
	if err != nil {
		return nil, err
	}
	wh, err := s.kmd.InitWallet(ctx, id, s.password)
	if err != nil {
		return nil, err
	}
	handle := wh.WalletHandleToken
	defer func() {
		_, err := s.kmd.ReleaseWalletHandle(context.WithoutCancel(ctx), handle)
		if err != nil {
			s.log.Warnf("releasing handle of wallet %s: %v", s.walletName, err)
		}
	}()

	out := make([]transactions.SignedTxn, len(txns))
	for i, tx := range txns {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		resp, err := s.kmd.SignTransaction(ctx, handle, s.password, nil, tx)
		if err != nil {
			return nil, fmt.Errorf("signing transaction %d: %w", i, err)
		}
		var stx transactions.SignedTxn
		if err := protocol.Decode(resp.SignedTransaction, &stx); err != nil {
			return nil, fmt.Errorf("decoding signed transaction %d: %w", i, err)
		}
		if stx.Txn.ID() != tx.ID() {
			return nil, fmt.Errorf("kmd returned a different transaction at index %d", i)
		}
		out[i] = stx
	}
	return out, nil
}
