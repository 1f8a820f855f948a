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

package kmdapi

import (
	"errors"
)

// APIV1Response is the interface that all API V1 responses must satisfy
type APIV1Response interface {
	GetError() error
}

// APIV1ResponseEnvelope is a common envelope that all API V1 responses must embed
type APIV1ResponseEnvelope struct {
	_struct struct{} `codec:",omitempty,omitemptyarray"`
	Error   bool     `json:"error"`
	Message string   `json:"message"`
}

// GetError allows responses that embed an APIV1ResponseEnvelope to satisfy the
// APIV1Response interface
func (r APIV1ResponseEnvelope) GetError() error {
	if r.Error {
		return errors.New(r.Message)
	}
	return nil
}

// APIV1Wallet is the API's representation of a wallet
type APIV1Wallet struct {
	_struct struct{} `codec:",omitempty,omitemptyarray"`

	ID                    string   `json:"id"`
	Name                  string   `json:"name"`
	DriverName            string   `json:"driver_name"`
	DriverVersion         uint32   `json:"driver_version"`
	SupportsMnemonicUX    bool     `json:"mnemonic_ux"`
	SupportedTransactions []string `json:"supported_txs"`
}

// APIV1GETWalletsResponse is the response to `GET /v1/wallets`
type APIV1GETWalletsResponse struct {
	APIV1ResponseEnvelope
	Wallets []APIV1Wallet `json:"wallets"`
}

// APIV1POSTWalletInitResponse is the response to `POST /v1/wallet/init`
type APIV1POSTWalletInitResponse struct {
	APIV1ResponseEnvelope
	WalletHandleToken string `json:"wallet_handle_token"`
}

// APIV1POSTWalletReleaseResponse is the response to `POST /v1/wallet/release`
type APIV1POSTWalletReleaseResponse struct {
	APIV1ResponseEnvelope
}

// APIV1POSTKeyListResponse is the response to `POST /v1/key/list`
type APIV1POSTKeyListResponse struct {
	APIV1ResponseEnvelope
	Addresses []string `json:"addresses"`
}

// APIV1POSTTransactionSignResponse is the repsonse to `POST /v1/transaction/sign`
type APIV1POSTTransactionSignResponse struct {
	APIV1ResponseEnvelope

	// SignedTransaction is a msgpack encoded SignedTxn.
	SignedTransaction []byte `json:"signed_transaction"`
}
