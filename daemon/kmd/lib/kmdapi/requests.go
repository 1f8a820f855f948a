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

// Package kmdapi holds the request and response bodies of the kmd v1 REST
// endpoints used to sign transaction groups.
package kmdapi

// KMDTokenHeader is the HTTP header used for the pre-shared auth token
const KMDTokenHeader = "X-KMD-API-Token"

// APIV1Request is the interface that all API V1 requests must satisfy
type APIV1Request interface{}

// APIV1GETWalletsRequest is the request for `GET /v1/wallets`
type APIV1GETWalletsRequest struct {
	_struct struct{} `codec:",omitempty,omitemptyarray"`
}

// APIV1POSTWalletInitRequest is the request for `POST /v1/wallet/init`
type APIV1POSTWalletInitRequest struct {
	_struct struct{} `codec:",omitempty,omitemptyarray"`

	WalletID       string `json:"wallet_id"`
	WalletPassword string `json:"wallet_password"`
}

// APIV1POSTWalletReleaseRequest is the request for `POST /v1/wallet/release`
type APIV1POSTWalletReleaseRequest struct {
	_struct struct{} `codec:",omitempty,omitemptyarray"`

	WalletHandleToken string `json:"wallet_handle_token"`
}

// APIV1POSTKeyListRequest is the request for `POST /v1/key/list`
type APIV1POSTKeyListRequest struct {
	_struct struct{} `codec:",omitempty,omitemptyarray"`

	WalletHandleToken string `json:"wallet_handle_token"`
}

// APIV1POSTTransactionSignRequest is the request for `POST /v1/transaction/sign`
type APIV1POSTTransactionSignRequest struct {
	_struct struct{} `codec:",omitempty,omitemptyarray"`

	WalletHandleToken string `json:"wallet_handle_token"`

	// Transaction is a msgpack encoded Transaction, not a SignedTxn.
	Transaction []byte `json:"transaction"`

	// PublicKey optionally names the signing key when it differs from the
	// transaction's sender (rekeyed accounts).
	PublicKey      []byte `json:"public_key"`
	WalletPassword string `json:"wallet_password"`
}
