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
	"github.com/d13co/algorand.observer/crypto"
	"github.com/d13co/algorand.observer/data/basics"
	"github.com/d13co/algorand.observer/protocol"
)

// PendingRecord is a transaction as reported by a node's pending-transaction
// endpoint. ConfirmedRound is zero while the transaction is still in the pool.
type PendingRecord struct {
	_struct struct{} `codec:",omitempty,omitemptyarray"`

	Txn              SignedTxn         `codec:"txn"`
	PoolError        string            `codec:"pool-error"`
	ConfirmedRound   basics.Round      `codec:"confirmed-round"`
	ApplicationIndex basics.AppIndex   `codec:"application-index"`
	AssetIndex       basics.AssetIndex `codec:"asset-index"`
	ClosingAmount    uint64            `codec:"closing-amount"`
	Logs             [][]byte          `codec:"logs"`
}

// Confirmed reports whether the record has been included in a round.
func (r PendingRecord) Confirmed() bool {
	return r.ConfirmedRound != 0
}

// View is a normalized, type-independent projection of a transaction record.
type View struct {
	ID     Txid
	Type   protocol.TxType
	Sender basics.Address

	// Receiver is the payment or asset receiver, zero for other types.
	Receiver basics.Address

	// Amount is in microAlgos for payments and in base units of the asset
	// for asset transfers.
	Amount uint64
	Fee    basics.MicroAlgos

	Application basics.AppIndex
	Asset       basics.AssetIndex

	CreatedAppID   basics.AppIndex
	CreatedAssetID basics.AssetIndex

	OnCompletion   OnCompletion
	ConfirmedRound basics.Round
	Group          crypto.Digest
	Note           []byte
	Logs           [][]byte
}

// MakeView projects a node record onto a View.
func MakeView(r PendingRecord) View {
	tx := r.Txn.Txn
	v := View{
		ID:             tx.ID(),
		Type:           tx.Type,
		Sender:         tx.Sender,
		Receiver:       tx.GetReceiverAddress(),
		Fee:            tx.Fee,
		ConfirmedRound: r.ConfirmedRound,
		Group:          tx.Group,
		Note:           tx.Note,
		CreatedAppID:   r.ApplicationIndex,
		CreatedAssetID: r.AssetIndex,
		Logs:           r.Logs,
	}

	switch tx.Type {
	case protocol.PaymentTx:
		v.Amount = tx.Amount.Raw
	case protocol.AssetTransferTx:
		v.Amount = tx.AssetAmount
		v.Asset = tx.XferAsset
	case protocol.AssetConfigTx:
		v.Asset = tx.ConfigAsset
	case protocol.AssetFreezeTx:
		v.Asset = tx.FreezeAsset
		v.Receiver = tx.FreezeAccount
	case protocol.ApplicationCallTx:
		v.Application = tx.ApplicationID
		v.OnCompletion = tx.OnCompletion
	}
	return v
}

// IsAppCreation reports whether the record is an application call that
// created an application.
func (v View) IsAppCreation() bool {
	return v.Type == protocol.ApplicationCallTx && v.Application == 0
}

// AppID returns the application the transaction acted on. For a creation
// call this is the id the ledger assigned, zero until confirmed.
func (v View) AppID() basics.AppIndex {
	if v.IsAppCreation() {
		return v.CreatedAppID
	}
	return v.Application
}

// AssetID returns the asset the transaction acted on, or the created asset
// for an asset creation.
func (v View) AssetID() basics.AssetIndex {
	if v.Type == protocol.AssetConfigTx && v.Asset == 0 {
		return v.CreatedAssetID
	}
	return v.Asset
}
