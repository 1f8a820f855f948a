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
	"strconv"
	"strings"

	"github.com/d13co/algorand.observer/data/abi"
	"github.com/d13co/algorand.observer/data/basics"
	"github.com/d13co/algorand.observer/data/transactions"
	"github.com/d13co/algorand.observer/protocol"
	"github.com/d13co/algorand.observer/serr"
)

// txnArgParser reads the fields of one transaction argument, reporting the
// first missing or malformed field against the argument's name.
type txnArgParser struct {
	arg ExecutorArg
}

func (p txnArgParser) missing(field string) error {
	return serr.Wrap(ErrIncompleteArgument,
		fmt.Sprintf("argument %s: %s transaction needs %s", p.arg.Name, p.arg.Type, field),
		"arg", p.arg.Name, "field", field)
}

func (p txnArgParser) malformed(field, value string, err error) error {
	return serr.Wrap(abi.ErrInvalidArgument,
		fmt.Sprintf("argument %s: bad %s %q: %v", p.arg.Name, field, value, err),
		"arg", p.arg.Name, "field", field)
}

func (p txnArgParser) address(field, text string) (basics.Address, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return basics.Address{}, p.missing(field)
	}
	addr, err := basics.UnmarshalChecksumAddress(text)
	if err != nil {
		return basics.Address{}, p.malformed(field, text, err)
	}
	return addr, nil
}

func (p txnArgParser) uint(field, text string) (uint64, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, p.missing(field)
	}
	n, err := strconv.ParseUint(text, 10, 64)
	if err != nil {
		return 0, p.malformed(field, text, err)
	}
	return n, nil
}

func (p txnArgParser) optionalUint(field, text string) (uint64, error) {
	if strings.TrimSpace(text) == "" {
		return 0, nil
	}
	return p.uint(field, text)
}

func (p txnArgParser) bool(field, text string) (bool, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return false, p.missing(field)
	}
	b, err := strconv.ParseBool(text)
	if err != nil {
		return false, p.malformed(field, text, err)
	}
	return b, nil
}

// materialize builds the unsigned transaction that satisfies a transaction
// argument. The sender is always the invoker; header fields that depend on
// the network are left for Build to fill in.
func materialize(arg ExecutorArg, sender basics.Address) (transactions.Transaction, error) {
	kind, ok := abi.TransactionKind(arg.Type)
	if !ok {
		return transactions.Transaction{}, serr.Wrap(abi.ErrInvalidArgument,
			fmt.Sprintf("argument %s: %s is not a transaction type", arg.Name, arg.Type),
			"arg", arg.Name)
	}
	if kind == "" {
		// an unconstrained transaction argument is filled with a payment
		kind = protocol.PaymentTx
	}

	p := txnArgParser{arg: arg}
	v := arg.Txn
	tx := transactions.Transaction{
		Type:   kind,
		Header: transactions.Header{Sender: sender},
	}
	if v.Note != "" {
		tx.Note = []byte(v.Note)
	}

	var err error
	switch kind {
	case protocol.PaymentTx:
		if tx.Receiver, err = p.address("to", v.To); err != nil {
			return tx, err
		}
		if tx.Amount.Raw, err = p.uint("amount", v.Amount); err != nil {
			return tx, err
		}

	case protocol.AssetTransferTx:
		var asset uint64
		if asset, err = p.uint("asset", v.Asset); err != nil {
			return tx, err
		}
		tx.XferAsset = basics.AssetIndex(asset)
		if tx.AssetReceiver, err = p.address("to", v.To); err != nil {
			return tx, err
		}
		if tx.AssetAmount, err = p.uint("amount", v.Amount); err != nil {
			return tx, err
		}

	case protocol.AssetFreezeTx:
		var asset uint64
		if asset, err = p.uint("asset", v.Asset); err != nil {
			return tx, err
		}
		tx.FreezeAsset = basics.AssetIndex(asset)
		if tx.FreezeAccount, err = p.address("to", v.To); err != nil {
			return tx, err
		}
		if tx.AssetFrozen, err = p.bool("frozen", v.Frozen); err != nil {
			return tx, err
		}

	case protocol.ApplicationCallTx:
		var app uint64
		if app, err = p.uint("app", v.App); err != nil {
			return tx, err
		}
		if app == 0 {
			return tx, p.missing("app")
		}
		tx.ApplicationID = basics.AppIndex(app)

	case protocol.AssetConfigTx:
		if strings.TrimSpace(v.Total) == "" {
			// destroy
			var asset uint64
			if asset, err = p.uint("asset", v.Asset); err != nil {
				return tx, err
			}
			tx.ConfigAsset = basics.AssetIndex(asset)
			break
		}
		params := basics.AssetParams{
			UnitName:  v.UnitName,
			AssetName: v.AssetName,
			Manager:   sender,
			Reserve:   sender,
			Freeze:    sender,
			Clawback:  sender,
		}
		if params.Total, err = p.uint("total", v.Total); err != nil {
			return tx, err
		}
		var decimals uint64
		if decimals, err = p.optionalUint("decimals", v.Decimals); err != nil {
			return tx, err
		}
		if decimals > basics.MaxAssetDecimals {
			return tx, p.malformed("decimals", v.Decimals, basics.ErrInvalidDecimals)
		}
		params.Decimals = uint32(decimals)
		tx.AssetParams = params

	case protocol.KeyRegistrationTx:
		// no participation keys: the sender goes offline
	}
	return tx, nil
}
