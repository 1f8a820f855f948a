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
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/d13co/algorand.observer/config"
	"github.com/d13co/algorand.observer/crypto"
	"github.com/d13co/algorand.observer/data/abi"
	"github.com/d13co/algorand.observer/data/basics"
	"github.com/d13co/algorand.observer/data/transactions"
	"github.com/d13co/algorand.observer/protocol"
	"github.com/d13co/algorand.observer/serr"
)

var (
	// ErrIncompleteArgument is returned when a transaction argument lacks a
	// field its transaction kind requires.
	ErrIncompleteArgument = errors.New("incomplete argument")

	// ErrInvalidSchemaValue is returned when a state schema count of a
	// creation call is not a non-negative decimal integer within limits.
	ErrInvalidSchemaValue = errors.New("invalid schema value")

	// ErrMissingApplicationID is returned when a call that does not create
	// an application has no positive application id.
	ErrMissingApplicationID = errors.New("missing application id")
)

// Invocation is everything needed to build one method call.
type Invocation struct {
	Method abi.Method
	Args   []ExecutorArg

	// AppID is the decimal id of the called application. It is ignored
	// when Creation is set.
	AppID    string
	Creation *CreationParams

	Sender       basics.Address
	OnCompletion transactions.OnCompletion
}

// NewInvocation returns an invocation of m with one empty argument per
// formal parameter.
func NewInvocation(m abi.Method, sender basics.Address) Invocation {
	return Invocation{Method: m, Args: NewExecutorArgs(m), Sender: sender}
}

// PrefillAppID sets the target application to the one remembered by mem,
// unless a target is already set.
func (inv *Invocation) PrefillAppID(mem *AppIDMemory) {
	if inv.AppID != "" || mem == nil {
		return
	}
	if id, ok := mem.Get(); ok {
		inv.AppID = id
	}
}

// IsCreation reports whether the invocation creates an application.
func (inv Invocation) IsCreation() bool {
	return inv.Creation != nil
}

// Plan is a built transaction group. It is not modified after Build returns;
// consumers that need to change a transaction must copy Txns first.
type Plan struct {
	Txns    []transactions.Transaction
	GroupID crypto.Digest

	// CallIndex is the position of the application call, always the last.
	CallIndex int

	// DataArgs are the raw values of the data arguments in declared order
	// and Slots records how every formal parameter is passed.
	DataArgs []string
	Slots    []Slot

	// AppArgs are the encoded ApplicationArgs of the call.
	AppArgs [][]byte
}

// Call returns the application call of the group.
func (p *Plan) Call() transactions.Transaction {
	return p.Txns[p.CallIndex]
}

// CallID returns the id of the application call, which identifies the
// invocation once submitted.
func (p *Plan) CallID() transactions.Txid {
	return p.Txns[p.CallIndex].ID()
}

// Group returns a copy of the group's transactions.
func (p *Plan) Group() []transactions.Transaction {
	return append([]transactions.Transaction(nil), p.Txns...)
}

// draft is a group whose structure is complete but whose network dependent
// header fields are not yet set.
type draft struct {
	txns    []transactions.Transaction
	slots   []Slot
	data    []string
	appArgs [][]byte
}

// Validate performs every check of Build that does not depend on network
// parameters. It never contacts a node.
func Validate(inv Invocation) error {
	_, err := prepare(inv)
	return err
}

// Build turns an invocation into a transaction group: one transaction per
// transaction argument, in declared order, followed by the application call.
// Every member is stamped with the group's content-derived id.
func Build(inv Invocation, sp SuggestedParams, proto config.ConsensusParams) (*Plan, error) {
	d, err := prepare(inv)
	if err != nil {
		return nil, err
	}
	return d.finalize(inv.Sender, sp, proto)
}

func prepare(inv Invocation) (*draft, error) {
	m := inv.Method
	if len(inv.Args) != len(m.Args) {
		return nil, serr.Wrap(abi.ErrInvalidArgument,
			fmt.Sprintf("%s takes %d arguments, got %d", m.Name, len(m.Args), len(inv.Args)),
			"method", m.Name)
	}

	d := &draft{slots: make([]Slot, 0, len(inv.Args))}
	for i, arg := range inv.Args {
		if arg.Type != m.Args[i].Type {
			return nil, serr.Wrap(abi.ErrInvalidArgument,
				fmt.Sprintf("argument %d has type %s, method declares %s", i, arg.Type, m.Args[i].Type),
				"arg", m.Args[i].Name)
		}
		if !arg.IsTransaction() {
			d.slots = append(d.slots, Slot{Kind: DataSlot, Arg: arg.Name, Value: arg.Value})
			d.data = append(d.data, arg.Value)
			continue
		}
		tx, err := materialize(arg, inv.Sender)
		if err != nil {
			return nil, err
		}
		d.slots = append(d.slots, Slot{Kind: TxnSlot, Arg: arg.Name, GroupIndex: len(d.txns)})
		d.txns = append(d.txns, tx)
	}

	call := transactions.Transaction{
		Type:   protocol.ApplicationCallTx,
		Header: transactions.Header{Sender: inv.Sender},
	}
	call.OnCompletion = inv.OnCompletion
	if inv.Creation != nil {
		if err := applyCreation(&call, inv.Creation); err != nil {
			return nil, err
		}
	} else {
		app, err := parseAppID(inv.AppID)
		if err != nil {
			return nil, err
		}
		call.ApplicationID = app
	}

	refs := &abi.ForeignRefs{Sender: inv.Sender, App: call.ApplicationID}
	appArgs, err := abi.EncodeArgs(m, d.data, refs)
	if err != nil {
		return nil, err
	}
	d.appArgs = appArgs
	addSiblingRefs(refs, d.txns)
	call.ApplicationArgs = appArgs
	call.Accounts = refs.Accounts
	call.ForeignApps = refs.Apps
	call.ForeignAssets = refs.Assets
	d.txns = append(d.txns, call)

	if len(d.txns) > transactions.MaxTxGroupSize {
		return nil, serr.Wrap(transactions.ErrGroupTooLarge,
			fmt.Sprintf("%s needs %d transactions, max %d", m.Name, len(d.txns), transactions.MaxTxGroupSize),
			"size", len(d.txns), "method", m.Name)
	}
	return d, nil
}

// addSiblingRefs makes the accounts, assets and applications named by the
// transaction arguments available to the call. Entries are appended after
// the reference arguments so their encoded indexes stay valid.
func addSiblingRefs(refs *abi.ForeignRefs, txns []transactions.Transaction) {
	for _, tx := range txns {
		switch tx.Type {
		case protocol.AssetTransferTx:
			refs.AssetIndex(tx.XferAsset)
			refs.AccountIndex(tx.AssetReceiver)
		case protocol.AssetFreezeTx:
			refs.AssetIndex(tx.FreezeAsset)
			refs.AccountIndex(tx.FreezeAccount)
		case protocol.AssetConfigTx:
			if tx.ConfigAsset != 0 {
				refs.AssetIndex(tx.ConfigAsset)
			}
		case protocol.ApplicationCallTx:
			refs.AppIndex(tx.ApplicationID)
		}
	}
}

func (d *draft) finalize(sender basics.Address, sp SuggestedParams, proto config.ConsensusParams) (*Plan, error) {
	proto.MinTxnFee = sp.MinFee.Raw
	txns := make([]transactions.Transaction, len(d.txns))
	for i, tx := range d.txns {
		tx.Sender = sender
		tx.FirstValid = sp.FirstValid
		tx.LastValid = sp.LastValid
		tx.GenesisID = sp.GenesisID
		tx.GenesisHash = sp.GenesisHash

		// size with a group id, which every member will carry
		sized := tx
		sized.Group = crypto.Digest{1}
		tx.Fee = sp.fee(sized.EstimateEncodedSize())
		txns[i] = tx
	}

	gid, err := transactions.AssignGroupID(txns)
	if err != nil {
		return nil, err
	}
	for i, tx := range txns {
		if err := tx.WellFormed(proto); err != nil {
			return nil, fmt.Errorf("transaction %d of group: %w", i, err)
		}
	}

	return &Plan{
		Txns:      txns,
		GroupID:   gid,
		CallIndex: len(txns) - 1,
		DataArgs:  d.data,
		Slots:     d.slots,
		AppArgs:   d.appArgs,
	}, nil
}

func parseAppID(text string) (basics.AppIndex, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, serr.Wrap(ErrMissingApplicationID, "no application id given")
	}
	id, err := strconv.ParseUint(text, 10, 64)
	if err != nil || id == 0 {
		return 0, serr.Wrap(ErrMissingApplicationID,
			fmt.Sprintf("%q is not a positive application id", text), "value", text)
	}
	return basics.AppIndex(id), nil
}

func parseSchemaCount(field, text string) (uint64, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, nil
	}
	n, err := strconv.ParseUint(text, 10, 64)
	if err != nil {
		return 0, serr.Wrap(ErrInvalidSchemaValue,
			fmt.Sprintf("%s must be a non-negative integer, got %q", field, text),
			"field", field, "value", text)
	}
	return n, nil
}

func applyCreation(call *transactions.Transaction, cp *CreationParams) error {
	counts := []struct {
		field string
		text  string
		dst   *uint64
	}{
		{"globalBytes", cp.GlobalBytes, &call.GlobalStateSchema.NumByteSlice},
		{"globalInts", cp.GlobalInts, &call.GlobalStateSchema.NumUint},
		{"localBytes", cp.LocalBytes, &call.LocalStateSchema.NumByteSlice},
		{"localInts", cp.LocalInts, &call.LocalStateSchema.NumUint},
	}
	for _, c := range counts {
		n, err := parseSchemaCount(c.field, c.text)
		if err != nil {
			return err
		}
		*c.dst = n
	}
	if err := call.GlobalStateSchema.Validate(config.Consensus.MaxGlobalSchemaEntries); err != nil {
		return serr.Wrap(ErrInvalidSchemaValue, "global schema: "+err.Error(), "field", "global")
	}
	if err := call.LocalStateSchema.Validate(config.Consensus.MaxLocalSchemaEntries); err != nil {
		return serr.Wrap(ErrInvalidSchemaValue, "local schema: "+err.Error(), "field", "local")
	}
	if len(cp.ApprovalProgram) == 0 {
		return serr.Wrap(ErrIncompleteArgument, "creation needs an approval program", "field", "approvalProgram")
	}
	if len(cp.ClearProgram) == 0 {
		return serr.Wrap(ErrIncompleteArgument, "creation needs a clear state program", "field", "clearProgram")
	}

	call.ApplicationID = 0
	call.ApprovalProgram = cp.ApprovalProgram
	call.ClearStateProgram = cp.ClearProgram
	call.ExtraProgramPages = extraPages(len(cp.ApprovalProgram)+len(cp.ClearProgram), config.Consensus.MaxAppProgramLen)
	if cp.Note != "" {
		call.Note = []byte(cp.Note)
	}
	return nil
}

// extraPages returns the number of program pages beyond the first needed to
// hold programLen bytes.
func extraPages(programLen, pageLen int) uint32 {
	if programLen <= pageLen {
		return 0
	}
	return uint32((programLen - 1) / pageLen)
}
