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

// Package abicall builds, signs, submits and confirms ABI method calls.
//
// An invocation names a method, one value per formal parameter, and either
// the application to call or the parameters of an application to create.
// Build turns it into an atomic transaction group whose last member is the
// application call; Executor drives the group through signing, submission
// and confirmation.
package abicall

import (
	"github.com/d13co/algorand.observer/data/abi"
)

// TxnArgValue is the structured value of a transaction-typed argument. Which
// fields are required depends on the transaction kind:
//
//	pay, txn  To, Amount (microAlgos)
//	axfer     Asset, To, Amount (base units)
//	afrz      Asset, To (the account to freeze), Frozen
//	appl      App
//	acfg      Total, with optional Decimals, UnitName, AssetName; or
//	          Asset alone to destroy it
//	keyreg    nothing; the sender goes offline
type TxnArgValue struct {
	To     string
	Amount string
	Asset  string
	App    string
	Frozen string
	Note   string

	Total     string
	Decimals  string
	UnitName  string
	AssetName string
}

// ExecutorArg is one formal parameter of a method together with the value
// the invoker supplied for it. Data and reference arguments carry Value;
// transaction arguments carry Txn.
type ExecutorArg struct {
	abi.Arg

	Value string
	Txn   TxnArgValue
}

// NewExecutorArgs returns one empty ExecutorArg per formal parameter of m,
// in declared order.
func NewExecutorArgs(m abi.Method) []ExecutorArg {
	out := make([]ExecutorArg, len(m.Args))
	for i, arg := range m.Args {
		out[i] = ExecutorArg{Arg: arg}
	}
	return out
}

// CreationParams describe the application a creation call creates. The
// schema counts are decimal text as entered by the user; an empty count is
// zero.
type CreationParams struct {
	ApprovalProgram []byte
	ClearProgram    []byte

	GlobalBytes string
	GlobalInts  string
	LocalBytes  string
	LocalInts   string

	Note string
}

// SlotKind tells whether a parameter position is filled by encoded data or
// by a sibling transaction.
type SlotKind int

const (
	// DataSlot is a value or reference argument passed in ApplicationArgs.
	DataSlot SlotKind = iota
	// TxnSlot is a transaction argument passed as an earlier group member.
	TxnSlot
)

func (k SlotKind) String() string {
	if k == TxnSlot {
		return "txn"
	}
	return "data"
}

// Slot records how one formal parameter is passed. Value is set for data
// slots and GroupIndex for transaction slots.
type Slot struct {
	Kind       SlotKind
	Arg        string
	Value      string
	GroupIndex int
}

// DataValues returns the values of the data slots in order.
func DataValues(slots []Slot) []string {
	out := make([]string, 0, len(slots))
	for _, s := range slots {
		if s.Kind == DataSlot {
			out = append(out, s.Value)
		}
	}
	return out
}

// TxnIndexes returns the group positions of the transaction slots in order.
func TxnIndexes(slots []Slot) []int {
	var out []int
	for _, s := range slots {
		if s.Kind == TxnSlot {
			out = append(out, s.GroupIndex)
		}
	}
	return out
}
