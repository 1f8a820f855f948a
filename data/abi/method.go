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

package abi

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	avmabi "github.com/algorand/avm-abi/abi"

	"github.com/d13co/algorand.observer/crypto"
	"github.com/d13co/algorand.observer/protocol"
	"github.com/d13co/algorand.observer/serr"
)

// Argument type tokens that are not ABI data types.
const (
	AnyTransactionType             = "txn"
	PaymentTransactionType         = "pay"
	KeyRegistrationTransactionType = "keyreg"
	AssetConfigTransactionType     = "acfg"
	AssetTransferTransactionType   = "axfer"
	AssetFreezeTransactionType     = "afrz"
	ApplicationCallTransactionType = "appl"

	AccountReferenceType     = "account"
	AssetReferenceType       = "asset"
	ApplicationReferenceType = "application"

	// VoidReturnType is the return type of a method that returns nothing.
	VoidReturnType = "void"
)

// ErrMalformedSignature is returned when a method signature or one of its
// argument types cannot be parsed.
var ErrMalformedSignature = errors.New("malformed method signature")

var transactionTypes = map[string]protocol.TxType{
	AnyTransactionType:             "",
	PaymentTransactionType:         protocol.PaymentTx,
	KeyRegistrationTransactionType: protocol.KeyRegistrationTx,
	AssetConfigTransactionType:     protocol.AssetConfigTx,
	AssetTransferTransactionType:   protocol.AssetTransferTx,
	AssetFreezeTransactionType:     protocol.AssetFreezeTx,
	ApplicationCallTransactionType: protocol.ApplicationCallTx,
}

// IsTransactionType reports whether an argument type names a transaction
// that is passed as a sibling in the group rather than as encoded bytes.
func IsTransactionType(s string) bool {
	_, ok := transactionTypes[s]
	return ok
}

// TransactionKind returns the transaction type required by a transaction
// argument token. The unconstrained "txn" token maps to the empty type.
func TransactionKind(s string) (protocol.TxType, bool) {
	kind, ok := transactionTypes[s]
	return kind, ok
}

// IsReferenceType reports whether an argument type is encoded as an index
// into one of the application call's foreign arrays.
func IsReferenceType(s string) bool {
	switch s {
	case AccountReferenceType, AssetReferenceType, ApplicationReferenceType:
		return true
	default:
		return false
	}
}

// Arg is one formal parameter of a method.
type Arg struct {
	_struct struct{} `codec:",omitempty,omitemptyarray"`

	Name string `codec:"name"`
	Type string `codec:"type"`
	Desc string `codec:"desc"`
}

// IsTransaction reports whether the argument is satisfied by a sibling
// transaction.
func (a Arg) IsTransaction() bool {
	return IsTransactionType(a.Type)
}

// IsReference reports whether the argument is a foreign array reference.
func (a Arg) IsReference() bool {
	return IsReferenceType(a.Type)
}

// Return describes the value a method returns.
type Return struct {
	_struct struct{} `codec:",omitempty,omitemptyarray"`

	Type string `codec:"type"`
	Desc string `codec:"desc"`
}

// Method describes a contract entry point in ARC-4 form.
type Method struct {
	_struct struct{} `codec:",omitempty,omitemptyarray"`

	Name    string `codec:"name"`
	Desc    string `codec:"desc"`
	Args    []Arg  `codec:"args"`
	Returns Return `codec:"returns"`
}

// ParseMethodSignature parses "name(type1,type2,...)ret" into a Method.
// Arguments are named arg0, arg1, ... in declaration order.
func ParseMethodSignature(sig string) (Method, error) {
	open := strings.IndexByte(sig, '(')
	if open <= 0 {
		return Method{}, serr.Wrap(ErrMalformedSignature, fmt.Sprintf("%q has no method name or argument list", sig), "signature", sig)
	}

	depth := 0
	end := -1
	for i := open; i < len(sig); i++ {
		switch sig[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				end = i
			}
		}
		if end >= 0 {
			break
		}
	}
	if end < 0 {
		return Method{}, serr.Wrap(ErrMalformedSignature, fmt.Sprintf("%q has unbalanced parentheses", sig), "signature", sig)
	}

	types, err := splitTopLevel(sig[open+1 : end])
	if err != nil {
		return Method{}, serr.Wrap(ErrMalformedSignature, fmt.Sprintf("%q: %v", sig, err), "signature", sig)
	}
	m := Method{
		Name:    sig[:open],
		Args:    make([]Arg, len(types)),
		Returns: Return{Type: sig[end+1:]},
	}
	for i, t := range types {
		m.Args[i] = Arg{Name: fmt.Sprintf("arg%d", i), Type: t}
	}
	if err := m.Validate(); err != nil {
		return Method{}, err
	}
	return m, nil
}

// splitTopLevel splits a comma separated type list, ignoring commas nested
// inside tuple types.
func splitTopLevel(s string) ([]string, error) {
	if s == "" {
		return nil, nil
	}
	var out []string
	depth, start := 0, 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth < 0 {
				return nil, fmt.Errorf("unbalanced parentheses at %d", i)
			}
		case ',':
			if depth == 0 {
				out = append(out, s[start:i])
				start = i + 1
			}
		}
	}
	if depth != 0 {
		return nil, fmt.Errorf("unbalanced parentheses")
	}
	out = append(out, s[start:])
	for i, t := range out {
		if t == "" {
			return nil, fmt.Errorf("argument %d has an empty type", i)
		}
	}
	return out, nil
}

// MethodFromJSON decodes an ARC-4 method description. Unnamed arguments are
// named argN after their position.
func MethodFromJSON(data []byte) (Method, error) {
	var m Method
	if err := protocol.NewJSONDecoder(bytes.NewReader(data)).Decode(&m); err != nil {
		return Method{}, serr.Wrap(ErrMalformedSignature, fmt.Sprintf("cannot decode method description: %v", err))
	}
	for i := range m.Args {
		if m.Args[i].Name == "" {
			m.Args[i].Name = fmt.Sprintf("arg%d", i)
		}
	}
	if m.Returns.Type == "" {
		m.Returns.Type = VoidReturnType
	}
	if err := m.Validate(); err != nil {
		return Method{}, err
	}
	return m, nil
}

// Validate checks that the method has a name and that every argument and
// return type is one the ARC-4 codec or the transaction/reference grammar
// accepts.
func (m Method) Validate() error {
	if m.Name == "" || strings.ContainsAny(m.Name, "(),") {
		return serr.Wrap(ErrMalformedSignature, fmt.Sprintf("invalid method name %q", m.Name), "method", m.Name)
	}
	for _, arg := range m.Args {
		if arg.IsTransaction() || arg.IsReference() {
			continue
		}
		if _, err := avmabi.TypeOf(arg.Type); err != nil {
			return serr.Wrap(ErrMalformedSignature,
				fmt.Sprintf("argument %s has type %q: %v", arg.Name, arg.Type, err),
				"arg", arg.Name, "type", arg.Type)
		}
	}
	if m.Returns.Type != VoidReturnType {
		if _, err := avmabi.TypeOf(m.Returns.Type); err != nil {
			return serr.Wrap(ErrMalformedSignature,
				fmt.Sprintf("return type %q: %v", m.Returns.Type, err),
				"type", m.Returns.Type)
		}
	}
	return nil
}

// Signature returns the canonical "name(types)ret" form of the method.
func (m Method) Signature() string {
	types := make([]string, len(m.Args))
	for i, arg := range m.Args {
		types[i] = arg.Type
	}
	return m.Name + "(" + strings.Join(types, ",") + ")" + m.Returns.Type
}

// Selector returns the first four bytes of the SHA-512/256 hash of the
// method signature.
func (m Method) Selector() []byte {
	sum := crypto.Hash([]byte(m.Signature()))
	return sum[:4]
}

// TxnArgCount returns the number of transaction arguments.
func (m Method) TxnArgCount() int {
	n := 0
	for _, arg := range m.Args {
		if arg.IsTransaction() {
			n++
		}
	}
	return n
}

// ValueArgs returns the arguments that are carried in ApplicationArgs, in
// declaration order: data arguments and reference arguments.
func (m Method) ValueArgs() []Arg {
	out := make([]Arg, 0, len(m.Args))
	for _, arg := range m.Args {
		if !arg.IsTransaction() {
			out = append(out, arg)
		}
	}
	return out
}
