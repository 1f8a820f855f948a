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
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	avmabi "github.com/algorand/avm-abi/abi"

	"github.com/d13co/algorand.observer/data/basics"
	"github.com/d13co/algorand.observer/serr"
)

const (
	// maxAppArgs is the number of ApplicationArgs a call may carry,
	// selector included.
	maxAppArgs = 16

	// argsTupleThreshold is the position of the first value argument that
	// is packed into the trailing tuple once a method has more value
	// arguments than fit individually.
	argsTupleThreshold = maxAppArgs - 2
)

// ErrInvalidArgument is returned when a supplied value does not fit the type
// of its argument.
var ErrInvalidArgument = errors.New("invalid argument value")

// ReturnPrefix marks the log line that carries a method's return value.
var ReturnPrefix = []byte{0x15, 0x1f, 0x7c, 0x75}

var uint8Type avmabi.Type

func init() {
	var err error
	uint8Type, err = avmabi.TypeOf("uint8")
	if err != nil {
		panic(err)
	}
}

// ForeignRefs holds the foreign arrays of one application call. Reference
// arguments are resolved against it, appending entries as needed.
type ForeignRefs struct {
	// Sender is referenced as account index 0.
	Sender basics.Address
	// App is the called application, referenced as application index 0.
	// Zero for a creation call.
	App basics.AppIndex

	Accounts []basics.Address
	Apps     []basics.AppIndex
	Assets   []basics.AssetIndex
}

// AccountIndex returns the index by which the call refers to addr, adding
// it to Accounts if needed. The sender is index 0 and Accounts start at 1.
func (r *ForeignRefs) AccountIndex(addr basics.Address) int {
	if addr == r.Sender {
		return 0
	}
	for i, a := range r.Accounts {
		if a == addr {
			return i + 1
		}
	}
	r.Accounts = append(r.Accounts, addr)
	return len(r.Accounts)
}

// AppIndex returns the index by which the call refers to app. The called
// application is index 0 and Apps start at 1.
func (r *ForeignRefs) AppIndex(app basics.AppIndex) int {
	if r.App != 0 && app == r.App {
		return 0
	}
	for i, a := range r.Apps {
		if a == app {
			return i + 1
		}
	}
	r.Apps = append(r.Apps, app)
	return len(r.Apps)
}

// AssetIndex returns the zero-based position of asset in Assets.
func (r *ForeignRefs) AssetIndex(asset basics.AssetIndex) int {
	for i, a := range r.Assets {
		if a == asset {
			return i
		}
	}
	r.Assets = append(r.Assets, asset)
	return len(r.Assets) - 1
}

func invalidArg(arg Arg, value string, format string, a ...any) error {
	return serr.Wrap(ErrInvalidArgument,
		fmt.Sprintf("argument %s (%s): ", arg.Name, arg.Type)+fmt.Sprintf(format, a...),
		"arg", arg.Name, "type", arg.Type, "value", value)
}

func (r *ForeignRefs) resolve(arg Arg, value string) (uint8, error) {
	text := strings.TrimSpace(value)
	var idx int
	switch arg.Type {
	case AccountReferenceType:
		addr, err := basics.UnmarshalChecksumAddress(text)
		if err != nil {
			return 0, invalidArg(arg, value, "%v", err)
		}
		idx = r.AccountIndex(addr)
	case ApplicationReferenceType:
		id, err := strconv.ParseUint(text, 10, 64)
		if err != nil || id == 0 {
			return 0, invalidArg(arg, value, "not an application id")
		}
		idx = r.AppIndex(basics.AppIndex(id))
	case AssetReferenceType:
		id, err := strconv.ParseUint(text, 10, 64)
		if err != nil || id == 0 {
			return 0, invalidArg(arg, value, "not an asset id")
		}
		idx = r.AssetIndex(basics.AssetIndex(id))
	default:
		return 0, invalidArg(arg, value, "not a reference type")
	}
	if idx > math.MaxUint8 {
		return 0, invalidArg(arg, value, "reference index %d does not fit in uint8", idx)
	}
	return uint8(idx), nil
}

func isByteArray(t string) bool {
	return strings.HasPrefix(t, "byte[") && strings.HasSuffix(t, "]")
}

// jsonArg turns user supplied text into the JSON form the ABI codec reads.
// Text that is already a JSON string literal is passed through; bare text is
// taken literally for string and address types and as base64 for byte
// arrays.
func jsonArg(typ, value string) []byte {
	trimmed := strings.TrimSpace(value)
	quoted := strings.HasPrefix(trimmed, `"`) && json.Valid([]byte(trimmed))
	switch {
	case typ == "string" || typ == "address":
		if !quoted {
			b, _ := json.Marshal(value)
			return b
		}
	case isByteArray(typ):
		if !quoted && !strings.HasPrefix(trimmed, "[") {
			b, _ := json.Marshal(trimmed)
			return b
		}
	}
	return []byte(trimmed)
}

// decodeArg parses one value argument into the form the ABI codec encodes.
func decodeArg(arg Arg, value string, refs *ForeignRefs) (avmabi.Type, interface{}, error) {
	if arg.IsReference() {
		idx, err := refs.resolve(arg, value)
		return uint8Type, idx, err
	}
	t, err := avmabi.TypeOf(arg.Type)
	if err != nil {
		return avmabi.Type{}, nil, serr.Wrap(ErrMalformedSignature,
			fmt.Sprintf("argument %s has type %q: %v", arg.Name, arg.Type, err),
			"arg", arg.Name, "type", arg.Type)
	}
	v, err := t.UnmarshalFromJSON(jsonArg(arg.Type, value))
	if err != nil {
		return avmabi.Type{}, nil, invalidArg(arg, value, "%v", err)
	}
	return t, v, nil
}

// EncodeArgs returns the ApplicationArgs of a call to m: the method selector
// followed by one encoded entry per value argument. values holds the raw
// text of every non-transaction argument in declaration order. Reference
// arguments are resolved into refs. When there are more value arguments than
// ApplicationArgs slots, the trailing ones are packed into a single tuple.
func EncodeArgs(m Method, values []string, refs *ForeignRefs) ([][]byte, error) {
	valueArgs := m.ValueArgs()
	if len(values) != len(valueArgs) {
		return nil, serr.Wrap(ErrInvalidArgument,
			fmt.Sprintf("%s takes %d value arguments, got %d", m.Name, len(valueArgs), len(values)),
			"method", m.Name)
	}

	types := make([]avmabi.Type, len(valueArgs))
	decoded := make([]interface{}, len(valueArgs))
	for i, arg := range valueArgs {
		t, v, err := decodeArg(arg, values[i], refs)
		if err != nil {
			return nil, err
		}
		types[i], decoded[i] = t, v
	}

	individual := len(valueArgs)
	if individual > maxAppArgs-1 {
		individual = argsTupleThreshold
	}

	args := make([][]byte, 0, maxAppArgs)
	args = append(args, m.Selector())
	for i := 0; i < individual; i++ {
		enc, err := types[i].Encode(decoded[i])
		if err != nil {
			return nil, invalidArg(valueArgs[i], values[i], "%v", err)
		}
		args = append(args, enc)
	}

	if individual < len(valueArgs) {
		names := make([]string, 0, len(valueArgs)-individual)
		for _, t := range types[individual:] {
			names = append(names, t.String())
		}
		tupleType, err := avmabi.TypeOf("(" + strings.Join(names, ",") + ")")
		if err != nil {
			return nil, serr.Wrap(ErrMalformedSignature, fmt.Sprintf("trailing argument tuple: %v", err), "method", m.Name)
		}
		enc, err := tupleType.Encode(decoded[individual:])
		if err != nil {
			return nil, serr.Wrap(ErrInvalidArgument, fmt.Sprintf("trailing argument tuple: %v", err), "method", m.Name)
		}
		args = append(args, enc)
	}
	return args, nil
}

// DecodeReturn extracts the method's return value from the logs of a
// confirmed call. ok is false when the method returns void or no return log
// is present.
func DecodeReturn(m Method, logs [][]byte) (value interface{}, ok bool, err error) {
	if m.Returns.Type == VoidReturnType || len(logs) == 0 {
		return nil, false, nil
	}
	last := logs[len(logs)-1]
	if !bytes.HasPrefix(last, ReturnPrefix) {
		return nil, false, nil
	}
	t, err := avmabi.TypeOf(m.Returns.Type)
	if err != nil {
		return nil, false, err
	}
	value, err = t.Decode(last[len(ReturnPrefix):])
	if err != nil {
		return nil, false, fmt.Errorf("cannot decode %s return value: %w", m.Returns.Type, err)
	}
	return value, true, nil
}

// ReturnJSON renders a decoded return value as JSON text.
func ReturnJSON(m Method, value interface{}) (string, error) {
	t, err := avmabi.TypeOf(m.Returns.Type)
	if err != nil {
		return "", err
	}
	out, err := t.MarshalToJSON(value)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
