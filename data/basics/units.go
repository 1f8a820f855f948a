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

package basics

import (
	"encoding/binary"
	"fmt"
	"strconv"

	"github.com/algorand/go-codec/codec"
	"golang.org/x/exp/constraints"

	"github.com/d13co/algorand.observer/crypto"
	"github.com/d13co/algorand.observer/protocol"
)

// Round represents a protocol round index
type Round uint64

// SubSaturate subtracts x rounds with saturation arithmetic that does not
// underflow.
func (round Round) SubSaturate(x Round) Round {
	return Round(SubSaturate(uint64(round), uint64(x)))
}

// AddSaturate adds x rounds without overflowing.
func (round Round) AddSaturate(x Round) Round {
	return Round(AddSaturate(uint64(round), uint64(x)))
}

// AppIndex is the unique integer index of an application that can be used to
// look up the creator of the application, whose balance record contains the
// AppParams
type AppIndex uint64

// AssetIndex is the unique integer index of an asset that can be used to look
// up the creator of the asset, whose balance record contains the AssetParams
type AssetIndex uint64

// ToBeHashed implements crypto.Hashable. The application's escrow address is
// the hash of the prefixed big-endian index.
func (app AppIndex) ToBeHashed() (protocol.HashID, []byte) {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, uint64(app))
	return protocol.AppIndex, buf
}

// Address yields the "app address" of the app
func (app AppIndex) Address() Address {
	return Address(crypto.HashObj(app))
}

func (app AppIndex) String() string {
	return strconv.FormatUint(uint64(app), 10)
}

func (aidx AssetIndex) String() string {
	return strconv.FormatUint(uint64(aidx), 10)
}

// MicroAlgos is our unit of currency.  It is wrapped in a struct to nudge
// developers to use an overflow-checking library for any arithmetic.
type MicroAlgos struct {
	Raw uint64
}

// LessThan implements arithmetic comparison for MicroAlgos
func (a MicroAlgos) LessThan(b MicroAlgos) bool {
	return a.Raw < b.Raw
}

// IsZero implements arithmetic comparison for MicroAlgos
func (a MicroAlgos) IsZero() bool {
	return a.Raw == 0
}

// ToUint64 converts the amount of algos to uint64
func (a MicroAlgos) ToUint64() uint64 {
	return a.Raw
}

// String renders the amount as a decimal Algo amount.
func (a MicroAlgos) String() string {
	s, err := ToDisplay(a.Raw, AlgoDecimals)
	if err != nil {
		return fmt.Sprintf("%d microAlgos", a.Raw)
	}
	return s + " Algos"
}

// CodecEncodeSelf implements codec.Selfer to encode MicroAlgos as a simple int
func (a MicroAlgos) CodecEncodeSelf(enc *codec.Encoder) {
	enc.MustEncode(a.Raw)
}

// CodecDecodeSelf implements codec.Selfer to decode MicroAlgos as a simple int
func (a *MicroAlgos) CodecDecodeSelf(dec *codec.Decoder) {
	dec.MustDecode(&a.Raw)
}

// MulSaturate multiplies 2 values with saturation on overflow
func MulSaturate[T constraints.Unsigned](a, b T) T {
	if b == 0 {
		return 0
	}
	c := a * b
	if c/b != a {
		var defaultT T
		return ^defaultT
	}
	return c
}

// AddSaturate adds 2 values with saturation on overflow
func AddSaturate[T constraints.Unsigned](a, b T) T {
	res := a + b
	if res < a {
		var defaultT T
		return ^defaultT
	}
	return res
}

// SubSaturate subtracts 2 values with saturation on underflow
func SubSaturate[T constraints.Unsigned](a, b T) T {
	if b > a {
		return 0
	}
	return a - b
}
