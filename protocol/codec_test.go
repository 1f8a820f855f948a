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

package protocol

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/d13co/algorand.observer/test/partitiontest"
)

type helloStruct struct {
	_struct struct{} `codec:",omitempty,omitemptyarray"`

	Zeta  uint64 `codec:"z"`
	Alpha string `codec:"a"`
	Empty []byte `codec:"e"`
}

func TestEncodeCanonicalOmitsEmpty(t *testing.T) {
	partitiontest.PartitionTest(t)

	enc := Encode(&helloStruct{Zeta: 1, Alpha: "x"})

	// fixmap with two entries, keys sorted: "a" before "z"
	require.Equal(t, byte(0x82), enc[0])
	require.True(t, bytes.Index(enc, []byte("a")) < bytes.Index(enc, []byte("z")))

	var decoded helloStruct
	require.NoError(t, Decode(enc, &decoded))
	require.Equal(t, uint64(1), decoded.Zeta)
	require.Equal(t, "x", decoded.Alpha)
}

func TestEncodeDeterministic(t *testing.T) {
	partitiontest.PartitionTest(t)

	a := helloStruct{Zeta: 42, Alpha: "hello"}
	b := helloStruct{Alpha: "hello", Zeta: 42}
	require.Equal(t, Encode(&a), Encode(&b))
}

func TestEncodeStreamMatchesEncode(t *testing.T) {
	partitiontest.PartitionTest(t)

	obj := helloStruct{Zeta: 7, Empty: []byte{1, 2}}
	var buf bytes.Buffer
	EncodeStream(&buf, &obj)
	require.Equal(t, Encode(&obj), buf.Bytes())
}

func TestJSONRoundTrip(t *testing.T) {
	partitiontest.PartitionTest(t)

	obj := helloStruct{Zeta: 9, Alpha: "json"}
	enc := EncodeJSON(&obj)

	var decoded helloStruct
	require.NoError(t, DecodeJSON(enc, &decoded))
	require.Equal(t, obj.Zeta, decoded.Zeta)
	require.Equal(t, obj.Alpha, decoded.Alpha)
}

func TestLenientJSONDecoderIgnoresUnknownFields(t *testing.T) {
	partitiontest.PartitionTest(t)

	var decoded helloStruct
	dec := NewJSONDecoder(bytes.NewReader([]byte(`{"z": 3, "unexpected": true}`)))
	require.NoError(t, dec.Decode(&decoded))
	require.Equal(t, uint64(3), decoded.Zeta)

	require.Error(t, DecodeJSON([]byte(`{"z": 3, "unexpected": true}`), &decoded))
}

func TestTxTypeValid(t *testing.T) {
	partitiontest.PartitionTest(t)

	for _, tt := range TxTypes {
		require.True(t, tt.Valid(), tt)
	}
	require.False(t, UnknownTx.Valid())
	require.False(t, TxType("").Valid())
}
