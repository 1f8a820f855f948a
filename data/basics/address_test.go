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
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/d13co/algorand.observer/crypto"
	"github.com/d13co/algorand.observer/protocol"
	"github.com/d13co/algorand.observer/test/partitiontest"
)

func TestChecksumAddress_Unmarshal(t *testing.T) {
	partitiontest.PartitionTest(t)

	address := crypto.Hash([]byte("randomString"))
	shortAddress := Address(address)

	addr, err := UnmarshalChecksumAddress(shortAddress.String())
	require.NoError(t, err)
	require.Equal(t, addr, shortAddress)
	require.Len(t, shortAddress.String(), 58)
}

func TestAddressChecksumMalformed(t *testing.T) {
	partitiontest.PartitionTest(t)

	shortAddress := Address(crypto.Hash([]byte("randomString")))
	valid := shortAddress.String()

	for _, bad := range []string{
		"",
		valid + "r",
		valid + " ",
		" " + valid,
		"4" + valid,
		valid[:len(valid)-1] + "B",
		"lowercase" + valid[9:],
	} {
		_, err := UnmarshalChecksumAddress(bad)
		require.Error(t, err, bad)
	}
}

func TestZeroAddress(t *testing.T) {
	partitiontest.PartitionTest(t)

	var zero Address
	require.True(t, zero.IsZero())
	require.Equal(t, "AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAY5HFKQ", zero.String())
}

type addressHolder struct {
	_struct struct{} `codec:",omitempty,omitemptyarray"`

	Addr Address `codec:"addr"`
}

func TestAddressJSONUsesChecksumForm(t *testing.T) {
	partitiontest.PartitionTest(t)

	addr := Address(crypto.Hash([]byte("holder")))
	enc := protocol.EncodeJSON(addressHolder{Addr: addr})
	require.Contains(t, string(enc), addr.String())

	var back addressHolder
	require.NoError(t, protocol.DecodeJSON(enc, &back))
	require.Equal(t, addr, back.Addr)
}

func TestAddressMsgpackIsRawBytes(t *testing.T) {
	partitiontest.PartitionTest(t)

	addr := Address(crypto.Hash([]byte("holder")))
	enc := protocol.Encode(addressHolder{Addr: addr})
	// fixmap(1), fixstr "addr", bin8 of 32 bytes
	require.Len(t, enc, 1+5+2+32)

	var back addressHolder
	require.NoError(t, protocol.Decode(enc, &back))
	require.Equal(t, addr, back.Addr)
}

func TestAppAddress(t *testing.T) {
	partitiontest.PartitionTest(t)

	app := AppIndex(77)
	require.Equal(t, app.Address(), app.Address())
	require.NotEqual(t, AppIndex(78).Address(), app.Address())
	require.False(t, app.Address().IsZero())
}
