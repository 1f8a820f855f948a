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

package main

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/d13co/algorand.observer/abicall"
	"github.com/d13co/algorand.observer/data/abi"
	"github.com/d13co/algorand.observer/data/basics"
	"github.com/d13co/algorand.observer/test/partitiontest"
)

func TestParseTxnArg(t *testing.T) {
	partitiontest.PartitionTest(t)
	t.Parallel()

	tests := []struct {
		text string
		want abicall.TxnArgValue
		err  string
	}{
		{"", abicall.TxnArgValue{}, ""},
		{"to=ADDR,amount=1000", abicall.TxnArgValue{To: "ADDR", Amount: "1000"}, ""},
		{" Asset = 7 , to=B, frozen=true", abicall.TxnArgValue{Asset: "7", To: "B", Frozen: "true"}, ""},
		{"total=100,decimals=2,unit=TOK,name=Token", abicall.TxnArgValue{Total: "100", Decimals: "2", UnitName: "TOK", AssetName: "Token"}, ""},
		{"app=12", abicall.TxnArgValue{App: "12"}, ""},
		{"amount", abicall.TxnArgValue{}, `"amount" is not key=value`},
		{"color=red", abicall.TxnArgValue{}, `unknown field "color"`},
	}
	for _, test := range tests {
		got, err := parseTxnArg(test.text)
		if test.err != "" {
			require.EqualError(t, err, test.err)
			continue
		}
		require.NoError(t, err)
		require.Equal(t, test.want, got, test.text)
	}
}

func TestFillArgs(t *testing.T) {
	partitiontest.PartitionTest(t)

	m, err := abi.ParseMethodSignature("deposit(pay,uint64,account)void")
	require.NoError(t, err)
	inv := abicall.NewInvocation(m, basics.Address{1})

	err = fillArgs(&inv, []string{"to=X,amount=5", "9"})
	require.ErrorContains(t, err, "takes 3 arguments, got 2")

	require.NoError(t, fillArgs(&inv, []string{"to=X,amount=5", "9", "Y"}))
	require.Equal(t, abicall.TxnArgValue{To: "X", Amount: "5"}, inv.Args[0].Txn)
	require.Empty(t, inv.Args[0].Value)
	require.Equal(t, "9", inv.Args[1].Value)
	require.Equal(t, "Y", inv.Args[2].Value)

	err = fillArgs(&inv, []string{"to", "9", "Y"})
	require.ErrorContains(t, err, "Argument 0 (pay)")
}

func TestConvertAmount(t *testing.T) {
	partitiontest.PartitionTest(t)
	t.Parallel()

	tests := []struct {
		value    string
		decimals uint32
		raw      bool
		grouped  bool
		want     string
	}{
		{"1.5", 6, false, false, "1500000"},
		{"0.000001", 6, false, false, "1"},
		{"12", 0, false, false, "12"},
		{"1500000", 6, true, false, "1.5"},
		{"1234567000000", 6, true, true, "1,234,567"},
		{"1234567890000", 6, true, true, "1,234,567.89"},
	}
	for _, test := range tests {
		got, err := convertAmount(test.value, test.decimals, test.raw, test.grouped)
		require.NoError(t, err)
		require.Equal(t, test.want, got)
	}

	_, err := convertAmount("1.0000001", 6, false, false)
	require.ErrorIs(t, err, basics.ErrInvalidAmount)
	_, err = convertAmount("-5", 6, true, false)
	require.Error(t, err)
	_, err = convertAmount("1", 20, false, false)
	require.ErrorIs(t, err, basics.ErrInvalidDecimals)
}
