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
	"strconv"

	"github.com/spf13/cobra"

	"github.com/d13co/algorand.observer/data/basics"
)

var (
	amountDecimals uint32
	amountRaw      bool
	amountGrouped  bool
)

func init() {
	amountCmd.Flags().Uint32Var(&amountDecimals, "decimals", 6, "Decimal places of the asset (6 for Algos)")
	amountCmd.Flags().BoolVar(&amountRaw, "raw", false, "Convert a raw integer amount to its display form instead")
	amountCmd.Flags().BoolVar(&amountGrouped, "grouped", false, "With --raw, group the integer part in thousands")
}

var amountCmd = &cobra.Command{
	Use:   "amount [value]",
	Short: "Convert between display and raw asset amounts",
	Long:  `Convert a decimal display amount to the raw integer used on chain, or with --raw the other way around.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		out, err := convertAmount(args[0], amountDecimals, amountRaw, amountGrouped)
		if err != nil {
			reportErrorf("%v", err)
		}
		reportInfof("%s", out)
	},
}

func convertAmount(value string, decimals uint32, raw, grouped bool) (string, error) {
	if !raw {
		n, err := basics.FromDisplay(value, decimals)
		if err != nil {
			return "", err
		}
		return strconv.FormatUint(n, 10), nil
	}
	n, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return "", err
	}
	if grouped {
		return basics.FormatDisplay(n, decimals)
	}
	return basics.ToDisplay(n, decimals)
}
