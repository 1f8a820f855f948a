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
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/holiman/uint256"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/d13co/algorand.observer/serr"
)

const (
	// MaxAssetDecimals is the largest number of decimal places an asset may
	// declare. 10^19 is the largest power of ten that fits in a uint64.
	MaxAssetDecimals = 19

	// AlgoDecimals is the number of decimal places of the native currency.
	AlgoDecimals = 6

	// maxAmountDigits bounds the digit string handed to 256-bit arithmetic;
	// anything longer is certainly above 2^64-1.
	maxAmountDigits = 40
)

var (
	// ErrInvalidDecimals is returned when an asset declares more than
	// MaxAssetDecimals decimal places.
	ErrInvalidDecimals = errors.New("invalid decimals")

	// ErrInvalidAmount is returned when display text cannot be converted to a
	// raw amount exactly.
	ErrInvalidAmount = errors.New("invalid amount")
)

// AssetParams describes the parameters of an asset.
type AssetParams struct {
	_struct struct{} `codec:",omitempty,omitemptyarray"`

	// Total specifies the total number of units of this asset
	// created.
	Total uint64 `codec:"t"`

	// Decimals specifies the number of digits to display after the decimal
	// place when displaying this asset. A value of 0 represents an asset
	// that is not divisible, a value of 1 represents an asset divisible
	// into tenths, and so on. This value must be between 0 and 19
	// (inclusive).
	Decimals uint32 `codec:"dc"`

	// DefaultFrozen specifies whether slots for this asset
	// in user accounts are frozen by default or not.
	DefaultFrozen bool `codec:"df"`

	// UnitName specifies a hint for the name of a unit of
	// this asset.
	UnitName string `codec:"un"`

	// AssetName specifies a hint for the name of the asset.
	AssetName string `codec:"an"`

	// URL specifies a URL where more information about the asset can be
	// retrieved
	URL string `codec:"au"`

	// MetadataHash specifies a commitment to some unspecified asset
	// metadata. The format of this metadata is up to the application.
	MetadataHash [32]byte `codec:"am"`

	Manager  Address `codec:"m"`
	Reserve  Address `codec:"r"`
	Freeze   Address `codec:"f"`
	Clawback Address `codec:"c"`
}

// Asset pairs an asset id with its parameters.
type Asset struct {
	ID     AssetIndex
	Params AssetParams
}

// DisplayAmount renders a raw amount of this asset in decimal form.
func (a Asset) DisplayAmount(raw uint64) (string, error) {
	return ToDisplay(raw, a.Params.Decimals)
}

// ParseAmount converts decimal text into a raw amount of this asset.
func (a Asset) ParseAmount(text string) (uint64, error) {
	return FromDisplay(text, a.Params.Decimals)
}

// TotalDisplay renders the total supply in decimal form.
func (a Asset) TotalDisplay() (string, error) {
	return ToDisplay(a.Params.Total, a.Params.Decimals)
}

func checkDecimals(decimals uint32) error {
	if decimals > MaxAssetDecimals {
		return serr.Wrap(ErrInvalidDecimals,
			fmt.Sprintf("%d is outside 0..%d", decimals, MaxAssetDecimals),
			"decimals", decimals)
	}
	return nil
}

func splitDecimal(raw uint64, decimals uint32) (whole uint64, frac string) {
	if decimals == 0 {
		return raw, ""
	}
	unit := new(uint256.Int).Exp(uint256.NewInt(10), uint256.NewInt(uint64(decimals)))
	v := uint256.NewInt(raw)
	w := new(uint256.Int).Div(v, unit)
	f := new(uint256.Int).Mod(v, unit)

	frac = strconv.FormatUint(f.Uint64(), 10)
	frac = strings.Repeat("0", int(decimals)-len(frac)) + frac
	return w.Uint64(), strings.TrimRight(frac, "0")
}

// ToDisplay converts a raw integer amount to its exact decimal text, raw /
// 10^decimals, with trailing fractional zeros removed.
func ToDisplay(raw uint64, decimals uint32) (string, error) {
	if err := checkDecimals(decimals); err != nil {
		return "", err
	}
	whole, frac := splitDecimal(raw, decimals)
	if frac == "" {
		return strconv.FormatUint(whole, 10), nil
	}
	return strconv.FormatUint(whole, 10) + "." + frac, nil
}

// FromDisplay is the exact inverse of ToDisplay. It rejects signs, exponents,
// more fractional digits than decimals allows, and values that do not fit in
// a uint64.
func FromDisplay(text string, decimals uint32) (uint64, error) {
	if err := checkDecimals(decimals); err != nil {
		return 0, err
	}

	whole, frac, hasPoint := strings.Cut(text, ".")
	if whole == "" && frac == "" {
		return 0, serr.Wrap(ErrInvalidAmount, fmt.Sprintf("%q is not a number", text), "amount", text)
	}
	if hasPoint && frac == "" {
		return 0, serr.Wrap(ErrInvalidAmount, fmt.Sprintf("%q has no digits after the point", text), "amount", text)
	}
	for _, part := range []string{whole, frac} {
		for _, c := range part {
			if c < '0' || c > '9' {
				return 0, serr.Wrap(ErrInvalidAmount, fmt.Sprintf("%q is not a non-negative decimal", text), "amount", text)
			}
		}
	}
	if len(frac) > int(decimals) {
		return 0, serr.Wrap(ErrInvalidAmount,
			fmt.Sprintf("%q has more than %d fractional digits", text, decimals),
			"amount", text, "decimals", decimals)
	}

	digits := strings.TrimLeft(whole+frac+strings.Repeat("0", int(decimals)-len(frac)), "0")
	if len(digits) > maxAmountDigits {
		return 0, serr.Wrap(ErrInvalidAmount, fmt.Sprintf("%q overflows a 64-bit amount", text), "amount", text)
	}

	ten := uint256.NewInt(10)
	v := new(uint256.Int)
	for _, c := range digits {
		v.Mul(v, ten)
		v.Add(v, uint256.NewInt(uint64(c-'0')))
	}
	if !v.IsUint64() {
		return 0, serr.Wrap(ErrInvalidAmount, fmt.Sprintf("%q overflows a 64-bit amount", text), "amount", text)
	}
	return v.Uint64(), nil
}

// FormatDisplay renders raw / 10^decimals with thousands grouping in the
// integer part. The result is for presentation only and is not accepted by
// FromDisplay.
func FormatDisplay(raw uint64, decimals uint32) (string, error) {
	if err := checkDecimals(decimals); err != nil {
		return "", err
	}
	whole, frac := splitDecimal(raw, decimals)
	grouped := message.NewPrinter(language.English).Sprintf("%d", whole)
	if frac == "" {
		return grouped, nil
	}
	return grouped + "." + frac, nil
}
