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

package serr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/d13co/algorand.observer/test/partitiontest"
)

var errKind = errors.New("kind of failure")

func TestNewAttributes(t *testing.T) {
	partitiontest.PartitionTest(t)

	err := New("test", "a", 1, "b", "two")
	require.Equal(t, "test", err.Error())
	require.Equal(t, 1, err.Attrs["a"])
	require.Equal(t, "two", err.Attrs["b"])
}

func TestBlankMessageSerializesAttrs(t *testing.T) {
	partitiontest.PartitionTest(t)

	err := New("", "arg", "amount")
	require.Contains(t, err.Error(), "arg=amount")
}

func TestWrapMatchesKind(t *testing.T) {
	partitiontest.PartitionTest(t)

	err := Wrap(errKind, "argument pay is missing to", "arg", "pay")
	require.ErrorIs(t, err, errKind)
	require.Contains(t, err.Error(), "kind of failure")
	require.Contains(t, err.Error(), "missing to")

	wrapped := fmt.Errorf("outer: %w", err)
	v, ok := Attr(wrapped, "arg")
	require.True(t, ok)
	require.Equal(t, "pay", v)
}

func TestExtend(t *testing.T) {
	partitiontest.PartitionTest(t)

	err := Wrap(errKind, "boom")
	extended := Extend(err, "stage", "Submitting")
	require.Same(t, err, extended)
	require.Equal(t, "Submitting", err.Attrs["stage"])

	plain := errors.New("plain")
	extended = Extend(plain, "stage", "Building")
	require.ErrorIs(t, extended, plain)
	v, ok := Attr(extended, "stage")
	require.True(t, ok)
	require.Equal(t, "Building", v)

	require.Error(t, Extend(nil, "k", "v"))
}

func TestAttrMissing(t *testing.T) {
	partitiontest.PartitionTest(t)

	_, ok := Attr(errors.New("x"), "k")
	require.False(t, ok)
}
