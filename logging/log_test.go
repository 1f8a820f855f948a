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

package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/d13co/algorand.observer/test/partitiontest"
)

func TestLoggerWithFieldsJSON(t *testing.T) {
	partitiontest.PartitionTest(t)

	var buf bytes.Buffer
	l := NewLogger()
	l.SetOutput(&buf)
	l.SetJSONFormatter()
	l.SetLevel(Info)

	l.With("invocation", "abc").WithFields(Fields{"stage": "Building"}).Info("stage changed")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "abc", entry["invocation"])
	require.Equal(t, "Building", entry["stage"])
	require.Equal(t, "stage changed", entry["msg"])
	require.Equal(t, "log_test.go", entry["file"])
}

func TestLevelFiltering(t *testing.T) {
	partitiontest.PartitionTest(t)

	var buf bytes.Buffer
	l := NewLogger()
	l.SetOutput(&buf)
	l.SetLevel(Warn)

	l.Info("hidden")
	require.Zero(t, buf.Len())
	require.False(t, l.IsLevelEnabled(Debug))
	require.True(t, l.IsLevelEnabled(Error))

	l.Warnf("shown %d", 1)
	require.Contains(t, buf.String(), "shown 1")
}

func TestParseLevel(t *testing.T) {
	partitiontest.PartitionTest(t)

	lvl, err := ParseLevel("debug")
	require.NoError(t, err)
	require.Equal(t, Debug, lvl)

	_, err = ParseLevel("loud")
	require.Error(t, err)
}

func TestBaseInitialized(t *testing.T) {
	partitiontest.PartitionTest(t)

	require.NotNil(t, Base())
	require.True(t, Base().IsLevelEnabled(Warn))
}
