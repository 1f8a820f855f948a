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

package codecs

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/d13co/algorand.observer/test/partitiontest"
)

type sample struct {
	Name  string
	Count int
}

func TestSaveLoadObject(t *testing.T) {
	partitiontest.PartitionTest(t)

	path := filepath.Join(t.TempDir(), "sample.json")
	require.NoError(t, SaveObjectToFile(path, sample{Name: "a<b", Count: 3}, true))

	var loaded sample
	require.NoError(t, LoadObjectFromFile(path, &loaded))
	require.Equal(t, sample{Name: "a<b", Count: 3}, loaded)
}

func TestFormattedEncoderKeepsHTML(t *testing.T) {
	partitiontest.PartitionTest(t)

	var buf bytes.Buffer
	require.NoError(t, NewFormattedJSONEncoder(&buf).Encode(sample{Name: "<tag>"}))
	require.Contains(t, buf.String(), "<tag>")
	require.Contains(t, buf.String(), "\n\t")
}

func TestLoadMissingFile(t *testing.T) {
	partitiontest.PartitionTest(t)

	var loaded sample
	require.Error(t, LoadObjectFromFile(filepath.Join(t.TempDir(), "missing.json"), &loaded))
}
