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

import "fmt"

// StateSchema sets maximums on the number of each type that may be stored
type StateSchema struct {
	_struct struct{} `codec:",omitempty,omitemptyarray"`

	NumUint      uint64 `codec:"nui"`
	NumByteSlice uint64 `codec:"nbs"`
}

// NumEntries counts the total number of values that may be stored for particular schema
func (sm StateSchema) NumEntries() uint64 {
	return AddSaturate(sm.NumUint, sm.NumByteSlice)
}

// Validate checks the schema against the per-scope entry limit.
func (sm StateSchema) Validate(limit uint64) error {
	if sm.NumEntries() > limit {
		return fmt.Errorf("schema requests %d entries, limit is %d", sm.NumEntries(), limit)
	}
	return nil
}
