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

package transactions

import (
	"errors"
	"fmt"

	"github.com/d13co/algorand.observer/crypto"
	"github.com/d13co/algorand.observer/serr"
)

// MaxTxGroupSize is the largest number of transactions in one atomic group.
const MaxTxGroupSize = 16

var (
	// ErrGroupTooLarge is returned when a group exceeds MaxTxGroupSize.
	ErrGroupTooLarge = errors.New("transaction group too large")

	errEmptyGroup = errors.New("transaction group is empty")
)

// ComputeGroupID returns the id of the group formed by txns in order: the
// hash of a TxGroup listing each member's id computed with its Group field
// cleared.
func ComputeGroupID(txns []Transaction) (crypto.Digest, error) {
	if len(txns) == 0 {
		return crypto.Digest{}, errEmptyGroup
	}
	if len(txns) > MaxTxGroupSize {
		return crypto.Digest{}, serr.Wrap(ErrGroupTooLarge,
			fmt.Sprintf("%d transactions, max %d", len(txns), MaxTxGroupSize),
			"size", len(txns))
	}

	group := TxGroup{TxGroupHashes: make([]crypto.Digest, len(txns))}
	for i, tx := range txns {
		tx.Group = crypto.Digest{}
		group.TxGroupHashes[i] = crypto.Digest(tx.ID())
	}
	return crypto.HashObj(group), nil
}

// AssignGroupID computes the group id of txns and stores it in every member.
func AssignGroupID(txns []Transaction) (crypto.Digest, error) {
	gid, err := ComputeGroupID(txns)
	if err != nil {
		return crypto.Digest{}, err
	}
	for i := range txns {
		txns[i].Group = gid
	}
	return gid, nil
}

// VerifyGroup checks that every member of txns carries the group id derived
// from the group's content.
func VerifyGroup(txns []Transaction) error {
	gid, err := ComputeGroupID(txns)
	if err != nil {
		return err
	}
	for i, tx := range txns {
		if tx.Group != gid {
			return fmt.Errorf("transaction %d has group %v, expected %v", i, tx.Group, gid)
		}
	}
	return nil
}
