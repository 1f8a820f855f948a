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
	"github.com/d13co/algorand.observer/crypto"
	"github.com/d13co/algorand.observer/data/basics"
)

// KeyregTxnFields captures the fields used for key registration transactions.
// Participation keys are carried opaquely; this client never generates them.
type KeyregTxnFields struct {
	_struct struct{} `codec:",omitempty,omitemptyarray"`

	VotePK           crypto.PublicKey `codec:"votekey"`
	SelectionPK      crypto.PublicKey `codec:"selkey"`
	StateProofPK     [64]byte         `codec:"sprfkey"`
	VoteFirst        basics.Round     `codec:"votefst"`
	VoteLast         basics.Round     `codec:"votelst"`
	VoteKeyDilution  uint64           `codec:"votekd"`
	Nonparticipation bool             `codec:"nonpart"`
}
