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
	"fmt"
	"strings"

	"github.com/d13co/algorand.observer/config"
	"github.com/d13co/algorand.observer/data/basics"
)

// OnCompletion is an enum representing some layer 1 side effect that an
// ApplicationCall transaction will have if it is included in a block.
type OnCompletion uint64

const (
	// NoOpOC indicates that an application transaction will simply call its
	// ApprovalProgram
	NoOpOC OnCompletion = 0

	// OptInOC indicates that an application transaction will allocate some
	// LocalState for the application in the sender's account
	OptInOC OnCompletion = 1

	// CloseOutOC indicates that an application transaction will deallocate
	// some LocalState for the application from the user's account
	CloseOutOC OnCompletion = 2

	// ClearStateOC is similar to CloseOutOC, but may never fail.
	ClearStateOC OnCompletion = 3

	// UpdateApplicationOC indicates that an application transaction will
	// update the ApprovalProgram and ClearStateProgram for the application
	UpdateApplicationOC OnCompletion = 4

	// DeleteApplicationOC indicates that an application transaction will
	// delete the AppParams for the application from the creator's balance
	// record
	DeleteApplicationOC OnCompletion = 5
)

var onCompletionNames = [...]string{"NoOp", "OptIn", "CloseOut", "ClearState", "UpdateApplication", "DeleteApplication"}

func (oc OnCompletion) String() string {
	if int(oc) < len(onCompletionNames) {
		return onCompletionNames[oc]
	}
	return fmt.Sprintf("OnCompletion(%d)", uint64(oc))
}

// OnCompletionFromString parses the lower or mixed case name of an
// OnCompletion, as accepted on the command line.
func OnCompletionFromString(s string) (OnCompletion, error) {
	for i, name := range onCompletionNames {
		if strings.EqualFold(name, s) {
			return OnCompletion(i), nil
		}
	}
	return NoOpOC, fmt.Errorf("unknown on-completion action %q", s)
}

// ApplicationCallTxnFields captures the transaction fields used for all
// interactions with applications
type ApplicationCallTxnFields struct {
	_struct struct{} `codec:",omitempty,omitemptyarray"`

	// ApplicationID is 0 when creating an application, and nonzero when
	// calling an existing application.
	ApplicationID basics.AppIndex `codec:"apid"`

	// OnCompletion specifies an optional side-effect that this transaction
	// will have on the balance record of the sender or the application's
	// creator.
	OnCompletion OnCompletion `codec:"apan"`

	// ApplicationArgs are arguments accessible to the executing
	// ApprovalProgram or ClearStateProgram.
	ApplicationArgs [][]byte `codec:"apaa"`

	// Accounts are accounts whose balance records are accessible
	// by the executing ApprovalProgram or ClearStateProgram. To
	// access LocalState or an ASA balance for an account besides
	// the sender, that account's address must be listed here.
	Accounts []basics.Address `codec:"apat"`

	// ForeignApps are application IDs for applications besides
	// this one whose GlobalState (or Local, if with an account)
	// may be read by the executing ApprovalProgram or ClearStateProgram.
	ForeignApps []basics.AppIndex `codec:"apfa"`

	// Boxes are the boxes that can be accessed by this transaction (and others
	// in the same group).
	Boxes []BoxRef `codec:"apbx"`

	// ForeignAssets are asset IDs for assets whose AssetParams
	// (and since v4, Holdings) may be read by the executing
	// ApprovalProgram or ClearStateProgram.
	ForeignAssets []basics.AssetIndex `codec:"apas"`

	// LocalStateSchema specifies the maximum number of each type that may
	// appear in the local key/value store of users who opt in to this
	// application. This field is only used during application creation
	// (when the ApplicationID field is 0),
	LocalStateSchema basics.StateSchema `codec:"apls"`

	// GlobalStateSchema specifies the maximum number of each type that may
	// appear in the global key/value store associated with this
	// application. This field is only used during application creation
	// (when the ApplicationID field is 0).
	GlobalStateSchema basics.StateSchema `codec:"apgs"`

	// ApprovalProgram is the stateful TEAL bytecode that executes on all
	// ApplicationCall transactions associated with this application,
	// except for those where OnCompletion is equal to ClearStateOC.
	ApprovalProgram []byte `codec:"apap"`

	// ClearStateProgram is the stateful TEAL bytecode that executes on
	// ApplicationCall transactions associated with this application when
	// OnCompletion is equal to ClearStateOC.
	ClearStateProgram []byte `codec:"apsu"`

	// ExtraProgramPages specifies the additional app program len requested in pages.
	ExtraProgramPages uint32 `codec:"apep,omitempty"`
}

// BoxRef names a box by its position in ForeignApps (0 is the called app)
// and its name.
type BoxRef struct {
	_struct struct{} `codec:",omitempty,omitemptyarray"`

	Index uint64 `codec:"i"`
	Name  []byte `codec:"n"`
}

// IsCreation reports whether the call creates a new application.
func (ac *ApplicationCallTxnFields) IsCreation() bool {
	return ac.ApplicationID == 0
}

// Empty indicates whether or not all the fields in the
// ApplicationCallTxnFields are zeroed out
func (ac *ApplicationCallTxnFields) Empty() bool {
	return ac.ApplicationID == 0 &&
		ac.OnCompletion == 0 &&
		ac.ApplicationArgs == nil &&
		ac.Accounts == nil &&
		ac.ForeignApps == nil &&
		ac.ForeignAssets == nil &&
		ac.Boxes == nil &&
		ac.LocalStateSchema == (basics.StateSchema{}) &&
		ac.GlobalStateSchema == (basics.StateSchema{}) &&
		ac.ApprovalProgram == nil &&
		ac.ClearStateProgram == nil &&
		ac.ExtraProgramPages == 0
}

// wellFormed performs some stateless checks on the ApplicationCall transaction
func (ac ApplicationCallTxnFields) wellFormed(proto config.ConsensusParams) error {

	// Ensure requested action is valid
	switch ac.OnCompletion {
	case NoOpOC, OptInOC, CloseOutOC, ClearStateOC, UpdateApplicationOC, DeleteApplicationOC:
		/* ok */
	default:
		return fmt.Errorf("invalid application OnCompletion")
	}

	// Programs may only be set for creation or update
	if ac.ApplicationID != 0 && ac.OnCompletion != UpdateApplicationOC {
		if len(ac.ApprovalProgram) != 0 || len(ac.ClearStateProgram) != 0 {
			return fmt.Errorf("programs may only be specified during application creation or update")
		}
	}
	if ac.ApplicationID == 0 && (len(ac.ApprovalProgram) == 0 || len(ac.ClearStateProgram) == 0) {
		return fmt.Errorf("application creation requires both approval and clear state programs")
	}

	// Schemas and ExtraProgramPages may only be set during application creation
	if ac.ApplicationID != 0 {
		if ac.LocalStateSchema != (basics.StateSchema{}) ||
			ac.GlobalStateSchema != (basics.StateSchema{}) {
			return fmt.Errorf("local and global state schemas are immutable")
		}
		if ac.ExtraProgramPages != 0 {
			return fmt.Errorf("tx.ExtraProgramPages is immutable")
		}
	}
	if ac.ExtraProgramPages > uint32(proto.MaxExtraAppProgramPages) {
		return fmt.Errorf("tx.ExtraProgramPages exceeds MaxExtraAppProgramPages = %d", proto.MaxExtraAppProgramPages)
	}
	programLen := len(ac.ApprovalProgram) + len(ac.ClearStateProgram)
	if limit := proto.MaxAppProgramLen * (1 + int(ac.ExtraProgramPages)); programLen > limit {
		return fmt.Errorf("app programs too long. max total len %d bytes", limit)
	}
	if err := ac.GlobalStateSchema.Validate(proto.MaxGlobalSchemaEntries); err != nil {
		return fmt.Errorf("tx.GlobalStateSchema invalid: %w", err)
	}
	if err := ac.LocalStateSchema.Validate(proto.MaxLocalSchemaEntries); err != nil {
		return fmt.Errorf("tx.LocalStateSchema invalid: %w", err)
	}

	// Limit total number of arguments
	if len(ac.ApplicationArgs) > proto.MaxAppArgs {
		return fmt.Errorf("too many application args, max %d", proto.MaxAppArgs)
	}

	// Sum up argument lengths
	var argSum uint64
	for _, arg := range ac.ApplicationArgs {
		argSum = basics.AddSaturate(argSum, uint64(len(arg)))
	}

	// Limit total length of all arguments
	if argSum > uint64(proto.MaxAppTotalArgLen) {
		return fmt.Errorf("application args total length too long, max len %d bytes", proto.MaxAppTotalArgLen)
	}

	// Limit number of accounts referred to in a single ApplicationCall
	if len(ac.Accounts) > proto.MaxAppTxnAccounts {
		return fmt.Errorf("tx.Accounts too long, max number of accounts is %d", proto.MaxAppTxnAccounts)
	}

	// Limit number of other app global states referred to
	if len(ac.ForeignApps) > proto.MaxAppTxnForeignApps {
		return fmt.Errorf("tx.ForeignApps too long, max number of foreign apps is %d", proto.MaxAppTxnForeignApps)
	}

	if len(ac.ForeignAssets) > proto.MaxAppTxnForeignAssets {
		return fmt.Errorf("tx.ForeignAssets too long, max number of foreign assets is %d", proto.MaxAppTxnForeignAssets)
	}

	// Limit the sum of all types of references that bring in account records
	if len(ac.Accounts)+len(ac.ForeignApps)+len(ac.ForeignAssets)+len(ac.Boxes) > proto.MaxAppTotalTxnReferences {
		return fmt.Errorf("tx references exceed MaxAppTotalTxnReferences = %d", proto.MaxAppTotalTxnReferences)
	}
	return nil
}
