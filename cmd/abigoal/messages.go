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

const (
	// General
	errorClientInit   = "Cannot open client: %v"
	errorRequestFail  = "Error processing command: %s"
	errorReadingFile  = "Cannot read %s: %v"
	errorWritingFile  = "Cannot write %s: %v"
	errorParseAddr    = "Failed to parse addr: %v"
	errorNoPosArgFile = "A single file name argument is required"

	// Method
	errorMethodSource     = "Exactly one of --method or --method-json is required"
	errorParseMethod      = "Cannot parse method: %v"
	errorArgCount         = "Method %s takes %d arguments, got %d"
	errorParseTxnArg      = "Argument %d (%s): %v"
	errorOnCompletion     = "Unknown on-completion %q"
	errorCreateNeedsProgs = "--create requires --approval-prog and --clear-prog"
	errorBuildFail        = "Cannot build method call: %v"
	errorInvokeFail       = "Method call failed: %v"
	infoNoAppID           = "No application id given or remembered; pass --app-id or --create"
	infoSent              = "Transaction %s committed in round %d"
	infoCreatedApp        = "Created application %d"
	infoReturn            = "Method %s returned: %s"
	infoGroup             = "Group %s (%d transactions)"

	// Programs
	infoCompiled = "%s: %s"

	// App id
	infoRememberedAppID   = "Remembered application id: %s"
	infoNoRememberedAppID = "No application id remembered"
	infoForgotAppID       = "Forgot remembered application id"
)
