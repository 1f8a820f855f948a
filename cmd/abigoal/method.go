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
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"

	"github.com/d13co/algorand.observer/abicall"
	"github.com/d13co/algorand.observer/data/abi"
	"github.com/d13co/algorand.observer/data/basics"
	"github.com/d13co/algorand.observer/data/transactions"
	"github.com/d13co/algorand.observer/protocol"
)

var (
	methodSig      string
	methodJSONFile string
	methodArgs     []string
	methodFrom     string
	methodAppID    string
	onCompletion   string
	dryRun         bool
	planOutFile    string

	createApp              bool
	approvalProgFile       string
	clearProgFile          string
	globalSchemaUints      string
	globalSchemaByteSlices string
	localSchemaUints       string
	localSchemaByteSlices  string
	createNote             string
)

func init() {
	methodCmd.Flags().StringVar(&methodSig, "method", "", "Method signature, e.g. \"deposit(pay,uint64)void\"")
	methodCmd.Flags().StringVar(&methodJSONFile, "method-json", "", "File holding the ARC-4 JSON description of the method")
	methodCmd.Flags().StringArrayVar(&methodArgs, "arg", nil, "Argument value, once per method parameter in order. Transaction arguments take key=value pairs, e.g. to=ADDR,amount=1000")
	methodCmd.Flags().StringVarP(&methodFrom, "from", "f", "", "Account to call the method from")
	methodCmd.Flags().StringVar(&methodAppID, "app-id", "", "Application ID (defaults to the last application created)")
	methodCmd.Flags().StringVar(&onCompletion, "on-completion", "NoOp", "OnCompletion action of the call")
	methodCmd.Flags().BoolVar(&dryRun, "dry", false, "Print the transaction group without signing or sending it")
	methodCmd.Flags().StringVarP(&planOutFile, "out", "o", "", "With --dry, write the unsigned group to the given file")

	methodCmd.Flags().BoolVar(&createApp, "create", false, "Create an application with this call")
	methodCmd.Flags().StringVar(&approvalProgFile, "approval-prog", "", "TEAL source or bytecode of the approval program")
	methodCmd.Flags().StringVar(&clearProgFile, "clear-prog", "", "TEAL source or bytecode of the clear state program")
	methodCmd.Flags().StringVar(&globalSchemaUints, "global-ints", "", "Maximum number of integer values in global state")
	methodCmd.Flags().StringVar(&globalSchemaByteSlices, "global-byteslices", "", "Maximum number of byte slices in global state")
	methodCmd.Flags().StringVar(&localSchemaUints, "local-ints", "", "Maximum number of integer values in local state")
	methodCmd.Flags().StringVar(&localSchemaByteSlices, "local-byteslices", "", "Maximum number of byte slices in local state")
	methodCmd.Flags().StringVar(&createNote, "note", "", "Note of the creation call")

	methodCmd.MarkFlagRequired("from")
}

var methodCmd = &cobra.Command{
	Use:   "method",
	Short: "Invoke an ABI method of an application",
	Long:  `Build the transaction group of an ARC-4 method call, sign it with kmd, send it and wait for confirmation. Transaction arguments become earlier members of the group.`,
	Args:  validateNoPosArgsFn,
	Run: func(cmd *cobra.Command, _ []string) {
		method := loadMethod()
		sender, err := basics.UnmarshalChecksumAddress(methodFrom)
		if err != nil {
			reportErrorf(errorParseAddr, err)
		}

		client := ensureClient()
		defer client.Close()

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		inv := client.NewInvocation(method, sender)
		if err := fillArgs(&inv, methodArgs); err != nil {
			reportErrorf("%v", err)
		}
		if methodAppID != "" {
			inv.AppID = methodAppID
		}
		inv.OnCompletion, err = transactions.OnCompletionFromString(onCompletion)
		if err != nil {
			reportErrorf(errorOnCompletion, onCompletion)
		}
		if createApp {
			if approvalProgFile == "" || clearProgFile == "" {
				reportErrorf(errorCreateNeedsProgs)
			}
			inv.Creation, err = client.CreationParamsFromFiles(ctx, approvalProgFile, clearProgFile)
			if err != nil {
				reportErrorf(errorRequestFail, err)
			}
			inv.Creation.GlobalInts = globalSchemaUints
			inv.Creation.GlobalBytes = globalSchemaByteSlices
			inv.Creation.LocalInts = localSchemaUints
			inv.Creation.LocalBytes = localSchemaByteSlices
			inv.Creation.Note = createNote
		} else if inv.AppID == "" {
			reportErrorf(infoNoAppID)
		}

		if dryRun {
			plan, err := client.BuildPlan(ctx, inv)
			if err != nil {
				reportErrorf(errorBuildFail, err)
			}
			printPlan(plan)
			if planOutFile != "" {
				if err := writeFile(planOutFile, encodeGroup(plan), 0600); err != nil {
					reportErrorf(errorWritingFile, planOutFile, err)
				}
			}
			return
		}

		res, err := client.Invoke(ctx, inv)
		if err != nil {
			reportErrorf(errorInvokeFail, err)
		}
		reportSuccessf(infoSent, res.TxID, res.ConfirmedRound)
		if inv.IsCreation() {
			reportSuccessf(infoCreatedApp, res.AppID)
		}
		if res.HasReturn {
			reportInfof(infoReturn, method.Name, res.ReturnJSON)
		}
	},
}

func loadMethod() abi.Method {
	if (methodSig == "") == (methodJSONFile == "") {
		reportErrorf(errorMethodSource)
	}
	if methodSig != "" {
		m, err := abi.ParseMethodSignature(methodSig)
		if err != nil {
			reportErrorf(errorParseMethod, err)
		}
		return m
	}
	data, err := readFile(methodJSONFile)
	if err != nil {
		reportErrorf(errorReadingFile, methodJSONFile, err)
	}
	m, err := abi.MethodFromJSON(data)
	if err != nil {
		reportErrorf(errorParseMethod, err)
	}
	return m
}

// fillArgs assigns the --arg values to the invocation's arguments in
// declared order.
func fillArgs(inv *abicall.Invocation, values []string) error {
	if len(values) != len(inv.Args) {
		return fmt.Errorf(errorArgCount, inv.Method.Signature(), len(inv.Args), len(values))
	}
	for i := range inv.Args {
		if !inv.Args[i].IsTransaction() {
			inv.Args[i].Value = values[i]
			continue
		}
		txn, err := parseTxnArg(values[i])
		if err != nil {
			return fmt.Errorf(errorParseTxnArg, i, inv.Args[i].Type, err)
		}
		inv.Args[i].Txn = txn
	}
	return nil
}

// parseTxnArg reads a comma separated list of key=value pairs into a
// transaction argument. Unknown keys are rejected.
func parseTxnArg(text string) (abicall.TxnArgValue, error) {
	var v abicall.TxnArgValue
	fields := map[string]*string{
		"to":       &v.To,
		"amount":   &v.Amount,
		"asset":    &v.Asset,
		"app":      &v.App,
		"frozen":   &v.Frozen,
		"note":     &v.Note,
		"total":    &v.Total,
		"decimals": &v.Decimals,
		"unit":     &v.UnitName,
		"name":     &v.AssetName,
	}
	if strings.TrimSpace(text) == "" {
		return v, nil
	}
	for _, pair := range strings.Split(text, ",") {
		key, value, ok := strings.Cut(pair, "=")
		if !ok {
			return v, fmt.Errorf("%q is not key=value", pair)
		}
		dst, known := fields[strings.ToLower(strings.TrimSpace(key))]
		if !known {
			return v, fmt.Errorf("unknown field %q", key)
		}
		*dst = strings.TrimSpace(value)
	}
	return v, nil
}

func printPlan(plan *abicall.Plan) {
	reportInfof(infoGroup, base64.StdEncoding.EncodeToString(plan.GroupID[:]), len(plan.Txns))
	for i, txn := range plan.Txns {
		marker := " "
		if i == plan.CallIndex {
			marker = "*"
		}
		reportInfof("%s %d %-6s %s fee=%d", marker, i, txn.Type, txn.ID(), txn.Fee.Raw)
	}
	for _, slot := range plan.Slots {
		if slot.Kind == abicall.TxnSlot {
			reportInfof("  %s: group[%d]", slot.Arg, slot.GroupIndex)
		} else {
			reportInfof("  %s: %s", slot.Arg, slot.Value)
		}
	}
	for i, arg := range plan.AppArgs {
		reportInfof("  app-arg[%d]: %s", i, base64.StdEncoding.EncodeToString(arg))
	}
	if refs := plan.Call().Accounts; len(refs) > 0 {
		reportInfof("  accounts: %v", refs)
	}
	if refs := plan.Call().ForeignApps; len(refs) > 0 {
		reportInfof("  foreign apps: %v", refs)
	}
	if refs := plan.Call().ForeignAssets; len(refs) > 0 {
		reportInfof("  foreign assets: %v", refs)
	}
	if plan.Call().ExtraProgramPages > 0 {
		reportWarnf("creation needs %d extra program pages", plan.Call().ExtraProgramPages)
	}
}

// encodeGroup returns the group as concatenated unsigned transactions, the
// format goal reads back with "clerk sign".
func encodeGroup(plan *abicall.Plan) []byte {
	var out []byte
	for _, txn := range plan.Txns {
		out = append(out, protocol.Encode(&transactions.SignedTxn{Txn: txn})...)
	}
	return out
}
