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
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/d13co/algorand.observer/libgoal"
	"github.com/d13co/algorand.observer/logging"
)

var log = logging.Base()

var (
	dataDir        string
	walletPassword string
)

const (
	stdinFileNameValue  = "-"
	stdoutFilenameValue = "-"
)

func init() {
	rootCmd.AddCommand(methodCmd)
	rootCmd.AddCommand(compileCmd)
	rootCmd.AddCommand(disassembleCmd)
	rootCmd.AddCommand(amountCmd)
	rootCmd.AddCommand(appIDCmd)

	rootCmd.PersistentFlags().StringVarP(&dataDir, "datadir", "d", "", "Data directory holding config.json and the application id store")
	rootCmd.PersistentFlags().StringVar(&walletPassword, "wallet-password", "", "Password of the configured kmd wallet")
}

var rootCmd = &cobra.Command{
	Use:   "abigoal",
	Short: "Build, sign and send ABI method calls",
	Long:  `abigoal builds ARC-4 method calls into transaction groups, signs them with kmd and waits for the node to confirm them.`,
	Args:  validateNoPosArgsFn,
	Run: func(cmd *cobra.Command, args []string) {
		// If no arguments passed, we should fallback to help
		cmd.HelpFunc()(cmd, args)
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func validateNoPosArgsFn(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("this command does not take positional arguments. found: %v", args)
	}
	return nil
}

func ensureClient() *libgoal.Client {
	client, err := libgoal.MakeClientFromConfig(libgoal.ClientConfig{
		DataDir:        dataDir,
		WalletPassword: walletPassword,
		Log:            log,
	})
	if err != nil {
		reportErrorf(errorClientInit, err)
	}
	return client
}

func reportInfof(format string, args ...interface{}) {
	fmt.Printf(format+"\n", args...)
}

func reportSuccessf(format string, args ...interface{}) {
	fmt.Println(color.New(color.FgGreen).Sprintf(format, args...))
}

func reportWarnf(format string, args ...interface{}) {
	fmt.Println(color.New(color.FgYellow).Sprintf("Warning: "+format, args...))
}

func reportErrorf(format string, args ...interface{}) {
	fmt.Fprintln(os.Stderr, color.New(color.FgRed).Sprintf(format, args...))
	os.Exit(1)
}

// writeFile is a wrapper of os.WriteFile which considers the special
// case of stdout filename
func writeFile(filename string, data []byte, perm os.FileMode) error {
	if filename == stdoutFilenameValue {
		_, err := os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(filename, data, perm)
}

// readFile is a wrapper of os.ReadFile which considers the
// special case of stdin filename
func readFile(filename string) ([]byte, error) {
	if filename == stdinFileNameValue {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(filename)
}
