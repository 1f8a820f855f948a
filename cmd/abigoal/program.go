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

	"github.com/spf13/cobra"
)

var (
	compileOutFile string
)

func init() {
	compileCmd.Flags().StringVarP(&compileOutFile, "outfile", "o", "", "Filename to write the program bytecode to")
}

var compileCmd = &cobra.Command{
	Use:   "compile [input file]",
	Short: "Compile a TEAL program on the node",
	Long:  `Compile a TEAL program with the node's assembler and print the program hash. Use "-" to read the source from stdin.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		fname := args[0]
		source, err := readFile(fname)
		if err != nil {
			reportErrorf(errorReadingFile, fname, err)
		}

		client := ensureClient()
		defer client.Close()

		program, hash, err := client.CompileProgram(context.Background(), source)
		if err != nil {
			reportErrorf(errorRequestFail, err)
		}
		reportInfof(infoCompiled, fname, hash.String())
		if compileOutFile != "" {
			if err := writeFile(compileOutFile, program, 0600); err != nil {
				reportErrorf(errorWritingFile, compileOutFile, err)
			}
		}
	},
}

var disassembleCmd = &cobra.Command{
	Use:   "disassemble [input file]",
	Short: "Disassemble program bytecode on the node",
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			reportErrorf(errorNoPosArgFile)
		}
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		fname := args[0]
		program, err := readFile(fname)
		if err != nil {
			reportErrorf(errorReadingFile, fname, err)
		}

		client := ensureClient()
		defer client.Close()

		text, err := client.DisassembleProgram(context.Background(), program)
		if err != nil {
			reportErrorf(errorRequestFail, err)
		}
		reportInfof("%s", text)
	},
}
