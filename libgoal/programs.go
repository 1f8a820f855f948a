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

package libgoal

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/d13co/algorand.observer/abicall"
	"github.com/d13co/algorand.observer/crypto"
)

// CompileProgram compiles TEAL source on the node and returns the bytecode
// and its hash.
func (c *Client) CompileProgram(ctx context.Context, source []byte) ([]byte, crypto.Digest, error) {
	return c.algod.Compile(ctx, source)
}

// DisassembleProgram turns bytecode back into TEAL source on the node.
func (c *Client) DisassembleProgram(ctx context.Context, program []byte) (string, error) {
	return c.algod.Disassemble(ctx, program)
}

// isSource reports whether data looks like TEAL source rather than
// bytecode.
func isSource(data []byte) bool {
	return utf8.Valid(data) && bytes.HasPrefix(bytes.TrimSpace(data), []byte("#pragma version"))
}

// ReadProgram loads a program from disk. TEAL source is compiled on the
// node; anything else is taken to be bytecode already.
func (c *Client) ReadProgram(ctx context.Context, path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if !isSource(data) {
		return data, nil
	}
	prog, _, err := c.CompileProgram(ctx, data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return prog, nil
}

// CreationParamsFromFiles reads the approval and clear programs of an
// application to create. Schema counts and note are left for the caller.
func (c *Client) CreationParamsFromFiles(ctx context.Context, approvalPath, clearPath string) (*abicall.CreationParams, error) {
	approval, err := c.ReadProgram(ctx, approvalPath)
	if err != nil {
		return nil, err
	}
	clearProg, err := c.ReadProgram(ctx, clearPath)
	if err != nil {
		return nil, err
	}
	return &abicall.CreationParams{ApprovalProgram: approval, ClearProgram: clearProg}, nil
}
