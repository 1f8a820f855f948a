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

package account

import (
	"context"
	"fmt"

	"github.com/algorand/go-deadlock"

	"github.com/d13co/algorand.observer/crypto"
	"github.com/d13co/algorand.observer/data/basics"
	"github.com/d13co/algorand.observer/data/transactions"
)

// A Root encapsulates a set of secrets which controls some store of money.
type Root struct {
	secrets *crypto.SignatureSecrets
}

// GenerateRoot uses the system's source of randomness to generate an
// account.
func GenerateRoot() (Root, error) {
	seed, err := crypto.RandomSeed(nil)
	if err != nil {
		return Root{}, err
	}
	return ImportRoot(seed), nil
}

// ImportRoot instantiates an account from a seed.
func ImportRoot(seed crypto.Seed) Root {
	return Root{secrets: crypto.GenerateSignatureSecrets(seed)}
}

// Secrets returns the signing secrets associated with the Root account.
func (root Root) Secrets() *crypto.SignatureSecrets {
	return root.secrets
}

// Address returns the address associated with the Root account.
func (root Root) Address() basics.Address {
	return basics.Address(root.secrets.SignatureVerifier)
}

// Keyring signs transaction groups with locally held keys.
type Keyring struct {
	mu    deadlock.RWMutex
	roots map[basics.Address]Root
}

// MakeKeyring returns a keyring holding the given accounts.
func MakeKeyring(roots ...Root) *Keyring {
	k := &Keyring{roots: make(map[basics.Address]Root, len(roots))}
	for _, r := range roots {
		k.roots[r.Address()] = r
	}
	return k
}

// Add registers another account with the keyring.
func (k *Keyring) Add(root Root) {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.roots[root.Address()] = root
}

// Addresses lists the accounts the keyring can sign for.
func (k *Keyring) Addresses() []basics.Address {
	k.mu.RLock()
	defer k.mu.RUnlock()
	out := make([]basics.Address, 0, len(k.roots))
	for addr := range k.roots {
		out = append(out, addr)
	}
	return out
}

// SignGroup signs every transaction of a group, in order. It fails without
// signing anything if any sender is unknown to the keyring.
func (k *Keyring) SignGroup(ctx context.Context, txns []transactions.Transaction) ([]transactions.SignedTxn, error) {
	k.mu.RLock()
	defer k.mu.RUnlock()

	for i, tx := range txns {
		if _, ok := k.roots[tx.Sender]; !ok {
			return nil, fmt.Errorf("no key for sender %v of transaction %d", tx.Sender, i)
		}
	}

	out := make([]transactions.SignedTxn, len(txns))
	for i, tx := range txns {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		out[i] = tx.Sign(k.roots[tx.Sender].secrets)
	}
	return out, nil
}
