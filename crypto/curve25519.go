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

package crypto

import (
	"crypto/ed25519"
	"crypto/rand"
	"errors"
	"io"

	"github.com/hdevalence/ed25519consensus"
)

type (
	// Seed holds the entropy needed to generate cryptographic keys.
	Seed [ed25519.SeedSize]byte

	// PublicKey is an exported ed25519PublicKey
	PublicKey [ed25519.PublicKeySize]byte

	// Signature is a cryptographic signature. It proves that a message was
	// produced by a holder of a cryptographic secret.
	Signature [ed25519.SignatureSize]byte
)

// BlankSignature is an empty signature structure, containing nothing but zeroes
var BlankSignature = Signature{}

// Blank tests to see if the given signature contains only zeros
func (s *Signature) Blank() bool {
	return (*s) == BlankSignature
}

// SignatureVerifier is a public key used to verify signatures.
type SignatureVerifier = PublicKey

// SignatureSecrets are used by an entity to produce unforgeable signatures over
// a message.
type SignatureSecrets struct {
	SignatureVerifier
	SK ed25519.PrivateKey
}

// ErrBadSeed is returned when a seed of the wrong length is supplied.
var ErrBadSeed = errors.New("seed must be 32 bytes")

// GenerateSignatureSecrets creates SignatureSecrets from a source of entropy.
func GenerateSignatureSecrets(seed Seed) *SignatureSecrets {
	sk := ed25519.NewKeyFromSeed(seed[:])
	var pk PublicKey
	copy(pk[:], sk.Public().(ed25519.PublicKey))
	return &SignatureSecrets{SignatureVerifier: pk, SK: sk}
}

// SecretsFromSeedBytes is GenerateSignatureSecrets for a raw byte slice.
func SecretsFromSeedBytes(b []byte) (*SignatureSecrets, error) {
	var seed Seed
	if len(b) != len(seed) {
		return nil, ErrBadSeed
	}
	copy(seed[:], b)
	return GenerateSignatureSecrets(seed), nil
}

// RandomSeed fills a fresh seed from the given reader, or crypto/rand when r
// is nil.
func RandomSeed(r io.Reader) (Seed, error) {
	if r == nil {
		r = rand.Reader
	}
	var seed Seed
	_, err := io.ReadFull(r, seed[:])
	return seed, err
}

// Sign produces a cryptographic Signature of a Hashable message, given
// cryptographic secrets.
func (s *SignatureSecrets) Sign(message Hashable) Signature {
	return s.SignBytes(HashRep(message))
}

// SignBytes signs a message directly, without first hashing.
// Caller is responsible for domain separation.
func (s *SignatureSecrets) SignBytes(message []byte) Signature {
	var sig Signature
	copy(sig[:], ed25519.Sign(s.SK, message))
	return sig
}

// Verify verifies that some holder of a cryptographic secret authentically
// signed a Hashable message.
func (v SignatureVerifier) Verify(message Hashable, sig Signature) bool {
	return v.VerifyBytes(HashRep(message), sig)
}

// VerifyBytes verifies a signature over a raw message under the ZIP-215
// rules the network applies.
func (v SignatureVerifier) VerifyBytes(message []byte, sig Signature) bool {
	return ed25519consensus.Verify(ed25519.PublicKey(v[:]), message, sig[:])
}
