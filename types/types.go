// Copyright The Dualsig Authors 2022 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package types defines the fixed on-chain buffer layouts of the 2-of-2
// authorization scheme and the verification outcome surface.
package types

import "encoding/hex"

// Authorization config buffer layout. The prefix fields are opaque to the
// verifier, only their total length matters because it fixes the
// fingerprint offsets.
const (
	RoutingPrefixLen = 2
	CodeHashLen      = 32
	HashTypeLen      = 1
	ThresholdLen     = 1
	KeyCountLen      = 1
	ConfigPrefixLen  = RoutingPrefixLen + CodeHashLen + HashTypeLen + ThresholdLen + KeyCountLen

	FingerprintLen = 20
	KeyCount       = 2
	MinConfigLen   = ConfigPrefixLen + KeyCount*FingerprintLen
)

// Authorization proof buffer layout: two 65 byte recoverable signatures
// followed by two single byte key selectors.
const (
	SigPayloadLen = 64
	SigLen        = SigPayloadLen + 1
	ProofLen      = KeyCount*SigLen + KeyCount

	HashLen   = 32
	PubKeyLen = 65
)

// Fingerprint is the 20 byte registered identifier of a public key.
type Fingerprint [FingerprintLen]byte

func (fp Fingerprint) String() string {
	return hex.EncodeToString(fp[:])
}

// AuthConfig is the parsed view of an authorization config buffer.
// Threshold and NumKeys are carried for diagnostics only, the scheme is
// pinned at 2-of-2 and the prefix region is validated upstream.
type AuthConfig struct {
	Threshold    byte
	NumKeys      byte
	Fingerprints [KeyCount]Fingerprint
}

// ParseAuthConfig extracts the two registered key fingerprints from a raw
// config buffer. The parsed struct holds copies, the input is not retained.
func ParseAuthConfig(buf []byte) (*AuthConfig, error) {
	if len(buf) < MinConfigLen {
		return nil, ErrConfigTooShort
	}
	cfg := &AuthConfig{
		Threshold: buf[ConfigPrefixLen-2],
		NumKeys:   buf[ConfigPrefixLen-1],
	}
	for i := 0; i < KeyCount; i++ {
		off := ConfigPrefixLen + i*FingerprintLen
		copy(cfg.Fingerprints[i][:], buf[off:off+FingerprintLen])
	}
	return cfg, nil
}

// Fingerprint returns the registered fingerprint chosen by sel. The caller
// must have validated sel, see AuthProof.ValidateSelectors.
func (cfg *AuthConfig) Fingerprint(sel byte) Fingerprint {
	return cfg.Fingerprints[sel]
}

// AuthProof is the parsed view of a 132 byte authorization proof buffer.
type AuthProof struct {
	Sigs      [KeyCount][SigLen]byte
	Selectors [KeyCount]byte
}

// ParseAuthProof decomposes a raw proof buffer into its two signatures and
// two selectors. Any length other than 132 is rejected.
func ParseAuthProof(buf []byte) (*AuthProof, error) {
	if len(buf) != ProofLen {
		return nil, ErrProofBadLength
	}
	proof := &AuthProof{}
	for i := 0; i < KeyCount; i++ {
		copy(proof.Sigs[i][:], buf[i*SigLen:(i+1)*SigLen])
	}
	proof.Selectors[0] = buf[KeyCount*SigLen]
	proof.Selectors[1] = buf[KeyCount*SigLen+1]
	return proof, nil
}

// Sig returns the i-th 65 byte signature in [R || S || V] form.
func (p *AuthProof) Sig(i int) []byte {
	return p.Sigs[i][:]
}

// ValidateSelectors enforces the selector domain and distinctness. A 2-of-2
// policy must bind each signature to a distinct registered key, reusing one
// key for both slots never satisfies it.
func (p *AuthProof) ValidateSelectors() error {
	s0, s1 := p.Selectors[0], p.Selectors[1]
	if s0 >= KeyCount || s1 >= KeyCount {
		return ErrBadSelector
	}
	if s0 == s1 {
		return ErrBadSelector
	}
	return nil
}
