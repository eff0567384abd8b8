// Copyright The Dualsig Authors 2022 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package keccak160 the Keccak256( key )[:20] fingerprint scheme, for
// environments registered under an ethereum-style key hash.
package keccak160

import (
	ethcrypto "github.com/ethereum/go-ethereum/crypto"

	"github.com/dualsig/dualsig/common/crypto"
	"github.com/dualsig/dualsig/types"
)

// Name scheme name
const Name = "keccak160"

func init() {
	crypto.RegisterFingerprinter(Name, Driver{})
}

// Driver keccak160 fingerprint driver
type Driver struct{}

// Fingerprint Keccak256( pub )[:20]
func (d Driver) Fingerprint(pub []byte) (fp types.Fingerprint) {
	sum := ethcrypto.Keccak256(pub)
	copy(fp[:], sum[:types.FingerprintLen])
	return
}
