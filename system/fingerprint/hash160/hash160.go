// Copyright The Dualsig Authors 2022 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package hash160 the RIPEMD160( SHA256( key ) ) fingerprint scheme, for
// environments whose fingerprints were registered under the classic
// bitcoin-style key hash.
package hash160

import (
	"github.com/dualsig/dualsig/common"
	"github.com/dualsig/dualsig/common/crypto"
	"github.com/dualsig/dualsig/types"
)

// Name scheme name
const Name = "hash160"

func init() {
	crypto.RegisterFingerprinter(Name, Driver{})
}

// Driver hash160 fingerprint driver
type Driver struct{}

// Fingerprint RIPEMD160( SHA256( pub ) )
func (d Driver) Fingerprint(pub []byte) types.Fingerprint {
	return types.Fingerprint(common.Rimp160AfterSha256(pub))
}
