// Copyright The Dualsig Authors 2022 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package blake160 the default fingerprint scheme: BLAKE2b-256 of the
// 65 byte uncompressed key, truncated to the first 20 bytes. Must match
// the scheme the registered fingerprints were produced under, a mismatch
// makes every valid signature look invalid.
package blake160

import (
	"github.com/dualsig/dualsig/common"
	"github.com/dualsig/dualsig/common/crypto"
	"github.com/dualsig/dualsig/types"
)

// Name scheme name
const Name = "blake160"

func init() {
	crypto.RegisterFingerprinter(Name, Driver{})
}

// Driver blake160 fingerprint driver
type Driver struct{}

// Fingerprint BLAKE2b-256( pub )[:20]
func (d Driver) Fingerprint(pub []byte) (fp types.Fingerprint) {
	sum := common.Blake2b256(pub)
	copy(fp[:], sum[:types.FingerprintLen])
	return
}
