// Copyright The Dualsig Authors 2022 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package system pulls in every built-in crypto driver registration.
package system

import (
	_ "github.com/dualsig/dualsig/system/crypto/secp256k1rec"
	_ "github.com/dualsig/dualsig/system/fingerprint/blake160"
	_ "github.com/dualsig/dualsig/system/fingerprint/hash160"
	_ "github.com/dualsig/dualsig/system/fingerprint/keccak160"
)
