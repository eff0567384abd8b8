// Copyright The Dualsig Authors 2022 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package address renders key fingerprints as base58check strings for
// display and tooling. The verifier compares raw fingerprints, addresses
// never enter the verification pipeline.
package address

import (
	"bytes"
	"encoding/hex"
	"errors"

	"github.com/decred/base58"
	lru "github.com/hashicorp/golang-lru"

	"github.com/dualsig/dualsig/common"
	"github.com/dualsig/dualsig/types"
)

// NormalVer address version byte
const NormalVer byte = 0

var addressCache *lru.Cache
var checkAddressCache *lru.Cache

func init() {
	addressCache, _ = lru.New(10240)
	checkAddressCache, _ = lru.New(10240)
}

// Address a versioned, checksummed rendering of a fingerprint.
type Address struct {
	Version  byte
	Hash160  [types.FingerprintLen]byte
	Checksum []byte
	Enc58str string
}

// FromFingerprint wraps a registered key fingerprint as an address.
func FromFingerprint(fp types.Fingerprint) *Address {
	a := &Address{Version: NormalVer}
	copy(a.Hash160[:], fp[:])
	return a
}

// Encode encodes with caching, the same fingerprint is asked for
// repeatedly by the CLI tooling.
func Encode(fp types.Fingerprint) string {
	if value, ok := addressCache.Get(fp); ok {
		return value.(string)
	}
	addrstr := FromFingerprint(fp).String()
	addressCache.Add(fp, addrstr)
	return addrstr
}

func (a *Address) String() string {
	if a.Enc58str == "" {
		var ad [25]byte
		ad[0] = a.Version
		copy(ad[1:21], a.Hash160[:])
		if a.Checksum == nil {
			sh := common.Sha2Sum(ad[0:21])
			a.Checksum = make([]byte, 4)
			copy(a.Checksum, sh[:4])
		}
		copy(ad[21:25], a.Checksum)
		a.Enc58str = base58.Encode(ad[:])
	}
	return a.Enc58str
}

// CheckAddress validates the base58check form of addr.
func CheckAddress(addr string) (e error) {
	if value, ok := checkAddressCache.Get(addr); ok {
		if value == nil {
			return nil
		}
		return value.(error)
	}
	dec := base58.Decode(addr)
	if dec == nil {
		e = errors.New("Cannot decode b58 string '" + addr + "'")
		checkAddressCache.Add(addr, e)
		return
	}
	if len(dec) < 25 {
		e = errors.New("Address too short " + hex.EncodeToString(dec))
		checkAddressCache.Add(addr, e)
		return
	}
	if len(dec) == 25 {
		sh := common.Sha2Sum(dec[0:21])
		if !bytes.Equal(sh[:4], dec[21:25]) {
			e = errors.New("Address Checksum error")
		}
	}
	checkAddressCache.Add(addr, e)
	return
}

// NewAddrFromString decodes a base58check address back to its fingerprint
// form, rejecting malformed or mis-checksummed input.
func NewAddrFromString(hs string) (a *Address, e error) {
	dec := base58.Decode(hs)
	if dec == nil {
		return nil, errors.New("Cannot decode b58 string '" + hs + "'")
	}
	if len(dec) != 25 {
		return nil, errors.New("Address bad length " + hex.EncodeToString(dec))
	}
	sh := common.Sha2Sum(dec[0:21])
	if !bytes.Equal(sh[:4], dec[21:25]) {
		return nil, errors.New("Address Checksum error")
	}
	a = new(Address)
	a.Version = dec[0]
	copy(a.Hash160[:], dec[1:21])
	a.Checksum = make([]byte, 4)
	copy(a.Checksum, dec[21:25])
	a.Enc58str = hs
	return a, nil
}
