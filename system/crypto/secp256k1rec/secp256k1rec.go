// Copyright The Dualsig Authors 2022 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package secp256k1rec recoverable ECDSA over secp256k1. Signatures are
// 65 bytes in [R || S || V] form where V is the recovery id in 0..3.
package secp256k1rec

import (
	secp256k1 "github.com/btcsuite/btcd/btcec/v2"
	ethcrypto "github.com/ethereum/go-ethereum/crypto"
	"github.com/inconshreveable/log15"

	"github.com/dualsig/dualsig/common/crypto"
	"github.com/dualsig/dualsig/types"
)

// const
const (
	Name = "secp256k1rec"

	privKeyBytesLen = 32
	maxRecoveryID   = 3
)

var log = log15.New("module", Name)

func init() {
	crypto.RegisterRecoverer(Name, Driver{})
}

// Driver the registered recovery driver, a stateless value.
type Driver struct{}

// Recover reconstructs the uncompressed 65 byte public key that produced
// sig over hash. The recovery id domain is checked before the curve math
// runs so that an out of range id is reported as its own failure kind.
func (d Driver) Recover(hash, sig []byte) ([]byte, error) {
	if len(hash) != types.HashLen || len(sig) != types.SigLen {
		return nil, types.ErrRecoveryFailed
	}
	if sig[types.SigPayloadLen] > maxRecoveryID {
		return nil, types.ErrBadRecoveryID
	}
	pub, err := ethcrypto.Ecrecover(hash, sig)
	if err != nil {
		log.Debug("ecrecover reject", "err", err)
		return nil, types.ErrRecoveryFailed
	}
	if len(pub) != types.PubKeyLen {
		return nil, types.ErrRecoveryFailed
	}
	return pub, nil
}

// GenKey generates a fresh secp256k1 private key.
func GenKey() []byte {
	privKeyBytes := [privKeyBytesLen]byte{}
	copy(privKeyBytes[:], crypto.CRandBytes(privKeyBytesLen))
	priv, _ := secp256k1.PrivKeyFromBytes(privKeyBytes[:])
	return priv.Serialize()
}

// PubKey derives the uncompressed 65 byte public key 0x04+X+Y.
func PubKey(privKey []byte) ([]byte, error) {
	priv, err := ethcrypto.ToECDSA(privKey)
	if err != nil {
		return nil, err
	}
	return ethcrypto.FromECDSAPub(&priv.PublicKey), nil
}

// Sign produces a 65 byte [R || S || V] recoverable signature over a
// 32 byte digest, V is 0 or 1.
func Sign(hash, privKey []byte) ([]byte, error) {
	priv, err := ethcrypto.ToECDSA(privKey)
	if err != nil {
		return nil, err
	}
	return ethcrypto.Sign(hash, priv)
}
