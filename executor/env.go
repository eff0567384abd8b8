// Copyright The Dualsig Authors 2022 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import "github.com/dualsig/dualsig/common"

// BufEnv an in-memory Env over copied snapshots. The copies decouple the
// run from whatever buffer the caller keeps mutating.
type BufEnv struct {
	config []byte
	proof  []byte
	hash   []byte
}

// NewBufEnv snapshots the three inputs of one run.
func NewBufEnv(config, proof, hash []byte) *BufEnv {
	return &BufEnv{
		config: common.CopyBytes(config),
		proof:  common.CopyBytes(proof),
		hash:   common.CopyBytes(hash),
	}
}

// AuthConfig raw config buffer
func (e *BufEnv) AuthConfig() []byte { return e.config }

// AuthProof raw proof buffer
func (e *BufEnv) AuthProof() []byte { return e.proof }

// MessageHash canonical transaction digest
func (e *BufEnv) MessageHash() []byte { return e.hash }
