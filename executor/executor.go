// Copyright The Dualsig Authors 2022 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package executor runs the 2-of-2 authorization pipeline: load the
// config and proof buffers, validate them, recover both signers in order
// and compare fingerprints. One call, one outcome, no retries.
package executor

import (
	"github.com/dualsig/dualsig/common/crypto"
	"github.com/dualsig/dualsig/common/log"
	"github.com/dualsig/dualsig/types"
)

var elog = log.New("module", "dualsig.exec")

// Env supplies the read-only inputs of one verification run. The
// accessors are snapshot getters, acquiring the buffers (files, host
// syscalls) happens before a Verifier is built.
type Env interface {
	// AuthConfig the raw authorization config buffer.
	AuthConfig() []byte
	// AuthProof the raw 132 byte proof buffer.
	AuthProof() []byte
	// MessageHash the canonical 32 byte transaction digest, identical
	// for both signature checks of the run.
	MessageHash() []byte
}

// Verifier checks one transaction against a 2-of-2 authorization config.
type Verifier struct {
	env Env
	rec crypto.Recoverer
	fpr crypto.Fingerprinter
}

// NewVerifier wires an environment with a recovery and a fingerprint
// driver. The fingerprint driver must be the scheme the config's
// fingerprints were registered under.
func NewVerifier(env Env, rec crypto.Recoverer, fpr crypto.Fingerprinter) *Verifier {
	return &Verifier{env: env, rec: rec, fpr: fpr}
}

// Verify runs the pipeline and returns exactly one outcome. Structural
// checks run before any curve math, signature 0 is always checked before
// signature 1, and the first failing step terminates the run. The check
// order is contractual: it decides which code surfaces when more than
// one thing is wrong.
func (v *Verifier) Verify() types.Outcome {
	cfg, err := types.ParseAuthConfig(v.env.AuthConfig())
	if err != nil {
		elog.Error("parse auth config", "err", err)
		return types.OutcomeOf(err)
	}
	proof, err := types.ParseAuthProof(v.env.AuthProof())
	if err != nil {
		elog.Error("parse auth proof", "err", err)
		return types.OutcomeOf(err)
	}
	if err := proof.ValidateSelectors(); err != nil {
		elog.Error("validate selectors", "sel0", proof.Selectors[0], "sel1", proof.Selectors[1])
		return types.OutcomeOf(err)
	}

	hash := v.env.MessageHash()
	for i := 0; i < types.KeyCount; i++ {
		pub, err := v.rec.Recover(hash, proof.Sig(i))
		if err != nil {
			elog.Error("recover signer", "index", i, "err", err)
			return types.OutcomeOf(err)
		}
		fp := v.fpr.Fingerprint(pub)
		if fp != cfg.Fingerprint(proof.Selectors[i]) {
			elog.Error("fingerprint mismatch", "index", i, "selector", proof.Selectors[i])
			return types.OutcomeSigMismatch
		}
	}
	return types.OutcomeOK
}
