// Copyright The Dualsig Authors 2022 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import "errors"

// Outcome is the closed result set of one verification run. Every run
// produces exactly one outcome, the numeric exit code is the only
// contractual surface.
type Outcome int32

const (
	OutcomeOK Outcome = iota
	OutcomeSigMismatch
	OutcomeConfigTooShort
	OutcomeProofBadLength
	OutcomeBadSelector
	OutcomeBadRecoveryID
	OutcomeRecoveryFailed
)

// Code maps the outcome to its process exit code. BadRecoveryID and
// RecoveryFailed are distinct failure kinds sharing code 5.
func (o Outcome) Code() int {
	switch o {
	case OutcomeOK:
		return 0
	case OutcomeSigMismatch:
		return 1
	case OutcomeConfigTooShort:
		return 2
	case OutcomeProofBadLength:
		return 3
	case OutcomeBadSelector:
		return 4
	case OutcomeBadRecoveryID, OutcomeRecoveryFailed:
		return 5
	}
	return 5
}

func (o Outcome) String() string {
	switch o {
	case OutcomeOK:
		return "OK"
	case OutcomeSigMismatch:
		return "SigMismatch"
	case OutcomeConfigTooShort:
		return "ConfigTooShort"
	case OutcomeProofBadLength:
		return "ProofBadLength"
	case OutcomeBadSelector:
		return "BadSelector"
	case OutcomeBadRecoveryID:
		return "BadRecoveryID"
	case OutcomeRecoveryFailed:
		return "RecoveryFailed"
	}
	return "Unknown"
}

// OutcomeOf maps a pipeline error to its outcome. Errors that did not
// originate from this package count as recovery failures, they can only
// surface from the recovery primitive.
func OutcomeOf(err error) Outcome {
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, ErrSigMismatch):
		return OutcomeSigMismatch
	case errors.Is(err, ErrConfigTooShort):
		return OutcomeConfigTooShort
	case errors.Is(err, ErrProofBadLength):
		return OutcomeProofBadLength
	case errors.Is(err, ErrBadSelector):
		return OutcomeBadSelector
	case errors.Is(err, ErrBadRecoveryID):
		return OutcomeBadRecoveryID
	}
	return OutcomeRecoveryFailed
}
