package types

import "errors"

var (
	ErrConfigTooShort = errors.New("ErrConfigTooShort")
	ErrProofBadLength = errors.New("ErrProofBadLength")
	ErrBadSelector    = errors.New("ErrBadSelector")
	ErrBadRecoveryID  = errors.New("ErrBadRecoveryID")
	ErrRecoveryFailed = errors.New("ErrRecoveryFailed")
	ErrSigMismatch    = errors.New("ErrSigMismatch")
)
