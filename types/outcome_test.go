package types

import (
	"testing"

	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestOutcomeCodes(t *testing.T) {
	assert.Equal(t, 0, OutcomeOK.Code())
	assert.Equal(t, 1, OutcomeSigMismatch.Code())
	assert.Equal(t, 2, OutcomeConfigTooShort.Code())
	assert.Equal(t, 3, OutcomeProofBadLength.Code())
	assert.Equal(t, 4, OutcomeBadSelector.Code())
	assert.Equal(t, 5, OutcomeBadRecoveryID.Code())
	assert.Equal(t, 5, OutcomeRecoveryFailed.Code())
}

func TestOutcomeOf(t *testing.T) {
	assert.Equal(t, OutcomeOK, OutcomeOf(nil))
	assert.Equal(t, OutcomeSigMismatch, OutcomeOf(ErrSigMismatch))
	assert.Equal(t, OutcomeConfigTooShort, OutcomeOf(ErrConfigTooShort))
	assert.Equal(t, OutcomeProofBadLength, OutcomeOf(ErrProofBadLength))
	assert.Equal(t, OutcomeBadSelector, OutcomeOf(ErrBadSelector))
	assert.Equal(t, OutcomeBadRecoveryID, OutcomeOf(ErrBadRecoveryID))
	assert.Equal(t, OutcomeRecoveryFailed, OutcomeOf(ErrRecoveryFailed))
}

func TestOutcomeOfWrapped(t *testing.T) {
	// boundaries wrap with pkg/errors, the mapping must see through
	err := pkgerrors.Wrap(ErrBadRecoveryID, "recover signer 1")
	assert.Equal(t, OutcomeBadRecoveryID, OutcomeOf(err))
}

func TestOutcomeString(t *testing.T) {
	assert.Equal(t, "OK", OutcomeOK.String())
	assert.Equal(t, "SigMismatch", OutcomeSigMismatch.String())
	assert.Equal(t, "RecoveryFailed", OutcomeRecoveryFailed.String())
}
