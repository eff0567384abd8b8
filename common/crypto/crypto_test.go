package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dualsig/dualsig/types"
)

type fakeRecoverer struct{}

func (fakeRecoverer) Recover(hash, sig []byte) ([]byte, error) { return nil, nil }

type fakeFingerprinter struct{}

func (fakeFingerprinter) Fingerprint(pub []byte) types.Fingerprint { return types.Fingerprint{} }

func TestRecovererRegistry(t *testing.T) {
	RegisterRecoverer("test_rec", fakeRecoverer{})
	r, err := NewRecoverer("test_rec")
	require.NoError(t, err)
	assert.NotNil(t, r)

	_, err = NewRecoverer("no_such_driver")
	assert.Error(t, err)

	assert.Panics(t, func() { RegisterRecoverer("test_rec", fakeRecoverer{}) })
	assert.Panics(t, func() { RegisterRecoverer("test_rec_nil", nil) })
}

func TestFingerprinterRegistry(t *testing.T) {
	RegisterFingerprinter("test_fp", fakeFingerprinter{})
	f, err := NewFingerprinter("test_fp")
	require.NoError(t, err)
	assert.NotNil(t, f)

	_, err = NewFingerprinter("no_such_driver")
	assert.Error(t, err)

	assert.Panics(t, func() { RegisterFingerprinter("test_fp", fakeFingerprinter{}) })

	names := FingerprinterList()
	assert.Contains(t, names, "test_fp")
}

func TestCRandBytes(t *testing.T) {
	a := CRandBytes(32)
	b := CRandBytes(32)
	assert.Len(t, a, 32)
	assert.NotEqual(t, a, b)
}
