package executor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dualsig/dualsig/common"
	"github.com/dualsig/dualsig/common/crypto"
	"github.com/dualsig/dualsig/system/crypto/secp256k1rec"
	"github.com/dualsig/dualsig/system/fingerprint/blake160"
	"github.com/dualsig/dualsig/types"
)

var (
	rec crypto.Recoverer     = secp256k1rec.Driver{}
	fpr crypto.Fingerprinter = blake160.Driver{}
)

type keypair struct {
	priv []byte
	pub  []byte
	fp   types.Fingerprint
}

func genPair(t *testing.T) keypair {
	t.Helper()
	priv := secp256k1rec.GenKey()
	pub, err := secp256k1rec.PubKey(priv)
	require.NoError(t, err)
	return keypair{priv: priv, pub: pub, fp: fpr.Fingerprint(pub)}
}

func mustSign(t *testing.T, hash []byte, kp keypair) []byte {
	t.Helper()
	sig, err := secp256k1rec.Sign(hash, kp.priv)
	require.NoError(t, err)
	return sig
}

func buildConfig(fp0, fp1 types.Fingerprint) []byte {
	buf := make([]byte, types.ConfigPrefixLen, types.MinConfigLen)
	buf[types.ConfigPrefixLen-2] = types.KeyCount
	buf[types.ConfigPrefixLen-1] = types.KeyCount
	buf = append(buf, fp0[:]...)
	buf = append(buf, fp1[:]...)
	return buf
}

func buildProof(sig0, sig1 []byte, sel0, sel1 byte) []byte {
	buf := make([]byte, 0, types.ProofLen)
	buf = append(buf, sig0...)
	buf = append(buf, sig1...)
	buf = append(buf, sel0, sel1)
	return buf
}

func newRealVerifier(config, proof, hash []byte) *Verifier {
	return NewVerifier(NewBufEnv(config, proof, hash), rec, fpr)
}

func TestVerifyBothValid(t *testing.T) {
	a, b := genPair(t), genPair(t)
	hash := common.Sha256([]byte("transfer 10 from a+b"))
	config := buildConfig(a.fp, b.fp)

	proof := buildProof(mustSign(t, hash, a), mustSign(t, hash, b), 0, 1)
	assert.Equal(t, types.OutcomeOK, newRealVerifier(config, proof, hash).Verify())

	// slots swapped with matching selectors still authorize
	proof = buildProof(mustSign(t, hash, b), mustSign(t, hash, a), 1, 0)
	assert.Equal(t, types.OutcomeOK, newRealVerifier(config, proof, hash).Verify())
}

func TestVerifyWrongKeySlot0(t *testing.T) {
	a, b := genPair(t), genPair(t)
	hash := common.Sha256([]byte("tx"))
	config := buildConfig(a.fp, b.fp)

	// b signed in the slot claiming key a
	sigB := mustSign(t, hash, b)
	proof := buildProof(sigB, sigB, 0, 1)
	out := newRealVerifier(config, proof, hash).Verify()
	assert.Equal(t, types.OutcomeSigMismatch, out)
	assert.Equal(t, 1, out.Code())
}

func TestVerifyWrongKeySlot1(t *testing.T) {
	a, b := genPair(t), genPair(t)
	hash := common.Sha256([]byte("tx"))
	config := buildConfig(a.fp, b.fp)

	sigA := mustSign(t, hash, a)
	proof := buildProof(sigA, sigA, 0, 1)
	assert.Equal(t, types.OutcomeSigMismatch, newRealVerifier(config, proof, hash).Verify())
}

func TestVerifyConfigTooShort(t *testing.T) {
	a, b := genPair(t), genPair(t)
	hash := common.Sha256([]byte("tx"))
	proof := buildProof(mustSign(t, hash, a), mustSign(t, hash, b), 0, 1)

	out := newRealVerifier(make([]byte, 30), proof, hash).Verify()
	assert.Equal(t, types.OutcomeConfigTooShort, out)
	assert.Equal(t, 2, out.Code())
}

func TestVerifyProofBadLength(t *testing.T) {
	a, b := genPair(t), genPair(t)
	hash := common.Sha256([]byte("tx"))
	config := buildConfig(a.fp, b.fp)

	out := newRealVerifier(config, make([]byte, 100), hash).Verify()
	assert.Equal(t, types.OutcomeProofBadLength, out)
	assert.Equal(t, 3, out.Code())
}

func TestVerifyBadSelectors(t *testing.T) {
	a, b := genPair(t), genPair(t)
	hash := common.Sha256([]byte("tx"))
	config := buildConfig(a.fp, b.fp)
	sigA, sigB := mustSign(t, hash, a), mustSign(t, hash, b)

	for _, sel := range [][2]byte{{0, 0}, {1, 1}, {0, 5}, {2, 1}} {
		proof := buildProof(sigA, sigB, sel[0], sel[1])
		out := newRealVerifier(config, proof, hash).Verify()
		assert.Equal(t, types.OutcomeBadSelector, out, "sel=%v", sel)
		assert.Equal(t, 4, out.Code())
	}
}

func TestVerifyBadRecoveryID(t *testing.T) {
	a, b := genPair(t), genPair(t)
	hash := common.Sha256([]byte("tx"))
	config := buildConfig(a.fp, b.fp)

	sigA := mustSign(t, hash, a)
	sigA[types.SigPayloadLen] = 7
	proof := buildProof(sigA, mustSign(t, hash, b), 0, 1)
	out := newRealVerifier(config, proof, hash).Verify()
	assert.Equal(t, types.OutcomeBadRecoveryID, out)
	assert.Equal(t, 5, out.Code())
}

func TestVerifyRecoveryFailed(t *testing.T) {
	a, b := genPair(t), genPair(t)
	hash := common.Sha256([]byte("tx"))
	config := buildConfig(a.fp, b.fp)

	garbage := make([]byte, types.SigLen)
	for i := 0; i < types.SigPayloadLen; i++ {
		garbage[i] = 0xff
	}
	proof := buildProof(garbage, mustSign(t, hash, b), 0, 1)
	out := newRealVerifier(config, proof, hash).Verify()
	assert.Equal(t, types.OutcomeRecoveryFailed, out)
	assert.Equal(t, 5, out.Code())
}

func TestVerifyDeterministic(t *testing.T) {
	a, b := genPair(t), genPair(t)
	hash := common.Sha256([]byte("replayed by every validator"))
	config := buildConfig(a.fp, b.fp)
	proof := buildProof(mustSign(t, hash, a), mustSign(t, hash, b), 0, 1)

	v := newRealVerifier(config, proof, hash)
	first := v.Verify()
	for i := 0; i < 20; i++ {
		assert.Equal(t, first, v.Verify())
		assert.Equal(t, first, newRealVerifier(config, proof, hash).Verify())
	}
}

func TestBufEnvSnapshots(t *testing.T) {
	a, b := genPair(t), genPair(t)
	hash := common.Sha256([]byte("tx"))
	config := buildConfig(a.fp, b.fp)
	proof := buildProof(mustSign(t, hash, a), mustSign(t, hash, b), 0, 1)

	env := NewBufEnv(config, proof, hash)
	// mutating the caller's buffers must not leak into the run
	config[types.ConfigPrefixLen] ^= 0xff
	proof[0] ^= 0xff
	hash[0] ^= 0xff
	assert.Equal(t, types.OutcomeOK, NewVerifier(env, rec, fpr).Verify())
}

// countingRecoverer hands out scripted results and records how often the
// recovery primitive was consulted.
type countingRecoverer struct {
	calls int
	pubs  [][]byte
	errs  []error
}

func (r *countingRecoverer) Recover(hash, sig []byte) ([]byte, error) {
	i := r.calls
	r.calls++
	return r.pubs[i], r.errs[i]
}

// prefixFingerprinter fingerprints a key by its first 20 bytes, enough to
// steer mismatches deterministically without curve math.
type prefixFingerprinter struct{ calls int }

func (f *prefixFingerprinter) Fingerprint(pub []byte) (fp types.Fingerprint) {
	f.calls++
	copy(fp[:], pub)
	return
}

func fakePub(fill byte) []byte {
	pub := make([]byte, types.PubKeyLen)
	for i := range pub {
		pub[i] = fill
	}
	return pub
}

func fakeFp(fill byte) (fp types.Fingerprint) {
	copy(fp[:], fakePub(fill))
	return
}

func TestOrderSlot0MismatchStopsPipeline(t *testing.T) {
	// registered keys 0xaa and 0xbb, slot 0 recovers an unknown key:
	// signature 1 must never be recovered or fingerprinted
	config := buildConfig(fakeFp(0xaa), fakeFp(0xbb))
	proof := buildProof(make([]byte, types.SigLen), make([]byte, types.SigLen), 0, 1)
	hash := common.Sha256([]byte("tx"))

	frec := &countingRecoverer{pubs: [][]byte{fakePub(0xcc), fakePub(0xbb)}, errs: []error{nil, nil}}
	ffpr := &prefixFingerprinter{}
	out := NewVerifier(NewBufEnv(config, proof, hash), frec, ffpr).Verify()
	assert.Equal(t, types.OutcomeSigMismatch, out)
	assert.Equal(t, 1, frec.calls)
	assert.Equal(t, 1, ffpr.calls)
}

func TestOrderSlot0RecoveryErrorStopsPipeline(t *testing.T) {
	config := buildConfig(fakeFp(0xaa), fakeFp(0xbb))
	proof := buildProof(make([]byte, types.SigLen), make([]byte, types.SigLen), 0, 1)
	hash := common.Sha256([]byte("tx"))

	frec := &countingRecoverer{pubs: [][]byte{nil, fakePub(0xbb)}, errs: []error{types.ErrBadRecoveryID, nil}}
	ffpr := &prefixFingerprinter{}
	out := NewVerifier(NewBufEnv(config, proof, hash), frec, ffpr).Verify()
	assert.Equal(t, types.OutcomeBadRecoveryID, out)
	assert.Equal(t, 1, frec.calls)
	assert.Equal(t, 0, ffpr.calls)
}

func TestStructuralGatingPrecedesCrypto(t *testing.T) {
	hash := common.Sha256([]byte("tx"))
	frec := &countingRecoverer{}
	ffpr := &prefixFingerprinter{}

	// short config: no recovery may run even with a perfect proof
	proof := buildProof(make([]byte, types.SigLen), make([]byte, types.SigLen), 0, 1)
	out := NewVerifier(NewBufEnv(make([]byte, 10), proof, hash), frec, ffpr).Verify()
	assert.Equal(t, types.OutcomeConfigTooShort, out)
	assert.Equal(t, 0, frec.calls)

	// equal selectors: rejected before the recovery primitive runs
	config := buildConfig(fakeFp(0xaa), fakeFp(0xbb))
	proof = buildProof(make([]byte, types.SigLen), make([]byte, types.SigLen), 1, 1)
	out = NewVerifier(NewBufEnv(config, proof, hash), frec, ffpr).Verify()
	assert.Equal(t, types.OutcomeBadSelector, out)
	assert.Equal(t, 0, frec.calls)
}

func TestOrderBothSlotsChecked(t *testing.T) {
	config := buildConfig(fakeFp(0xaa), fakeFp(0xbb))
	proof := buildProof(make([]byte, types.SigLen), make([]byte, types.SigLen), 0, 1)
	hash := common.Sha256([]byte("tx"))

	frec := &countingRecoverer{pubs: [][]byte{fakePub(0xaa), fakePub(0xbb)}, errs: []error{nil, nil}}
	ffpr := &prefixFingerprinter{}
	out := NewVerifier(NewBufEnv(config, proof, hash), frec, ffpr).Verify()
	assert.Equal(t, types.OutcomeOK, out)
	assert.Equal(t, 2, frec.calls)
	assert.Equal(t, 2, ffpr.calls)
}
