package dory

import (
	"errors"
	"io"
	"math/rand"
	"testing"

	"github.com/Electron-Labs/dory-pcs/multilinear"
	curve "github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type zeroReader struct{}

func (zeroReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = 0
	}
	return len(p), nil
}

func testRng(seed int64) io.Reader {
	return rand.New(rand.NewSource(seed))
}

func newTestScheme() *BN254Scheme {
	return NewBN254().WithLogger(zerolog.Nop())
}

func scalars(vs ...uint64) []fr.Element {
	out := make([]fr.Element, len(vs))
	for i, v := range vs {
		out[i].SetUint64(v)
	}
	return out
}

func dense(t *testing.T, evals []fr.Element) *multilinear.Dense[fr.Element] {
	p, err := multilinear.NewDense(evals)
	require.NoError(t, err)
	return p
}

// nativeParams are the curve generators G, H as length-1 vector parameters.
func nativeParams(t *testing.T, s *BN254Scheme) (*VectorParams[curve.G1Affine, curve.G2Affine], *BN254SingleParam) {
	g1, g2 := s.Engine().Generators()
	vp, err := NewVectorParams([]curve.G1Affine{g1}, []curve.G2Affine{g2})
	require.NoError(t, err)
	sp, err := s.SingleParamFromVector(vp)
	require.NoError(t, err)
	return vp, sp
}

type baseCase struct {
	vp    *VectorParams[curve.G1Affine, curve.G2Affine]
	sp    *BN254SingleParam
	w     *Witness[curve.G1Affine, curve.G2Affine]
	com   BN254Commitment
	proof BN254Proof
}

func commitScalar(t *testing.T, s *BN254Scheme, a uint64) baseCase {
	vp, sp := nativeParams(t, s)
	w, err := s.NewWitness(vp, dense(t, scalars(a)))
	require.NoError(t, err)
	com, err := s.Commit(vp, w)
	require.NoError(t, err)
	return baseCase{vp: vp, sp: sp, w: w, com: com, proof: s.Prove(w)}
}

func gtPow(s *BN254Scheme, k uint64) curve.GT {
	e := s.Engine()
	g1, g2 := e.Generators()
	base, _ := e.Pair(g1, g2)
	return e.ScalarMulGT(base, e.ScalarFromUint64(k))
}

func TestScalarSevenVerifies(t *testing.T) {
	s := newTestScheme()
	e := s.Engine()
	g1, g2 := e.Generators()
	bc := commitScalar(t, s, 7)

	seven := e.ScalarFromUint64(7)
	assert.Equal(t, e.ScalarMulG1(g1, seven), bc.w.U1[0])
	assert.Equal(t, e.ScalarMulG2(g2, seven), bc.w.U2[0])

	assert.True(t, e.EqualGT(gtPow(s, 49), bc.com.C))
	assert.True(t, e.EqualGT(gtPow(s, 7), bc.com.D1))
	assert.True(t, e.EqualGT(gtPow(s, 7), bc.com.D2))

	assert.Equal(t, bc.w.U1[0], bc.proof.E1)
	assert.Equal(t, bc.w.U2[0], bc.proof.E2)

	ok, err := s.Verify(bc.sp, bc.com, bc.proof, testRng(1))
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestTamperedE1Rejected(t *testing.T) {
	s := newTestScheme()
	e := s.Engine()
	g1, _ := e.Generators()
	bc := commitScalar(t, s, 7)

	bc.proof.E1 = e.ScalarMulG1(g1, e.ScalarFromUint64(8))
	ok, err := s.Verify(bc.sp, bc.com, bc.proof, testRng(2))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestTamperedD1Rejected(t *testing.T) {
	s := newTestScheme()
	bc := commitScalar(t, s, 7)

	bc.com.D1 = gtPow(s, 6)
	ok, err := s.Verify(bc.sp, bc.com, bc.proof, testRng(3))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestScalarOneVerifies(t *testing.T) {
	s := newTestScheme()
	e := s.Engine()
	g1, g2 := e.Generators()
	bc := commitScalar(t, s, 1)

	assert.Equal(t, g1, bc.sp.G1())
	assert.Equal(t, g2, bc.sp.G2())
	assert.True(t, e.EqualGT(gtPow(s, 1), bc.sp.C()))
	assert.Equal(t, BN254Proof{E1: g1, E2: g2}, bc.proof)

	ok, err := s.Verify(bc.sp, bc.com, bc.proof, nil)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestZeroBlinder(t *testing.T) {
	s := newTestScheme()
	bc := commitScalar(t, s, 7)

	ok, err := s.Verify(bc.sp, bc.com, bc.proof, zeroReader{})
	assert.False(t, ok)
	assert.True(t, errors.Is(err, ErrCouldntInvertD))
}

func TestCommitExpandLaw(t *testing.T) {
	s := newTestScheme()
	e := s.Engine()
	rng := testRng(4)

	for i := 0; i < 4; i++ {
		vp, err := s.Setup(1, rng)
		require.NoError(t, err)
		sp, err := s.SingleParamFromVector(vp)
		require.NoError(t, err)

		a, err := e.RandomScalar(rng)
		require.NoError(t, err)
		w, err := s.NewWitness(vp, dense(t, []fr.Element{a}))
		require.NoError(t, err)
		com, err := s.Commit(vp, w)
		require.NoError(t, err)

		c, _ := e.Pair(w.U1[0], w.U2[0])
		d1, _ := e.Pair(w.U1[0], sp.G2())
		d2, _ := e.Pair(sp.G1(), w.U2[0])
		assert.True(t, e.EqualGT(c, com.C))
		assert.True(t, e.EqualGT(d1, com.D1))
		assert.True(t, e.EqualGT(d2, com.D2))

		ok, err := s.Verify(sp, com, s.Prove(w), rng)
		require.NoError(t, err)
		assert.True(t, ok)
	}
}

func TestBindingUnderPerturbation(t *testing.T) {
	s := newTestScheme()
	e := s.Engine()
	rng := testRng(5)
	bc := commitScalar(t, s, 11)

	randomGT := func() curve.GT {
		r, err := e.RandomScalar(rng)
		require.NoError(t, err)
		return e.ScalarMulGT(gtPow(s, 1), r)
	}

	perturb := []func(c *BN254Commitment){
		func(c *BN254Commitment) { c.C = randomGT() },
		func(c *BN254Commitment) { c.D1 = randomGT() },
		func(c *BN254Commitment) { c.D2 = randomGT() },
	}
	for i, p := range perturb {
		com := bc.com
		p(&com)
		ok, err := s.Verify(bc.sp, com, bc.proof, rng)
		require.NoError(t, err)
		assert.False(t, ok, "component %d", i)
	}
}

func TestProofFromOtherWitnessRejected(t *testing.T) {
	s := newTestScheme()
	rng := testRng(6)
	bc := commitScalar(t, s, 5)
	other := commitScalar(t, s, 9)

	proof := bc.proof
	proof.E1 = other.proof.E1
	ok, err := s.Verify(bc.sp, bc.com, proof, rng)
	require.NoError(t, err)
	assert.False(t, ok)

	proof = bc.proof
	proof.E2 = other.proof.E2
	ok, err = s.Verify(bc.sp, bc.com, proof, rng)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestWitnessAndCommitSizes(t *testing.T) {
	s := newTestScheme()
	e := s.Engine()
	rng := testRng(7)

	vp, err := s.Setup(4, rng)
	require.NoError(t, err)
	evals := scalars(1, 2, 3, 4)
	w, err := s.NewWitness(vp, dense(t, evals))
	require.NoError(t, err)
	require.Equal(t, 4, w.Len())
	for i := range evals {
		assert.Equal(t, e.ScalarMulG1(vp.G1V()[i], evals[i]), w.U1[i])
		assert.Equal(t, e.ScalarMulG2(vp.G2V()[i], evals[i]), w.U2[i])
	}

	com, err := s.Commit(vp, w)
	require.NoError(t, err)
	want, err := e.InnerProduct(w.U1, w.U2)
	require.NoError(t, err)
	assert.True(t, e.EqualGT(want, com.C))

	// evaluations and generators disagree
	_, err = s.NewWitness(vp, dense(t, scalars(1, 2)))
	assert.True(t, errors.Is(err, ErrLengthMismatch))

	short, err := s.Setup(2, rng)
	require.NoError(t, err)
	_, err = s.Commit(short, w)
	assert.True(t, errors.Is(err, ErrLengthMismatch))

	_, err = NewVectorParams(vp.G1V(), vp.G2V()[:3])
	assert.True(t, errors.Is(err, ErrLengthMismatch))

	_, err = s.Setup(0, rng)
	assert.True(t, errors.Is(err, ErrInvalidSize))
}

func TestNonDensePolynomialRejected(t *testing.T) {
	s := newTestScheme()
	vp, _ := nativeParams(t, s)

	compact, err := multilinear.NewCompact([]uint8{7})
	require.NoError(t, err)
	_, err = s.NewWitness(vp, compact)
	assert.True(t, errors.Is(err, ErrInvalidPolynomialForm))

	// converted explicitly it is accepted
	w, err := s.NewWitness(vp, multilinear.ToDense(compact, s.Engine().ScalarFromUint64))
	require.NoError(t, err)
	assert.Equal(t, commitScalar(t, s, 7).w, w)
}

func TestProvePanicsOnLongWitness(t *testing.T) {
	s := newTestScheme()
	vp, err := s.Setup(2, testRng(8))
	require.NoError(t, err)
	w, err := s.NewWitness(vp, dense(t, scalars(1, 2)))
	require.NoError(t, err)

	assert.Panics(t, func() { s.Prove(w) })
	assert.Panics(t, func() { s.Prove(&Witness[curve.G1Affine, curve.G2Affine]{}) })
}

func TestZeroAndEqualCommitment(t *testing.T) {
	s := newTestScheme()
	zero := s.ZeroCommitment()
	var one curve.GT
	one.SetOne()
	assert.True(t, zero.D1.Equal(&one))
	assert.True(t, s.EqualCommitment(zero, zero))

	bc := commitScalar(t, s, 3)
	assert.True(t, s.EqualCommitment(bc.com, bc.com))
	assert.False(t, s.EqualCommitment(bc.com, zero))

	// a zero witness commits to the identity
	vp, _ := nativeParams(t, s)
	w, err := s.NewWitness(vp, dense(t, scalars(0)))
	require.NoError(t, err)
	com, err := s.Commit(vp, w)
	require.NoError(t, err)
	assert.True(t, s.EqualCommitment(zero, com))
}

func TestFoldParams(t *testing.T) {
	s := newTestScheme()
	e := s.Engine()
	vp, err := s.Setup(4, testRng(9))
	require.NoError(t, err)

	sp, err := s.FoldParams(vp, scalars(0, 1, 0, 0), scalars(0, 0, 0, 1))
	require.NoError(t, err)
	assert.Equal(t, vp.G1V()[1], sp.G1())
	assert.Equal(t, vp.G2V()[3], sp.G2())
	c, _ := e.Pair(vp.G1V()[1], vp.G2V()[3])
	assert.True(t, e.EqualGT(c, sp.C()))

	w1 := scalars(2, 3, 5, 7)
	sp, err = s.FoldParams(vp, w1, w1)
	require.NoError(t, err)
	want := e.ScalarMulG1(vp.G1V()[0], w1[0])
	for i := 1; i < 4; i++ {
		want = e.AddG1(want, e.ScalarMulG1(vp.G1V()[i], w1[i]))
	}
	assert.Equal(t, want, sp.G1())

	_, err = s.FoldParams(vp, scalars(1), w1)
	assert.True(t, errors.Is(err, ErrLengthMismatch))

	_, err = s.SingleParamFromVector(vp)
	assert.True(t, errors.Is(err, ErrLengthMismatch))
}
