package dory

import (
	"testing"

	"github.com/Electron-Labs/dory-pcs/multilinear"
	fr_bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBLS12381Scalar(t *testing.T) {
	s := NewBLS12381().WithLogger(zerolog.Nop())
	e := s.Engine()
	rng := testRng(20)

	vp, err := s.Setup(1, rng)
	require.NoError(t, err)
	sp, err := s.SingleParamFromVector(vp)
	require.NoError(t, err)

	a, err := e.RandomScalar(rng)
	require.NoError(t, err)
	poly, err := multilinear.NewDense([]fr_bls12381.Element{a})
	require.NoError(t, err)
	w, err := s.NewWitness(vp, poly)
	require.NoError(t, err)
	com, err := s.Commit(vp, w)
	require.NoError(t, err)
	proof := s.Prove(w)

	ok, err := s.Verify(sp, com, proof, rng)
	require.NoError(t, err)
	assert.True(t, ok)

	decoded, err := s.DecodeCommitment(s.EncodeCommitment(com))
	require.NoError(t, err)
	assert.True(t, s.EqualCommitment(com, decoded))

	com.D2 = com.C
	ok, err = s.Verify(sp, com, proof, rng)
	require.NoError(t, err)
	assert.False(t, ok)
}
