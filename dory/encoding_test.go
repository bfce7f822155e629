package dory

import (
	"bytes"
	"errors"
	"testing"

	gentree "github.com/Electron-Labs/dory-pcs/generator_tree"
	"github.com/Electron-Labs/dory-pcs/transcript"
	curve "github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommitmentRoundTrip(t *testing.T) {
	s := newTestScheme()
	bc := commitScalar(t, s, 7)

	b := s.EncodeCommitment(bc.com)
	assert.Len(t, b, 3*s.Engine().SizeGT())
	got, err := s.DecodeCommitment(b)
	require.NoError(t, err)
	assert.True(t, s.EqualCommitment(bc.com, got))
	assert.Equal(t, b, s.EncodeCommitment(got))

	// C‖D₁‖D₂
	n := s.Engine().SizeGT()
	assert.Equal(t, s.Engine().EncodeGT(bc.com.C), b[:n])
	assert.Equal(t, s.Engine().EncodeGT(bc.com.D1), b[n:2*n])
	assert.Equal(t, s.Engine().EncodeGT(bc.com.D2), b[2*n:])

	_, err = s.DecodeCommitment(b[1:])
	assert.True(t, errors.Is(err, ErrSerialization))

	bad := bytes.Clone(b)
	for i := n; i < 2*n; i++ {
		bad[i] = 0xff
	}
	_, err = s.DecodeCommitment(bad)
	assert.True(t, errors.Is(err, ErrSerialization))
}

func TestProofRoundTrip(t *testing.T) {
	s := newTestScheme()
	bc := commitScalar(t, s, 7)

	b := s.EncodeProof(bc.proof)
	assert.Len(t, b, s.Engine().SizeG1()+s.Engine().SizeG2())
	got, err := s.DecodeProof(b)
	require.NoError(t, err)
	assert.Equal(t, bc.proof, got)

	ok, err := s.Verify(bc.sp, bc.com, got, testRng(10))
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = s.DecodeProof(append(b, 0))
	assert.True(t, errors.Is(err, ErrSerialization))
	_, err = s.DecodeProof(make([]byte, len(b)-1))
	assert.True(t, errors.Is(err, ErrSerialization))
}

func TestParamsRoundTrip(t *testing.T) {
	s := newTestScheme()
	vp, err := s.Setup(4, testRng(11))
	require.NoError(t, err)

	b := s.EncodeVectorParams(vp)
	got, err := s.DecodeVectorParams(b)
	require.NoError(t, err)
	assert.Equal(t, vp.G1V(), got.G1V())
	assert.Equal(t, vp.G2V(), got.G2V())

	_, err = s.DecodeVectorParams(b[:len(b)-1])
	assert.True(t, errors.Is(err, ErrSerialization))
	_, err = s.DecodeVectorParams([]byte{0, 0, 0, 0})
	assert.True(t, errors.Is(err, ErrSerialization))
	_, err = s.DecodeVectorParams(nil)
	assert.True(t, errors.Is(err, ErrSerialization))

	_, sp := nativeParams(t, s)
	spb := s.EncodeSingleParam(sp)
	sp2, err := s.DecodeSingleParam(spb)
	require.NoError(t, err)
	assert.Equal(t, sp.G1(), sp2.G1())
	assert.Equal(t, sp.G2(), sp2.G2())
	assert.True(t, s.Engine().EqualGT(sp.C(), sp2.C()))

	_, err = s.DecodeSingleParam(spb[:10])
	assert.True(t, errors.Is(err, ErrSerialization))
}

func TestSingleParamCacheChecked(t *testing.T) {
	s := newTestScheme()
	e := s.Engine()
	_, sp := nativeParams(t, s)

	// replace the cached c with 2·e(G, H)
	forged := append(e.EncodeG1(sp.G1()), e.EncodeG2(sp.G2())...)
	forged = append(forged, e.EncodeGT(gtPow(s, 2))...)
	_, err := s.DecodeSingleParam(forged)
	assert.True(t, errors.Is(err, ErrInvalidSingleParam))
}

type recordingTranscript[GT any] struct {
	got []GT
}

func (r *recordingTranscript[GT]) AppendGT(x GT) { r.got = append(r.got, x) }

func TestAppendToTranscriptOrder(t *testing.T) {
	s := newTestScheme()
	bc := commitScalar(t, s, 7)

	rec := &recordingTranscript[curve.GT]{}
	bc.com.AppendToTranscript(rec)

	e := s.Engine()
	require.Len(t, rec.got, 3)
	assert.True(t, e.EqualGT(bc.com.C, rec.got[0]))
	assert.True(t, e.EqualGT(bc.com.D1, rec.got[1]))
	assert.True(t, e.EqualGT(bc.com.D2, rec.got[2]))
}

func TestTranscriptAfterRoundTrip(t *testing.T) {
	s := newTestScheme()
	bc := commitScalar(t, s, 7)

	recovered, err := s.DecodeCommitment(s.EncodeCommitment(bc.com))
	require.NoError(t, err)

	t1 := transcript.New([]byte("dory"))
	t2 := transcript.New([]byte("dory"))
	bc.com.AppendToTranscript(s.Transcript(t1))
	recovered.AppendToTranscript(s.Transcript(t2))
	for i := 0; i < 3; i++ {
		assert.Equal(t, t1.ChallengeBytes(), t2.ChallengeBytes())
	}
	assert.Equal(t, s.ChallengeScalar(t1), s.ChallengeScalar(t2))

	// a different commitment drives a different stream
	t3 := transcript.New([]byte("dory"))
	commitScalar(t, s, 8).com.AppendToTranscript(s.Transcript(t3))
	t4 := transcript.New([]byte("dory"))
	bc.com.AppendToTranscript(s.Transcript(t4))
	assert.NotEqual(t, t3.ChallengeBytes(), t4.ChallengeBytes())
}

func TestGeneratorTree(t *testing.T) {
	s := newTestScheme()
	e := s.Engine()
	vp, err := s.Setup(2, testRng(12))
	require.NoError(t, err)

	tree, err := s.GeneratorTree(vp)
	require.NoError(t, err)
	assert.Equal(t, 4, tree.Len())

	proof, err := tree.Proof(3)
	require.NoError(t, err)
	ok, err := gentree.Verify(e.EncodeG2(vp.G2V()[1]), proof, tree.Root())
	require.NoError(t, err)
	assert.True(t, ok)

	// the singleton case still has two leaves
	vp1, _ := nativeParams(t, s)
	tree, err = s.GeneratorTree(vp1)
	require.NoError(t, err)
	assert.Equal(t, 2, tree.Len())
}
