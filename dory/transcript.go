package dory

import "github.com/Electron-Labs/dory-pcs/transcript"

// Transcript is the Fiat-Shamir sink a commitment is absorbed into.
type Transcript[GT any] interface {
	AppendGT(x GT)
}

// AppendToTranscript appends C, D₁ and D₂, in that order.
func (c Commitment[GT]) AppendToTranscript(t Transcript[GT]) {
	t.AppendGT(c.C)
	t.AppendGT(c.D1)
	t.AppendGT(c.D2)
}

type keccakGT[GT any] struct {
	t      *transcript.Keccak
	encode func(GT) []byte
}

func (k keccakGT[GT]) AppendGT(x GT) { k.t.AppendBytes(k.encode(x)) }

// Transcript adapts a Keccak transcript to absorb target group elements in
// their canonical encoding.
func (s *Scheme[G1, G2, GT, Zr]) Transcript(t *transcript.Keccak) Transcript[GT] {
	return keccakGT[GT]{t: t, encode: s.engine.EncodeGT}
}

// ChallengeScalar draws the next challenge from t reduced into Zr.
func (s *Scheme[G1, G2, GT, Zr]) ChallengeScalar(t *transcript.Keccak) Zr {
	return s.engine.ScalarFromBytes(t.ChallengeBytes())
}
