package dory

import (
	"fmt"
	"io"
)

// ScalarProof is the last-round proof (e₁, e₂) = (u₁[0], u₂[0]).
type ScalarProof[G1, G2 any] struct {
	E1 G1
	E2 G2
}

// Prove extracts the scalar proof from a witness of length one. Calling it
// on any other witness is a programming error and panics.
func (s *Scheme[G1, G2, GT, Zr]) Prove(w *Witness[G1, G2]) ScalarProof[G1, G2] {
	if len(w.U1) != 1 || len(w.U2) != 1 {
		panic(fmt.Sprintf("dory: scalar proof needs a witness of length 1, got (%d, %d)", len(w.U1), len(w.U2)))
	}
	return ScalarProof[G1, G2]{E1: w.U1[0], E2: w.U2[0]}
}

// Verify checks
//
//	e(e₁ + d·g1, e₂ + d⁻¹·g2) = c + C + d·D₂ + d⁻¹·D₁
//
// for a fresh d drawn from rng (crypto/rand when rng is nil). A false result
// is a rejected proof; an error means the check could not be run.
func (s *Scheme[G1, G2, GT, Zr]) Verify(sp *SingleParam[G1, G2, GT], com Commitment[GT], proof ScalarProof[G1, G2], rng io.Reader) (bool, error) {
	e := s.engine

	d, err := e.RandomScalar(rng)
	if err != nil {
		return false, fmt.Errorf("sample d: %w", err)
	}
	dInv, ok := e.Inverse(d)
	if !ok {
		return false, ErrCouldntInvertD
	}

	g := e.AddG1(proof.E1, e.ScalarMulG1(sp.g1, d))
	h := e.AddG2(proof.E2, e.ScalarMulG2(sp.g2, dInv))
	lhs, err := e.Pair(g, h)
	if err != nil {
		return false, fmt.Errorf("pair: %w", err)
	}

	rhs := e.AddGT(sp.c, com.C)
	rhs = e.AddGT(rhs, e.ScalarMulGT(com.D2, d))
	rhs = e.AddGT(rhs, e.ScalarMulGT(com.D1, dInv))

	if !e.EqualGT(lhs, rhs) {
		s.log.Debug().Msg("scalar proof rejected")
		return false, nil
	}
	return true, nil
}
