package dory

import (
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"
)

// Commitment is (C, D₁, D₂) with C = ⟨u₁, u₂⟩, D₁ = ⟨u₁, Γ₂⟩ and D₂ = ⟨Γ₁, u₂⟩.
type Commitment[GT any] struct {
	C  GT
	D1 GT
	D2 GT
}

// Commit computes the three inner pairing products of the witness against
// the generator vectors.
func (s *Scheme[G1, G2, GT, Zr]) Commit(vp *VectorParams[G1, G2], w *Witness[G1, G2]) (Commitment[GT], error) {
	var com Commitment[GT]
	n := len(vp.g1v)
	if len(vp.g2v) != n || len(w.U1) != n || len(w.U2) != n {
		return com, fmt.Errorf("commit to witness (%d, %d) over generators (%d, %d): %w",
			len(w.U1), len(w.U2), len(vp.g1v), len(vp.g2v), ErrLengthMismatch)
	}

	start := time.Now()
	var eg errgroup.Group
	eg.Go(func() (err error) {
		com.D1, err = s.engine.InnerProduct(w.U1, vp.g2v)
		if err != nil {
			return fmt.Errorf("d1: %w", err)
		}
		return nil
	})
	eg.Go(func() (err error) {
		com.D2, err = s.engine.InnerProduct(vp.g1v, w.U2)
		if err != nil {
			return fmt.Errorf("d2: %w", err)
		}
		return nil
	})
	eg.Go(func() (err error) {
		com.C, err = s.engine.InnerProduct(w.U1, w.U2)
		if err != nil {
			return fmt.Errorf("c: %w", err)
		}
		return nil
	})
	if err := eg.Wait(); err != nil {
		return Commitment[GT]{}, err
	}

	s.log.Debug().Int("n", n).Dur("took", time.Since(start)).Msg("commitment computed")
	return com, nil
}

// ZeroCommitment returns the commitment whose components are all the GT identity.
func (s *Scheme[G1, G2, GT, Zr]) ZeroCommitment() Commitment[GT] {
	id := s.engine.IdentityGT()
	return Commitment[GT]{C: id, D1: id, D2: id}
}

// EqualCommitment compares all three components without short-circuiting.
func (s *Scheme[G1, G2, GT, Zr]) EqualCommitment(a, b Commitment[GT]) bool {
	c := s.engine.EqualGT(a.C, b.C)
	d1 := s.engine.EqualGT(a.D1, b.D1)
	d2 := s.engine.EqualGT(a.D2, b.D2)
	return c && d1 && d2
}
