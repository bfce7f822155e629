package dory

import (
	"fmt"
	"time"

	"github.com/Electron-Labs/dory-pcs/multilinear"
	"golang.org/x/sync/errgroup"
)

// Witness holds u₁ = (aᵢ·g1v[i])ᵢ and u₂ = (aᵢ·g2v[i])ᵢ.
type Witness[G1, G2 any] struct {
	U1 []G1
	U2 []G2
}

func (w *Witness[G1, G2]) Len() int { return len(w.U1) }

// NewWitness scales each generator by the matching evaluation of poly. Only
// dense tables of scalars are accepted; anything else fails with
// ErrInvalidPolynomialForm.
func (s *Scheme[G1, G2, GT, Zr]) NewWitness(vp *VectorParams[G1, G2], poly multilinear.Polynomial) (*Witness[G1, G2], error) {
	dense, ok := poly.(*multilinear.Dense[Zr])
	if !ok || dense == nil {
		return nil, fmt.Errorf("witness from %T: %w", poly, ErrInvalidPolynomialForm)
	}
	evals := dense.Evals()
	if len(vp.g1v) != len(vp.g2v) {
		return nil, fmt.Errorf("%d g1 and %d g2 generators: %w", len(vp.g1v), len(vp.g2v), ErrLengthMismatch)
	}
	if len(evals) != len(vp.g1v) {
		return nil, fmt.Errorf("%d evaluations over %d generators: %w", len(evals), len(vp.g1v), ErrLengthMismatch)
	}

	start := time.Now()
	w := &Witness[G1, G2]{
		U1: make([]G1, len(evals)),
		U2: make([]G2, len(evals)),
	}
	var eg errgroup.Group
	eg.Go(func() error {
		for i, a := range evals {
			w.U1[i] = s.engine.ScalarMulG1(vp.g1v[i], a)
		}
		return nil
	})
	eg.Go(func() error {
		for i, a := range evals {
			w.U2[i] = s.engine.ScalarMulG2(vp.g2v[i], a)
		}
		return nil
	})
	_ = eg.Wait()

	s.log.Debug().Int("n", len(evals)).Dur("took", time.Since(start)).Msg("witness built")
	return w, nil
}
