package dory

import (
	"fmt"
	"io"

	"golang.org/x/sync/errgroup"
)

// VectorParams are the public generator vectors (Γ₁, Γ₂) for one round.
type VectorParams[G1, G2 any] struct {
	g1v []G1
	g2v []G2
}

func NewVectorParams[G1, G2 any](g1v []G1, g2v []G2) (*VectorParams[G1, G2], error) {
	if len(g1v) != len(g2v) {
		return nil, fmt.Errorf("%d g1 and %d g2 generators: %w", len(g1v), len(g2v), ErrLengthMismatch)
	}
	return &VectorParams[G1, G2]{g1v: g1v, g2v: g2v}, nil
}

func (p *VectorParams[G1, G2]) G1V() []G1 { return p.g1v }
func (p *VectorParams[G1, G2]) G2V() []G2 { return p.g2v }
func (p *VectorParams[G1, G2]) Len() int  { return len(p.g1v) }

// SingleParam is the parameter set of the last round: two generators and
// their cached pairing c = e(g1, g2).
type SingleParam[G1, G2, GT any] struct {
	g1 G1
	g2 G2
	c  GT
}

func (p *SingleParam[G1, G2, GT]) G1() G1 { return p.g1 }
func (p *SingleParam[G1, G2, GT]) G2() G2 { return p.g2 }
func (p *SingleParam[G1, G2, GT]) C() GT  { return p.c }

// NewSingleParam computes c = e(g1, g2).
func (s *Scheme[G1, G2, GT, Zr]) NewSingleParam(g1 G1, g2 G2) (*SingleParam[G1, G2, GT], error) {
	c, err := s.engine.Pair(g1, g2)
	if err != nil {
		return nil, fmt.Errorf("pair singleton generators: %w", err)
	}
	return &SingleParam[G1, G2, GT]{g1: g1, g2: g2, c: c}, nil
}

// SingleParamFromVector turns length-1 vector parameters into a singleton.
func (s *Scheme[G1, G2, GT, Zr]) SingleParamFromVector(vp *VectorParams[G1, G2]) (*SingleParam[G1, G2, GT], error) {
	if vp.Len() != 1 {
		return nil, fmt.Errorf("singleton from %d generators: %w", vp.Len(), ErrLengthMismatch)
	}
	return s.NewSingleParam(vp.g1v[0], vp.g2v[0])
}

// FoldParams collapses the generator vectors with weight vectors w1 and w2,
// g1 = Σ w1ᵢ·g1v[i] and g2 = Σ w2ᵢ·g2v[i].
func (s *Scheme[G1, G2, GT, Zr]) FoldParams(vp *VectorParams[G1, G2], w1, w2 []Zr) (*SingleParam[G1, G2, GT], error) {
	var (
		g1 G1
		g2 G2
		eg errgroup.Group
	)
	eg.Go(func() (err error) {
		g1, err = s.engine.MultiExpG1(vp.g1v, w1)
		return err
	})
	eg.Go(func() (err error) {
		g2, err = s.engine.MultiExpG2(vp.g2v, w2)
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("fold params: %w", err)
	}
	return s.NewSingleParam(g1, g2)
}

// zero draws tolerated before the randomness source is considered broken
const maxZeroDraws = 16

// Setup samples n independent generators in each source group as random
// nonzero multiples of the curve generators. It is meant for tests and local
// experiments: whoever runs it knows the discrete logs.
func (s *Scheme[G1, G2, GT, Zr]) Setup(n int, rng io.Reader) (*VectorParams[G1, G2], error) {
	if n <= 0 {
		return nil, fmt.Errorf("setup of size %d: %w", n, ErrInvalidSize)
	}
	r1, err := s.nonZeroScalars(n, rng)
	if err != nil {
		return nil, err
	}
	r2, err := s.nonZeroScalars(n, rng)
	if err != nil {
		return nil, err
	}

	g1, g2 := s.engine.Generators()
	vp := &VectorParams[G1, G2]{g1v: make([]G1, n), g2v: make([]G2, n)}
	var eg errgroup.Group
	eg.Go(func() error {
		for i := range r1 {
			vp.g1v[i] = s.engine.ScalarMulG1(g1, r1[i])
		}
		return nil
	})
	eg.Go(func() error {
		for i := range r2 {
			vp.g2v[i] = s.engine.ScalarMulG2(g2, r2[i])
		}
		return nil
	})
	_ = eg.Wait()

	s.log.Debug().Int("n", n).Msg("setup done")
	return vp, nil
}

func (s *Scheme[G1, G2, GT, Zr]) nonZeroScalars(n int, rng io.Reader) ([]Zr, error) {
	out := make([]Zr, 0, n)
	for attempts := 0; len(out) < n; attempts++ {
		if attempts == n+maxZeroDraws {
			return nil, fmt.Errorf("sample generator: %d zero scalars drawn", maxZeroDraws)
		}
		r, err := s.engine.RandomScalar(rng)
		if err != nil {
			return nil, fmt.Errorf("sample generator: %w", err)
		}
		if s.engine.IsZeroScalar(r) {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}
