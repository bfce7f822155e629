// Package multilinear holds evaluation tables of multilinear polynomials over
// the Boolean hypercube.
package multilinear

import (
	"errors"
	"fmt"
	"math/bits"
)

// ErrNotPowerOfTwo is returned when an evaluation table does not cover a hypercube.
var ErrNotPowerOfTwo = errors.New("evaluation table length is not a power of two")

// Polynomial is a multilinear polynomial given by its values on {0,1}^NumVars.
type Polynomial interface {
	Len() int
	NumVars() int
}

// Dense lists the evaluations as scalar field elements.
type Dense[Zr any] struct {
	evals []Zr
}

func NewDense[Zr any](evals []Zr) (*Dense[Zr], error) {
	if err := checkLen(len(evals)); err != nil {
		return nil, err
	}
	return &Dense[Zr]{evals: evals}, nil
}

func (p *Dense[Zr]) Evals() []Zr  { return p.evals }
func (p *Dense[Zr]) Len() int     { return len(p.evals) }
func (p *Dense[Zr]) NumVars() int { return numVars(len(p.evals)) }

// Unsigned is the set of machine integers a Compact table can hold.
type Unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Compact lists small evaluations as machine integers.
type Compact[T Unsigned] struct {
	evals []T
}

func NewCompact[T Unsigned](evals []T) (*Compact[T], error) {
	if err := checkLen(len(evals)); err != nil {
		return nil, err
	}
	return &Compact[T]{evals: evals}, nil
}

func (p *Compact[T]) Evals() []T   { return p.evals }
func (p *Compact[T]) Len() int     { return len(p.evals) }
func (p *Compact[T]) NumVars() int { return numVars(len(p.evals)) }

// ToDense lifts every evaluation into the scalar field.
func ToDense[Zr any, T Unsigned](p *Compact[T], fromUint64 func(uint64) Zr) *Dense[Zr] {
	evals := make([]Zr, len(p.evals))
	for i, v := range p.evals {
		evals[i] = fromUint64(uint64(v))
	}
	return &Dense[Zr]{evals: evals}
}

func checkLen(n int) error {
	if n == 0 || n&(n-1) != 0 {
		return fmt.Errorf("%d evaluations: %w", n, ErrNotPowerOfTwo)
	}
	return nil
}

func numVars(n int) int {
	return bits.TrailingZeros(uint(n))
}
