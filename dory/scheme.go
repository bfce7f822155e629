// Package dory implements the scalar base case of the Dory polynomial
// commitment scheme: building a witness from a dense evaluation table,
// committing to it with three inner pairing products, and proving and
// verifying a length-1 witness against a singleton parameter set.
//
// The scheme is generic over a pairing.Engine. NewBN254 and NewBLS12381
// return ready-made instances over gnark-crypto curves.
package dory

import (
	"github.com/Electron-Labs/dory-pcs/pairing"
	"github.com/consensys/gnark/logger"
	"github.com/rs/zerolog"
)

// Scheme runs the commitment scheme over one pairing engine. It holds no
// mutable state and is safe for concurrent use.
type Scheme[G1, G2, GT, Zr any] struct {
	engine pairing.Engine[G1, G2, GT, Zr]
	log    zerolog.Logger
}

func New[G1, G2, GT, Zr any](engine pairing.Engine[G1, G2, GT, Zr]) *Scheme[G1, G2, GT, Zr] {
	return &Scheme[G1, G2, GT, Zr]{
		engine: engine,
		log:    componentLogger(logger.Logger(), engine.Name()),
	}
}

// WithLogger returns a copy of the scheme that logs to l.
func (s *Scheme[G1, G2, GT, Zr]) WithLogger(l zerolog.Logger) *Scheme[G1, G2, GT, Zr] {
	return &Scheme[G1, G2, GT, Zr]{
		engine: s.engine,
		log:    componentLogger(l, s.engine.Name()),
	}
}

func (s *Scheme[G1, G2, GT, Zr]) Engine() pairing.Engine[G1, G2, GT, Zr] {
	return s.engine
}

func componentLogger(l zerolog.Logger, curve string) zerolog.Logger {
	return l.With().Str("component", "dory").Str("curve", curve).Logger()
}
