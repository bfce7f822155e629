// Package pairing defines the bilinear group abstraction the commitment scheme
// is written against. A concrete curve plugs in by implementing Engine.
package pairing

import (
	"errors"
	"io"
	"math/big"
)

var (
	// ErrLengthMismatch is returned when an inner product or a multi-scalar
	// multiplication is asked to combine vectors of unequal length.
	ErrLengthMismatch = errors.New("length mismatch")

	// ErrInvalidEncoding is returned when bytes do not decode to a valid element.
	ErrInvalidEncoding = errors.New("invalid element encoding")
)

// Engine bundles the source groups G1 and G2, the target group GT, the scalar
// field Zr and the pairing e : G1 × G2 → GT.
//
// GT is written additively: AddGT is the group law of the target group and
// ScalarMulGT is repeated application of it.
type Engine[G1, G2, GT, Zr any] interface {
	// Name is the curve identifier, e.g. "bn254".
	Name() string

	// Generators returns the curve-native generators of G1 and G2.
	Generators() (G1, G2)

	AddG1(a, b G1) G1
	AddG2(a, b G2) G2
	AddGT(a, b GT) GT
	ScalarMulG1(p G1, s Zr) G1
	ScalarMulG2(p G2, s Zr) G2
	ScalarMulGT(x GT, s Zr) GT
	IdentityGT() GT

	// MultiExpG1 returns Σᵢ scalars[i]·points[i].
	MultiExpG1(points []G1, scalars []Zr) (G1, error)
	// MultiExpG2 returns Σᵢ scalars[i]·points[i].
	MultiExpG2(points []G2, scalars []Zr) (G2, error)

	// Pair computes e(p, q).
	Pair(p G1, q G2) (GT, error)
	// InnerProduct computes Σᵢ e(xs[i], ys[i]) with a single final
	// exponentiation.
	InnerProduct(xs []G1, ys []G2) (GT, error)
	// EqualGT compares two target group elements in constant time.
	EqualGT(a, b GT) bool

	// RandomScalar samples a uniform scalar from r.
	RandomScalar(r io.Reader) (Zr, error)
	// Inverse returns s⁻¹, or false when s is zero.
	Inverse(s Zr) (Zr, bool)
	ScalarFromUint64(v uint64) Zr
	ScalarFromBigInt(v *big.Int) Zr
	// ScalarFromBytes interprets b as a big-endian integer reduced modulo r.
	ScalarFromBytes(b []byte) Zr
	IsZeroScalar(s Zr) bool

	SizeG1() int
	SizeG2() int
	SizeGT() int
	SizeScalar() int
	EncodeG1(p G1) []byte
	EncodeG2(p G2) []byte
	EncodeGT(x GT) []byte
	EncodeScalar(s Zr) []byte
	DecodeG1(b []byte) (G1, error)
	DecodeG2(b []byte) (G2, error)
	DecodeGT(b []byte) (GT, error)
	DecodeScalar(b []byte) (Zr, error)
}
