// Package bls12381 implements pairing.Engine on top of gnark-crypto's BLS12-381 curve.
package bls12381

import (
	"crypto/rand"
	"crypto/subtle"
	"fmt"
	"io"
	"math/big"

	"github.com/Electron-Labs/dory-pcs/pairing"
	"github.com/consensys/gnark-crypto/ecc"
	curve "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fp"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

const Name = "bls12-381"

type Engine struct{}

var _ pairing.Engine[curve.G1Affine, curve.G2Affine, curve.GT, fr.Element] = Engine{}

func (Engine) Name() string { return Name }

func (Engine) Generators() (curve.G1Affine, curve.G2Affine) {
	_, _, g1, g2 := curve.Generators()
	return g1, g2
}

func (Engine) AddG1(a, b curve.G1Affine) curve.G1Affine {
	var acc curve.G1Jac
	acc.FromAffine(&a)
	acc.AddMixed(&b)
	var res curve.G1Affine
	res.FromJacobian(&acc)
	return res
}

func (Engine) AddG2(a, b curve.G2Affine) curve.G2Affine {
	var acc curve.G2Jac
	acc.FromAffine(&a)
	acc.AddMixed(&b)
	var res curve.G2Affine
	res.FromJacobian(&acc)
	return res
}

func (Engine) AddGT(a, b curve.GT) curve.GT {
	var res curve.GT
	res.Mul(&a, &b)
	return res
}

func (Engine) ScalarMulG1(p curve.G1Affine, s fr.Element) curve.G1Affine {
	var res curve.G1Affine
	res.ScalarMultiplication(&p, s.BigInt(new(big.Int)))
	return res
}

func (Engine) ScalarMulG2(p curve.G2Affine, s fr.Element) curve.G2Affine {
	var res curve.G2Affine
	res.ScalarMultiplication(&p, s.BigInt(new(big.Int)))
	return res
}

func (Engine) ScalarMulGT(x curve.GT, s fr.Element) curve.GT {
	var res curve.GT
	res.Exp(x, s.BigInt(new(big.Int)))
	return res
}

func (Engine) IdentityGT() curve.GT {
	var res curve.GT
	res.SetOne()
	return res
}

func (Engine) MultiExpG1(points []curve.G1Affine, scalars []fr.Element) (curve.G1Affine, error) {
	var res curve.G1Affine
	if len(points) != len(scalars) {
		return res, fmt.Errorf("msm over %d points and %d scalars: %w", len(points), len(scalars), pairing.ErrLengthMismatch)
	}
	if len(points) == 0 {
		return res, nil
	}
	if _, err := res.MultiExp(points, scalars, ecc.MultiExpConfig{}); err != nil {
		return res, fmt.Errorf("g1 msm: %w", err)
	}
	return res, nil
}

func (Engine) MultiExpG2(points []curve.G2Affine, scalars []fr.Element) (curve.G2Affine, error) {
	var res curve.G2Affine
	if len(points) != len(scalars) {
		return res, fmt.Errorf("msm over %d points and %d scalars: %w", len(points), len(scalars), pairing.ErrLengthMismatch)
	}
	if len(points) == 0 {
		return res, nil
	}
	if _, err := res.MultiExp(points, scalars, ecc.MultiExpConfig{}); err != nil {
		return res, fmt.Errorf("g2 msm: %w", err)
	}
	return res, nil
}

func (Engine) Pair(p curve.G1Affine, q curve.G2Affine) (curve.GT, error) {
	return curve.Pair([]curve.G1Affine{p}, []curve.G2Affine{q})
}

// InnerProduct runs one multi-Miller loop over all pairs and a single final
// exponentiation.
func (e Engine) InnerProduct(xs []curve.G1Affine, ys []curve.G2Affine) (curve.GT, error) {
	if len(xs) != len(ys) {
		return curve.GT{}, fmt.Errorf("inner product of %d and %d elements: %w", len(xs), len(ys), pairing.ErrLengthMismatch)
	}
	if len(xs) == 0 {
		return e.IdentityGT(), nil
	}
	return curve.Pair(xs, ys)
}

func (Engine) EqualGT(a, b curve.GT) bool {
	return subtle.ConstantTimeCompare(a.Marshal(), b.Marshal()) == 1
}

func (e Engine) RandomScalar(r io.Reader) (fr.Element, error) {
	if r == nil {
		r = rand.Reader
	}
	// twice the field size keeps the modular bias negligible
	var buf [2 * fr.Bytes]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return fr.Element{}, fmt.Errorf("read randomness: %w", err)
	}
	return e.ScalarFromBytes(buf[:]), nil
}

func (Engine) Inverse(s fr.Element) (fr.Element, bool) {
	if s.IsZero() {
		return fr.Element{}, false
	}
	var inv fr.Element
	inv.Inverse(&s)
	return inv, true
}

func (Engine) ScalarFromUint64(v uint64) fr.Element {
	var s fr.Element
	s.SetUint64(v)
	return s
}

func (Engine) ScalarFromBigInt(v *big.Int) fr.Element {
	reduced := new(big.Int).Mod(v, fr.Modulus())
	var s fr.Element
	s.SetBigInt(reduced)
	return s
}

func (e Engine) ScalarFromBytes(b []byte) fr.Element {
	return e.ScalarFromBigInt(new(big.Int).SetBytes(b))
}

func (Engine) IsZeroScalar(s fr.Element) bool { return s.IsZero() }

func (Engine) SizeG1() int     { return curve.SizeOfG1AffineCompressed }
func (Engine) SizeG2() int     { return curve.SizeOfG2AffineCompressed }
func (Engine) SizeGT() int     { return 12 * fp.Bytes }
func (Engine) SizeScalar() int { return fr.Bytes }

func (Engine) EncodeG1(p curve.G1Affine) []byte {
	b := p.Bytes()
	return b[:]
}

func (Engine) EncodeG2(p curve.G2Affine) []byte {
	b := p.Bytes()
	return b[:]
}

func (Engine) EncodeGT(x curve.GT) []byte {
	return x.Marshal()
}

func (Engine) EncodeScalar(s fr.Element) []byte {
	b := s.Bytes()
	return b[:]
}

func (e Engine) DecodeG1(b []byte) (curve.G1Affine, error) {
	var p curve.G1Affine
	if len(b) != e.SizeG1() {
		return p, fmt.Errorf("g1 element of %d bytes, expected %d: %w", len(b), e.SizeG1(), pairing.ErrInvalidEncoding)
	}
	if _, err := p.SetBytes(b); err != nil {
		return p, fmt.Errorf("g1 element (%v): %w", err, pairing.ErrInvalidEncoding)
	}
	if !p.IsInSubGroup() {
		return p, fmt.Errorf("g1 element not in subgroup: %w", pairing.ErrInvalidEncoding)
	}
	return p, nil
}

func (e Engine) DecodeG2(b []byte) (curve.G2Affine, error) {
	var p curve.G2Affine
	if len(b) != e.SizeG2() {
		return p, fmt.Errorf("g2 element of %d bytes, expected %d: %w", len(b), e.SizeG2(), pairing.ErrInvalidEncoding)
	}
	if _, err := p.SetBytes(b); err != nil {
		return p, fmt.Errorf("g2 element (%v): %w", err, pairing.ErrInvalidEncoding)
	}
	if !p.IsInSubGroup() {
		return p, fmt.Errorf("g2 element not in subgroup: %w", pairing.ErrInvalidEncoding)
	}
	return p, nil
}

func (e Engine) DecodeGT(b []byte) (curve.GT, error) {
	var x curve.GT
	if len(b) != e.SizeGT() {
		return x, fmt.Errorf("gt element of %d bytes, expected %d: %w", len(b), e.SizeGT(), pairing.ErrInvalidEncoding)
	}
	if err := x.Unmarshal(b); err != nil {
		return x, fmt.Errorf("gt element (%v): %w", err, pairing.ErrInvalidEncoding)
	}
	if !x.IsInSubGroup() {
		return x, fmt.Errorf("gt element not in subgroup: %w", pairing.ErrInvalidEncoding)
	}
	return x, nil
}

func (e Engine) DecodeScalar(b []byte) (fr.Element, error) {
	var s fr.Element
	if len(b) != e.SizeScalar() {
		return s, fmt.Errorf("scalar of %d bytes, expected %d: %w", len(b), e.SizeScalar(), pairing.ErrInvalidEncoding)
	}
	v := new(big.Int).SetBytes(b)
	if v.Cmp(fr.Modulus()) >= 0 {
		return s, fmt.Errorf("scalar not reduced: %w", pairing.ErrInvalidEncoding)
	}
	s.SetBigInt(v)
	return s, nil
}
