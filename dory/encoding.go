package dory

import (
	"encoding/binary"
	"fmt"
)

// EncodeCommitment returns C‖D₁‖D₂.
func (s *Scheme[G1, G2, GT, Zr]) EncodeCommitment(com Commitment[GT]) []byte {
	out := make([]byte, 0, 3*s.engine.SizeGT())
	out = append(out, s.engine.EncodeGT(com.C)...)
	out = append(out, s.engine.EncodeGT(com.D1)...)
	out = append(out, s.engine.EncodeGT(com.D2)...)
	return out
}

func (s *Scheme[G1, G2, GT, Zr]) DecodeCommitment(b []byte) (Commitment[GT], error) {
	var com Commitment[GT]
	n := s.engine.SizeGT()
	if len(b) != 3*n {
		return com, fmt.Errorf("commitment of %d bytes, expected %d: %w", len(b), 3*n, ErrSerialization)
	}
	var err error
	if com.C, err = s.engine.DecodeGT(b[:n]); err != nil {
		return com, fmt.Errorf("%w: c: %v", ErrSerialization, err)
	}
	if com.D1, err = s.engine.DecodeGT(b[n : 2*n]); err != nil {
		return com, fmt.Errorf("%w: d1: %v", ErrSerialization, err)
	}
	if com.D2, err = s.engine.DecodeGT(b[2*n:]); err != nil {
		return com, fmt.Errorf("%w: d2: %v", ErrSerialization, err)
	}
	return com, nil
}

// EncodeProof returns e₁‖e₂.
func (s *Scheme[G1, G2, GT, Zr]) EncodeProof(p ScalarProof[G1, G2]) []byte {
	out := make([]byte, 0, s.engine.SizeG1()+s.engine.SizeG2())
	out = append(out, s.engine.EncodeG1(p.E1)...)
	out = append(out, s.engine.EncodeG2(p.E2)...)
	return out
}

func (s *Scheme[G1, G2, GT, Zr]) DecodeProof(b []byte) (ScalarProof[G1, G2], error) {
	var p ScalarProof[G1, G2]
	n1, n2 := s.engine.SizeG1(), s.engine.SizeG2()
	if len(b) != n1+n2 {
		return p, fmt.Errorf("proof of %d bytes, expected %d: %w", len(b), n1+n2, ErrSerialization)
	}
	var err error
	if p.E1, err = s.engine.DecodeG1(b[:n1]); err != nil {
		return p, fmt.Errorf("%w: e1: %v", ErrSerialization, err)
	}
	if p.E2, err = s.engine.DecodeG2(b[n1:]); err != nil {
		return p, fmt.Errorf("%w: e2: %v", ErrSerialization, err)
	}
	return p, nil
}

// EncodeVectorParams writes a big-endian uint32 length n followed by the n
// G1 generators and the n G2 generators.
func (s *Scheme[G1, G2, GT, Zr]) EncodeVectorParams(vp *VectorParams[G1, G2]) []byte {
	n := vp.Len()
	out := make([]byte, 4, 4+n*(s.engine.SizeG1()+s.engine.SizeG2()))
	binary.BigEndian.PutUint32(out, uint32(n))
	for _, g := range vp.g1v {
		out = append(out, s.engine.EncodeG1(g)...)
	}
	for _, g := range vp.g2v {
		out = append(out, s.engine.EncodeG2(g)...)
	}
	return out
}

func (s *Scheme[G1, G2, GT, Zr]) DecodeVectorParams(b []byte) (*VectorParams[G1, G2], error) {
	if len(b) < 4 {
		return nil, fmt.Errorf("vector params of %d bytes: %w", len(b), ErrSerialization)
	}
	n := int(binary.BigEndian.Uint32(b))
	n1, n2 := s.engine.SizeG1(), s.engine.SizeG2()
	body := b[4:]
	if n == 0 || len(body) != n*(n1+n2) {
		return nil, fmt.Errorf("vector params of %d bytes for %d generators: %w", len(b), n, ErrSerialization)
	}

	vp := &VectorParams[G1, G2]{g1v: make([]G1, n), g2v: make([]G2, n)}
	var err error
	for i := range vp.g1v {
		if vp.g1v[i], err = s.engine.DecodeG1(body[i*n1 : (i+1)*n1]); err != nil {
			return nil, fmt.Errorf("%w: g1v[%d]: %v", ErrSerialization, i, err)
		}
	}
	body = body[n*n1:]
	for i := range vp.g2v {
		if vp.g2v[i], err = s.engine.DecodeG2(body[i*n2 : (i+1)*n2]); err != nil {
			return nil, fmt.Errorf("%w: g2v[%d]: %v", ErrSerialization, i, err)
		}
	}
	return vp, nil
}

// EncodeSingleParam returns g1‖g2‖c.
func (s *Scheme[G1, G2, GT, Zr]) EncodeSingleParam(sp *SingleParam[G1, G2, GT]) []byte {
	out := make([]byte, 0, s.engine.SizeG1()+s.engine.SizeG2()+s.engine.SizeGT())
	out = append(out, s.engine.EncodeG1(sp.g1)...)
	out = append(out, s.engine.EncodeG2(sp.g2)...)
	out = append(out, s.engine.EncodeGT(sp.c)...)
	return out
}

// DecodeSingleParam decodes g1‖g2‖c and checks c = e(g1, g2).
func (s *Scheme[G1, G2, GT, Zr]) DecodeSingleParam(b []byte) (*SingleParam[G1, G2, GT], error) {
	n1, n2, nt := s.engine.SizeG1(), s.engine.SizeG2(), s.engine.SizeGT()
	if len(b) != n1+n2+nt {
		return nil, fmt.Errorf("singleton params of %d bytes, expected %d: %w", len(b), n1+n2+nt, ErrSerialization)
	}
	g1, err := s.engine.DecodeG1(b[:n1])
	if err != nil {
		return nil, fmt.Errorf("%w: g1: %v", ErrSerialization, err)
	}
	g2, err := s.engine.DecodeG2(b[n1 : n1+n2])
	if err != nil {
		return nil, fmt.Errorf("%w: g2: %v", ErrSerialization, err)
	}
	c, err := s.engine.DecodeGT(b[n1+n2:])
	if err != nil {
		return nil, fmt.Errorf("%w: c: %v", ErrSerialization, err)
	}

	sp, err := s.NewSingleParam(g1, g2)
	if err != nil {
		return nil, err
	}
	if !s.engine.EqualGT(sp.c, c) {
		return nil, ErrInvalidSingleParam
	}
	return sp, nil
}
