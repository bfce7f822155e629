package dory

import (
	gentree "github.com/Electron-Labs/dory-pcs/generator_tree"
)

// GeneratorTree commits to enc(g1v[0]) … enc(g1v[n-1]), enc(g2v[0]) … enc(g2v[n-1]).
// Leaf i < n is g1v[i] and leaf n+i is g2v[i].
func (s *Scheme[G1, G2, GT, Zr]) GeneratorTree(vp *VectorParams[G1, G2]) (*gentree.Tree, error) {
	data := make([][]byte, 0, 2*vp.Len())
	for _, g := range vp.g1v {
		data = append(data, s.engine.EncodeG1(g))
	}
	for _, g := range vp.g2v {
		data = append(data, s.engine.EncodeG2(g))
	}
	return gentree.New(data)
}
