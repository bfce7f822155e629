// Package gentree commits to a list of public generators with a Keccak Merkle
// tree, so that a verifier holding only the root can check that a generator
// belongs to the parameter set.
package gentree

import (
	"encoding/binary"
	"errors"
	"fmt"

	circuitData "github.com/Electron-Labs/dory-pcs/circuit_data"
	mt "github.com/txaty/go-merkletree"
)

var (
	ErrTooFewLeaves    = errors.New("generator tree needs at least two leaves")
	ErrIndexOutOfRange = errors.New("leaf index out of range")
)

// leaf is index‖data. The index prefix keeps equal generators at different
// positions distinct, so proofs always point at the requested position.
type leaf []byte

func (l leaf) Serialize() ([]byte, error) {
	return l, nil
}

func newLeaf(i int, data []byte) leaf {
	l := make(leaf, 4, 4+len(data))
	binary.BigEndian.PutUint32(l, uint32(i))
	return append(l, data...)
}

type Tree struct {
	leaves []leaf
	tree   *mt.MerkleTree
}

// Proof is an inclusion proof for the leaf at Index.
type Proof struct {
	Index    uint32
	Siblings [][]byte
	Path     uint32
}

func config() *mt.Config {
	return &mt.Config{
		HashFunc: circuitData.KeccakHashFunc,
		Mode:     mt.ModeTreeBuild,
	}
}

// New builds the tree over the given encoded generators.
func New(data [][]byte) (*Tree, error) {
	if len(data) < 2 {
		return nil, fmt.Errorf("%d leaves: %w", len(data), ErrTooFewLeaves)
	}
	leaves := make([]leaf, len(data))
	blocks := make([]mt.DataBlock, len(data))
	for i := range data {
		leaves[i] = newLeaf(i, data[i])
		blocks[i] = leaves[i]
	}
	tree, err := mt.New(config(), blocks)
	if err != nil {
		return nil, fmt.Errorf("build generator tree: %w", err)
	}
	return &Tree{leaves: leaves, tree: tree}, nil
}

func (t *Tree) Root() circuitData.NativeKeccakHash {
	return t.tree.Root
}

func (t *Tree) Len() int {
	return len(t.leaves)
}

func (t *Tree) Proof(i int) (*Proof, error) {
	if i < 0 || i >= len(t.leaves) {
		return nil, fmt.Errorf("leaf %d of %d: %w", i, len(t.leaves), ErrIndexOutOfRange)
	}
	p, err := t.tree.Proof(t.leaves[i])
	if err != nil {
		return nil, fmt.Errorf("proof for leaf %d: %w", i, err)
	}
	return &Proof{Index: uint32(i), Siblings: p.Siblings, Path: p.Path}, nil
}

// Verify checks that data sits at proof.Index under root.
func Verify(data []byte, proof *Proof, root []byte) (bool, error) {
	p := &mt.Proof{Siblings: proof.Siblings, Path: proof.Path}
	return mt.Verify(newLeaf(int(proof.Index), data), p, root, config())
}
