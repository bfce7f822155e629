package circuitdata

import (
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/std/hash/sha3"
	"github.com/consensys/gnark/std/math/uints"
	nativesha3 "golang.org/x/crypto/sha3"
)

// GetKeccak256Hash hashes serializedElems in-circuit.
func GetKeccak256Hash(api frontend.API, serializedElems []uints.U8) (KeccakHash, error) {
	var hashComputed []uints.U8
	hasher, err := sha3.NewLegacyKeccak256(api)
	if err != nil {
		return hashComputed, err
	}
	hasher.Write(serializedElems)
	hashComputed = hasher.Sum()
	return hashComputed, nil
}

// KeccakHashFunc is the native counterpart of GetKeccak256Hash. Its signature
// matches the merkle tree hash function type.
func KeccakHashFunc(data []byte) ([]byte, error) {
	keccakFunc := nativesha3.NewLegacyKeccak256()
	keccakFunc.Write(data)
	return keccakFunc.Sum(nil), nil
}

// NativeKeccak256 hashes the concatenation of chunks.
func NativeKeccak256(chunks ...[]byte) NativeKeccakHash {
	keccakFunc := nativesha3.NewLegacyKeccak256()
	for _, c := range chunks {
		keccakFunc.Write(c)
	}
	return keccakFunc.Sum(nil)
}
