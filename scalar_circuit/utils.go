package scalar

import (
	"math/big"

	circuitData "github.com/Electron-Labs/dory-pcs/circuit_data"
	"github.com/Electron-Labs/dory-pcs/dory"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/std/algebra/emulated/sw_bn254"
	"github.com/consensys/gnark/std/math/uints"
)

func AppendBeInPlace(array *[]frontend.Variable, values []frontend.Variable) {
	*array = append(*array, Reverse(values)...)
}

func ReverseInPlaceUints(array *uints.U64) {
	for i, j := 0, len(*array)-1; i < j; i, j = i+1, j-1 {
		(*array)[i], (*array)[j] = (*array)[j], (*array)[i]
	}
}

func ReverseInPlace[T any](array *[]T) {
	for i, j := 0, len(*array)-1; i < j; i, j = i+1, j-1 {
		(*array)[i], (*array)[j] = (*array)[j], (*array)[i]
	}
}

func Reverse[T any](array []T) []T {
	reversed := make([]T, len(array))
	for i := range array {
		reversed[len(array)-1-i] = array[i]
	}
	return reversed
}

// PubInputsHash is the native keccak(C‖D₁‖D₂‖g1‖g2).
func PubInputsHash(sp *dory.BN254SingleParam, com dory.BN254Commitment) circuitData.NativeKeccakHash {
	g1, g2 := sp.G1(), sp.G2()
	return circuitData.NativeKeccak256(
		com.C.Marshal(),
		com.D1.Marshal(),
		com.D2.Marshal(),
		g1.Marshal(),
		g2.Marshal(),
	)
}

// GetPublicInputs splits PubInputsHash into two 128-bit big-endian halves.
func GetPublicInputs(sp *dory.BN254SingleParam, com dory.BN254Commitment) [2]*big.Int {
	h := PubInputsHash(sp, com)
	pub1 := new(big.Int).SetBytes(h[:16])
	pub2 := new(big.Int).SetBytes(h[16:])
	return [2]*big.Int{pub1, pub2}
}

func NewPlaceholder() *ScalarCircuit {
	return &ScalarCircuit{
		PubInputs: make([]frontend.Variable, 2),
	}
}

// NewAssignment builds the full witness for a scalar proof.
func NewAssignment(sp *dory.BN254SingleParam, com dory.BN254Commitment, proof dory.BN254Proof) *ScalarCircuit {
	pub := GetPublicInputs(sp, com)
	return &ScalarCircuit{
		E1:        sw_bn254.NewG1Affine(proof.E1),
		E2:        sw_bn254.NewG2Affine(proof.E2),
		G1:        sw_bn254.NewG1Affine(sp.G1()),
		G2:        sw_bn254.NewG2Affine(sp.G2()),
		C:         sw_bn254.NewGTEl(com.C),
		D1:        sw_bn254.NewGTEl(com.D1),
		D2:        sw_bn254.NewGTEl(com.D2),
		PubInputs: []frontend.Variable{pub[0], pub[1]},
	}
}
