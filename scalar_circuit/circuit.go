// Package scalar proves the commit-expand law of the Dory base case inside a
// Groth16 circuit over BN254: knowledge of (e₁, e₂) with
//
//	e(e₁, e₂) = C,  e(e₁, g2) = D₁,  e(g1, e₂) = D₂
//
// where the two public inputs are the halves of keccak(C‖D₁‖D₂‖g1‖g2).
package scalar

import (
	"fmt"

	circuitData "github.com/Electron-Labs/dory-pcs/circuit_data"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/std/algebra/emulated/sw_bn254"
	"github.com/consensys/gnark/std/math/uints"
)

type ScalarCircuit struct {
	E1        sw_bn254.G1Affine
	E2        sw_bn254.G2Affine
	G1        sw_bn254.G1Affine
	G2        sw_bn254.G2Affine
	C         sw_bn254.GTEl
	D1        sw_bn254.GTEl
	D2        sw_bn254.GTEl
	PubInputs []frontend.Variable `gnark:",public"`
}

func (circuit *ScalarCircuit) Define(api frontend.API) error {
	if len(circuit.PubInputs) != 2 {
		return fmt.Errorf("expected 2 public inputs, got %d", len(circuit.PubInputs))
	}
	pairing, err := sw_bn254.NewPairing(api)
	if err != nil {
		return fmt.Errorf("NewPairing: %w", err)
	}
	pairing.AssertIsOnG1(&circuit.E1)
	pairing.AssertIsOnG2(&circuit.E2)

	c, err := pairing.Pair([]*sw_bn254.G1Affine{&circuit.E1}, []*sw_bn254.G2Affine{&circuit.E2})
	if err != nil {
		return fmt.Errorf("pair(e1, e2): %w", err)
	}
	pairing.AssertIsEqual(c, &circuit.C)

	d1, err := pairing.Pair([]*sw_bn254.G1Affine{&circuit.E1}, []*sw_bn254.G2Affine{&circuit.G2})
	if err != nil {
		return fmt.Errorf("pair(e1, g2): %w", err)
	}
	pairing.AssertIsEqual(d1, &circuit.D1)

	d2, err := pairing.Pair([]*sw_bn254.G1Affine{&circuit.G1}, []*sw_bn254.G2Affine{&circuit.E2})
	if err != nil {
		return fmt.Errorf("pair(g1, e2): %w", err)
	}
	pairing.AssertIsEqual(d2, &circuit.D2)

	pubInputsSerializedComputed, err := ComputePubInputs(api, circuit)
	if err != nil {
		return fmt.Errorf("ComputePubInputs: %w", err)
	}
	return VerifyPublicInputs(api, pubInputsSerializedComputed, circuit.PubInputs)
}

func appendGT(elms *[]frontend.Variable, x *sw_bn254.GTEl) {
	AppendBeInPlace(elms, x.C1.B2.A1.Limbs)
	AppendBeInPlace(elms, x.C1.B2.A0.Limbs)
	AppendBeInPlace(elms, x.C1.B1.A1.Limbs)
	AppendBeInPlace(elms, x.C1.B1.A0.Limbs)
	AppendBeInPlace(elms, x.C1.B0.A1.Limbs)
	AppendBeInPlace(elms, x.C1.B0.A0.Limbs)
	AppendBeInPlace(elms, x.C0.B2.A1.Limbs)
	AppendBeInPlace(elms, x.C0.B2.A0.Limbs)
	AppendBeInPlace(elms, x.C0.B1.A1.Limbs)
	AppendBeInPlace(elms, x.C0.B1.A0.Limbs)
	AppendBeInPlace(elms, x.C0.B0.A1.Limbs)
	AppendBeInPlace(elms, x.C0.B0.A0.Limbs)
}

// ComputePubInputs returns keccak(C‖D₁‖D₂‖g1‖g2) with every element laid out
// as gnark-crypto's uncompressed Marshal does.
func ComputePubInputs(api frontend.API, circuit *ScalarCircuit) (pubInputsSerialized circuitData.KeccakHash, err error) {
	var u64Elms []frontend.Variable
	appendGT(&u64Elms, &circuit.C)
	appendGT(&u64Elms, &circuit.D1)
	appendGT(&u64Elms, &circuit.D2)

	AppendBeInPlace(&u64Elms, circuit.G1.X.Limbs)
	AppendBeInPlace(&u64Elms, circuit.G1.Y.Limbs)

	AppendBeInPlace(&u64Elms, circuit.G2.P.X.A1.Limbs)
	AppendBeInPlace(&u64Elms, circuit.G2.P.X.A0.Limbs)
	AppendBeInPlace(&u64Elms, circuit.G2.P.Y.A1.Limbs)
	AppendBeInPlace(&u64Elms, circuit.G2.P.Y.A0.Limbs)

	serialized := make([]uints.U8, len(u64Elms)*8)
	uapi, err := uints.New[uints.U64](api)
	if err != nil {
		return pubInputsSerialized, fmt.Errorf("uints.New: %w", err)
	}
	for i, u64Elm := range u64Elms {
		u64Bytes := uapi.ValueOf(u64Elm)
		ReverseInPlaceUints(&u64Bytes)
		copy(serialized[i*8:(i+1)*8], u64Bytes[:])
	}

	return circuitData.GetKeccak256Hash(api, serialized)
}

// VerifyPublicInputs packs the first and last 16 bytes of the hash into two
// field elements and binds them to the public inputs.
func VerifyPublicInputs(api frontend.API, pubInputsSerializedComputed []uints.U8, pubInputs []frontend.Variable) error {
	if len(pubInputsSerializedComputed) != circuitData.N_BYTES_HASH {
		return fmt.Errorf("hash of %d bytes", len(pubInputsSerializedComputed))
	}
	pub1Bits := []frontend.Variable{}
	for i := 0; i < 16; i++ {
		pub1Bits = append(pub1Bits, Reverse(api.ToBinary(pubInputsSerializedComputed[i].Val, 8))...) // reverse bit order to make up for the next reverse
	}
	ReverseInPlace(&pub1Bits) // reverse byte order, bit order within a byte is restored
	pub1 := api.FromBinary(pub1Bits...)

	pub2Bits := []frontend.Variable{}
	for i := 16; i < len(pubInputsSerializedComputed); i++ {
		pub2Bits = append(pub2Bits, Reverse(api.ToBinary(pubInputsSerializedComputed[i].Val, 8))...)
	}
	ReverseInPlace(&pub2Bits)
	pub2 := api.FromBinary(pub2Bits...)

	api.AssertIsEqual(pub1, pubInputs[0])
	api.AssertIsEqual(pub2, pubInputs[1])
	return nil
}
