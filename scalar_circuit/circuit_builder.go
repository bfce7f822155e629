package scalar

import (
	"bytes"

	"github.com/Electron-Labs/dory-pcs/dory"
	"github.com/consensys/gnark-crypto/ecc"
	fr_bn254 "github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark/backend/groth16"
	"github.com/consensys/gnark/constraint"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/frontend/cs/r1cs"
	"github.com/consensys/gnark/logger"
)

func BuildScalarCircuit() (pass bool, msg string, csBytes []uint8, pkBytes []uint8, vk groth16.VerifyingKey) {
	log := logger.Logger().With().Str("circuit", "scalar").Logger()

	log.Info().Msg("compiling")
	ccs, err := frontend.Compile(ecc.BN254.ScalarField(), r1cs.NewBuilder, NewPlaceholder())
	if err != nil {
		return false, "compile failed::" + err.Error(), csBytes, pkBytes, vk
	}
	log.Info().Int("constraints", ccs.GetNbConstraints()).Msg("compiling done")

	var cs bytes.Buffer
	_, err = ccs.WriteTo(&cs)
	if err != nil {
		return false, "write cs failed::" + err.Error(), csBytes, pkBytes, vk
	}
	csBytes = cs.Bytes()

	// create Groth16 setup. NB! UNSAFE
	pk, vk, err := groth16.Setup(ccs) // UNSAFE! Use MPC
	if err != nil {
		return false, "groth16.Setup failed::" + err.Error(), csBytes, pkBytes, vk
	}
	var pkRaw bytes.Buffer
	_, err = pk.WriteRawTo(&pkRaw)
	if err != nil {
		return false, "write pk failed::" + err.Error(), csBytes, pkBytes, vk
	}
	return true, "success", csBytes, pkRaw.Bytes(), vk
}

// ProveScalarCircuitWithCs proves the scalar circuit for an accepted scalar
// proof and checks the result against vk. The returned public inputs are in
// big-endian decimal.
func ProveScalarCircuitWithCs(cs constraint.ConstraintSystem, pk groth16.ProvingKey, vk groth16.VerifyingKey, sp *dory.BN254SingleParam, com dory.BN254Commitment, scalarProof dory.BN254Proof) (pass bool, msg string, proof groth16.Proof, pubInputs []string) {
	log := logger.Logger().With().Str("circuit", "scalar").Logger()

	assignment := NewAssignment(sp, com, scalarProof)

	log.Info().Msg("new witness")
	secretWitness, err := frontend.NewWitness(assignment, ecc.BN254.ScalarField())
	if err != nil {
		return false, "frontend.NewWitness failed::" + err.Error(), proof, pubInputs
	}
	publicWitness, err := secretWitness.Public()
	if err != nil {
		return false, "secretWitness.Public failed::" + err.Error(), proof, pubInputs
	}

	publicWitnessFrVector := publicWitness.Vector().(fr_bn254.Vector)
	pubInputs = make([]string, len(publicWitnessFrVector))
	for i := range publicWitnessFrVector {
		pubInputs[i] = publicWitnessFrVector[i].String()
	}

	log.Info().Msg("proving")
	proof, err = groth16.Prove(cs, pk, secretWitness)
	if err != nil {
		return false, "groth16.Prove failed::" + err.Error(), proof, pubInputs
	}

	err = groth16.Verify(proof, vk, publicWitness)
	if err != nil {
		return false, "circuit verification failed::" + err.Error(), proof, pubInputs
	}
	return true, "success", proof, pubInputs
}
