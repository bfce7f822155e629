package circuitdata

import (
	"bytes"
	"fmt"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/backend/groth16"
	"github.com/consensys/gnark/constraint"
)

// GetNewCSFromBytes decodes a BN254 constraint system written with WriteTo.
func GetNewCSFromBytes(csBytes []byte) (constraint.ConstraintSystem, error) {
	cs := groth16.NewCS(ecc.BN254)
	if _, err := cs.ReadFrom(bytes.NewReader(csBytes)); err != nil {
		return nil, fmt.Errorf("read cs: %w", err)
	}
	return cs, nil
}

// GetNewPKFromBytes decodes a BN254 Groth16 proving key written with WriteRawTo.
func GetNewPKFromBytes(pkBytes []byte) (groth16.ProvingKey, error) {
	pk := groth16.NewProvingKey(ecc.BN254)
	if _, err := pk.ReadFrom(bytes.NewReader(pkBytes)); err != nil {
		return nil, fmt.Errorf("read pk: %w", err)
	}
	return pk, nil
}
