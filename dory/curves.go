package dory

import (
	"github.com/Electron-Labs/dory-pcs/pairing/bls12381"
	"github.com/Electron-Labs/dory-pcs/pairing/bn254"
	curve_bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	fr_bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	curve_bn254 "github.com/consensys/gnark-crypto/ecc/bn254"
	fr_bn254 "github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

type (
	BN254Scheme      = Scheme[curve_bn254.G1Affine, curve_bn254.G2Affine, curve_bn254.GT, fr_bn254.Element]
	BN254Commitment  = Commitment[curve_bn254.GT]
	BN254Proof       = ScalarProof[curve_bn254.G1Affine, curve_bn254.G2Affine]
	BN254SingleParam = SingleParam[curve_bn254.G1Affine, curve_bn254.G2Affine, curve_bn254.GT]

	BLS12381Scheme = Scheme[curve_bls12381.G1Affine, curve_bls12381.G2Affine, curve_bls12381.GT, fr_bls12381.Element]
)

func NewBN254() *BN254Scheme {
	return New[curve_bn254.G1Affine, curve_bn254.G2Affine, curve_bn254.GT, fr_bn254.Element](bn254.Engine{})
}

func NewBLS12381() *BLS12381Scheme {
	return New[curve_bls12381.G1Affine, curve_bls12381.G2Affine, curve_bls12381.GT, fr_bls12381.Element](bls12381.Engine{})
}
