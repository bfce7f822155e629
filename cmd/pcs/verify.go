package pcs

import (
	"errors"
	"fmt"

	"github.com/Electron-Labs/dory-pcs/dory"
	"github.com/spf13/cobra"
)

var ErrRejected = errors.New("scalar proof rejected")

var verifyParamsFile string
var commitmentFile string
var proofFile string

// verifyCmd represents the verify command
var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Verify a scalar proof against a commitment and singleton parameters",
	RunE: func(c *cobra.Command, args []string) error {
		return withScheme(
			func(s *dory.BN254Scheme) error { return verify(s) },
			func(s *dory.BLS12381Scheme) error { return verify(s) },
		)
	},
}

func init() {
	pcsCmd.AddCommand(verifyCmd)

	verifyCmd.Flags().StringVar(&verifyParamsFile, "params", "", "singleton params (default <out>/<curve>/"+SingleParamFile+")")
	verifyCmd.Flags().StringVar(&commitmentFile, "commitment", "", "commitment (default <out>/<curve>/"+CommitmentFile+")")
	verifyCmd.Flags().StringVar(&proofFile, "proof", "", "scalar proof (default <out>/<curve>/"+ProofFile+")")
}

// LoadScalarArtifacts decodes singleton params, a commitment and a scalar proof.
func LoadScalarArtifacts[G1, G2, GT, Zr any](s *dory.Scheme[G1, G2, GT, Zr], paramsPath, commitmentPath, proofPath string) (*dory.SingleParam[G1, G2, GT], dory.Commitment[GT], dory.ScalarProof[G1, G2], error) {
	var (
		com   dory.Commitment[GT]
		proof dory.ScalarProof[G1, G2]
	)
	b, err := readInput(paramsPath, SingleParamFile)
	if err != nil {
		return nil, com, proof, err
	}
	sp, err := s.DecodeSingleParam(b)
	if err != nil {
		return nil, com, proof, fmt.Errorf("singleton params: %w", err)
	}
	if b, err = readInput(commitmentPath, CommitmentFile); err != nil {
		return nil, com, proof, err
	}
	if com, err = s.DecodeCommitment(b); err != nil {
		return nil, com, proof, fmt.Errorf("commitment: %w", err)
	}
	if b, err = readInput(proofPath, ProofFile); err != nil {
		return nil, com, proof, err
	}
	if proof, err = s.DecodeProof(b); err != nil {
		return nil, com, proof, fmt.Errorf("proof: %w", err)
	}
	return sp, com, proof, nil
}

func verify[G1, G2, GT, Zr any](s *dory.Scheme[G1, G2, GT, Zr]) error {
	sp, com, proof, err := LoadScalarArtifacts(s, verifyParamsFile, commitmentFile, proofFile)
	if err != nil {
		return err
	}
	ok, err := s.Verify(sp, com, proof, nil)
	if err != nil {
		return err
	}
	fmt.Printf("verified: %t\n", ok)
	if !ok {
		return ErrRejected
	}
	return nil
}
