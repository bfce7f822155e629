package prove

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Electron-Labs/dory-pcs/cmd"
	"github.com/Electron-Labs/dory-pcs/cmd/pcs"
	"github.com/Electron-Labs/dory-pcs/dory"
	scalar "github.com/Electron-Labs/dory-pcs/scalar_circuit"
	"github.com/consensys/gnark/logger"
	"github.com/spf13/cobra"
)

// scalarCmd represents the scalar command
var scalarCmd = &cobra.Command{
	Use:   "scalar",
	Short: "Generate a groth16 proof of the scalar commit-expand law (bn254 only)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return proveScalar()
	},
}

func init() {
	proveCmd.AddCommand(scalarCmd)
}

func proveScalar() error {
	if cmd.Curve != cmd.CurveBN254 {
		return fmt.Errorf("scalar circuit is defined over bn254, got --curve %s", cmd.Curve)
	}
	log := logger.Logger().With().Str("cmd", "prove scalar").Logger()
	circuitDir := filepath.Join(cmd.OutputDir, "scalar")

	log.Info().Msg("setting up scalar artifacts")
	scalarPk, err := readPk(filepath.Join(circuitDir, "scalar_pk.bin"))
	if err != nil {
		return err
	}
	scalarCs, err := readCs(filepath.Join(circuitDir, "scalar_cs.bin"))
	if err != nil {
		return err
	}
	scalarVk, err := readVk(filepath.Join(circuitDir, "scalar_vk.json"))
	if err != nil {
		return err
	}

	s := dory.NewBN254()
	sp, com, proof, err := pcs.LoadScalarArtifacts(s, paramsFile, commitmentFile, proofFile)
	if err != nil {
		return err
	}
	ok, err := s.Verify(sp, com, proof, nil)
	if err != nil {
		return err
	}
	if !ok {
		return pcs.ErrRejected
	}

	start := time.Now()
	pass, msg, groth16Proof, pis := scalar.ProveScalarCircuitWithCs(scalarCs, scalarPk, &scalarVk, sp, com, proof)
	if !pass {
		return fmt.Errorf("prove scalar circuit failed: %s", msg)
	}
	log.Info().Dur("took", time.Since(start)).Msg("proof generated")

	fileProof, err := os.Create(filepath.Join(circuitDir, "scalar_proof.bin"))
	if err != nil {
		return err
	}
	defer fileProof.Close()
	if _, err = groth16Proof.WriteTo(fileProof); err != nil {
		return err
	}

	pisBytes, err := json.MarshalIndent(pis, "", "    ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(circuitDir, "scalar_pis.json"), pisBytes, 0644)
}
