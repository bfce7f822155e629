package prove

import (
	"encoding/json"
	"os"

	circuit_data "github.com/Electron-Labs/dory-pcs/circuit_data"
	"github.com/Electron-Labs/dory-pcs/cmd"
	"github.com/consensys/gnark/backend/groth16"
	groth16_bn254 "github.com/consensys/gnark/backend/groth16/bn254"
	"github.com/consensys/gnark/constraint"
	"github.com/spf13/cobra"
)

var paramsFile string
var commitmentFile string
var proofFile string

// proveCmd represents the prove command
var proveCmd = &cobra.Command{
	Use:   "prove",
	Short: "Generate proofs for specific circuits",
}

func init() {
	cmd.RootCmd.AddCommand(proveCmd)

	proveCmd.PersistentFlags().StringVar(&paramsFile, "params", "", "singleton params (default from pcs setup)")
	proveCmd.PersistentFlags().StringVar(&commitmentFile, "commitment", "", "commitment (default from pcs commit)")
	proveCmd.PersistentFlags().StringVar(&proofFile, "proof", "", "scalar proof (default from pcs commit)")
}

func readPk(path string) (groth16.ProvingKey, error) {
	bytesPk, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return circuit_data.GetNewPKFromBytes(bytesPk)
}

func readCs(path string) (constraint.ConstraintSystem, error) {
	bytesCs, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return circuit_data.GetNewCSFromBytes(bytesCs)
}

func readVk(path string) (groth16_bn254.VerifyingKey, error) {
	vk := groth16_bn254.VerifyingKey{}
	bytesVK, err := os.ReadFile(path)
	if err != nil {
		return vk, err
	}
	err = json.Unmarshal(bytesVK, &vk)
	if err != nil {
		return vk, err
	}
	err = vk.Precompute()
	return vk, err
}
