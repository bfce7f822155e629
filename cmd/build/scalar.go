package build

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Electron-Labs/dory-pcs/cmd"
	scalar "github.com/Electron-Labs/dory-pcs/scalar_circuit"
	"github.com/spf13/cobra"
)

// scalarCmd represents the scalar command
var scalarCmd = &cobra.Command{
	Use:   "scalar",
	Short: "Build cs, pk and vk for the groth16 scalar circuit",
	RunE: func(cmd *cobra.Command, args []string) error {
		return buildScalar()
	},
}

func init() {
	buildCmd.AddCommand(scalarCmd)
}

func buildScalar() error {
	outputDir := filepath.Join(cmd.OutputDir, "scalar")
	err := os.MkdirAll(outputDir, os.ModePerm)
	if err != nil {
		return err
	}

	pass, msg, csBytes, pkBytes, vkInterface := scalar.BuildScalarCircuit()
	if !pass || len(csBytes) == 0 || len(pkBytes) == 0 {
		return fmt.Errorf("build scalar circuit failed: %s", msg)
	}

	return writePkVkCs(
		csBytes, pkBytes,
		vkInterface,
		filepath.Join(outputDir, "scalar_cs.bin"),
		filepath.Join(outputDir, "scalar_pk.bin"),
		filepath.Join(outputDir, "scalar_vk.json"),
	)
}
