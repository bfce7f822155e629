package build

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/Electron-Labs/dory-pcs/cmd"
	"github.com/consensys/gnark/backend/groth16"
	groth16_bn254 "github.com/consensys/gnark/backend/groth16/bn254"
	"github.com/spf13/cobra"
)

// buildCmd represents the build command
var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build cs, pk, and vk files for specific circuits",
}

func init() {
	cmd.RootCmd.AddCommand(buildCmd)
}

// writePkVkCs writes cs and pk as raw bytes and vk as indented JSON.
func writePkVkCs(
	csBytes, pkBytes []byte,
	vkInterface groth16.VerifyingKey,
	csFile, pkFile, vkFile string,
) error {
	if err := os.WriteFile(csFile, csBytes, 0644); err != nil {
		return err
	}
	if err := os.WriteFile(pkFile, pkBytes, 0644); err != nil {
		return err
	}

	vk, ok := vkInterface.(*groth16_bn254.VerifyingKey)
	if !ok {
		return fmt.Errorf("invalid vkey")
	}
	bytesVK, err := json.MarshalIndent(vk, "", " ")
	if err != nil {
		return fmt.Errorf("marshal vk: %w", err)
	}
	return os.WriteFile(vkFile, bytesVK, 0644)
}
