package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "dory-pcs",
	Short: "CLI for committing to and verifying Dory scalar proofs",
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := RootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

const (
	CurveBN254    = "bn254"
	CurveBLS12381 = "bls12-381"
)

var OutputDir string
var Curve string

func init() {
	RootCmd.PersistentFlags().StringVar(&OutputDir, "out", "artifacts", "Output directory for storing artifacts")
	RootCmd.PersistentFlags().StringVar(&Curve, "curve", CurveBN254, "Pairing curve: bn254 or bls12-381")

	RootCmd.CompletionOptions.DisableDefaultCmd = true
}

// CurveDir is the artifacts directory of the selected curve, created on demand.
func CurveDir() (string, error) {
	if Curve != CurveBN254 && Curve != CurveBLS12381 {
		return "", fmt.Errorf("unsupported curve %q", Curve)
	}
	dir := filepath.Join(OutputDir, Curve)
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return "", err
	}
	return dir, nil
}
