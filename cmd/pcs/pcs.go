package pcs

import (
	"crypto/rand"
	"encoding/json"
	"fmt"
	"io"
	"math/big"
	mrand "math/rand"
	"os"
	"path/filepath"

	"github.com/Electron-Labs/dory-pcs/cmd"
	"github.com/Electron-Labs/dory-pcs/dory"
	"github.com/Electron-Labs/dory-pcs/multilinear"
	"github.com/Electron-Labs/dory-pcs/transcript"
	"github.com/consensys/gnark/logger"
	"github.com/spf13/cobra"
)

const (
	ParamsFile        = "params.bin"
	GeneratorRootFile = "generator_root.bin"
	SingleParamFile   = "single_param.bin"
	CommitmentFile    = "commitment.bin"
	ProofFile         = "proof.bin"

	transcriptLabel = "dory-pcs"
)

// pcsCmd represents the pcs command
var pcsCmd = &cobra.Command{
	Use:   "pcs",
	Short: "Set up parameters, commit to polynomials and verify scalar proofs",
}

func init() {
	cmd.RootCmd.AddCommand(pcsCmd)
}

func artifact(name string) (string, error) {
	dir, err := cmd.CurveDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, name), nil
}

func writeArtifact(name string, b []byte) (string, error) {
	path, err := artifact(name)
	if err != nil {
		return "", err
	}
	return path, os.WriteFile(path, b, 0644)
}

// readInput reads path, or the named artifact when path is empty.
func readInput(path, name string) ([]byte, error) {
	if path == "" {
		var err error
		if path, err = artifact(name); err != nil {
			return nil, err
		}
	}
	return os.ReadFile(path)
}

func randomness(seeded bool, seed int64) io.Reader {
	if seeded {
		return mrand.New(mrand.NewSource(seed))
	}
	return rand.Reader
}

// readPoly parses a JSON array of decimal scalars into a dense table.
func readPoly[G1, G2, GT, Zr any](s *dory.Scheme[G1, G2, GT, Zr], path string) (*multilinear.Dense[Zr], error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var decimals []string
	if err := json.Unmarshal(b, &decimals); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	evals := make([]Zr, len(decimals))
	for i, d := range decimals {
		v, ok := new(big.Int).SetString(d, 10)
		if !ok {
			return nil, fmt.Errorf("evaluation %d: %q is not a decimal integer", i, d)
		}
		evals[i] = s.Engine().ScalarFromBigInt(v)
	}
	return multilinear.NewDense(evals)
}

func newTranscript(root []byte) *transcript.Keccak {
	t := transcript.New([]byte(transcriptLabel))
	t.AppendBytes(root)
	return t
}

// withScheme runs f on the scheme of the selected curve.
func withScheme(bn254 func(*dory.BN254Scheme) error, bls12381 func(*dory.BLS12381Scheme) error) error {
	switch cmd.Curve {
	case cmd.CurveBN254:
		return bn254(dory.NewBN254())
	case cmd.CurveBLS12381:
		return bls12381(dory.NewBLS12381())
	default:
		return fmt.Errorf("unsupported curve %q", cmd.Curve)
	}
}

var log = logger.Logger().With().Str("cmd", "pcs").Logger()
