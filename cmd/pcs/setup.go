package pcs

import (
	"github.com/Electron-Labs/dory-pcs/dory"
	"github.com/spf13/cobra"
)

var setupSize int
var setupSeed int64

// setupCmd represents the setup command
var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Generate vector parameters, their generator tree root and, for size 1, singleton parameters",
	RunE: func(c *cobra.Command, args []string) error {
		seeded := c.Flags().Changed("seed")
		return withScheme(
			func(s *dory.BN254Scheme) error { return setup(s, setupSize, seeded, setupSeed) },
			func(s *dory.BLS12381Scheme) error { return setup(s, setupSize, seeded, setupSeed) },
		)
	},
}

func init() {
	pcsCmd.AddCommand(setupCmd)

	setupCmd.Flags().IntVar(&setupSize, "size", 1, "number of generators per group")
	setupCmd.Flags().Int64Var(&setupSeed, "seed", 0, "deterministic seed (insecure, for testing)")
}

func setup[G1, G2, GT, Zr any](s *dory.Scheme[G1, G2, GT, Zr], n int, seeded bool, seed int64) error {
	vp, err := s.Setup(n, randomness(seeded, seed))
	if err != nil {
		return err
	}
	path, err := writeArtifact(ParamsFile, s.EncodeVectorParams(vp))
	if err != nil {
		return err
	}
	log.Info().Str("path", path).Int("size", n).Msg("vector params written")

	tree, err := s.GeneratorTree(vp)
	if err != nil {
		return err
	}
	if _, err := writeArtifact(GeneratorRootFile, tree.Root()); err != nil {
		return err
	}
	log.Info().Hex("root", tree.Root()).Msg("generator tree root written")

	if n != 1 {
		return nil
	}
	sp, err := s.SingleParamFromVector(vp)
	if err != nil {
		return err
	}
	path, err = writeArtifact(SingleParamFile, s.EncodeSingleParam(sp))
	if err != nil {
		return err
	}
	log.Info().Str("path", path).Msg("singleton params written")
	return nil
}
