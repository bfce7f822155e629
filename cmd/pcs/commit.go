package pcs

import (
	"fmt"

	"github.com/Electron-Labs/dory-pcs/dory"
	"github.com/spf13/cobra"
)

var polyFile string
var commitParamsFile string

// commitCmd represents the commit command
var commitCmd = &cobra.Command{
	Use:   "commit",
	Short: "Commit to a polynomial and, for a single evaluation, write its scalar proof",
	RunE: func(c *cobra.Command, args []string) error {
		return withScheme(
			func(s *dory.BN254Scheme) error { return commit(s) },
			func(s *dory.BLS12381Scheme) error { return commit(s) },
		)
	},
}

func init() {
	pcsCmd.AddCommand(commitCmd)

	commitCmd.Flags().StringVar(&polyFile, "poly", "", "JSON array of decimal evaluations")
	commitCmd.Flags().StringVar(&commitParamsFile, "params", "", "vector params (default <out>/<curve>/"+ParamsFile+")")
	commitCmd.MarkFlagRequired("poly")
}

func commit[G1, G2, GT, Zr any](s *dory.Scheme[G1, G2, GT, Zr]) error {
	b, err := readInput(commitParamsFile, ParamsFile)
	if err != nil {
		return err
	}
	vp, err := s.DecodeVectorParams(b)
	if err != nil {
		return err
	}
	poly, err := readPoly(s, polyFile)
	if err != nil {
		return err
	}

	w, err := s.NewWitness(vp, poly)
	if err != nil {
		return err
	}
	com, err := s.Commit(vp, w)
	if err != nil {
		return err
	}
	path, err := writeArtifact(CommitmentFile, s.EncodeCommitment(com))
	if err != nil {
		return err
	}
	log.Info().Str("path", path).Int("size", poly.Len()).Msg("commitment written")

	tree, err := s.GeneratorTree(vp)
	if err != nil {
		return err
	}
	t := newTranscript(tree.Root())
	com.AppendToTranscript(s.Transcript(t))
	fmt.Printf("challenge: %x\n", t.ChallengeBytes())

	if w.Len() != 1 {
		return nil
	}
	path, err = writeArtifact(ProofFile, s.EncodeProof(s.Prove(w)))
	if err != nil {
		return err
	}
	log.Info().Str("path", path).Msg("scalar proof written")
	return nil
}
