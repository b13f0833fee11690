package main

import (
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/refnet/internal/edgefile"
)

// exportCmd writes the loaded network back out as an edge file. With no
// --edges it dumps the dashboard sample data, which makes a seeded fixture
// easy to capture and edit.
func (a *app) exportCmd() *cobra.Command {
	var outPath string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the network as a YAML edge file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			n, err := a.loadNetwork()
			if err != nil {
				return err
			}
			f, err := edgefile.FromNetwork(cmd.Context(), n)
			if err != nil {
				return err
			}
			if outPath == "" {
				return f.Encode(a.out)
			}
			w, err := os.Create(outPath)
			if err != nil {
				return errors.Wrapf(err, "create %s", outPath)
			}
			if err := f.Encode(w); err != nil {
				_ = w.Close()
				return err
			}
			a.log.Info().Str("file", outPath).Int("referrals", len(f.Referrals)).Msg("network exported")
			return errors.Wrapf(w.Close(), "close %s", outPath)
		},
	}
	a.addEdgesFlag(cmd)
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "destination file (default: stdout)")
	return cmd
}
