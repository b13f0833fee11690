package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/refnet/stats"
)

func (a *app) statsCmd() *cobra.Command {
	var top int
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print network size, influencer rankings and tree shape",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			n, err := a.loadNetwork()
			if err != nil {
				return err
			}
			k := a.cfg.Analytics.TopK
			if cmd.Flags().Changed("top") {
				k = top
			}
			var s stats.NetworkStats
			err = a.metrics.Time("stats", func() error {
				s, err = stats.Compute(cmd.Context(), n, k)
				return err
			})
			if err != nil {
				return err
			}
			return a.emit("stats", s)
		},
	}
	a.addEdgesFlag(cmd)
	cmd.Flags().IntVar(&top, "top", stats.DefaultTopK, "ranking length")
	return cmd
}
