package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/refnet/reach"
)

type reachResult struct {
	UserID      string     `json:"user_id" yaml:"user_id"`
	Known       bool       `json:"known" yaml:"known"`
	Referrer    string     `json:"referrer,omitempty" yaml:"referrer,omitempty"`
	Direct      []string   `json:"direct" yaml:"direct"`
	Total       int        `json:"total" yaml:"total"`
	Downstream  []string   `json:"downstream" yaml:"downstream"`
	Generations [][]string `json:"generations" yaml:"generations"`
}

func (a *app) reachCmd() *cobra.Command {
	var depth int
	cmd := &cobra.Command{
		Use:   "reach <user>",
		Short: "Show a user's direct referrals and downstream reach",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := a.loadNetwork()
			if err != nil {
				return err
			}
			id := args[0]
			res := reachResult{
				UserID:     id,
				Known:      n.HasUser(id),
				Direct:     n.DirectReferrals(id),
				Total:      reach.TotalReferralCount(n, id),
				Downstream: reach.DownstreamReach(n, id).Sorted(),
			}
			if res.Generations, err = reach.Generations(cmd.Context(), n, id, depth); err != nil {
				return err
			}
			res.Referrer, _ = n.Referrer(id)
			if !res.Known {
				a.log.Warn().Str("user", id).Msg("unknown user")
			}
			return a.emit("reach", res)
		},
	}
	a.addEdgesFlag(cmd)
	cmd.Flags().IntVar(&depth, "depth", 0, "generations to list (0 = all)")
	return cmd
}
