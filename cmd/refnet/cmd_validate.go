package main

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/refnet/core"
	"github.com/katalvlaran/refnet/internal/edgefile"
)

// errInvalidEdges is returned when validate finds rule violations.
var errInvalidEdges = errors.New("edge file is not a valid referral forest")

type validateResult struct {
	File     string             `json:"file" yaml:"file"`
	Valid    bool               `json:"valid" yaml:"valid"`
	Users    int                `json:"users" yaml:"users"`
	Accepted int                `json:"accepted" yaml:"accepted"`
	Rejected []rejectedReferral `json:"rejected,omitempty" yaml:"rejected,omitempty"`
	Audit    edgefile.Audit     `json:"audit" yaml:"audit"`
	Roots    []string           `json:"roots" yaml:"roots"`
}

type rejectedReferral struct {
	Referrer  string `json:"referrer" yaml:"referrer"`
	Candidate string `json:"candidate" yaml:"candidate"`
	Reason    string `json:"reason" yaml:"reason"`
}

func (a *app) validateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check that an edge file describes a referral forest",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			f, err := edgefile.Load(a.edgesPath)
			if err != nil {
				return err
			}
			n := core.NewNetwork(core.WithObserver(a.metrics.Observer()))
			rep, err := f.Apply(n)
			if err != nil {
				return err
			}
			res := validateResult{
				File:     a.edgesPath,
				Users:    n.UserCount(),
				Accepted: rep.Accepted,
				Audit:    f.Audit(),
				Roots:    n.Roots(),
			}
			for _, r := range rep.Rejections {
				res.Rejected = append(res.Rejected, rejectedReferral{
					Referrer: r.Edge.Referrer, Candidate: r.Edge.Candidate, Reason: r.Err.Error(),
				})
			}
			res.Valid = res.Audit.Clean() && len(res.Rejected) == 0
			if err := a.emit("validate", res); err != nil {
				return err
			}
			if !res.Valid {
				return errors.Wrapf(errInvalidEdges, "%s: %d rejected", a.edgesPath, len(res.Rejected))
			}
			return nil
		},
	}
	a.addEdgesFlag(cmd)
	_ = cmd.MarkFlagRequired("edges")
	return cmd
}
