// Package edgefile reads and writes referral networks as YAML edge lists:
//
//	users: [carol]            # optional isolated users
//	referrals:
//	  - referrer: alice
//	    candidate: bob
//
// A File is the raw, unvalidated list. It satisfies dfs.Adjacency so it can
// be audited for cycles before anything is inserted; Apply then feeds it to a
// core.Network and collects the referrals the network rejects.
package edgefile

import (
	"bytes"
	"context"
	"io"
	"os"
	"sort"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/refnet/core"
	"github.com/katalvlaran/refnet/dfs"
)

// Edge is one referral record.
type Edge struct {
	Referrer  string `yaml:"referrer" json:"referrer"`
	Candidate string `yaml:"candidate" json:"candidate"`
}

// File is a parsed edge list.
type File struct {
	UserIDs   []string `yaml:"users,omitempty"`
	Referrals []Edge   `yaml:"referrals"`

	children map[string][]string
	ids      []string
}

// Load reads and parses the edge file at path.
func Load(path string) (*File, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read edge file %s", path)
	}
	f, err := Parse(bytes.NewReader(b))
	if err != nil {
		return nil, errors.Wrapf(err, "edge file %s", path)
	}
	return f, nil
}

// Parse decodes an edge list from r. An empty document yields an empty File.
func Parse(r io.Reader) (*File, error) {
	var f File
	if err := yaml.NewDecoder(r).Decode(&f); err != nil && err != io.EOF {
		return nil, errors.Wrap(err, "decode edges")
	}
	f.index()
	return &f, nil
}

// index builds the raw adjacency, keeping duplicate edges out and children
// in file order.
func (f *File) index() {
	f.children = make(map[string][]string)
	seen := make(map[string]struct{})
	add := func(id string) {
		if id == "" {
			return
		}
		if _, ok := seen[id]; !ok {
			seen[id] = struct{}{}
			f.ids = append(f.ids, id)
		}
	}
	for _, u := range f.UserIDs {
		add(u)
	}
	pairs := make(map[Edge]struct{}, len(f.Referrals))
	for _, e := range f.Referrals {
		add(e.Referrer)
		add(e.Candidate)
		if _, dup := pairs[e]; dup || e.Referrer == "" || e.Candidate == "" {
			continue
		}
		pairs[e] = struct{}{}
		f.children[e.Referrer] = append(f.children[e.Referrer], e.Candidate)
	}
	sort.Strings(f.ids)
}

// Users returns every ID mentioned in the file, sorted.
func (f *File) Users() []string {
	return append([]string(nil), f.ids...)
}

// DirectReferrals returns the candidates listed for id, in file order.
func (f *File) DirectReferrals(id string) []string {
	return append([]string(nil), f.children[id]...)
}

var _ dfs.Adjacency = (*File)(nil)

// Audit summarizes rule violations present in the raw list, independent of
// insertion order.
type Audit struct {
	SelfReferrals  []string            `yaml:"self_referrals,omitempty" json:"self_referrals,omitempty"`
	MultiReferrers map[string][]string `yaml:"multi_referrers,omitempty" json:"multi_referrers,omitempty"`
	Cycles         [][]string          `yaml:"cycles,omitempty" json:"cycles,omitempty"`
	EmptyIDs       int                 `yaml:"empty_ids,omitempty" json:"empty_ids,omitempty"`
}

// Clean reports whether the file describes a valid referral forest.
func (a Audit) Clean() bool {
	return len(a.SelfReferrals) == 0 && len(a.MultiReferrers) == 0 && len(a.Cycles) == 0 && a.EmptyIDs == 0
}

// Audit inspects the raw list. Self-referrals are excluded from cycle
// reporting; cycles of length ≥ 2 come from dfs.DetectCycles.
func (f *File) Audit() Audit {
	var a Audit
	refs := make(map[string][]string)
	for _, e := range f.Referrals {
		switch {
		case e.Referrer == "" || e.Candidate == "":
			a.EmptyIDs++
		case e.Referrer == e.Candidate:
			a.SelfReferrals = append(a.SelfReferrals, e.Referrer)
		default:
			if !contains(refs[e.Candidate], e.Referrer) {
				refs[e.Candidate] = append(refs[e.Candidate], e.Referrer)
			}
		}
	}
	for c, rs := range refs {
		if len(rs) > 1 {
			if a.MultiReferrers == nil {
				a.MultiReferrers = make(map[string][]string)
			}
			sort.Strings(rs)
			a.MultiReferrers[c] = rs
		}
	}
	sort.Strings(a.SelfReferrals)

	_, cycles := dfs.DetectCycles(withoutLoops{f})
	a.Cycles = cycles
	return a
}

// withoutLoops hides self-referrals from cycle detection.
type withoutLoops struct{ *File }

func (w withoutLoops) DirectReferrals(id string) []string {
	var out []string
	for _, c := range w.File.children[id] {
		if c != id {
			out = append(out, c)
		}
	}
	return out
}

// Rejection is a referral the network refused.
type Rejection struct {
	Edge Edge
	Err  error
}

// Report is the outcome of Apply.
type Report struct {
	Accepted   int
	Rejections []Rejection
}

// Apply registers the file's users and inserts its referrals in file order.
// Rejected referrals are collected, not fatal; only a nil network errors.
func (f *File) Apply(n *core.Network) (Report, error) {
	var rep Report
	if n == nil {
		return rep, errors.New("edgefile: nil network")
	}
	for _, u := range f.UserIDs {
		if err := n.AddUser(u); err != nil {
			rep.Rejections = append(rep.Rejections, Rejection{Edge: Edge{Candidate: u}, Err: err})
		}
	}
	for _, e := range f.Referrals {
		if err := n.AddReferral(e.Referrer, e.Candidate); err != nil {
			rep.Rejections = append(rep.Rejections, Rejection{Edge: e, Err: err})
			continue
		}
		rep.Accepted++
	}
	return rep, nil
}

// FromNetwork snapshots n as a File. Isolated users go under UserIDs; the
// referrals are listed in topological order, so every referrer appears as a
// candidate (or is a root) before it refers anyone and the file replays
// cleanly through Apply. Cancelling ctx abandons the snapshot.
func FromNetwork(ctx context.Context, n *core.Network) (*File, error) {
	order, err := dfs.TopologicalSort(n, dfs.WithCancelContext(ctx))
	if err != nil {
		return nil, errors.Wrap(err, "order referrals")
	}
	f := &File{}
	for _, id := range order {
		kids := n.DirectReferrals(id)
		if _, referred := n.Referrer(id); !referred && len(kids) == 0 {
			f.UserIDs = append(f.UserIDs, id)
		}
		for _, c := range kids {
			f.Referrals = append(f.Referrals, Edge{Referrer: id, Candidate: c})
		}
	}
	sort.Strings(f.UserIDs)
	f.index()
	return f, nil
}

// Encode writes f as YAML.
func (f *File) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(f); err != nil {
		return errors.Wrap(err, "encode edges")
	}
	return errors.Wrap(enc.Close(), "encode edges")
}

func contains(s []string, v string) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}
	return false
}
