package bfs

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrStartNotFound: the start ID is not a known user.
	ErrStartNotFound = errors.New("bfs: start user not found")

	// ErrNetworkNil: BFS was handed a nil network.
	ErrNetworkNil = errors.New("bfs: network is nil")

	// ErrOptionViolation: an Option carried an out-of-range value.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option adjusts a single walk. A bad value does not panic; it is kept and
// BFS reports it as ErrOptionViolation before touching the network.
type Option func(*BFSOptions)

// BFSOptions is the resolved configuration of a walk.
type BFSOptions struct {
	Ctx context.Context

	// OnEnqueue sees each user once, when it is first discovered.
	OnEnqueue func(id string, depth int)

	// OnVisit sees each user as it leaves the queue, so calls arrive in
	// generation order. A non-nil error ends the walk.
	OnVisit func(id string, depth int) error

	// MaxDepth keeps the walk within that many generations of the start.
	// Zero means unbounded.
	MaxDepth int

	// SizeHint pre-sizes the queue and maps, usually to the user count.
	SizeHint int

	err error
}

// DefaultOptions is an unbounded walk on context.Background with no hooks.
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Ctx:       context.Background(),
		OnEnqueue: func(string, int) {},
		OnVisit:   func(string, int) error { return nil },
	}
}

// WithContext cancels the walk when ctx is done. nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue installs the discovery hook.
func WithOnEnqueue(fn func(id string, depth int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnVisit installs the visit hook; an error from fn aborts BFS.
func WithOnVisit(fn func(id string, depth int) error) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth limits the walk to d generations below the start. d == 0
// lifts the limit and d < 0 is an ErrOptionViolation.
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithSizeHint pre-sizes internal buffers.
func WithSizeHint(n int) Option {
	return func(o *BFSOptions) {
		o.SizeHint = n
	}
}

// BFSResult is what a walk leaves behind. Order lists users as they were
// visited with Start first, Depth holds hop counts from Start, and Parent
// links every reached user except Start to the user that discovered it.
type BFSResult struct {
	Start  string
	Order  []string
	Depth  map[string]int
	Parent map[string]string
}

// Descendants returns the visited users other than Start, in visit order.
func (r *BFSResult) Descendants() []string {
	if len(r.Order) == 0 {
		return nil
	}
	out := make([]string, 0, len(r.Order)-1)
	for _, id := range r.Order {
		if id != r.Start {
			out = append(out, id)
		}
	}

	return out
}

// PathTo follows Parent links back from dest and returns the referral chain
// Start → … → dest. It fails if the walk never reached dest.
func (r *BFSResult) PathTo(dest string) ([]string, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("bfs: no path to %q", dest)
	}
	var path []string
	for cur, ok := dest, true; ok; cur, ok = r.Parent[cur] {
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
