// File: types.go
// Role: Network type, options and sentinel errors.
//
// Errors:
//   - ErrEmptyUserID       user identifier is the empty string.
//   - ErrSelfReferral      referrer and candidate are the same user.
//   - ErrDuplicateReferrer candidate already has a referrer.
//   - ErrCycleDetected     candidate can already reach the referrer.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core network operations.
var (
	// ErrEmptyUserID indicates that an operation received an empty user ID.
	ErrEmptyUserID = errors.New("core: user ID is empty")

	// ErrSelfReferral indicates a referral whose referrer equals its candidate.
	ErrSelfReferral = errors.New("core: self-referral not allowed")

	// ErrDuplicateReferrer indicates the candidate was already referred by someone.
	ErrDuplicateReferrer = errors.New("core: candidate already has a referrer")

	// ErrCycleDetected indicates the referral would close a cycle.
	ErrCycleDetected = errors.New("core: referral would create a cycle")
)

// Observer is notified after every AddReferral attempt with the endpoints
// and the resulting error (nil on success). It runs after the write lock is
// released and must not block for long.
type Observer func(referrer, candidate string, err error)

// NetworkOption configures a Network before first use.
type NetworkOption func(n *Network)

// WithObserver registers fn to be called after each AddReferral attempt.
// A nil fn is ignored.
func WithObserver(fn Observer) NetworkOption {
	return func(n *Network) {
		if fn != nil {
			n.observers = append(n.observers, fn)
		}
	}
}

// Network is the in-memory referral graph.
//
// users is the catalog of known IDs, children is the forward adjacency
// (referrer → set of candidates) and parent the reverse mapping
// (candidate → referrer). mu guards all three: writers are serialized,
// readers may run concurrently.
//
// Invariants kept by AddReferral:
//   - no user refers themselves;
//   - every user has at most one parent;
//   - following children links never returns to the starting user.
type Network struct {
	mu sync.RWMutex

	users    map[string]struct{}
	children map[string]map[string]struct{}
	parent   map[string]string
	edges    int

	observers []Observer
}

// NetworkStats is a read-only summary of catalog sizes.
type NetworkStats struct {
	// UserCount is the number of known users.
	UserCount int

	// ReferralCount is the number of referral edges.
	ReferralCount int

	// RootCount is the number of users with no referrer.
	RootCount int

	// LeafCount is the number of users who referred nobody.
	LeafCount int
}

// NewNetwork creates an empty Network with the given options applied.
// Complexity: O(len(opts)).
func NewNetwork(opts ...NetworkOption) *Network {
	n := &Network{
		users:    make(map[string]struct{}),
		children: make(map[string]map[string]struct{}),
		parent:   make(map[string]string),
	}
	for _, opt := range opts {
		opt(n)
	}

	return n
}
