package core_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/refnet/core"
)

// ExampleNetwork_AddReferral shows the three rejection kinds.
func ExampleNetwork_AddReferral() {
	n := core.NewNetwork()
	_ = n.AddReferral("alice", "bob")
	_ = n.AddReferral("bob", "carol")

	fmt.Println(errors.Is(n.AddReferral("dave", "dave"), core.ErrSelfReferral))
	fmt.Println(errors.Is(n.AddReferral("dave", "carol"), core.ErrDuplicateReferrer))
	fmt.Println(errors.Is(n.AddReferral("carol", "alice"), core.ErrCycleDetected))
	fmt.Println(n.UserCount(), n.ReferralCount(), n.Roots())
	// Output:
	// true
	// true
	// true
	// 3 2 [alice]
}
