// Command refnet loads or synthesizes a referral network and prints analytics,
// growth projections and bonus recommendations.
package main

import (
	"context"
	"os"
)

func main() {
	os.Exit(execute(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}
