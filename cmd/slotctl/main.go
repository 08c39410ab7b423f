// Command slotctl runs the availability engine on JSON documents without a
// database: merge windows, tile them into slots, validate a candidate, pick a
// slot from a timeline click and expand weekly rules.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
