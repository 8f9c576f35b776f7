// Command-line entrypoint for changekit.
//
// Usage:
//
//	go run ./cmd/changekit solve --coins 1,2,5 --amount 11
//	./changekit table -c 1,3,4 -a 10
//
// See --help for all commands and flags.
package main

import (
	"log"
	"os"

	"github.com/katalvlaran/changekit/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		log.Printf("changekit: %v", err)
		os.Exit(1)
	}
}
