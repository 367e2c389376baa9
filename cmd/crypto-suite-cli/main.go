// Package main is the entry point for the crypto-suite-cli application.
package main

import (
	"fmt"
	"os"

	"github.com/rexmax1018/CryptoSuite48/cmd/crypto-suite-cli/internal/commands"
)

func main() {
	if err := commands.NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
