package main

import (
	"fmt"
	"os"

	"github.com/moneywise/moneywise/internal/adapters/inbound/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "moneywise:", err)
		os.Exit(1)
	}
}
