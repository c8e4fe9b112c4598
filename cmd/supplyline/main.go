package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lucasmendis/supplyline/internal/adapters/cli"
)

func main() {
	root := &cobra.Command{
		Use:   "supplyline",
		Short: "Supply-chain logistics routing for grid worlds",
		Long: `supplyline resolves dynamic logistics endpoints for production
facilities over a mutable road network: which stockpile receives a facility's
output, and which producer or stockpile supplies its input.`,
	}

	root.AddCommand(cli.NewSimulateCommand())
	root.AddCommand(cli.NewWorldCommand())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
