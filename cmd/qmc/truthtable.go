package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dkmccandless/qmc/term"
)

var (
	ttTerms    = &termFlags{}
	ttMinterms []int
	ttMaxterms []int
)

var truthTableCmd = &cobra.Command{
	Use:   "truth-table",
	Short: "Print the truth table implied by a set of minterms, maxterms, and don't-cares",
	RunE:  runTruthTable,
}

func init() {
	rootCmd.AddCommand(truthTableCmd)

	f := truthTableCmd.Flags()
	f.AddFlagSet(newTermFlagSet(ttTerms))
	f.IntSliceVar(&ttMinterms, "minterms", nil, "minterm indices where the function is 1")
	f.IntSliceVar(&ttMaxterms, "maxterms", nil, "maxterm indices where the function is 0")
}

func runTruthTable(cmd *cobra.Command, args []string) error {
	if ttTerms.width <= 0 {
		return fmt.Errorf("truth-table: --width must be a positive integer")
	}
	ones := indexSet(ttMinterms)
	zeros := indexSet(ttMaxterms)
	dontcares := indexSet(ttTerms.dontcares)

	out := cmd.OutOrStdout()
	for n := uint64(0); n < uint64(1)<<uint(ttTerms.width); n++ {
		bits, err := term.ToBits(n, ttTerms.width)
		if err != nil {
			return err
		}
		val := "?"
		switch {
		case ones[n]:
			val = "1"
		case zeros[n]:
			val = "0"
		case dontcares[n]:
			val = "-"
		}
		fmt.Fprintf(out, "%s  %s\n", bits, val)
	}
	return nil
}

func indexSet(ns []int) map[uint64]bool {
	m := make(map[uint64]bool, len(ns))
	for _, n := range ns {
		m[uint64(n)] = true
	}
	return m
}
