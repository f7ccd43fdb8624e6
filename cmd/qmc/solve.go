package main

import (
	"fmt"
	"unicode/utf8"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dkmccandless/qmc"
)

var (
	solveTerms     = &termFlags{}
	solveMinterms  []int
	solveMaxterms  []int
	solveVars      []string
	solveDash      string
	solvePOS       bool
	solveAllCovers bool
	solveNoSort    bool
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Minimize a Boolean function given as minterms or maxterms",
	RunE:  runSolve,
}

func init() {
	rootCmd.AddCommand(solveCmd)

	f := solveCmd.Flags()
	f.AddFlagSet(newTermFlagSet(solveTerms))
	f.IntSliceVar(&solveMinterms, "minterms", nil, "minterm indices where the function is 1")
	f.IntSliceVar(&solveMaxterms, "maxterms", nil, "maxterm indices where the function is 0")
	f.StringSliceVar(&solveVars, "vars", nil, "positional variable names (default A, B, C, ...)")
	f.StringVar(&solveDash, "dash", "", "dash symbol for rendered implicants (default −)")
	f.BoolVar(&solvePOS, "pos", false, "render as product-of-sums; reinterprets --minterms as maxterms if --maxterms was not also given")
	f.BoolVar(&solveAllCovers, "all-covers", false, "return every cover found, not only the minimum-cost ones")
	f.BoolVar(&solveNoSort, "no-sort", false, "preserve cover assembly order instead of sorting each cover descending")

	_ = viper.BindPFlag("width", f.Lookup("width"))
	_ = viper.BindPFlag("vars", f.Lookup("vars"))
	_ = viper.BindPFlag("dash", f.Lookup("dash"))
}

func runSolve(cmd *cobra.Command, args []string) error {
	width := solveTerms.width
	if width == 0 {
		width = viper.GetInt("width")
	}

	minterms, maxterms := solveMinterms, solveMaxterms
	if solvePOS && len(maxterms) == 0 && len(minterms) > 0 {
		minterms, maxterms = nil, minterms
	}

	var opts []qmc.Option
	if len(minterms) > 0 {
		opts = append(opts, qmc.WithMinterms(intsToTerms(minterms)...))
	}
	if len(maxterms) > 0 {
		opts = append(opts, qmc.WithMaxterms(intsToTerms(maxterms)...))
	}
	if len(solveTerms.dontcares) > 0 {
		opts = append(opts, qmc.WithDontcares(intsToTerms(solveTerms.dontcares)...))
	}
	if vars := solveVars; len(vars) == 0 {
		if cv := viper.GetStringSlice("vars"); len(cv) > 0 {
			vars = cv
		}
		if len(vars) > 0 {
			opts = append(opts, qmc.WithVars(vars))
		}
	} else {
		opts = append(opts, qmc.WithVars(vars))
	}
	dash := solveDash
	if dash == "" {
		dash = viper.GetString("dash")
	}
	if dash != "" {
		if r, _ := utf8.DecodeRuneInString(dash); r != utf8.RuneError {
			opts = append(opts, qmc.WithDash(r))
		}
	}
	if solveAllCovers {
		opts = append(opts, qmc.MinOnly(false))
	}
	if solveNoSort {
		opts = append(opts, qmc.SortTerms(false))
	}

	p, err := qmc.New(width, opts...)
	if err != nil {
		return errors.Wrap(err, "qmc solve")
	}

	primes, err := p.FindPrimes()
	if err != nil {
		return errors.Wrap(err, "qmc solve: find_primes")
	}
	log.Debug().Int("count", len(primes)).Msg("find_primes")

	essentials, err := p.FindEssentials()
	if err != nil {
		return errors.Wrap(err, "qmc solve: find_essentials")
	}
	log.Debug().Int("count", len(essentials)).Msg("find_essentials")

	rowChanged, err := p.RowDom()
	if err != nil {
		return errors.Wrap(err, "qmc solve: row_dom")
	}
	log.Debug().Bool("changed", rowChanged).Msg("row_dom")

	colChanged, err := p.ColDom()
	if err != nil {
		return errors.Wrap(err, "qmc solve: col_dom")
	}
	log.Debug().Bool("changed", colChanged).Msg("col_dom")

	// The tracing hooks above worked against a scratch copy of the table
	// (Problem.workTable); Solve starts its own copy from the untouched
	// canonical table, so it is unaffected by what they found.
	p.ResetWork()

	exprs, err := p.Solve()
	if err != nil {
		return errors.Wrap(err, "qmc solve")
	}

	out := cmd.OutOrStdout()
	for _, e := range exprs {
		fmt.Fprintln(out, e)
	}
	return nil
}

func intsToTerms(ns []int) []qmc.Term {
	out := make([]qmc.Term, len(ns))
	for i, n := range ns {
		out[i] = n
	}
	return out
}
