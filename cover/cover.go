// Package cover implements the minimal-cover search (spec's C5): the
// recursive branch-and-prune solver that returns every minimum-literal-cost
// cover of an incidence.Table's required terms.
//
// It is grounded on dkmccandless-cover/cover.go's Minimize: the essentials/
// dominance simplification loop, the deep-copy-per-branch discipline of
// (*Cover).copy (here incidence.Copy, which wraps bipartite.Copy exactly as
// the teacher's copy did), and the as-sets deduplication of allMatch. Its
// search strategy differs from the teacher's: rather than enumerating
// Subset combinations of increasing cardinality (nextPerm), it recurses
// explicitly per spec's §4.5, because cost here is literal count, not
// cardinality, and the teacher's strategy does not in general enumerate
// every minimum-literal-cost combination.
package cover

import (
	"sort"
	"strings"

	"github.com/dkmccandless/qmc/incidence"
	"github.com/dkmccandless/qmc/reduce"
	"github.com/dkmccandless/qmc/term"
)

// Cost returns the total literal (non-dash symbol) count across coverSet.
func Cost(coverSet []string, dash rune) int {
	n := 0
	for _, p := range coverSet {
		n += term.CountLiterals(p, dash)
	}
	return n
}

// Search returns every cover of t's required terms found by the
// branch-and-prune recursion, deduplicated (P6). If minOnly is true
// (the default "minonly" preference), only covers of minimum cost are
// kept (P2). If sortTerms is true (the default "sortterms" preference),
// each returned cover is sorted in descending order; otherwise the order
// in which the recursion assembled each cover is preserved. t is consumed:
// callers that need it afterward should pass incidence.Copy(t).
func Search(t *incidence.Table, dash rune, minOnly, sortTerms bool) [][]string {
	covers := recurse(t, nil)

	if minOnly && len(covers) > 0 {
		m := Cost(covers[0], dash)
		for _, c := range covers[1:] {
			if cc := Cost(c, dash); cc < m {
				m = cc
			}
		}
		kept := covers[:0:0]
		for _, c := range covers {
			if Cost(c, dash) == m {
				kept = append(kept, c)
			}
		}
		covers = kept
	}

	covers = dedupe(covers)

	if sortTerms {
		for i, c := range covers {
			sorted := append([]string(nil), c...)
			sort.Sort(sort.Reverse(sort.StringSlice(sorted)))
			covers[i] = sorted
		}
	}
	return covers
}

// recurse implements spec §4.5 steps 1-4: essentials fixed point, base
// case, branch selection, and branching, leaving cost pruning and dedup to
// Search.
func recurse(t *incidence.Table, prefix []string) [][]string {
	essentials := reduce.Simplify(t)
	prefix = appendAll(prefix, essentials)

	if t.Empty() {
		return [][]string{prefix}
	}

	terms := t.Terms()
	sort.Strings(terms)
	best := terms[0]
	bestDeg := t.ColumnDegree(best)
	for _, tm := range terms[1:] {
		if d := t.ColumnDegree(tm); d < bestDeg {
			best, bestDeg = tm, d
		}
	}

	candidates := append([]string(nil), t.Column(best)...)
	sort.Strings(candidates)

	var covers [][]string
	for _, p := range candidates {
		reduced := incidence.Copy(t)
		reduced.RemoveTerm(best)
		for _, tm := range t.Row(p) {
			reduced.RemoveTerm(tm)
		}
		reduced.RemovePrime(p)
		dropEmptyRows(reduced)

		covers = append(covers, recurse(reduced, appendAll(prefix, []string{p}))...)
	}
	return covers
}

// dropEmptyRows removes every prime that no longer covers any required
// term, per spec §4.5 step 4 ("drop rows that became empty").
func dropEmptyRows(t *incidence.Table) {
	for _, p := range t.Primes() {
		if t.RowDegree(p) == 0 {
			t.RemovePrime(p)
		}
	}
}

func appendAll(prefix []string, more []string) []string {
	out := make([]string, 0, len(prefix)+len(more))
	out = append(out, prefix...)
	out = append(out, more...)
	return out
}

func dedupe(covers [][]string) [][]string {
	seen := make(map[string]bool, len(covers))
	var out [][]string
	for _, c := range covers {
		k := coverKey(c)
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, c)
	}
	return out
}

func coverKey(c []string) string {
	sorted := append([]string(nil), c...)
	sort.Strings(sorted)
	return strings.Join(sorted, "\x00")
}
