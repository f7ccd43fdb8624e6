// Package reduce implements the Quine–McCluskey table reduction rules:
// essential-implicant extraction, row dominance, and column dominance, over
// an incidence.Table. Each rule is grounded directly on the teacher's
// reduceE/reduceS (dkmccandless-cover/cover.go); column dominance has no
// teacher analogue and is added per spec's REDESIGN FLAG on dominance
// ordering.
package reduce

import (
	"sort"

	"github.com/dkmccandless/qmc/incidence"
)

// FindEssentials returns the set of primes in t that are the unique cover
// of at least one required term.
func FindEssentials(t *incidence.Table) map[string]struct{} {
	essentials := make(map[string]struct{})
	for _, term := range t.Terms() {
		if t.ColumnDegree(term) != 1 {
			continue
		}
		col := t.Column(term)
		essentials[col[0]] = struct{}{}
	}
	return essentials
}

// PurgeEssentials removes every prime in essentials and every term any of
// them covers.
func PurgeEssentials(t *incidence.Table, essentials map[string]struct{}) {
	for p := range essentials {
		for _, term := range t.Row(p) {
			t.RemoveTerm(term)
		}
	}
	for p := range essentials {
		t.RemovePrime(p)
	}
}

// RowDom removes every prime whose coverage is a proper subset of another
// remaining prime's coverage, and reports whether it removed anything.
// Primes with equal coverage are both retained (spec's "Equal-coverage
// rows" decision — see DESIGN.md).
func RowDom(t *incidence.Table) bool {
	primes := t.Primes()
	var dominated []string
	for _, p := range primes {
		for _, q := range primes {
			if p == q {
				continue
			}
			if rowDominates(t, q, p) {
				dominated = append(dominated, p)
				break
			}
		}
	}
	for _, p := range dominated {
		t.RemovePrime(p)
	}
	return len(dominated) > 0
}

// rowDominates reports whether q's coverage is a proper superset of p's.
func rowDominates(t *incidence.Table, q, p string) bool {
	if t.RowDegree(q) <= t.RowDegree(p) {
		return false
	}
	for _, term := range t.Row(p) {
		if !t.Covers(q, term) {
			return false
		}
	}
	return true
}

// ColDom removes every required term whose covering-prime set is a proper
// superset of another term's, and reports whether it removed anything.
// Rationale: a cover of the dominated (subset) term is automatically a
// cover of the dominating (superset) term, so the superset term imposes no
// independent constraint.
func ColDom(t *incidence.Table) bool {
	terms := t.Terms()
	var redundant []string
	for _, b := range terms {
		for _, a := range terms {
			if a == b {
				continue
			}
			if colDominated(t, a, b) {
				redundant = append(redundant, b)
				break
			}
		}
	}
	for _, b := range redundant {
		t.RemoveTerm(b)
	}
	return len(redundant) > 0
}

// colDominated reports whether a's covering-prime set is a non-empty
// proper subset of b's, making column b redundant.
func colDominated(t *incidence.Table, a, b string) bool {
	da, db := t.ColumnDegree(a), t.ColumnDegree(b)
	if da == 0 || da >= db {
		return false
	}
	for _, p := range t.Column(a) {
		if !t.Covers(p, b) {
			return false
		}
	}
	return true
}

// Simplify reduces t to a fixed point by alternating essentials extraction
// with row and column dominance until none of the three makes further
// progress, per spec's REDESIGN FLAG (the teacher loops essentials and row
// dominance only; this iterates all three together). It returns the primes
// found essential, in the order they were extracted.
func Simplify(t *incidence.Table) []string {
	var prefix []string
	for {
		essentials := FindEssentials(t)
		if len(essentials) > 0 {
			names := make([]string, 0, len(essentials))
			for p := range essentials {
				names = append(names, p)
			}
			sort.Strings(names)
			prefix = append(prefix, names...)
			PurgeEssentials(t, essentials)
		}
		rowChanged := RowDom(t)
		colChanged := ColDom(t)
		if len(essentials) == 0 && !rowChanged && !colChanged {
			return prefix
		}
	}
}
