// Package incidence builds and queries the bipartite relation between prime
// implicants and the input terms they cover. It is a thin, term-specific
// wrapper around github.com/dkmccandless/bipartite.Graph: prime implicant
// strings are A-nodes, required term strings are B-nodes.
package incidence

import "github.com/dkmccandless/bipartite"

// Table is the incidence relation between prime implicants (rows) and
// required terms (columns).
type Table struct {
	g *bipartite.Graph
}

// New returns an empty Table.
func New() *Table {
	return &Table{g: bipartite.New()}
}

// Copy returns a Table that shares no memory with t.
func Copy(t *Table) *Table {
	return &Table{g: bipartite.Copy(t.g)}
}

// Add records that prime covers term.
func (t *Table) Add(prime, term string) {
	t.g.Add(prime, term)
}

// Primes returns every prime implicant still present in the table.
func (t *Table) Primes() []string {
	as := t.g.As()
	out := make([]string, len(as))
	for i, a := range as {
		out[i] = a.(string)
	}
	return out
}

// Terms returns every required term still present in the table.
func (t *Table) Terms() []string {
	bs := t.g.Bs()
	out := make([]string, len(bs))
	for i, b := range bs {
		out[i] = b.(string)
	}
	return out
}

// NumPrimes reports how many primes remain.
func (t *Table) NumPrimes() int { return t.g.NA() }

// NumTerms reports how many required terms remain.
func (t *Table) NumTerms() int { return t.g.NB() }

// Covers reports whether prime covers term.
func (t *Table) Covers(prime, term string) bool {
	return t.g.Adjacent(prime, term)
}

// Row returns every term that prime covers.
func (t *Table) Row(prime string) []string {
	es := t.g.AdjToA(prime)
	out := make([]string, len(es))
	for i, e := range es {
		out[i] = e.(string)
	}
	return out
}

// RowDegree returns the number of terms prime covers.
func (t *Table) RowDegree(prime string) int { return t.g.DegA(prime) }

// Column returns every prime that covers term.
func (t *Table) Column(term string) []string {
	ss := t.g.AdjToB(term)
	out := make([]string, len(ss))
	for i, s := range ss {
		out[i] = s.(string)
	}
	return out
}

// ColumnDegree returns the number of primes that cover term.
func (t *Table) ColumnDegree(term string) int { return t.g.DegB(term) }

// Columns returns the column view over every term still in the table: a
// map from required term to the set of primes that cover it.
func (t *Table) Columns() map[string][]string {
	out := make(map[string][]string, t.NumTerms())
	for _, term := range t.Terms() {
		out[term] = t.Column(term)
	}
	return out
}

// RemovePrime deletes prime and every edge incident to it.
func (t *Table) RemovePrime(prime string) { t.g.RemoveA(prime) }

// RemoveTerm deletes term and every edge incident to it.
func (t *Table) RemoveTerm(term string) { t.g.RemoveB(term) }

// Empty reports whether the table has no required terms left to cover.
func (t *Table) Empty() bool { return t.g.NB() == 0 }
