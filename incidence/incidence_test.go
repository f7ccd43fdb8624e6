package incidence

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func build() *Table {
	t := New()
	t.Add("p1", "a")
	t.Add("p1", "b")
	t.Add("p2", "b")
	t.Add("p2", "c")
	return t
}

func TestAddAndQuery(t *testing.T) {
	tbl := build()
	assert.True(t, tbl.Covers("p1", "a"))
	assert.True(t, tbl.Covers("p1", "b"))
	assert.False(t, tbl.Covers("p1", "c"))
	assert.True(t, tbl.Covers("p2", "c"))
}

func TestPrimesAndTerms(t *testing.T) {
	tbl := build()

	primes := tbl.Primes()
	sort.Strings(primes)
	assert.Equal(t, []string{"p1", "p2"}, primes)

	terms := tbl.Terms()
	sort.Strings(terms)
	assert.Equal(t, []string{"a", "b", "c"}, terms)

	assert.Equal(t, 2, tbl.NumPrimes())
	assert.Equal(t, 3, tbl.NumTerms())
}

func TestRowAndColumn(t *testing.T) {
	tbl := build()

	row := tbl.Row("p1")
	sort.Strings(row)
	assert.Equal(t, []string{"a", "b"}, row)
	assert.Equal(t, 2, tbl.RowDegree("p1"))

	col := tbl.Column("b")
	sort.Strings(col)
	assert.Equal(t, []string{"p1", "p2"}, col)
	assert.Equal(t, 2, tbl.ColumnDegree("b"))
}

func TestColumns(t *testing.T) {
	tbl := build()
	cols := tbl.Columns()
	assert.Len(t, cols, 3)
	sort.Strings(cols["b"])
	assert.Equal(t, []string{"p1", "p2"}, cols["b"])
}

func TestRemovePrimeAndTerm(t *testing.T) {
	tbl := build()

	tbl.RemovePrime("p1")
	assert.Equal(t, 1, tbl.NumPrimes())
	assert.False(t, tbl.Covers("p1", "a"))
	// "a" had no other cover, so it should be gone entirely.
	assert.Equal(t, 0, tbl.ColumnDegree("a"))

	tbl.RemoveTerm("c")
	assert.Equal(t, 0, tbl.ColumnDegree("c"))
}

func TestEmpty(t *testing.T) {
	tbl := New()
	assert.True(t, tbl.Empty())
	tbl.Add("p", "t")
	assert.False(t, tbl.Empty())
	tbl.RemoveTerm("t")
	assert.True(t, tbl.Empty())
}

func TestCopyIsIndependent(t *testing.T) {
	tbl := build()
	dup := Copy(tbl)

	dup.RemovePrime("p1")
	assert.Equal(t, 2, tbl.NumPrimes(), "original must be unaffected by mutating the copy")
	assert.Equal(t, 1, dup.NumPrimes())

	tbl.RemovePrime("p2")
	assert.Equal(t, 1, tbl.NumPrimes(), "mutating the original must not touch an already-made copy")
}
