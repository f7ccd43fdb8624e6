// Package implicant runs the Quine–McCluskey combination phase: it reduces
// a set of input terms (minterms, maxterms, and don't-cares, already
// merged by the caller) to the set of prime implicants that cover them.
//
// For width <= 64 it combines terms as (value, mask) bitmask pairs — the
// same single-bit-difference check pborges-cupl's tryMerge performs — and
// only renders back to the canonical ternary-string form at the end. Wider
// problems fall back to the string-based algorithm directly; the bitmask
// path is strictly a performance optimization, never a behavior change.
package implicant

import (
	"math/bits"
	"sort"

	"github.com/dkmccandless/qmc/term"
)

// maxFastWidth is the largest width for which the bitmask combination path
// applies.
const maxFastWidth = 64

// Generate returns the prime implicants of terms: the ternary strings
// produced by the Quine–McCluskey combination phase that were never
// absorbed into a larger (more-dashed) implicant. terms must all have
// width w and contain no dash; duplicates are permitted and only counted
// once.
func Generate(terms []string, w int, dash rune) []string {
	if len(terms) == 0 {
		return nil
	}
	if w <= maxFastWidth {
		return generateFast(terms, w, dash)
	}
	return generateGeneric(terms, w, dash)
}

// cube is a bitmask implicant: mask bit i set means position i is a care
// position (not dashed); value bit i is the required bit value there.
type cube struct {
	value, mask uint64
}

func parseCube(t string, w int, dash rune) cube {
	var c cube
	for i, r := range []rune(t) {
		bit := uint64(1) << uint(w-1-i)
		if r == dash {
			continue
		}
		c.mask |= bit
		if r == '1' {
			c.value |= bit
		}
	}
	return c
}

func cubeToTerm(c cube, w int, dash rune) string {
	out := make([]rune, w)
	for i := 0; i < w; i++ {
		bit := uint64(1) << uint(w-1-i)
		switch {
		case c.mask&bit == 0:
			out[i] = dash
		case c.value&bit != 0:
			out[i] = '1'
		default:
			out[i] = '0'
		}
	}
	return string(out)
}

// tryMergeCubes merges a and b if they share a mask and differ in the
// value of exactly one care bit, mirroring pborges-cupl's tryMerge.
func tryMergeCubes(a, b cube) (cube, bool) {
	if a.mask != b.mask {
		return cube{}, false
	}
	diff := (a.value ^ b.value) & a.mask
	if diff == 0 || diff&(diff-1) != 0 {
		return cube{}, false
	}
	return cube{value: a.value &^ diff, mask: a.mask &^ diff}, true
}

func generateFast(terms []string, w int, dash rune) []string {
	level := map[int]map[cube]bool{} // popcount -> cube -> used
	for _, t := range terms {
		c := parseCube(t, w, dash)
		k := bits.OnesCount64(c.value & c.mask)
		if level[k] == nil {
			level[k] = map[cube]bool{}
		}
		level[k][c] = false
	}

	primeSet := map[cube]bool{}
	for len(level) > 0 {
		next := map[int]map[cube]bool{}
		for k, bucket := range level {
			upper, ok := level[k+1]
			if !ok {
				continue
			}
			for a := range bucket {
				for b := range upper {
					m, ok := tryMergeCubes(a, b)
					if !ok {
						continue
					}
					bucket[a] = true
					upper[b] = true
					nk := bits.OnesCount64(m.value & m.mask)
					if next[nk] == nil {
						next[nk] = map[cube]bool{}
					}
					if _, seen := next[nk][m]; !seen {
						next[nk][m] = false
					}
				}
			}
		}
		for _, bucket := range level {
			for c, used := range bucket {
				if !used {
					primeSet[c] = true
				}
			}
		}
		level = next
	}

	primes := make([]string, 0, len(primeSet))
	for c := range primeSet {
		primes = append(primes, cubeToTerm(c, w, dash))
	}
	sort.Strings(primes)
	return primes
}

// generateGeneric implements the same algorithm directly on ternary
// strings, for widths beyond the bitmask fast path's 64-bit range.
func generateGeneric(terms []string, w int, dash rune) []string {
	level := map[int]map[string]bool{}
	for _, t := range terms {
		k := term.CountOnes(t)
		if level[k] == nil {
			level[k] = map[string]bool{}
		}
		level[k][t] = false
	}

	primeSet := map[string]bool{}
	for len(level) > 0 {
		next := map[int]map[string]bool{}
		for k, bucket := range level {
			upper, ok := level[k+1]
			if !ok {
				continue
			}
			for a := range bucket {
				for b := range upper {
					if term.Hamming(a, b) != 1 {
						continue
					}
					pos := term.DiffPos(a, b)
					c := setRune(a, pos, dash)
					bucket[a] = true
					upper[b] = true
					nk := term.CountOnes(c)
					if next[nk] == nil {
						next[nk] = map[string]bool{}
					}
					if _, seen := next[nk][c]; !seen {
						next[nk][c] = false
					}
				}
			}
		}
		for _, bucket := range level {
			for t, used := range bucket {
				if !used {
					primeSet[t] = true
				}
			}
		}
		level = next
	}

	primes := make([]string, 0, len(primeSet))
	for t := range primeSet {
		primes = append(primes, t)
	}
	sort.Strings(primes)
	return primes
}

func setRune(t string, pos int, r rune) string {
	rs := []rune(t)
	rs[pos] = r
	return string(rs)
}
