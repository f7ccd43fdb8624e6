package implicant

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func minterms(t testing.TB, w int, ns ...uint64) []string {
	t.Helper()
	var out []string
	for _, n := range ns {
		s := make([]byte, w)
		for i := 0; i < w; i++ {
			if n&(1<<uint(w-1-i)) != 0 {
				s[i] = '1'
			} else {
				s[i] = '0'
			}
		}
		out = append(out, string(s))
	}
	return out
}

func TestGenerateSingleMinterm(t *testing.T) {
	got := Generate(minterms(t, 3, 5), 3, '−')
	assert.Equal(t, []string{"101"}, got)
}

func TestGenerateAllMinterms(t *testing.T) {
	got := Generate(minterms(t, 2, 0, 1, 2, 3), 2, '−')
	assert.Equal(t, []string{"−−"}, got)
}

// classic textbook example: W=4, minterms {4,8,10,11,12,15}, don't-cares {9,14}.
func TestGenerateTextbook(t *testing.T) {
	terms := minterms(t, 4, 4, 8, 9, 10, 11, 12, 14, 15)
	got := Generate(terms, 4, '−')
	sort.Strings(got)
	for _, want := range []string{"10−−", "1−1−", "−100"} {
		assert.Contains(t, got, want)
	}
}

func TestGenerateNoAdjacency(t *testing.T) {
	got := Generate(minterms(t, 2, 0, 3), 2, '−')
	sort.Strings(got)
	assert.Equal(t, []string{"00", "11"}, got)
}

// TestGenerateTextbookFullSet checks the complete textbook prime set (not
// just the three spot-checked in TestGenerateTextbook), comparing as sorted
// slices so the result is independent of Generate's internal map iteration
// order.
func TestGenerateTextbookFullSet(t *testing.T) {
	terms := minterms(t, 4, 4, 8, 9, 10, 11, 12, 14, 15)
	got := Generate(terms, 4, '−')
	sort.Strings(got)

	want := []string{"−100", "10−−", "1−1−", "1−−0"}
	sort.Strings(want)

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Generate() prime set mismatch (-want +got):\n%s", diff)
	}
}
