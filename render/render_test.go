package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderSingleMinterm(t *testing.T) {
	got := Render([]string{"1"}, '−', Config{Vars: DefaultVars(1)})
	assert.Equal(t, "(A)", got)
}

func TestRenderSingleMintermNegated(t *testing.T) {
	got := Render([]string{"0"}, '−', Config{Vars: DefaultVars(1)})
	assert.Equal(t, "(A')", got)
}

func TestRenderAllDashes(t *testing.T) {
	got := Render([]string{"−−−−"}, '−', Config{Vars: DefaultVars(4)})
	assert.Equal(t, "()", got)
}

func TestRenderFullProduct(t *testing.T) {
	got := Render([]string{"101"}, '−', Config{Vars: DefaultVars(3)})
	assert.Equal(t, "(AB'C)", got)
}

func TestRenderMultipleGroupsSOP(t *testing.T) {
	got := Render([]string{"1−", "−0"}, '−', Config{Vars: DefaultVars(2)})
	assert.Equal(t, "(A) + (B')", got)
}

func TestRenderPOS(t *testing.T) {
	// maxterm-based: position '1' negates, groups join by "", literals
	// inside a group join by " + ".
	got := Render([]string{"10"}, '−', Config{Vars: DefaultVars(2), IsPOS: true})
	assert.Equal(t, "(A' + B)", got)
}

func TestRenderAll(t *testing.T) {
	got := RenderAll([][]string{{"1"}, {"0"}}, '−', Config{Vars: DefaultVars(1)})
	assert.Equal(t, []string{"(A)", "(A')"}, got)
}

func TestDefaultVarsExtendsAlphabet(t *testing.T) {
	vars := DefaultVars(27)
	assert.Equal(t, "A", vars[0])
	assert.Equal(t, "Z", vars[25])
	assert.Equal(t, "AA", vars[26])
}
