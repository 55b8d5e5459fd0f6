package probe

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chartprobe/chartprobe/types"
)

func TestCombinationsOrdering(t *testing.T) {
	domains := []Domain{
		{Name: "align", Values: []Value{Str("center"), Str("edge")}},
		{Name: "width", Values: []Value{Scalar(0.4), Scalar(0.8), Scalar(1)}},
	}
	got := Combinations(domains, 0)
	require.Len(t, got, 6)

	// Last domain varies fastest.
	assert.Equal(t, "center", got[0].Str("align", ""))
	assert.Equal(t, 0.4, got[0].Float("width", 0))
	assert.Equal(t, "center", got[1].Str("align", ""))
	assert.Equal(t, 0.8, got[1].Float("width", 0))
	assert.Equal(t, "edge", got[3].Str("align", ""))
	assert.Equal(t, 0.4, got[3].Float("width", 0))
}

func TestCombinationsCap(t *testing.T) {
	domains := []Domain{
		{Name: "a", Values: []Value{Scalar(1), Scalar(2), Scalar(3)}},
		{Name: "b", Values: []Value{Scalar(1), Scalar(2), Scalar(3)}},
	}
	assert.Len(t, Combinations(domains, 4), 4)
	assert.Len(t, Combinations(domains, 100), 9)
	assert.Empty(t, Combinations(nil, 0))
	assert.Empty(t, Combinations([]Domain{{Name: "empty"}}, 0))
}

func TestFuzzCasesDeterministic(t *testing.T) {
	gen := func(i int, r *rand.Rand) Case {
		return Case{
			Name:   RandWord(r, 6),
			Args:   Args{"x": Sequence(RandSeq(r, 3, -10, 10)...)},
			Expect: ExpectEither(KindInvalidArgument),
		}
	}
	a := FuzzCases("bar", "colors", 42, DefaultFuzzSamples, gen)
	b := FuzzCases("bar", "colors", 42, DefaultFuzzSamples, gen)
	require.Len(t, a, DefaultFuzzSamples)

	for i := range a {
		assert.Equal(t, a[i].Name, b[i].Name, "case %d", i)
		assert.Equal(t, a[i].Args.String(), b[i].Args.String(), "case %d", i)
		assert.Equal(t, types.CategoryFuzz, a[i].Category)
		assert.NotZero(t, a[i].Seed)
	}

	other := FuzzCases("bar", "colors", 43, DefaultFuzzSamples, gen)
	assert.NotEqual(t, a[0].Name, other[0].Name, "different run seed draws a different stream")
}

func TestFuzzStreamsIndependentPerLabel(t *testing.T) {
	gen := func(i int, r *rand.Rand) Case {
		return Case{Name: RandWord(r, 8), Expect: ExpectEither(KindInvalidArgument)}
	}
	a := FuzzCases("bar", "colors", 7, 3, gen)
	b := FuzzCases("bar", "widths", 7, 3, gen)
	assert.NotEqual(t, a[0].Name, b[0].Name)
}

func TestPropertyCasesSkipUnsatisfiable(t *testing.T) {
	cases := PropertyCases("hist", "monotone_bins", 11, 4, "needs two distinct values",
		func(i int, r *rand.Rand) (Case, bool) {
			if i%2 == 1 {
				return Case{}, false
			}
			return Case{
				Name:   RandWord(r, 5),
				Expect: ExpectSuccess(ExpectBins(1)),
			}, true
		})
	require.Len(t, cases, 4)

	for i, c := range cases {
		assert.Equal(t, types.CategoryProperty, c.Category, "case %d", i)
		assert.True(t, c.Defined(), "case %d has no usable predicate", i)
	}
	assert.Empty(t, cases[0].SkipReason)
	assert.Contains(t, cases[1].SkipReason, "needs two distinct values")
	assert.Contains(t, cases[1].Name, "monotone_bins_01")
}

func TestRandHelpers(t *testing.T) {
	r := Rand(3, "label")
	for i := 0; i < 100; i++ {
		f := RandFloat(r, -1, 1)
		assert.GreaterOrEqual(t, f, -1.0)
		assert.Less(t, f, 1.0)
	}
	seq := RandSeq(r, 5, 0, 10)
	assert.Len(t, seq, 5)
	word := RandWord(r, 12)
	assert.Len(t, word, 12)
}
