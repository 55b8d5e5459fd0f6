package probe

import (
	"fmt"
	"hash/fnv"
	"math/rand"

	"github.com/chartprobe/chartprobe/types"
)

// DefaultFuzzSamples is how many fuzz inputs each fuzz set draws per run.
const DefaultFuzzSamples = 5

// Domain is one parameter's enumerated value set for combinatorial
// generation. Domains keep their declaration order so the Cartesian
// product is deterministic.
type Domain struct {
	Name   string
	Values []Value
}

// Combinations expands the Cartesian product of the domains into
// argument mappings, capped at limit (0 means no cap). The expansion
// walks the last domain fastest, matching the upstream suites'
// itertools ordering.
func Combinations(domains []Domain, limit int) []Args {
	if len(domains) == 0 {
		return nil
	}
	total := 1
	for _, d := range domains {
		if len(d.Values) == 0 {
			return nil
		}
		total *= len(d.Values)
	}
	if limit > 0 && total > limit {
		total = limit
	}

	out := make([]Args, 0, total)
	idx := make([]int, len(domains))
	for len(out) < total {
		args := make(Args, len(domains))
		for i, d := range domains {
			args[d.Name] = d.Values[idx[i]]
		}
		out = append(out, args)

		// Odometer increment, last domain fastest.
		for i := len(domains) - 1; i >= 0; i-- {
			idx[i]++
			if idx[i] < len(domains[i].Values) {
				break
			}
			idx[i] = 0
		}
	}
	return out
}

// deriveSeed folds an operation-scoped label into the run seed so every
// fuzz and property set gets an independent but reproducible stream.
func deriveSeed(runSeed int64, label string) int64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(label))
	return runSeed ^ int64(h.Sum64())
}

// Rand returns the seeded random source for one generator label.
func Rand(runSeed int64, label string) *rand.Rand {
	return rand.New(rand.NewSource(deriveSeed(runSeed, label)))
}

// FuzzCases draws n cases from gen using a seeded stream. The case each
// gen call returns gets the derived seed attached for reproducibility.
func FuzzCases(op string, name string, runSeed int64, n int, gen func(i int, r *rand.Rand) Case) []Case {
	label := fmt.Sprintf("%s/fuzz/%s", op, name)
	seed := deriveSeed(runSeed, label)
	r := rand.New(rand.NewSource(seed))
	out := make([]Case, 0, n)
	for i := 0; i < n; i++ {
		c := gen(i, r)
		c.Op = op
		c.Category = types.CategoryFuzz
		c.Seed = seed
		out = append(out, c)
	}
	return out
}

// PropertyCases draws n cases from gen. gen may return ok=false when the
// sampled input cannot satisfy the property's preconditions; such
// samples are marked skipped with the given reason rather than silently
// invalidated.
func PropertyCases(op string, name string, runSeed int64, n int, precondition string, gen func(i int, r *rand.Rand) (Case, bool)) []Case {
	label := fmt.Sprintf("%s/property/%s", op, name)
	seed := deriveSeed(runSeed, label)
	r := rand.New(rand.NewSource(seed))
	out := make([]Case, 0, n)
	for i := 0; i < n; i++ {
		c, ok := gen(i, r)
		if !ok {
			c = Skipped(op, types.CategoryProperty,
				fmt.Sprintf("%s_%02d", name, i),
				fmt.Sprintf("precondition not satisfied: %s", precondition))
		}
		c.Op = op
		c.Category = types.CategoryProperty
		c.Seed = seed
		out = append(out, c)
	}
	return out
}

const fuzzLetters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// RandWord draws a random letter string, the upstream suites' stand-in
// for an arbitrary non-color string.
func RandWord(r *rand.Rand, n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = fuzzLetters[r.Intn(len(fuzzLetters))]
	}
	return string(b)
}

// RandFloat draws uniformly from [lo, hi).
func RandFloat(r *rand.Rand, lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}

// RandSeq draws a sequence of n uniform values from [lo, hi).
func RandSeq(r *rand.Rand, n int, lo, hi float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = RandFloat(r, lo, hi)
	}
	return out
}
