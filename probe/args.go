package probe

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// ValueKind discriminates the variants a case argument can take.
// Target operations accept many shapes of width/color specs; modeling
// them as explicit variants lets generators and the oracle pattern-match
// deterministically instead of relying on runtime introspection.
type ValueKind int

const (
	KindScalar ValueKind = iota
	KindSequence
	KindString
	KindBool
	KindColor
	KindColorSeq
	KindMatrix
	KindSeries
	KindStrings
)

// Value is a tagged variant holding one case argument.
type Value struct {
	kind   ValueKind
	scalar float64
	seq    []float64
	str    string
	flag   bool
	colors []string
	matrix [][]float64
	series [][]float64
	strs   []string
}

// Scalar wraps a single number.
func Scalar(v float64) Value { return Value{kind: KindScalar, scalar: v} }

// Sequence wraps a numeric sequence. The slice is copied; values are
// immutable once a case is built.
func Sequence(vs ...float64) Value {
	cp := make([]float64, len(vs))
	copy(cp, vs)
	return Value{kind: KindSequence, seq: cp}
}

// Str wraps a string or enum value.
func Str(s string) Value { return Value{kind: KindString, str: s} }

// Flag wraps a boolean.
func Flag(b bool) Value { return Value{kind: KindBool, flag: b} }

// Color wraps a single color spec (named or hex).
func Color(spec string) Value { return Value{kind: KindColor, colors: []string{spec}} }

// Colors wraps a per-element color sequence.
func Colors(specs ...string) Value {
	cp := make([]string, len(specs))
	copy(cp, specs)
	return Value{kind: KindColorSeq, colors: cp}
}

// Matrix wraps a 2D grid, e.g. contour Z data. Rows are copied.
func Matrix(rows [][]float64) Value {
	cp := make([][]float64, len(rows))
	for i, row := range rows {
		cp[i] = make([]float64, len(row))
		copy(cp[i], row)
	}
	return Value{kind: KindMatrix, matrix: cp}
}

// Series wraps a list of sequences, e.g. stacked-area layers or the
// per-group datasets of a box or violin plot.
func Series(seqs ...[]float64) Value {
	cp := make([][]float64, len(seqs))
	for i, s := range seqs {
		cp[i] = make([]float64, len(s))
		copy(cp[i], s)
	}
	return Value{kind: KindSeries, series: cp}
}

// Strings wraps a string sequence, e.g. slice or tick labels.
func Strings(ss ...string) Value {
	cp := make([]string, len(ss))
	copy(cp, ss)
	return Value{kind: KindStrings, strs: cp}
}

// Kind returns the variant tag.
func (v Value) Kind() ValueKind { return v.kind }

func (v Value) AsScalar() (float64, bool) { return v.scalar, v.kind == KindScalar }

func (v Value) AsSequence() ([]float64, bool) {
	if v.kind != KindSequence {
		return nil, false
	}
	return v.seq, true
}

func (v Value) AsString() (string, bool) { return v.str, v.kind == KindString }

func (v Value) AsBool() (bool, bool) { return v.flag, v.kind == KindBool }

// AsColors returns the color specs for both the scalar and sequence
// color variants, with a flag telling them apart.
func (v Value) AsColors() (specs []string, perElement bool, ok bool) {
	switch v.kind {
	case KindColor:
		return v.colors, false, true
	case KindColorSeq:
		return v.colors, true, true
	}
	return nil, false, false
}

func (v Value) AsMatrix() ([][]float64, bool) { return v.matrix, v.kind == KindMatrix }

func (v Value) AsSeries() ([][]float64, bool) { return v.series, v.kind == KindSeries }

func (v Value) AsStrings() ([]string, bool) { return v.strs, v.kind == KindStrings }

// String renders the value in a compact literal form.
func (v Value) String() string {
	switch v.kind {
	case KindScalar:
		return formatFloat(v.scalar)
	case KindSequence:
		return formatSeq(v.seq)
	case KindString:
		return strconv.Quote(v.str)
	case KindBool:
		return strconv.FormatBool(v.flag)
	case KindColor:
		return strconv.Quote(v.colors[0])
	case KindColorSeq:
		quoted := make([]string, len(v.colors))
		for i, c := range v.colors {
			quoted[i] = strconv.Quote(c)
		}
		return "[" + strings.Join(quoted, ", ") + "]"
	case KindMatrix:
		rows := make([]string, len(v.matrix))
		for i, r := range v.matrix {
			rows[i] = formatSeq(r)
		}
		return "[" + strings.Join(rows, ", ") + "]"
	case KindSeries:
		rows := make([]string, len(v.series))
		for i, r := range v.series {
			rows[i] = formatSeq(r)
		}
		return "[" + strings.Join(rows, ", ") + "]"
	case KindStrings:
		quoted := make([]string, len(v.strs))
		for i, s := range v.strs {
			quoted[i] = strconv.Quote(s)
		}
		return "[" + strings.Join(quoted, ", ") + "]"
	}
	return "<invalid>"
}

func formatFloat(f float64) string {
	if math.IsNaN(f) {
		return "NaN"
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func formatSeq(vs []float64) string {
	parts := make([]string, len(vs))
	for i, f := range vs {
		parts[i] = formatFloat(f)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Args is the input argument mapping of one case: parameter name to
// value. Args are built once at case-definition time and never mutated.
type Args map[string]Value

// Has reports whether the argument is present.
func (a Args) Has(name string) bool {
	_, ok := a[name]
	return ok
}

// Float returns the named scalar, or def when absent.
func (a Args) Float(name string, def float64) float64 {
	if v, ok := a[name]; ok {
		if f, isScalar := v.AsScalar(); isScalar {
			return f
		}
	}
	return def
}

// Seq returns the named sequence, or nil when absent.
func (a Args) Seq(name string) []float64 {
	if v, ok := a[name]; ok {
		if s, isSeq := v.AsSequence(); isSeq {
			return s
		}
	}
	return nil
}

// Str returns the named string, or def when absent.
func (a Args) Str(name string, def string) string {
	if v, ok := a[name]; ok {
		if s, isStr := v.AsString(); isStr {
			return s
		}
	}
	return def
}

// Bool returns the named flag, or def when absent.
func (a Args) Bool(name string, def bool) bool {
	if v, ok := a[name]; ok {
		if b, isBool := v.AsBool(); isBool {
			return b
		}
	}
	return def
}

// With returns a copy of a with one argument added or replaced. The
// receiver is left untouched so shared base argument sets stay immutable.
func (a Args) With(name string, v Value) Args {
	out := make(Args, len(a)+1)
	for k, val := range a {
		out[k] = val
	}
	out[name] = v
	return out
}

// String renders the argument mapping with stable key ordering. This is
// the literal input attached to failure diagnostics.
func (a Args) String() string {
	keys := make([]string, 0, len(a))
	for k := range a {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s: %s", k, a[k])
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
