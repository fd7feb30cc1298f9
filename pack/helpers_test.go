// SPDX-License-Identifier: MIT

package pack_test

import (
	"sort"
	"testing"

	"github.com/katalvlaran/packvar/hierarchy"
	"github.com/katalvlaran/packvar/ident"
	"github.com/katalvlaran/packvar/pack"
	"github.com/katalvlaran/packvar/smooth"
	"github.com/stretchr/testify/require"
)

// referenceInput is the four-integrand, two-child configuration whose layout
// has 109 variables:
//
//	mulstd      4 smoothings × 3           = 12
//	rates       (1 + 2·1) + 4·(6 + 2·6)    = 75
//	meas_value  6 + 6                      = 12
//	meas_std    1                          =  1
//	rate_mean   9                          =  9
func referenceInput() pack.Input {
	return pack.Input{
		Nodes: []hierarchy.Node{
			{ID: 0, Name: "world"},
			{ID: 1, Name: "north_america", Parent: ident.Some(0)},
			{ID: 2, Name: "united_states", Parent: ident.Some(1)},
			{ID: 3, Name: "canada", Parent: ident.Some(1)},
		},
		ParentNode: 1,
		Smoothings: []smooth.Smoothing{
			{ID: 0, NAge: 2, NTime: 3},
			{ID: 1, NAge: 2, NTime: 3},
			{ID: 2, NAge: 1, NTime: 1},
			{ID: 3, NAge: 3, NTime: 3},
		},
		Rates: []pack.Rate{
			{Name: pack.RatePini, ParentSmooth: ident.Some(2), ChildSmooth: ident.Some(2)},
			{Name: pack.RateIota, ParentSmooth: ident.Some(0), ChildSmooth: ident.Some(1)},
			{Name: pack.RateRho, ParentSmooth: ident.Some(0), ChildSmooth: ident.Some(1)},
			{Name: pack.RateChi, ParentSmooth: ident.Some(0), ChildSmooth: ident.Some(1)},
			{Name: pack.RateOmega, ParentSmooth: ident.Some(0), ChildSmooth: ident.Some(1)},
		},
		Mulcovs: []pack.MulcovEntry{
			{Kind: pack.MulcovMeasValue, Target: 0, Covariate: 0, Smooth: ident.Some(0)},
			{Kind: pack.MulcovMeasValue, Target: 1, Covariate: 1, Smooth: ident.Some(1)},
			{Kind: pack.MulcovMeasStd, Target: 2, Covariate: 2, Smooth: ident.Some(2)},
			{Kind: pack.MulcovRateMean, Target: 3, Covariate: 3, Smooth: ident.Some(3)},
		},
		NIntegrand: 4,
		NCovariate: 4,
	}
}

// sparseInput exercises absent smoothings, a rate without children, several
// multipliers on one target and integrands without any multiplier.
func sparseInput() pack.Input {
	return pack.Input{
		Nodes: []hierarchy.Node{
			{ID: 0},
			{ID: 1, Parent: ident.Some(0)},
			{ID: 2, Parent: ident.Some(0)},
			{ID: 3, Parent: ident.Some(0)},
			{ID: 4, Parent: ident.Some(2)},
		},
		ParentNode: 0,
		Smoothings: []smooth.Smoothing{
			{ID: 0, NAge: 1, NTime: 1, MulstdValue: ident.Some(0)},
			{ID: 1, NAge: 4, NTime: 2, MulstdDage: ident.Some(1), MulstdDtime: ident.Some(2)},
			{ID: 2, NAge: 1, NTime: 5},
		},
		Rates: []pack.Rate{
			{Name: pack.RatePini, ParentSmooth: ident.Some(0)},
			{Name: pack.RateIota, ParentSmooth: ident.Some(1), ChildSmooth: ident.Some(1)},
			{Name: pack.RateRho},
			{Name: pack.RateChi, ChildSmooth: ident.Some(2)},
			{Name: pack.RateOmega, ParentSmooth: ident.Some(2), ChildSmooth: ident.Some(0)},
		},
		Mulcovs: []pack.MulcovEntry{
			{Kind: pack.MulcovRateMean, Target: 1, Covariate: 0, Smooth: ident.Some(2)},
			{Kind: pack.MulcovMeasValue, Target: 3, Covariate: 1, Smooth: ident.Some(1)},
			{Kind: pack.MulcovMeasValue, Target: 3, Covariate: 0, Smooth: ident.Some(0)},
			{Kind: pack.MulcovMeasStd, Target: 0, Covariate: 2},
			{Kind: pack.MulcovRateMean, Target: 1, Covariate: 2, Smooth: ident.Some(1)},
			{Kind: pack.MulcovMeasValue, Target: 3, Covariate: 2, Smooth: ident.Some(2)},
		},
		NIntegrand: 5,
		NCovariate: 3,
	}
}

// emptyInput has one node, no smoothings, rates or multipliers.
func emptyInput() pack.Input {
	return pack.Input{Nodes: []hierarchy.Node{{ID: 0}}}
}

// span is a half-open range [Offset, Offset+Count) reported by a query.
type span struct {
	Offset, Count int
}

// querySpans collects every range reachable through the public query
// surface, using only Size, ChildCount and the per-family queries.
func querySpans(t *testing.T, l *pack.Layout, in pack.Input) []span {
	t.Helper()

	var out []span
	for s := range in.Smoothings {
		off, err := l.MulstdOffset(s)
		require.NoError(t, err)
		n := 0
		for k := smooth.MulstdKind(0); k < smooth.NumMulstd; k++ {
			if _, err := l.MulstdIndex(s, k); err == nil {
				n++
			}
		}
		out = append(out, span{off, n})
	}
	for r := range in.Rates {
		for c := 0; c <= l.ChildCount(); c++ {
			info, err := l.RateInfo(r, c)
			require.NoError(t, err)
			out = append(out, span{info.Offset, info.Count})
		}
	}
	type family struct {
		count func(int) (int, error)
		info  func(int, int) (pack.Info, error)
		n     int
	}
	for _, f := range []family{
		{l.MulcovMeasValueCount, l.MulcovMeasValueInfo, in.NIntegrand},
		{l.MulcovMeasStdCount, l.MulcovMeasStdInfo, in.NIntegrand},
		{l.MulcovRateMeanCount, l.MulcovRateMeanInfo, len(in.Rates)},
	} {
		for target := 0; target < f.n; target++ {
			n, err := f.count(target)
			require.NoError(t, err)
			for j := 0; j < n; j++ {
				info, err := f.info(target, j)
				require.NoError(t, err)
				out = append(out, span{info.Offset, info.Count})
			}
		}
	}

	return out
}

// requirePartition asserts that the non-empty spans tile [0, size) exactly.
func requirePartition(t *testing.T, spans []span, size int) {
	t.Helper()

	nonEmpty := make([]span, 0, len(spans))
	total := 0
	for _, s := range spans {
		require.GreaterOrEqual(t, s.Count, 0)
		if s.Count > 0 {
			nonEmpty = append(nonEmpty, s)
			total += s.Count
		}
	}
	sort.Slice(nonEmpty, func(i, j int) bool { return nonEmpty[i].Offset < nonEmpty[j].Offset })

	next := 0
	for _, s := range nonEmpty {
		require.Equal(t, next, s.Offset, "gap or overlap at %d", next)
		next = s.Offset + s.Count
	}
	require.Equal(t, size, next, "spans must end at Size()")
	require.Equal(t, size, total)
}

// expectedOffsets recomputes the layout from the documented traversal order
// alone, for the fixed mulstd policy. Keys are "kind/key/index".
func expectedOffsets(in pack.Input, nChild int) (map[[3]int]span, int) {
	grid := func(ref ident.Optional) int {
		if id, ok := ref.Get(); ok {
			return in.Smoothings[id].NAge * in.Smoothings[id].NTime
		}
		return 0
	}
	out := make(map[[3]int]span)
	cursor := 0
	put := func(kind pack.GroupKind, key, index, count int) {
		out[[3]int{int(kind), key, index}] = span{cursor, count}
		cursor += count
	}
	for s := range in.Smoothings {
		put(pack.GroupMulstd, s, 0, smooth.NumMulstd)
	}
	for r, rate := range in.Rates {
		for c := 0; c < nChild; c++ {
			put(pack.GroupRate, r, c, grid(rate.ChildSmooth))
		}
		put(pack.GroupRate, r, nChild, grid(rate.ParentSmooth))
	}
	nTarget := []int{in.NIntegrand, in.NIntegrand, len(in.Rates)}
	for kind := pack.MulcovKind(0); kind <= pack.MulcovRateMean; kind++ {
		for target := 0; target < nTarget[kind]; target++ {
			j := 0
			for _, m := range in.Mulcovs {
				if m.Kind == kind && m.Target == target {
					put(pack.GroupMulcovMeasValue+pack.GroupKind(kind), target, j, grid(m.Smooth))
					j++
				}
			}
		}
	}

	return out, cursor
}
