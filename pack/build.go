// SPDX-License-Identifier: MIT

package pack

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/katalvlaran/packvar/hierarchy"
	"github.com/katalvlaran/packvar/ident"
	"github.com/katalvlaran/packvar/smooth"
)

// Build validates in and computes its packed-variable layout.
//
// Every id referenced by a rate or covariate multiplier is checked before
// any range is assigned; on error Build returns a nil layout. The returned
// layout copies everything it needs from in, so in may be reused or mutated
// afterwards.
//
// Complexity: O(N + S + R·(C+1) + M) time, O(groups) memory.
func Build(in Input, opts ...Option) (*Layout, error) {
	o := gatherOptions(opts)

	// Stage 1 (Validate): tables, counts and every cross-reference.
	nodes, err := hierarchy.NewIndex(in.Nodes, in.ParentNode)
	if err != nil {
		return nil, fmt.Errorf("pack: node table: %w", err)
	}
	cat, err := smooth.NewCatalog(in.Smoothings)
	if err != nil {
		return nil, fmt.Errorf("pack: smoothing table: %w", err)
	}
	if in.NIntegrand < 0 || in.NCovariate < 0 {
		return nil, fmt.Errorf("n_integrand=%d, n_covariate=%d: %w", in.NIntegrand, in.NCovariate, ErrBadCount)
	}
	for r, rate := range in.Rates {
		if err = checkSmooth(cat, rate.ParentSmooth); err != nil {
			return nil, fmt.Errorf("rate %d (%s) parent_smooth_id: %w", r, rate.Name, err)
		}
		if err = checkSmooth(cat, rate.ChildSmooth); err != nil {
			return nil, fmt.Errorf("rate %d (%s) child_smooth_id: %w", r, rate.Name, err)
		}
	}
	if err = checkMulcovs(in, cat); err != nil {
		return nil, err
	}

	// Stage 2 (Prepare): resolve every group to a descriptor with a count.
	l := &Layout{
		policy:     o.mulstdPolicy,
		smooths:    cat,
		nodes:      nodes,
		nIntegrand: in.NIntegrand,
		nRate:      len(in.Rates),
	}
	l.resolve(in)

	// Stage 3 (Execute): one cursor pass assigns offsets.
	if err = l.assign(); err != nil {
		return nil, err
	}

	Logger().Debug("pack layout built",
		zap.Int("size", l.size),
		zap.Int("groups", len(l.groups)),
		zap.Int("children", nodes.ChildCount()),
		zap.Int("smoothings", cat.Len()),
		zap.Int("rates", l.nRate),
		zap.Int("mulcovs", len(in.Mulcovs)),
		zap.Stringer("mulstd_policy", l.policy),
	)

	return l, nil
}

// checkSmooth accepts an absent reference or one registered in cat.
func checkSmooth(cat *smooth.Catalog, ref ident.Optional) error {
	if id, ok := ref.Get(); ok && !cat.Has(id) {
		return fmt.Errorf("smoothing %d: %w", id, ErrUnknownSmoothing)
	}

	return nil
}

// checkMulcovs validates kind, target, covariate and smoothing of every
// multiplier and rejects a covariate repeated for the same kind and target.
func checkMulcovs(in Input, cat *smooth.Catalog) error {
	seen := make(map[[3]int]int, len(in.Mulcovs))
	for id, m := range in.Mulcovs {
		switch m.Kind {
		case MulcovMeasValue, MulcovMeasStd:
			if m.Target < 0 || m.Target >= in.NIntegrand {
				return fmt.Errorf("mulcov %d (%s) integrand %d: %w", id, m.Kind, m.Target, ErrUnknownIntegrand)
			}
		case MulcovRateMean:
			if m.Target < 0 || m.Target >= len(in.Rates) {
				return fmt.Errorf("mulcov %d (%s) rate %d: %w", id, m.Kind, m.Target, ErrUnknownRate)
			}
		default:
			return fmt.Errorf("mulcov %d: %s: %w", id, m.Kind, ErrMulcovKind)
		}
		if m.Covariate < 0 || m.Covariate >= in.NCovariate {
			return fmt.Errorf("mulcov %d (%s) covariate %d: %w", id, m.Kind, m.Covariate, ErrUnknownCovariate)
		}
		if err := checkSmooth(cat, m.Smooth); err != nil {
			return fmt.Errorf("mulcov %d (%s): %w", id, m.Kind, err)
		}
		key := [3]int{int(m.Kind), m.Target, m.Covariate}
		if prev, dup := seen[key]; dup {
			return fmt.Errorf("mulcov %d repeats covariate %d of mulcov %d (%s, target %d): %w",
				id, m.Covariate, prev, m.Kind, m.Target, ErrDuplicateCovariate)
		}
		seen[key] = id
	}

	return nil
}

// gridCount is the number of variables a smoothing reference contributes;
// an absent reference contributes none.
func gridCount(cat *smooth.Catalog, ref ident.Optional) int {
	id, ok := ref.Get()
	if !ok {
		return 0
	}
	n, _ := cat.GridSize(id)

	return n
}

// resolve appends one descriptor per group in traversal order and fills the
// lookup tables with group indices. Offsets are assigned later by assign.
func (l *Layout) resolve(in Input) {
	nSmooth := l.smooths.Len()
	nChild := l.nodes.ChildCount()
	l.groups = make([]Group, 0, nSmooth+len(in.Rates)*(nChild+1)+len(in.Mulcovs))

	// 1. mulstd
	l.mulstdGroup = make([]int, nSmooth)
	for s := 0; s < nSmooth; s++ {
		row, _ := l.smooths.Get(s)
		l.mulstdGroup[s] = len(l.groups)
		l.groups = append(l.groups, Group{
			Kind:   GroupMulstd,
			Key:    s,
			Smooth: ident.Some(s),
			Count:  l.mulstdCount(row),
		})
	}

	// 2. rates: children first, parent grid last
	parent := ident.Some(l.nodes.ParentNodeID())
	l.rateBase = make([]int, len(in.Rates))
	for r, rate := range in.Rates {
		l.rateBase[r] = len(l.groups)
		childCount := gridCount(l.smooths, rate.ChildSmooth)
		for c := 0; c < nChild; c++ {
			node, _ := l.nodes.ChildNodeID(c)
			l.groups = append(l.groups, Group{
				Kind:   GroupRate,
				Key:    r,
				Index:  c,
				Smooth: rate.ChildSmooth,
				Node:   ident.Some(node),
				Count:  childCount,
			})
		}
		l.groups = append(l.groups, Group{
			Kind:   GroupRate,
			Key:    r,
			Index:  nChild,
			Smooth: rate.ParentSmooth,
			Node:   parent,
			Count:  gridCount(l.smooths, rate.ParentSmooth),
		})
	}

	// 3-5. multipliers by kind, then target, then input order
	nTarget := [numMulcovKinds]int{in.NIntegrand, in.NIntegrand, len(in.Rates)}
	for kind := MulcovKind(0); kind < numMulcovKinds; kind++ {
		bucket := make([][]int, nTarget[kind])
		for id, m := range in.Mulcovs {
			if m.Kind == kind {
				bucket[m.Target] = append(bucket[m.Target], id)
			}
		}
		tbl := mulcovTable{
			start: make([]int, nTarget[kind]),
			count: make([]int, nTarget[kind]),
		}
		for t, ids := range bucket {
			tbl.start[t] = len(l.groups)
			tbl.count[t] = len(ids)
			for j, id := range ids {
				m := in.Mulcovs[id]
				l.groups = append(l.groups, Group{
					Kind:      groupKindOf(kind),
					Key:       t,
					Index:     j,
					Smooth:    m.Smooth,
					Covariate: ident.Some(m.Covariate),
					Count:     gridCount(l.smooths, m.Smooth),
				})
			}
		}
		l.mulcov[kind] = tbl
	}
}

// mulstdCount is the block size of one smoothing under the layout policy.
func (l *Layout) mulstdCount(row smooth.Smoothing) int {
	if l.policy == MulstdFixed {
		return smooth.NumMulstd
	}
	n := 0
	for k := smooth.MulstdKind(0); k < smooth.NumMulstd; k++ {
		if row.Mulstd(k).Valid() {
			n++
		}
	}

	return n
}

// assign walks the groups once with a running cursor. It fails with
// ErrLayoutSize before the cursor would pass math.MaxInt.
func (l *Layout) assign() error {
	cursor := 0
	for i := range l.groups {
		g := &l.groups[i]
		if g.Count > math.MaxInt-cursor {
			return fmt.Errorf("%s group %d/%d (count %d) at offset %d: %w",
				g.Kind, g.Key, g.Index, g.Count, cursor, ErrLayoutSize)
		}
		g.Offset = cursor
		cursor += g.Count
	}
	l.size = cursor

	l.mulstdSlot = make([][smooth.NumMulstd]int, len(l.mulstdGroup))
	for s, gi := range l.mulstdGroup {
		row, _ := l.smooths.Get(s)
		next := l.groups[gi].Offset
		for k := smooth.MulstdKind(0); k < smooth.NumMulstd; k++ {
			if l.policy == MulstdFixed || row.Mulstd(k).Valid() {
				l.mulstdSlot[s][k] = next
				next++
			} else {
				l.mulstdSlot[s][k] = -1
			}
		}
	}

	return nil
}
