package dbtable

import (
	"fmt"
	"slices"
	"sort"

	"github.com/katalvlaran/packvar/ident"
	"github.com/katalvlaran/packvar/pack"
)

// check runs every table check and fills t.grids.
func (t *Tables) check() error {
	ids := []error{
		checkTableID("node", t.Nodes, func(r NodeRow) int64 { return r.NodeID }),
		checkTableID("smooth", t.Smooths, func(r SmoothRow) int64 { return r.SmoothID }),
		checkTableID("smooth_grid", t.SmoothGrid, func(r SmoothGridRow) int64 { return r.SmoothGridID }),
		checkTableID("rate", t.Rates, func(r RateRow) int64 { return r.RateID }),
		checkTableID("mulcov", t.Mulcovs, func(r MulcovRow) int64 { return r.MulcovID }),
		checkTableID("integrand", t.Integrands, func(r IntegrandRow) int64 { return r.IntegrandID }),
		checkTableID("covariate", t.Covariates, func(r CovariateRow) int64 { return r.CovariateID }),
		checkTableID("option", t.Options, func(r OptionRow) int64 { return r.OptionID }),
	}
	for _, err := range ids {
		if err != nil {
			return err
		}
	}
	if err := t.checkRateNames(); err != nil {
		return err
	}
	if err := t.buildGrids(); err != nil {
		return err
	}
	if err := t.checkMulcovs(); err != nil {
		return err
	}

	return t.checkRateSmooth()
}

// checkTableID reports the first row whose primary key is not its position.
func checkTableID[R any](table string, rows []R, id func(R) int64) error {
	for k, r := range rows {
		if got := id(r); got != int64(k) {
			return fmt.Errorf("%s table row %d has id %d: %w", table, k, got, ErrTableID)
		}
	}

	return nil
}

func (t *Tables) checkRateNames() error {
	if len(t.Rates) != len(pack.RateNames) {
		return fmt.Errorf("rate table has %d rows, want %d: %w", len(t.Rates), len(pack.RateNames), ErrRateName)
	}
	for id, r := range t.Rates {
		if r.RateName != pack.RateNames[id] {
			return fmt.Errorf("rate %d is %q, want %q: %w", id, r.RateName, pack.RateNames[id], ErrRateName)
		}
	}

	return nil
}

// buildGrids orders each smoothing's grid points by age_id, then time_id,
// and checks they form the full n_age × n_time product.
func (t *Tables) buildGrids() error {
	rows := make([][]SmoothGridRow, len(t.Smooths))
	for _, g := range t.SmoothGrid {
		if g.SmoothID < 0 || g.SmoothID >= int64(len(t.Smooths)) {
			return fmt.Errorf("smooth_grid %d has smooth_id %d: %w", g.SmoothGridID, g.SmoothID, ErrSmoothGrid)
		}
		rows[g.SmoothID] = append(rows[g.SmoothID], g)
	}

	t.grids = make([]grid, len(t.Smooths))
	for s, pts := range rows {
		sm := t.Smooths[s]
		if int64(len(pts)) != sm.NAge*sm.NTime {
			return fmt.Errorf("smooth %d has %d grid points, want %d×%d: %w",
				s, len(pts), sm.NAge, sm.NTime, ErrSmoothGrid)
		}
		sort.Slice(pts, func(i, j int) bool {
			if pts[i].AgeID != pts[j].AgeID {
				return pts[i].AgeID < pts[j].AgeID
			}
			return pts[i].TimeID < pts[j].TimeID
		})
		g := grid{
			ageIDs:  distinct(pts, func(r SmoothGridRow) int64 { return r.AgeID }),
			timeIDs: distinct(pts, func(r SmoothGridRow) int64 { return r.TimeID }),
		}
		if int64(len(g.ageIDs)) != sm.NAge || int64(len(g.timeIDs)) != sm.NTime {
			return fmt.Errorf("smooth %d has %d ages and %d times, want %d and %d: %w",
				s, len(g.ageIDs), len(g.timeIDs), sm.NAge, sm.NTime, ErrSmoothGrid)
		}
		nTime := len(g.timeIDs)
		g.valuePrior = make([]ident.Optional, len(pts))
		for k, p := range pts {
			if p.AgeID != g.ageIDs[k/nTime] || p.TimeID != g.timeIDs[k%nTime] {
				return fmt.Errorf("smooth %d repeats grid point (age_id %d, time_id %d): %w",
					s, p.AgeID, p.TimeID, ErrSmoothGrid)
			}
			g.valuePrior[k] = ident.FromPtr(p.ValuePriorID)
		}
		t.grids[s] = g
	}

	return nil
}

// distinct returns the sorted distinct keys of rows.
func distinct(rows []SmoothGridRow, key func(SmoothGridRow) int64) []int64 {
	seen := make(map[int64]struct{}, len(rows))
	out := make([]int64, 0, len(rows))
	for _, r := range rows {
		k := key(r)
		if _, ok := seen[k]; !ok {
			seen[k] = struct{}{}
			out = append(out, k)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

func (t *Tables) checkMulcovs() error {
	for _, m := range t.Mulcovs {
		kind, err := pack.ParseMulcovKind(m.MulcovType)
		if err != nil {
			return fmt.Errorf("mulcov %d: %q: %w", m.MulcovID, m.MulcovType, ErrMulcovType)
		}
		if kind == pack.MulcovRateMean && m.RateID == nil {
			return fmt.Errorf("mulcov %d (%s) rate_id: %w", m.MulcovID, kind, ErrMulcovTarget)
		}
		if kind != pack.MulcovRateMean && m.IntegrandID == nil {
			return fmt.Errorf("mulcov %d (%s) integrand_id: %w", m.MulcovID, kind, ErrMulcovTarget)
		}
	}

	return nil
}

// checkRateSmooth applies the pini one-age rule and requires parent and
// child smoothings of a rate to share their age and time grids. Unknown
// smoothing ids are left for pack.Build.
func (t *Tables) checkRateSmooth() error {
	lookup := func(p *int64) (int64, bool) {
		if p == nil || *p < 0 || *p >= int64(len(t.Smooths)) {
			return 0, false
		}
		return *p, true
	}
	for id, r := range t.Rates {
		parent, hasParent := lookup(r.ParentSmoothID)
		child, hasChild := lookup(r.ChildSmoothID)
		if r.RateName == pack.RatePini {
			for _, s := range []struct {
				col string
				id  int64
				ok  bool
			}{{"parent_smooth_id", parent, hasParent}, {"child_smooth_id", child, hasChild}} {
				if s.ok && t.Smooths[s.id].NAge != 1 {
					return fmt.Errorf("rate %d %s=%d has n_age %d: %w",
						id, s.col, s.id, t.Smooths[s.id].NAge, ErrPiniNAge)
				}
			}
		}
		if !hasParent || !hasChild {
			continue
		}
		pg, cg := t.grids[parent], t.grids[child]
		if !slices.Equal(pg.ageIDs, cg.ageIDs) {
			return fmt.Errorf("rate %d (%s) smoothings %d and %d age_id: %w", id, r.RateName, parent, child, ErrRateSmoothMismatch)
		}
		if !slices.Equal(pg.timeIDs, cg.timeIDs) {
			return fmt.Errorf("rate %d (%s) smoothings %d and %d time_id: %w", id, r.RateName, parent, child, ErrRateSmoothMismatch)
		}
	}

	return nil
}
